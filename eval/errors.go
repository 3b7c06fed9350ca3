/*
File    : jqmix/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/jqmix/value"
)

// EvalErrorKind enumerates the evaluator error taxonomy of spec section 7.
type EvalErrorKind string

const (
	TypeError       EvalErrorKind = "Type"
	KeyMissing      EvalErrorKind = "KeyMissing"
	IndexOutOfRange EvalErrorKind = "IndexOutOfRange"
	DivByZero       EvalErrorKind = "DivByZero"
	UnboundVariable EvalErrorKind = "UnboundVariable"
	UserError       EvalErrorKind = "UserError"
)

// EvalError reports an evaluation failure along with its category, so
// "try"/"catch" and the "?" postfix can switch on Kind instead of
// string-matching the message.
type EvalError struct {
	Kind    EvalErrorKind
	Message string
}

func (e *EvalError) Error() string {
	return e.Message
}

// typeErrorf builds a Type EvalError, e.g.
// typeErrorf("length", "null, string, array, object, or number", got).
func typeErrorf(op string, expected string, got value.Value) *EvalError {
	return &EvalError{Kind: TypeError, Message: fmt.Sprintf("%s: expected %s, got %s", op, expected, got.Kind())}
}
