/*
File    : jqmix/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/jqmix/lexer"
)

// ParseErrorKind enumerates the parser error taxonomy of spec section 7.
type ParseErrorKind string

const (
	Unexpected    ParseErrorKind = "Unexpected"
	TrailingInput ParseErrorKind = "TrailingInput"
	BadObjectKey  ParseErrorKind = "BadObjectKey"
)

// ParseError reports a parsing failure with its kind and source position.
type ParseError struct {
	Kind     ParseErrorKind
	Token    lexer.Token
	Expected string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case TrailingInput:
		return fmt.Sprintf("[%d:%d] parse error: trailing input at %q", e.Token.Line, e.Token.Column, e.Token.Literal)
	case BadObjectKey:
		return fmt.Sprintf("[%d:%d] parse error: bad object key %q", e.Token.Line, e.Token.Column, e.Token.Literal)
	default:
		return fmt.Sprintf("[%d:%d] parse error: unexpected %q, expected %s", e.Token.Line, e.Token.Column, e.Token.Literal, e.Expected)
	}
}
