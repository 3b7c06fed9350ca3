/*
File    : jqmix/parser/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/jqmix/value"

// Expr is the closed set of AST node kinds the parser produces. Every
// concrete type below implements Expr purely as a marker; the evaluator
// dispatches on the concrete type with a type switch rather than a
// visitor, since the set of kinds is fixed and does not grow at runtime.
type Expr interface {
	exprNode()
}

// Identity is ".".
type Identity struct{}

// Literal is a constant null, boolean, number, or string embedded in the
// program text.
type Literal struct {
	Value value.Value
}

// Pipe is "E1 | E2": feed every output of E1 into E2.
type Pipe struct {
	Left, Right Expr
}

// Comma is "E1 , E2": concatenate the outputs of E1 and E2.
type Comma struct {
	Left, Right Expr
}

// Key is ".name" or `."name"`: object field access by a literal name.
type Key struct {
	Name string
}

// Index is ".[e1, e2, ...]". An empty Indices list is the iterator ".[]".
type Index struct {
	Indices []Expr
}

// Slice is ".[lo:hi]". Lo and/or Hi may be nil, meaning the corresponding
// endpoint was omitted.
type Slice struct {
	Lo, Hi Expr
}

// Optional is "E?": suppress type/key/index errors raised by E.
type Optional struct {
	Body Expr
}

// ArrayConstruct is "[E]"; Body is nil for the empty array literal "[]".
type ArrayConstruct struct {
	Body Expr
}

// ObjectEntry is one "key: value" pair inside an object construction.
type ObjectEntry struct {
	Key Expr
	// For the "{foo}" / "{$foo}" shorthand forms the parser fills Value in
	// with the expression implied by the key (Key{foo} / Variable{foo}),
	// so Value is never nil in a parsed entry.
	Value Expr
}

// ObjectConstruct is "{ entries }".
type ObjectConstruct struct {
	Entries []ObjectEntry
}

// BinOp names a binary operator token as it appears in an Operation node.
type BinOp string

const (
	OpAdd BinOp = "+"
	OpSub BinOp = "-"
	OpMul BinOp = "*"
	OpDiv BinOp = "/"
	OpMod BinOp = "%"
	OpEq  BinOp = "=="
	OpNe  BinOp = "!="
	OpLt  BinOp = "<"
	OpLe  BinOp = "<="
	OpGt  BinOp = ">"
	OpGe  BinOp = ">="
	OpAnd BinOp = "and"
	OpOr  BinOp = "or"
)

// Operation is "E1 op E2" for one of the arithmetic, comparison, or
// logical binary operators.
type Operation struct {
	Left  Expr
	Op    BinOp
	Right Expr
}

// Alternative is "E1 // E2".
type Alternative struct {
	Left, Right Expr
}

// IfThenElse is "if c then t elif ce then te ... else e end". elif chains
// are desugared by the parser into nested IfThenElse values, so the
// evaluator only ever sees this one shape.
type IfThenElse struct {
	Cond, Then, Else Expr
}

// TryCatch is "try E" (Handler nil) or "try E catch H".
type TryCatch struct {
	Body    Expr
	Handler Expr
}

// Variable is "$name".
type Variable struct {
	Name string
}

// Recurse is "..".
type Recurse struct{}

// BuiltinCall is a call to one of the recognized built-ins, e.g. "length",
// "map(E)", "select(E)". Args is empty for nullary built-ins.
type BuiltinCall struct {
	Name string
	Args []Expr
}

func (Identity) exprNode()        {}
func (Literal) exprNode()         {}
func (Pipe) exprNode()            {}
func (Comma) exprNode()           {}
func (Key) exprNode()             {}
func (Index) exprNode()           {}
func (Slice) exprNode()           {}
func (Optional) exprNode()        {}
func (ArrayConstruct) exprNode()  {}
func (ObjectConstruct) exprNode() {}
func (Operation) exprNode()       {}
func (Alternative) exprNode()     {}
func (IfThenElse) exprNode()      {}
func (TryCatch) exprNode()        {}
func (Variable) exprNode()        {}
func (Recurse) exprNode()         {}
func (BuiltinCall) exprNode()     {}
