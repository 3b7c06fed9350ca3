/*
File    : jqmix/lexer/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// LexErrorKind enumerates the lexer error taxonomy of spec section 7.
type LexErrorKind string

const (
	UnexpectedChar     LexErrorKind = "UnexpectedChar"
	UnterminatedString LexErrorKind = "UnterminatedString"
	BadEscape          LexErrorKind = "BadEscape"
	BadNumber          LexErrorKind = "BadNumber"
)

// LexError reports a scanning failure with its kind and source position.
type LexError struct {
	Kind   LexErrorKind
	Detail string
	Line   int
	Column int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[%d:%d] lex error: %s: %s", e.Line, e.Column, e.Kind, e.Detail)
}

// Lex tokenizes the full program text, returning every token up to EOF or
// the first LexError encountered.
func Lex(text string) ([]Token, error) {
	lex := NewLexer(text)
	tokens := make([]Token, 0)
	for {
		tok := lex.NextToken()
		if lex.Err != nil {
			return nil, lex.Err
		}
		if tok.Type == EOF_TYPE {
			break
		}
		if tok.Type == INVALID_TYPE {
			return nil, &LexError{
				Kind:   UnexpectedChar,
				Detail: fmt.Sprintf("unexpected character %q", tok.Literal),
				Line:   tok.Line,
				Column: tok.Column,
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
