/*
File    : jqmix/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for jq query
// expressions. Unlike a generic Pratt parser keyed off a precedence
// table, this grammar is small and fully spelled out by the language
// itself, so each precedence level gets its own named method — pipe, alt,
// comma, or, and, cmp, sum, mul, postfix, primary — mirroring the grammar
// one level at a time rather than going through a registered-function
// dispatch table.
package parser

import (
	"github.com/akashmaji946/jqmix/lexer"
)

// Parser converts a token stream into an Expr tree. It keeps a two-token
// lookahead (CurrToken, NextToken) the same way a conventional
// recursive-descent parser does, and collects errors instead of
// panicking on the first one so a caller can report everything wrong
// with a program in one pass.
type Parser struct {
	Lex       lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token
	Errors    []string
	Err       *ParseError    // first structured error encountered, if any
	LexErr    *lexer.LexError // first lexing failure encountered, if any
}

// NewParser creates a Parser over src, primed with its first two tokens.
func NewParser(src string) *Parser {
	par := &Parser{Lex: lexer.NewLexer(src)}
	par.advance()
	par.advance()
	return par
}

// advance shifts the token lookahead: CurrToken becomes NextToken, and a
// fresh token is pulled from the lexer into NextToken.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
	if par.Lex.Err != nil && par.LexErr == nil {
		if lexErr, ok := par.Lex.Err.(*lexer.LexError); ok {
			par.LexErr = lexErr
		}
	}
}

// consume checks CurrToken against expected and, if it matches, advances
// past it; otherwise it records an Unexpected error and leaves the
// parser positioned where it was, so the caller can keep going.
func (par *Parser) consume(expected lexer.TokenType) bool {
	if par.CurrToken.Type != expected {
		par.failUnexpected(string(expected))
		return false
	}
	par.advance()
	return true
}

func (par *Parser) failUnexpected(expected string) {
	par.fail(&ParseError{Kind: Unexpected, Token: par.CurrToken, Expected: expected})
}

func (par *Parser) failBadKey() {
	par.fail(&ParseError{Kind: BadObjectKey, Token: par.CurrToken})
}

func (par *Parser) fail(err *ParseError) {
	if par.Err == nil {
		par.Err = err
	}
	par.Errors = append(par.Errors, err.Error())
}

// addError records a plain diagnostic message without a structured kind.
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors reports whether any error was collected.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns every error collected during parsing.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// Parse consumes the entire token stream and returns the resulting
// expression tree, or the first error encountered: a *lexer.LexError takes
// precedence over any *ParseError it may have caused.
func Parse(src string) (Expr, error) {
	par := NewParser(src)
	expr := par.parsePipe()
	if par.LexErr != nil {
		return nil, par.LexErr
	}
	if par.Err != nil {
		return nil, par.Err
	}
	if par.CurrToken.Type != lexer.EOF_TYPE {
		return nil, &ParseError{Kind: TrailingInput, Token: par.CurrToken}
	}
	return expr, nil
}
