/*
File    : jqmix/parser/terms.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/jqmix/lexer"
	"github.com/akashmaji946/jqmix/value"
)

// nullaryBuiltins are built-ins that never take a parenthesized argument.
// flatten is listed here too since its argument is optional.
var nullaryBuiltins = map[string]bool{
	"length": true, "keys": true, "values": true, "type": true,
	"empty": true, "sort": true, "reverse": true, "unique": true,
	"add": true, "min": true, "max": true, "floor": true, "sqrt": true,
	"flatten": true,
}

// argBuiltins are built-ins that require exactly one parenthesized
// argument expression.
var argBuiltins = map[string]bool{
	"map": true, "select": true,
}

func isBuiltin(name string) bool {
	return nullaryBuiltins[name] || argBuiltins[name]
}

// parsePrimary is grammar level 10: a term followed by zero or more access
// suffixes (".key", ".[expr]", ".[lo:hi]", ".[]", or a bracket directly
// chained onto a preceding key, e.g. ".foo[0]").
func (par *Parser) parsePrimary() Expr {
	base := par.parseTerm()
	for {
		switch par.CurrToken.Type {
		case lexer.LEFT_BRACKET:
			base = Pipe{Left: base, Right: par.parseBracketSuffix()}
		case lexer.DOT_OP:
			switch par.NextToken.Type {
			case lexer.IDENTIFIER_ID, lexer.STRING_LIT:
				par.advance() // consume '.'
				name := par.CurrToken.Literal
				par.advance() // consume name
				base = Pipe{Left: base, Right: Key{Name: name}}
			case lexer.LEFT_BRACKET:
				par.advance() // consume '.'
				base = Pipe{Left: base, Right: par.parseBracketSuffix()}
			default:
				return base
			}
		default:
			return base
		}
	}
}

// parseTerm parses a single term: the innermost unit of the grammar,
// before any access suffixes are attached.
func (par *Parser) parseTerm() Expr {
	switch par.CurrToken.Type {
	case lexer.DOT_OP:
		return par.parseDotTerm()
	case lexer.RANGE_OP:
		par.advance()
		return Recurse{}
	case lexer.NUMBER_LIT:
		return par.parseNumberLiteral()
	case lexer.STRING_LIT:
		lit := par.CurrToken.Literal
		par.advance()
		return Literal{Value: value.Str(lit)}
	case lexer.BOOL_LIT:
		b := par.CurrToken.Literal == "true"
		par.advance()
		return Literal{Value: value.Bool(b)}
	case lexer.NULL_LIT:
		par.advance()
		return Literal{Value: value.Null{}}
	case lexer.VARIABLE_ID:
		name := par.CurrToken.Literal
		par.advance()
		return Variable{Name: name}
	case lexer.LEFT_PAREN:
		par.advance()
		inner := par.parsePipe()
		par.consume(lexer.RIGHT_PAREN)
		return inner
	case lexer.LEFT_BRACKET:
		return par.parseArrayConstruct()
	case lexer.LEFT_BRACE:
		return par.parseObjectConstruct()
	case lexer.IF_KEY:
		return par.parseIfThenElse()
	case lexer.TRY_KEY:
		return par.parseTryCatch()
	case lexer.NOT_KEY:
		par.advance()
		return BuiltinCall{Name: "not"}
	case lexer.MINUS_OP:
		// Unary minus: "-x" parses as "0 - x", since the lexer never
		// absorbs a leading minus into a number literal.
		par.advance()
		return Operation{Left: Literal{Value: value.Number(0)}, Op: OpSub, Right: par.parsePostfix()}
	case lexer.IDENTIFIER_ID:
		return par.parseIdentifierTerm()
	default:
		par.failUnexpected("an expression")
		par.advance()
		return Identity{}
	}
}

// parseDotTerm handles a term that starts with ".": bare Identity,
// Key via an attached identifier/string, or a bracket suffix applied
// directly to Identity.
func (par *Parser) parseDotTerm() Expr {
	switch par.NextToken.Type {
	case lexer.IDENTIFIER_ID, lexer.STRING_LIT:
		par.advance() // consume '.'
		name := par.CurrToken.Literal
		par.advance() // consume name
		return Key{Name: name}
	case lexer.LEFT_BRACKET:
		par.advance() // consume '.'
		return par.parseBracketSuffix()
	default:
		par.advance() // consume the lone '.'
		return Identity{}
	}
}

// parseBracketSuffix parses "[...]" with CurrToken positioned at "[": the
// empty iterator ".[]", an index list ".[i, j, ...]", or a slice
// ".[lo:hi]" with either bound optional.
func (par *Parser) parseBracketSuffix() Expr {
	par.advance() // consume '['

	if par.CurrToken.Type == lexer.RIGHT_BRACKET {
		par.advance()
		return Index{}
	}

	if par.CurrToken.Type == lexer.COLON_OP {
		par.advance()
		hi := par.parseOr()
		par.consume(lexer.RIGHT_BRACKET)
		return Slice{Hi: hi}
	}

	first := par.parseOr()

	if par.CurrToken.Type == lexer.COLON_OP {
		par.advance()
		if par.CurrToken.Type == lexer.RIGHT_BRACKET {
			par.advance()
			return Slice{Lo: first}
		}
		hi := par.parseOr()
		par.consume(lexer.RIGHT_BRACKET)
		return Slice{Lo: first, Hi: hi}
	}

	indices := []Expr{first}
	for par.CurrToken.Type == lexer.COMMA_OP {
		par.advance()
		indices = append(indices, par.parseOr())
	}
	par.consume(lexer.RIGHT_BRACKET)
	return Index{Indices: indices}
}

// parseArrayConstruct parses "[expr?]" with CurrToken at "[".
func (par *Parser) parseArrayConstruct() Expr {
	par.advance() // consume '['
	if par.CurrToken.Type == lexer.RIGHT_BRACKET {
		par.advance()
		return ArrayConstruct{}
	}
	body := par.parsePipe()
	par.consume(lexer.RIGHT_BRACKET)
	return ArrayConstruct{Body: body}
}

// parseObjectConstruct parses "{ entries }" with CurrToken at "{".
func (par *Parser) parseObjectConstruct() Expr {
	par.advance() // consume '{'
	if par.CurrToken.Type == lexer.RIGHT_BRACE {
		par.advance()
		return ObjectConstruct{}
	}

	var entries []ObjectEntry
	for {
		entries = append(entries, par.parseObjectEntry())
		if par.CurrToken.Type != lexer.COMMA_OP {
			break
		}
		par.advance()
	}
	par.consume(lexer.RIGHT_BRACE)
	return ObjectConstruct{Entries: entries}
}

// parseObjectEntry parses one entry of an object construction: "ident :
// expr", `"string" : expr`, "(expr) : expr", "$name" (shorthand for
// "name: $name"), or "ident" (shorthand for "ident: .ident").
func (par *Parser) parseObjectEntry() ObjectEntry {
	switch par.CurrToken.Type {
	case lexer.VARIABLE_ID:
		name := par.CurrToken.Literal
		par.advance()
		if par.CurrToken.Type == lexer.COLON_OP {
			par.advance()
			return ObjectEntry{Key: Literal{Value: value.Str(name)}, Value: par.parseOr()}
		}
		return ObjectEntry{Key: Literal{Value: value.Str(name)}, Value: Variable{Name: name}}

	case lexer.IDENTIFIER_ID, lexer.STRING_LIT:
		name := par.CurrToken.Literal
		par.advance()
		if par.CurrToken.Type == lexer.COLON_OP {
			par.advance()
			return ObjectEntry{Key: Literal{Value: value.Str(name)}, Value: par.parseOr()}
		}
		return ObjectEntry{Key: Literal{Value: value.Str(name)}, Value: Key{Name: name}}

	case lexer.LEFT_PAREN:
		par.advance()
		keyExpr := par.parsePipe()
		par.consume(lexer.RIGHT_PAREN)
		par.consume(lexer.COLON_OP)
		return ObjectEntry{Key: keyExpr, Value: par.parseOr()}

	default:
		par.failBadKey()
		par.advance()
		return ObjectEntry{Key: Literal{Value: value.Null{}}}
	}
}

// parseIfThenElse parses "if c then t (elif ce then te)* else e end" with
// CurrToken at "if". elif chains desugar into nested IfThenElse nodes.
func (par *Parser) parseIfThenElse() Expr {
	par.advance() // consume 'if'
	cond := par.parsePipe()
	par.consume(lexer.THEN_KEY)
	then := par.parsePipe()
	elseExpr := par.parseElseTail()
	return IfThenElse{Cond: cond, Then: then, Else: elseExpr}
}

func (par *Parser) parseElseTail() Expr {
	switch par.CurrToken.Type {
	case lexer.ELIF_KEY:
		par.advance()
		cond := par.parsePipe()
		par.consume(lexer.THEN_KEY)
		then := par.parsePipe()
		return IfThenElse{Cond: cond, Then: then, Else: par.parseElseTail()}
	case lexer.ELSE_KEY:
		par.advance()
		elseExpr := par.parsePipe()
		par.consume(lexer.END_KEY)
		return elseExpr
	default:
		par.failUnexpected("'elif' or 'else'")
		return Identity{}
	}
}

// parseTryCatch parses "try E" or "try E catch H" with CurrToken at
// "try". E and H each bind at postfix precedence, the same tight binding
// "?" gets, so a following "|" or "," applies outside the try.
func (par *Parser) parseTryCatch() Expr {
	par.advance() // consume 'try'
	body := par.parsePostfix()
	var handler Expr
	if par.CurrToken.Type == lexer.CATCH_KEY {
		par.advance()
		handler = par.parsePostfix()
	}
	return TryCatch{Body: body, Handler: handler}
}

// parseIdentifierTerm parses a built-in call: a bare name for a nullary
// built-in, or "name(arg)" / "name(arg; arg2)" for one that takes
// arguments.
func (par *Parser) parseIdentifierTerm() Expr {
	name := par.CurrToken.Literal
	par.advance()

	if !isBuiltin(name) {
		par.failUnexpected("a recognized built-in (got " + strconv.Quote(name) + ")")
		return Identity{}
	}

	if par.CurrToken.Type != lexer.LEFT_PAREN {
		if argBuiltins[name] {
			par.failUnexpected("'(' after " + name)
		}
		return BuiltinCall{Name: name}
	}

	par.advance() // consume '('
	args := []Expr{par.parsePipe()}
	for par.CurrToken.Type == lexer.SEMICOLON_OP {
		par.advance()
		args = append(args, par.parsePipe())
	}
	par.consume(lexer.RIGHT_PAREN)
	return BuiltinCall{Name: name, Args: args}
}

func (par *Parser) parseNumberLiteral() Expr {
	lit := par.CurrToken.Literal
	par.advance()
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		par.failUnexpected("a well-formed number")
		return Literal{Value: value.Number(0)}
	}
	return Literal{Value: value.Number(f)}
}
