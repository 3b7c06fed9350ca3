/*
File    : jqmix/parser/grammar.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/jqmix/lexer"

// parsePipe is grammar level 1: alt ( "|" alt )*
func (par *Parser) parsePipe() Expr {
	left := par.parseAlt()
	for par.CurrToken.Type == lexer.PIPE_OP {
		par.advance()
		right := par.parseAlt()
		left = Pipe{Left: left, Right: right}
	}
	return left
}

// parseAlt is grammar level 2: comma ( "//" comma )*
func (par *Parser) parseAlt() Expr {
	left := par.parseComma()
	for par.CurrToken.Type == lexer.ALT_OP {
		par.advance()
		right := par.parseComma()
		left = Alternative{Left: left, Right: right}
	}
	return left
}

// parseComma is grammar level 3: or_e ( "," or_e )*
func (par *Parser) parseComma() Expr {
	left := par.parseOr()
	for par.CurrToken.Type == lexer.COMMA_OP {
		par.advance()
		right := par.parseOr()
		left = Comma{Left: left, Right: right}
	}
	return left
}

// parseOr is grammar level 4: and_e ( "or" and_e )*
func (par *Parser) parseOr() Expr {
	left := par.parseAnd()
	for par.CurrToken.Type == lexer.OR_KEY {
		par.advance()
		right := par.parseAnd()
		left = Operation{Left: left, Op: OpOr, Right: right}
	}
	return left
}

// parseAnd is grammar level 5: cmp ( "and" cmp )*
func (par *Parser) parseAnd() Expr {
	left := par.parseCmp()
	for par.CurrToken.Type == lexer.AND_KEY {
		par.advance()
		right := par.parseCmp()
		left = Operation{Left: left, Op: OpAnd, Right: right}
	}
	return left
}

var cmpOps = map[lexer.TokenType]BinOp{
	lexer.EQ_OP: OpEq,
	lexer.NE_OP: OpNe,
	lexer.LT_OP: OpLt,
	lexer.LE_OP: OpLe,
	lexer.GT_OP: OpGt,
	lexer.GE_OP: OpGe,
}

// parseCmp is grammar level 6: sum ( ("=="|"!="|"<"|"<="|">"|">=") sum )*
func (par *Parser) parseCmp() Expr {
	left := par.parseSum()
	for {
		op, ok := cmpOps[par.CurrToken.Type]
		if !ok {
			return left
		}
		par.advance()
		right := par.parseSum()
		left = Operation{Left: left, Op: op, Right: right}
	}
}

// parseSum is grammar level 7: mul ( ("+"|"-") mul )*
func (par *Parser) parseSum() Expr {
	left := par.parseMul()
	for par.CurrToken.Type == lexer.PLUS_OP || par.CurrToken.Type == lexer.MINUS_OP {
		op := OpAdd
		if par.CurrToken.Type == lexer.MINUS_OP {
			op = OpSub
		}
		par.advance()
		right := par.parseMul()
		left = Operation{Left: left, Op: op, Right: right}
	}
	return left
}

// parseMul is grammar level 8: postfix ( ("*"|"/"|"%") postfix )*
func (par *Parser) parseMul() Expr {
	left := par.parsePostfix()
	for {
		var op BinOp
		switch par.CurrToken.Type {
		case lexer.MUL_OP:
			op = OpMul
		case lexer.DIV_OP:
			op = OpDiv
		case lexer.MOD_OP:
			op = OpMod
		default:
			return left
		}
		par.advance()
		right := par.parsePostfix()
		left = Operation{Left: left, Op: op, Right: right}
	}
}

// parsePostfix is grammar level 9: primary ( "?" )*
func (par *Parser) parsePostfix() Expr {
	expr := par.parsePrimary()
	for par.CurrToken.Type == lexer.QUESTION_OP {
		par.advance()
		expr = Optional{Body: expr}
	}
	return expr
}
