/*
File    : jqmix/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConsumeToken represents a single table-driven test case for
// ConsumeTokens: an input program and the tokens it should produce.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func runConsumeTokenTests(t *testing.T, tests []TestConsumeToken) {
	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens), "input: %s", test.Input)
		for i, token := range test.ExpectedTokens {
			if i >= len(gotTokens) {
				break
			}
			assert.Equal(t, token.Type, gotTokens[i].Type, "input: %s token %d", test.Input, i)
			assert.Equal(t, token.Literal, gotTokens[i].Literal, "input: %s token %d", test.Input, i)
		}
	}
}

func TestLexer_Punctuation(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: `. .. | , : ; ? ( ) [ ] { }`,
			ExpectedTokens: []Token{
				NewToken(DOT_OP, "."),
				NewToken(RANGE_OP, ".."),
				NewToken(PIPE_OP, "|"),
				NewToken(COMMA_OP, ","),
				NewToken(COLON_OP, ":"),
				NewToken(SEMICOLON_OP, ";"),
				NewToken(QUESTION_OP, "?"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
		{
			Input: `+ - * / % == != < <= > >= = |= //`,
			ExpectedTokens: []Token{
				NewToken(PLUS_OP, "+"),
				NewToken(MINUS_OP, "-"),
				NewToken(MUL_OP, "*"),
				NewToken(DIV_OP, "/"),
				NewToken(MOD_OP, "%"),
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(LT_OP, "<"),
				NewToken(LE_OP, "<="),
				NewToken(GT_OP, ">"),
				NewToken(GE_OP, ">="),
				NewToken(ASSIGN_OP, "="),
				NewToken(PIPE_ASSIGN_OP, "|="),
				NewToken(ALT_OP, "//"),
			},
		},
	})
}

func TestLexer_Keywords(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: `and or not if then elif else end as reduce foreach try catch def`,
			ExpectedTokens: []Token{
				NewToken(AND_KEY, "and"),
				NewToken(OR_KEY, "or"),
				NewToken(NOT_KEY, "not"),
				NewToken(IF_KEY, "if"),
				NewToken(THEN_KEY, "then"),
				NewToken(ELIF_KEY, "elif"),
				NewToken(ELSE_KEY, "else"),
				NewToken(END_KEY, "end"),
				NewToken(AS_KEY, "as"),
				NewToken(REDUCE_KEY, "reduce"),
				NewToken(FOREACH_KEY, "foreach"),
				NewToken(TRY_KEY, "try"),
				NewToken(CATCH_KEY, "catch"),
				NewToken(DEF_KEY, "def"),
			},
		},
		{
			Input: `true false null length`,
			ExpectedTokens: []Token{
				NewToken(BOOL_LIT, "true"),
				NewToken(BOOL_LIT, "false"),
				NewToken(NULL_LIT, "null"),
				NewToken(IDENTIFIER_ID, "length"),
			},
		},
	})
}

func TestLexer_Identifiers(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: `foo bar_baz _leading foo123`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "foo"),
				NewToken(IDENTIFIER_ID, "bar_baz"),
				NewToken(IDENTIFIER_ID, "_leading"),
				NewToken(IDENTIFIER_ID, "foo123"),
			},
		},
		{
			Input: `$foo $bar_1`,
			ExpectedTokens: []Token{
				NewToken(VARIABLE_ID, "foo"),
				NewToken(VARIABLE_ID, "bar_1"),
			},
		},
	})
}

func TestLexer_Numbers(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: `0 42 3.14 1e9 1.4e9 12E-2 0.5`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "0"),
				NewToken(NUMBER_LIT, "42"),
				NewToken(NUMBER_LIT, "3.14"),
				NewToken(NUMBER_LIT, "1e9"),
				NewToken(NUMBER_LIT, "1.4e9"),
				NewToken(NUMBER_LIT, "12E-2"),
				NewToken(NUMBER_LIT, "0.5"),
			},
		},
		{
			// "." after a number followed by another "." is the recurse
			// operator, not a fraction: "2..5" tokenizes as 2, .., 5
			Input: `2..5`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "2"),
				NewToken(RANGE_OP, ".."),
				NewToken(NUMBER_LIT, "5"),
			},
		},
	})
}

func TestLexer_Strings(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: `"hello" "with space" ""`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "hello"),
				NewToken(STRING_LIT, "with space"),
				NewToken(STRING_LIT, ""),
			},
		},
		{
			Input: `"line\nbreak" "tab\there" "quote\"inside" "slash\/here"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "line\nbreak"),
				NewToken(STRING_LIT, "tab\there"),
				NewToken(STRING_LIT, `quote"inside`),
				NewToken(STRING_LIT, "slash/here"),
			},
		},
		{
			Input: `"snowman☃"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "snowman☃"),
			},
		},
		{
			Input: `"😀"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "\U0001F600"),
			},
		},
	})
}

func TestLexer_UnterminatedString(t *testing.T) {
	_, err := Lex(`"never closed`)
	assert.Error(t, err)
	lexErr, ok := err.(*LexError)
	assert.True(t, ok)
	assert.Equal(t, UnterminatedString, lexErr.Kind)
}

func TestLexer_BadEscape(t *testing.T) {
	_, err := Lex(`"bad\qescape"`)
	assert.Error(t, err)
	lexErr, ok := err.(*LexError)
	assert.True(t, ok)
	assert.Equal(t, BadEscape, lexErr.Kind)
}

func TestLexer_UnexpectedChar(t *testing.T) {
	_, err := Lex("@")
	assert.Error(t, err)
	lexErr, ok := err.(*LexError)
	assert.True(t, ok)
	assert.Equal(t, UnexpectedChar, lexErr.Kind)
}

func TestLexer_Program(t *testing.T) {
	runConsumeTokenTests(t, []TestConsumeToken{
		{
			Input: `.users[] | select(.age >= 18) | {name: .name, email: .email}`,
			ExpectedTokens: []Token{
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "users"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(PIPE_OP, "|"),
				NewToken(IDENTIFIER_ID, "select"),
				NewToken(LEFT_PAREN, "("),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "age"),
				NewToken(GE_OP, ">="),
				NewToken(NUMBER_LIT, "18"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(PIPE_OP, "|"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(IDENTIFIER_ID, "name"),
				NewToken(COLON_OP, ":"),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "name"),
				NewToken(COMMA_OP, ","),
				NewToken(IDENTIFIER_ID, "email"),
				NewToken(COLON_OP, ":"),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "email"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
	})
}
