/*
Package parse tokenizes and parses the surface syntax described in
spec.md §6: atoms, the unary operators ~, []/□, <>/♢ (binding tighter
than binaries, ~ tightest), and the binary operators ->, |, & (weakest to
strongest, -> right-associative).

Tokenisation is performed by a DFA built with
github.com/timtadh/lexmachine; parsing is a hand-written
precedence-climbing recursive descent, grounded in the style of
terex/terexlang's parser in the teacher repository.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The modalk Authors

*/
package parse

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "modalk.parse".
func tracer() tracing.Trace {
	return tracing.Select("modalk.parse")
}

// TokType identifies the lexical category of a Token.
type TokType int

const (
	tokEOF TokType = iota
	tokIdent
	tokNot
	tokBox
	tokDiamond
	tokAnd
	tokOr
	tokImplies
	tokLParen
	tokRParen
)

// Token is one lexed unit of surface syntax.
type Token struct {
	Type   TokType
	Lexeme string
	Pos    int // byte offset of the token's first rune
}

func (t Token) String() string {
	return fmt.Sprintf("%q@%d", t.Lexeme, t.Pos)
}

var (
	lexerOnce sync.Once
	lexer     *lexmachine.Lexer
	lexerErr  error
)

func makeToken(tt TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Type: tt, Lexeme: string(m.Bytes), Pos: m.TC}, nil
	}
}

func skip(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, nil
}

func buildLexer() (*lexmachine.Lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`( |\t|\n|\r)+`), skip)
	lx.Add([]byte(`\(`), makeToken(tokLParen))
	lx.Add([]byte(`\)`), makeToken(tokRParen))
	lx.Add([]byte(`~`), makeToken(tokNot))
	lx.Add([]byte(`\[\]`), makeToken(tokBox))
	lx.Add([]byte(`□`), makeToken(tokBox))
	lx.Add([]byte(`<>`), makeToken(tokDiamond))
	lx.Add([]byte(`♢`), makeToken(tokDiamond))
	lx.Add([]byte(`&`), makeToken(tokAnd))
	lx.Add([]byte(`\|`), makeToken(tokOr))
	lx.Add([]byte(`->`), makeToken(tokImplies))
	lx.Add([]byte(`[A-Za-z][A-Za-z0-9_]*`), makeToken(tokIdent))
	if err := lx.Compile(); err != nil {
		return nil, err
	}
	return lx, nil
}

func sharedLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer, lexerErr = buildLexer()
		if lexerErr != nil {
			tracer().Errorf("parse: failed to compile lexer DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// tokenize scans src fully into a token slice terminated by a tokEOF token,
// or returns a SyntaxError on the first unrecognized character.
func tokenize(src string) ([]Token, error) {
	lx, err := sharedLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var toks []Token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, &SyntaxError{Msg: "unknown character", Pos: ui.FailTC}
			}
			return nil, &SyntaxError{Msg: err.Error(), Pos: 0}
		}
		toks = append(toks, tok.(Token))
	}
	toks = append(toks, Token{Type: tokEOF, Lexeme: "", Pos: len(src)})
	return toks, nil
}
