package parse

import (
	"fmt"
	"strings"

	"github.com/ravndal/modalk/formula"
)

// SyntaxError reports a lexical or grammatical problem with the surface
// syntax of spec.md §6: unknown character, missing closing parenthesis,
// trailing junk, or empty input.
type SyntaxError struct {
	Msg string
	Pos int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse error at byte %d: %s", e.Pos, e.Msg)
}

// Parse parses text into a formula.Formula, or returns a *SyntaxError.
func Parse(text string) (*formula.Formula, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &SyntaxError{Msg: "empty input", Pos: 0}
	}
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != tokEOF {
		return nil, &SyntaxError{Msg: fmt.Sprintf("trailing input %q", p.peek().Lexeme), Pos: p.peek().Pos}
	}
	return f, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// parseImplies handles '->', right-associative, the weakest binary
// operator.
func (p *parser) parseImplies() (*formula.Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().Type == tokImplies {
		p.next()
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return formula.Implies(left, right), nil
	}
	return left, nil
}

// parseOr collects a run of '|'-separated operands into one n-ary Or,
// matching the parser's grouping (spec.md §4.1).
func (p *parser) parseOr() (*formula.Formula, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	operands := []*formula.Formula{first}
	for p.peek().Type == tokOr {
		p.next()
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	return formula.Or(operands...), nil
}

// parseAnd collects a run of '&'-separated operands into one n-ary And,
// the strongest binary operator.
func (p *parser) parseAnd() (*formula.Formula, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	operands := []*formula.Formula{first}
	for p.peek().Type == tokAnd {
		p.next()
		next, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	return formula.And(operands...), nil
}

// parseUnary handles the modal operators and negation, which bind tighter
// than any binary connective; ~ binds tightest of all.
func (p *parser) parseUnary() (*formula.Formula, error) {
	switch p.peek().Type {
	case tokNot:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return formula.Not(operand), nil
	case tokBox:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return formula.Box(operand), nil
	case tokDiamond:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return formula.Diamond(operand), nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (*formula.Formula, error) {
	tok := p.peek()
	switch tok.Type {
	case tokIdent:
		p.next()
		return formula.Atom(tok.Lexeme), nil
	case tokLParen:
		p.next()
		inner, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		if p.peek().Type != tokRParen {
			return nil, &SyntaxError{Msg: "missing closing parenthesis", Pos: p.peek().Pos}
		}
		p.next()
		return inner, nil
	case tokEOF:
		return nil, &SyntaxError{Msg: "unexpected end of input", Pos: tok.Pos}
	default:
		return nil, &SyntaxError{Msg: fmt.Sprintf("unexpected token %q", tok.Lexeme), Pos: tok.Pos}
	}
}
