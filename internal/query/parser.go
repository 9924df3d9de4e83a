package query

import "fmt"

// Parse parses a full query string into a Tree per the grammar in §4.1. It
// fails with a *ParseError if any token is unexpected or the input is not
// fully consumed.
//
// Grounded on the teacher's hand-written UniversalParser
// (internal/parser/universal.go in the example pack): like it, this is a
// small, static grammar with no operator precedence or left recursion, so a
// straightforward recursive-descent reader over a token stream is all that
// is needed.
func Parse(input string) (Tree, error) {
	p := &parser{lex: newLexer(input), input: input}
	if err := p.advance(); err != nil {
		return nil, err
	}

	tree, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected %s after query", p.describe(p.tok))
	}
	return tree, nil
}

type parser struct {
	lex   *lexer
	input string
	tok   token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{
		Input:  p.input,
		Line:   p.tok.line,
		Column: p.tok.col,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (p *parser) describe(t token) string {
	if t.kind == tokEOF {
		return "end of input"
	}
	if t.text != "" {
		return fmt.Sprintf("%q", t.text)
	}
	return "token"
}

// query = expression , { ";" , expression } ;
func (p *parser) parseQuery() (Tree, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	tree := Tree{expr}
	for p.tok.kind == tokSemicolon {
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		tree = append(tree, expr)
	}
	return tree, nil
}

// expression = assertion , { "," , assertion } ;
func (p *parser) parseExpression() (Expression, error) {
	a, err := p.parseAssertion()
	if err != nil {
		return nil, err
	}
	expr := Expression{a}
	for p.tok.kind == tokComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		a, err := p.parseAssertion()
		if err != nil {
			return nil, err
		}
		expr = append(expr, a)
	}
	return expr, nil
}

// assertion = field , [ op , ( literal | set ) ] ;
func (p *parser) parseAssertion() (Assertion, error) {
	selector, attr, err := p.parseField()
	if err != nil {
		return Assertion{}, err
	}

	switch p.tok.kind {
	case tokEq, tokNeq, tokIn, tokNot:
		op, err := p.parseOp()
		if err != nil {
			return Assertion{}, err
		}
		val, err := p.parseLiteralOrSet()
		if err != nil {
			return Assertion{}, err
		}
		return Assertion{Selector: selector, Attr: attr, HasValue: true, Op: op, Value: val}, nil
	default:
		return Assertion{Selector: selector, Attr: attr, HasValue: false}, nil
	}
}

// field = identifier , ":" , identifier ;
func (p *parser) parseField() (selector, attr string, err error) {
	if p.tok.kind != tokIdent {
		return "", "", p.errorf("expected a selector identifier, got %s", p.describe(p.tok))
	}
	selector = p.tok.text
	if err := p.advance(); err != nil {
		return "", "", err
	}
	if p.tok.kind != tokColon {
		return "", "", p.errorf("expected ':' after %q, got %s", selector, p.describe(p.tok))
	}
	if err := p.advance(); err != nil {
		return "", "", err
	}
	if p.tok.kind != tokIdent {
		return "", "", p.errorf("expected an attribute identifier after ':', got %s", p.describe(p.tok))
	}
	attr = p.tok.text
	if err := p.advance(); err != nil {
		return "", "", err
	}
	return selector, attr, nil
}

// op = "==" | "!=" | "in" | "not" , "in" ;
func (p *parser) parseOp() (Op, error) {
	switch p.tok.kind {
	case tokEq:
		if err := p.advance(); err != nil {
			return "", err
		}
		return Eq, nil
	case tokNeq:
		if err := p.advance(); err != nil {
			return "", err
		}
		return Neq, nil
	case tokIn:
		if err := p.advance(); err != nil {
			return "", err
		}
		return In, nil
	case tokNot:
		if err := p.advance(); err != nil {
			return "", err
		}
		if p.tok.kind != tokIn {
			return "", p.errorf("expected 'in' after 'not', got %s", p.describe(p.tok))
		}
		if err := p.advance(); err != nil {
			return "", err
		}
		return NotIn, nil
	default:
		return "", p.errorf("expected an operator, got %s", p.describe(p.tok))
	}
}

// literal | set
func (p *parser) parseLiteralOrSet() (Value, error) {
	if p.tok.kind == tokLBrace {
		set, err := p.parseSet()
		if err != nil {
			return Value{}, err
		}
		return Value{IsSet: true, Set: set}, nil
	}
	lit, err := p.parseLiteral()
	if err != nil {
		return Value{}, err
	}
	return Value{One: lit}, nil
}

// set = "{" , literal , { "," , literal } , "}" ;
func (p *parser) parseSet() ([]Literal, error) {
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}
	lit, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	set := []Literal{lit}
	for p.tok.kind == tokComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		set = append(set, lit)
	}
	if p.tok.kind != tokRBrace {
		return nil, p.errorf("expected '}' to close set, got %s", p.describe(p.tok))
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return set, nil
}

// literal = string | number ;
func (p *parser) parseLiteral() (Literal, error) {
	switch p.tok.kind {
	case tokString:
		lit := Literal{Str: p.tok.text}
		if err := p.advance(); err != nil {
			return Literal{}, err
		}
		return lit, nil
	case tokNumber:
		lit := Literal{IsInt: true, Int: p.tok.number}
		if err := p.advance(); err != nil {
			return Literal{}, err
		}
		return lit, nil
	default:
		return Literal{}, p.errorf("expected a string or number literal, got %s", p.describe(p.tok))
	}
}
