package units

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseError reports a malformed unit expression.
type ParseError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("units: cannot parse %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}

func (r *Registry) parse(expr string) (Unit, error) {
	s := strings.TrimSpace(expr)
	if s == "" || s == "dimensionless" {
		return Dimensionless(), nil
	}
	p := &exprParser{src: []rune(s), expr: s, reg: r}
	u, err := p.expression()
	if err != nil {
		return Unit{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Unit{}, p.errorf("unexpected %q", string(p.src[p.pos]))
	}
	u.Symbol = s
	return u, nil
}

type exprParser struct {
	src  []rune
	pos  int
	expr string
	reg  *Registry
}

func (p *exprParser) errorf(format string, args ...interface{}) error {
	return &ParseError{Expr: p.expr, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *exprParser) peek() rune {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *exprParser) expression() (Unit, error) {
	u, err := p.term()
	if err != nil {
		return Unit{}, err
	}
	for {
		switch p.peek() {
		case '*':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
				return Unit{}, p.errorf("exponent without operand")
			}
			p.pos++
			v, err := p.term()
			if err != nil {
				return Unit{}, err
			}
			u = u.mul(v)
		case '/':
			p.pos++
			v, err := p.term()
			if err != nil {
				return Unit{}, err
			}
			u = u.div(v)
		default:
			return u, nil
		}
	}
}

func (p *exprParser) term() (Unit, error) {
	u, err := p.factor()
	if err != nil {
		return Unit{}, err
	}
	switch p.peek() {
	case '^':
		p.pos++
	case '*':
		if p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
			p.pos += 2
		} else {
			return u, nil
		}
	default:
		return u, nil
	}
	n, err := p.integer()
	if err != nil {
		return Unit{}, err
	}
	return u.pow(n), nil
}

func (p *exprParser) integer() (int, error) {
	p.skipSpace()
	start := p.pos
	if p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
		p.pos++
	}
	for p.pos < len(p.src) && unicode.IsDigit(p.src[p.pos]) {
		p.pos++
	}
	n, err := strconv.Atoi(string(p.src[start:p.pos]))
	if err != nil {
		p.pos = start
		return 0, p.errorf("expected integer exponent")
	}
	return n, nil
}

func (p *exprParser) factor() (Unit, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		u, err := p.expression()
		if err != nil {
			return Unit{}, err
		}
		if p.peek() != ')' {
			return Unit{}, p.errorf("missing ')'")
		}
		p.pos++
		return u, nil
	case c == '1':
		p.pos++
		return Dimensionless(), nil
	case isSymbolRune(c):
		start := p.pos
		for p.pos < len(p.src) && isSymbolRune(p.src[p.pos]) {
			p.pos++
		}
		return p.reg.lookup(string(p.src[start:p.pos]))
	case c == 0:
		return Unit{}, p.errorf("unexpected end of expression")
	default:
		return Unit{}, p.errorf("unexpected %q", string(c))
	}
}

func isSymbolRune(c rune) bool {
	return unicode.IsLetter(c) || c == '_' || c == '°' || c == '%' || c == 'Ω' || c == 'µ'
}
