package linecalc

import "math"

// line = assignment | expr
// assignment = ident '=' expr
//
// A line starting with an identifier is an assignment if '=' follows the
// identifier. If the end of the line or an operator follows instead, the
// identifier begins a bare expression. Anything else is an error.
//
// expr = term { ('+' | '-') term }
// term = factor { ('*' | '/') factor }
// factor = '(' expr ')' | ident | num
// ident = letter { letter | digit | '_' }
// num = digit { digit }
//
// Each rule evaluates as it parses; there is no syntax tree. Whitespace may
// appear between any two tokens.

// parsectx holds general data for parsing a line.
type parsectx struct {
	// vars is the store that variable references read from.
	vars *Store
	// cfg is the evaluation policy.
	cfg config
}

// parseexpr parses and evaluates a left-associative chain of additions and
// subtractions.
func parseexpr(c *cursor, p *parsectx) (int64, error) {
	l, err := parseterm(c, p)
	if err != nil {
		return 0, err
	}
	return parseexprtail(c, p, l)
}

// parseexprtail continues an expression whose first term evaluated to l.
func parseexprtail(c *cursor, p *parsectx, l int64) (int64, error) {
	for {
		c.skipSpace()
		op := c.peek()
		if op != '+' && op != '-' {
			return l, nil
		}
		col := c.col
		c.advance()
		r, err := parseterm(c, p)
		if err != nil {
			return 0, err
		}
		if l, err = p.arith(op, col, l, r); err != nil {
			return 0, err
		}
	}
}

// parseterm parses and evaluates a left-associative chain of multiplications
// and divisions.
func parseterm(c *cursor, p *parsectx) (int64, error) {
	l, err := parsefactor(c, p)
	if err != nil {
		return 0, err
	}
	return parsetermtail(c, p, l)
}

// parsetermtail continues a term whose first factor evaluated to l.
func parsetermtail(c *cursor, p *parsectx, l int64) (int64, error) {
	for {
		c.skipSpace()
		op := c.peek()
		if op != '*' && op != '/' {
			return l, nil
		}
		col := c.col
		c.advance()
		r, err := parsefactor(c, p)
		if err != nil {
			return 0, err
		}
		if l, err = p.arith(op, col, l, r); err != nil {
			return 0, err
		}
	}
}

// parsefactor parses and evaluates a parenthesized expression, a variable
// reference, or a number.
func parsefactor(c *cursor, p *parsectx) (int64, error) {
	c.skipSpace()
	switch r := c.peek(); {
	case r == '(':
		c.advance()
		v, err := parseexpr(c, p)
		if err != nil {
			return 0, err
		}
		c.skipSpace()
		if c.peek() != ')' {
			return 0, &SyntaxError{Col: c.col, Want: "')'"}
		}
		c.advance()
		return v, nil
	case isLetter(r):
		col := c.col
		name, err := parseident(c)
		if err != nil {
			return 0, err
		}
		return p.lookup(name, col)
	default:
		return parsenum(c, p)
	}
}

// lookup gets the value of a variable referenced at col.
func (p *parsectx) lookup(name string, col int) (int64, error) {
	v, ok := p.vars.Get(name)
	if !ok {
		return 0, &NameError{Col: col, Name: name}
	}
	return v, nil
}

// parseident scans a maximal run of letters, digits, and underscores. It does
// not check that the first rune is a letter; callers only use it where one is.
func parseident(c *cursor) (string, error) {
	c.skipSpace()
	start, col := c.off, c.col
	for isIdentRune(c.peek()) {
		c.advance()
	}
	if c.off == start {
		return "", &SyntaxError{Col: col, Want: "identifier"}
	}
	return c.src[start:c.off], nil
}

// parsenum scans a maximal run of decimal digits. If there are none, the
// result is 0 when p allows empty numbers and a SyntaxError otherwise.
func parsenum(c *cursor, p *parsectx) (int64, error) {
	c.skipSpace()
	col := c.col
	var n int64
	dig := false
	for isDigit(c.peek()) {
		d := int64(c.advance() - '0')
		if p.cfg.checked && n > (math.MaxInt64-d)/10 {
			return 0, &ArithmeticError{Col: col, Msg: msgOverflow}
		}
		n = n*10 + d
		dig = true
	}
	if !dig && !p.cfg.zero {
		return 0, &SyntaxError{Col: col, Want: "number"}
	}
	return n, nil
}

// arith applies a binary operator. col is the position of the operator, for
// errors.
func (p *parsectx) arith(op rune, col int, l, r int64) (int64, error) {
	var v int64
	over := false
	switch op {
	case '+':
		v = l + r
		over = (l > 0 && r > 0 && v < 0) || (l < 0 && r < 0 && v >= 0)
	case '-':
		v = l - r
		over = (l >= 0 && r < 0 && v < 0) || (l < 0 && r > 0 && v >= 0)
	case '*':
		v = l * r
		over = (l == -1 && r == math.MinInt64) || (r == -1 && l == math.MinInt64) || (r != 0 && v/r != l)
	case '/':
		if r == 0 {
			return 0, &ArithmeticError{Col: col, Op: "/", Msg: msgDivZero}
		}
		// MinInt64 / -1 wraps to MinInt64.
		v = l / r
		over = l == math.MinInt64 && r == -1
	default:
		panic("linecalc: invalid operator " + string(op))
	}
	if over && p.cfg.checked {
		return 0, &ArithmeticError{Col: col, Op: string(op), Msg: msgOverflow}
	}
	return v, nil
}

// end checks that nothing but whitespace remains on the line, if p requires
// that.
func (p *parsectx) end(c *cursor) error {
	if !p.cfg.end {
		return nil
	}
	c.skipSpace()
	if c.peek() != eof {
		return &SyntaxError{Col: c.col, Want: "end of input"}
	}
	return nil
}
