package linecalc

import (
	"strconv"
)

// Interpreter evaluates lines against a set of variables which persists
// across lines. The zero value is an interpreter with no variables and the
// default options. It is not safe to use an Interpreter concurrently; use Clone
// to create independent sessions.
type Interpreter struct {
	vars *Store
	cfg  config
}

// Result is the outcome of evaluating one line.
type Result struct {
	// Name is the assigned variable. It is empty unless Assign is true.
	Name string
	// Value is the assigned value or the value of the expression.
	Value int64
	// Assign indicates that the line was an assignment.
	Assign bool
}

// String formats the result as "name = value" for assignments or
// "Result: value" for expressions.
func (r Result) String() string {
	v := strconv.FormatInt(r.Value, 10)
	if r.Assign {
		return r.Name + " = " + v
	}
	return "Result: " + v
}

// New creates an interpreter with no variables defined, other than those set
// by options.
func New(opts ...Option) *Interpreter {
	var it Interpreter
	return it.Clone(opts...)
}

// Clone creates a copy of an interpreter and applies options to it. Variables
// assigned in either interpreter afterward are not visible in the other.
func (it *Interpreter) Clone(opts ...Option) *Interpreter {
	cfg := it.cfg
	cfg.vars = nil
	cfg = apply(cfg, opts)
	n := Interpreter{vars: it.store().Clone(), cfg: cfg}
	for _, v := range cfg.vars {
		n.vars.Set(v.Name, v.Value)
	}
	n.cfg.vars = nil
	return &n
}

// Line evaluates one line. If the line is an assignment "name = expr", the
// variable is set to the value of the expression. Otherwise, it is a bare
// expression. A line starting with a name must continue with '=', an
// operator, or nothing. On error, no variable changes.
//
// Unless the interpreter was created with RequireEnd, text following a
// complete statement is ignored. So, "3x = 5" evaluates to 3.
func (it *Interpreter) Line(line string) (Result, error) {
	c := newCursor(line)
	p := parsectx{vars: it.store(), cfg: it.cfg}
	c.skipSpace()
	if !isLetter(c.peek()) {
		v, err := parseexpr(c, &p)
		if err != nil {
			return Result{}, err
		}
		if err := p.end(c); err != nil {
			return Result{}, err
		}
		return Result{Value: v}, nil
	}
	start := c.col
	name, err := parseident(c)
	if err != nil {
		return Result{}, err
	}
	c.skipSpace()
	switch c.peek() {
	case '=':
		c.advance()
	case eof, '+', '-', '*', '/':
		// The identifier is the first factor of a bare expression.
		v, err := p.lookup(name, start)
		if err != nil {
			return Result{}, err
		}
		if v, err = parsetermtail(c, &p, v); err != nil {
			return Result{}, err
		}
		if v, err = parseexprtail(c, &p, v); err != nil {
			return Result{}, err
		}
		if err := p.end(c); err != nil {
			return Result{}, err
		}
		return Result{Value: v}, nil
	default:
		return Result{}, &SyntaxError{Col: c.col, Want: "'='"}
	}
	v, err := parseexpr(c, &p)
	if err != nil {
		return Result{}, err
	}
	if err := p.end(c); err != nil {
		return Result{}, err
	}
	it.store().Set(name, v)
	return Result{Name: name, Value: v, Assign: true}, nil
}

// store returns the interpreter's variables, creating them if needed.
func (it *Interpreter) store() *Store {
	if it.vars == nil {
		it.vars = NewStore()
	}
	return it.vars
}

// Set sets the value of a variable. Returns it for chaining. Panics if name is
// not a valid identifier.
func (it *Interpreter) Set(name string, val int64) *Interpreter {
	if !IsIdent(name) {
		panic("linecalc: invalid variable name " + strconv.Quote(name))
	}
	it.store().Set(name, val)
	return it
}

// Lookup returns the value of a variable and whether it is defined.
func (it *Interpreter) Lookup(name string) (int64, bool) {
	return it.store().Get(name)
}

// Vars returns all defined variables in name order.
func (it *Interpreter) Vars() []Var {
	s := it.store()
	r := make([]Var, 0, s.Len())
	s.Each(func(v Var) bool {
		r = append(r, v)
		return true
	})
	return r
}

// EvalString is a shortcut to evaluate a single line with a new interpreter.
// If src is an assignment, the result is the assigned value.
func EvalString(src string, opts ...Option) (int64, error) {
	r, err := New(opts...).Line(src)
	if err != nil {
		return 0, err
	}
	return r.Value, nil
}

// NameError is an error from a reference to a variable that has not been
// assigned. It implements InputError.
type NameError struct {
	// Col is the position of the reference.
	Col int
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "undefined variable: "+err.Name)
}

func (err *NameError) Pos() int {
	return err.Col
}
