package linecalc

import "strconv"

// Option is an option for creating or cloning an Interpreter.
type Option interface {
	option(config) config
}

type (
	zeroopt  struct{}
	endopt   struct{}
	checkopt struct{}
	varopt   struct {
		name string
		val  int64
	}
	varsopt map[string]int64
)

// config holds the evaluation policy of an Interpreter.
type config struct {
	// zero indicates that an empty number literal evaluates to 0 instead of
	// being a syntax error.
	zero bool
	// end indicates that a statement must consume the entire line.
	end bool
	// checked indicates that integer overflow is an error instead of wrapping.
	checked bool
	// vars is the list of variable definitions to apply, in order.
	vars []Var
}

// EmptyNumberZero makes the parser evaluate a missing number literal as 0, so
// that e.g. "x =" assigns 0 to x and "2 +" is 2. By default, a position that
// needs a number and has no digits is a SyntaxError.
func EmptyNumberZero() Option {
	return zeroopt{}
}

func (zeroopt) option(c config) config {
	c.zero = true
	return c
}

// RequireEnd makes anything other than whitespace following a complete
// statement a SyntaxError. By default, trailing text is ignored, so that
// "3 + 4 ) )" evaluates to 7.
func RequireEnd() Option {
	return endopt{}
}

func (endopt) option(c config) config {
	c.end = true
	return c
}

// CheckOverflow makes arithmetic and number literals which overflow a signed
// 64-bit integer return an ArithmeticError. By default, results wrap around
// in two's complement.
func CheckOverflow() Option {
	return checkopt{}
}

func (checkopt) option(c config) config {
	c.checked = true
	return c
}

// SetVar sets the value of a variable. Panics if name is not a valid
// identifier.
func SetVar(name string, val int64) Option {
	if !IsIdent(name) {
		panic("linecalc: invalid variable name " + strconv.Quote(name))
	}
	return varopt{name, val}
}

func (o varopt) option(c config) config {
	c.vars = append(c.vars[:len(c.vars):len(c.vars)], Var{Name: o.name, Value: o.val})
	return c
}

// SetVars sets the values of any number of variables. Panics if any name is
// not a valid identifier.
func SetVars(vars map[string]int64) Option {
	for name := range vars {
		if !IsIdent(name) {
			panic("linecalc: invalid variable name " + strconv.Quote(name))
		}
	}
	return varsopt(vars)
}

func (o varsopt) option(c config) config {
	v := c.vars[:len(c.vars):len(c.vars)]
	for name, val := range o {
		v = append(v, Var{Name: name, Value: val})
	}
	c.vars = v
	return c
}

// apply applies options in order to a base configuration.
func apply(c config, opts []Option) config {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}
