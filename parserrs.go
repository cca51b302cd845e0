package linecalc

import "strconv"

// SyntaxError is an error indicating that the parser did not find something it
// required at some position. It implements InputError.
type SyntaxError struct {
	// Col is the position at which the missing token was expected.
	Col int
	// Want describes what was expected, e.g. "identifier" or "')'".
	Want string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "expected "+err.Want)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// ArithmeticError is an error from an operation with no integer result, e.g.
// division by zero. It implements InputError.
type ArithmeticError struct {
	// Col is the position of the operator, or of the start of a number
	// literal that overflowed.
	Col int
	// Op is the operator that failed. It is empty for number literals.
	Op string
	// Msg describes the failure.
	Msg string
}

func (err *ArithmeticError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *ArithmeticError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*ArithmeticError)(nil)
)

const (
	msgDivZero  = "division by zero"
	msgOverflow = "integer overflow"
)
