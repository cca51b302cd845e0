// Package linecalc implements a line-at-a-time integer calculator with
// variables.
//
// Each line is either an assignment, "x = 2 * (y + 1)", or a bare expression,
// "x / 3". Expressions use + - * / on signed 64-bit integers with the usual
// precedence, left associativity, and parentheses. Division truncates toward
// zero. There is no unary minus; write "0 - x".
//
// Lines are evaluated as they are parsed, and variables persist in the
// Interpreter from one line to the next. A line that fails leaves every
// variable as it was.
package linecalc
