package linecalc

import (
	"errors"
	"math"
	"testing"
)

func testctx(opts ...Option) *parsectx {
	s := NewStore()
	s.Set("x", 5)
	s.Set("y", 7)
	s.Set("big", math.MaxInt64)
	s.Set("small", math.MinInt64)
	return &parsectx{vars: s, cfg: apply(config{}, opts)}
}

func TestParseIdent(t *testing.T) {
	cases := []struct {
		src  string
		want string
		off  int
		col  int
	}{
		{"x", "x", 1, 0},
		{"  abc def", "abc", 5, 0},
		{"a_1+2", "a_1", 3, 0},
		{"_x", "_x", 2, 0},
		{"1x", "1x", 2, 0},
		{"πr2", "πr2", 4, 0},
		{"", "", 0, 1},
		{"   ", "", 3, 4},
		{"+x", "", 0, 1},
		{" =", "", 1, 2},
	}
	for _, c := range cases {
		cur := newCursor(c.src)
		got, err := parseident(cur)
		if c.col != 0 {
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Errorf("%q: want SyntaxError, got %v", c.src, err)
				continue
			}
			if se.Col != c.col || se.Want != "identifier" {
				t.Errorf("%q: wrong error %#v", c.src, se)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, got)
		}
		if cur.off != c.off {
			t.Errorf("%q: stopped at offset %d, not %d", c.src, cur.off, c.off)
		}
	}
}

func TestParseNum(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts []Option
		want int64
		err  string
	}{
		{"zero", "0", nil, 0, ""},
		{"digits", "9876543210", nil, 9876543210, ""},
		{"space", "  42", nil, 42, ""},
		{"stop", "12+3", nil, 12, ""},
		{"leading-zeros", "007", nil, 7, ""},
		{"max", "9223372036854775807", nil, math.MaxInt64, ""},
		{"wrap", "9223372036854775808", nil, math.MinInt64, ""},
		{"checked-max", "9223372036854775807", []Option{CheckOverflow()}, math.MaxInt64, ""},
		{"checked-over", "9223372036854775808", []Option{CheckOverflow()}, 0, msgOverflow},
		{"checked-long", "99999999999999999999999", []Option{CheckOverflow()}, 0, msgOverflow},
		{"empty", "", nil, 0, "number"},
		{"empty-op", "+", nil, 0, "number"},
		{"arabic-indic", "٣", nil, 0, "number"},
		{"empty-zero", "", []Option{EmptyNumberZero()}, 0, ""},
		{"op-zero", "*", []Option{EmptyNumberZero()}, 0, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parsenum(newCursor(c.src), testctx(c.opts...))
			switch c.err {
			case "":
				if err != nil {
					t.Fatalf("%q: unexpected error %v", c.src, err)
				}
				if got != c.want {
					t.Errorf("%q: want %d, got %d", c.src, c.want, got)
				}
			case msgOverflow:
				var ae *ArithmeticError
				if !errors.As(err, &ae) || ae.Msg != msgOverflow {
					t.Errorf("%q: want overflow, got %v", c.src, err)
				}
			default:
				var se *SyntaxError
				if !errors.As(err, &se) || se.Want != c.err {
					t.Errorf("%q: want SyntaxError for %s, got %v", c.src, c.err, err)
				}
			}
		})
	}
}

func TestParseExpr(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"1", 1},
		{"x", 5},
		{"(x)", 5},
		{"((((y))))", 7},
		{"1+2", 3},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 3 - 2", 5},
		{"10 - (3 - 2)", 9},
		{"100 / 10 / 5", 2},
		{"100 / (10 / 5)", 50},
		{"7 / 2", 3},
		{"(0 - 7) / 2", -3},
		{"7 / (0 - 2)", -3},
		{"x*y - x/y", 35},
		{"  x\t*\ty  ", 35},
		{"1 2", 1},
		{"3x", 3},
		{"3 + 4 ) ) )", 7},
	}
	for _, c := range cases {
		got, err := parseexpr(newCursor(c.src), testctx())
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: want %d, got %d", c.src, c.want, got)
		}
	}
}

func TestParseExprErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts []Option
		err  InputError
	}{
		{"unclosed", "(3 + 4", nil, &SyntaxError{Col: 7, Want: "')'"}},
		{"unclosed-space", "(3 + 4   ", nil, &SyntaxError{Col: 10, Want: "')'"}},
		{"unclosed-nested", "((1)", nil, &SyntaxError{Col: 5, Want: "')'"}},
		{"wrong-close", "(1 + 2 3)", nil, &SyntaxError{Col: 8, Want: "')'"}},
		{"empty-parens", "()", nil, &SyntaxError{Col: 2, Want: "number"}},
		{"dangling-op", "1 +", nil, &SyntaxError{Col: 4, Want: "number"}},
		{"unary-minus", "-5", nil, &SyntaxError{Col: 1, Want: "number"}},
		{"double-minus", "3 - -2", nil, &SyntaxError{Col: 5, Want: "number"}},
		{"undefined", "z + 1", nil, &NameError{Col: 1, Name: "z"}},
		{"undefined-rhs", "x * (1 + zz)", nil, &NameError{Col: 10, Name: "zz"}},
		{"div-zero", "4 / 0", nil, &ArithmeticError{Col: 3, Op: "/", Msg: msgDivZero}},
		{"div-zero-expr", "x / (y - 7)", nil, &ArithmeticError{Col: 3, Op: "/", Msg: msgDivZero}},
		{"add-over", "big + 1", []Option{CheckOverflow()}, &ArithmeticError{Col: 5, Op: "+", Msg: msgOverflow}},
		{"sub-over", "small - 1", []Option{CheckOverflow()}, &ArithmeticError{Col: 7, Op: "-", Msg: msgOverflow}},
		{"sub-over-neg", "0 - small", []Option{CheckOverflow()}, &ArithmeticError{Col: 3, Op: "-", Msg: msgOverflow}},
		{"mul-over", "big * 2", []Option{CheckOverflow()}, &ArithmeticError{Col: 5, Op: "*", Msg: msgOverflow}},
		{"mul-over-neg", "small * (0 - 1)", []Option{CheckOverflow()}, &ArithmeticError{Col: 7, Op: "*", Msg: msgOverflow}},
		{"div-over", "small / (0 - 1)", []Option{CheckOverflow()}, &ArithmeticError{Col: 7, Op: "/", Msg: msgOverflow}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseexpr(newCursor(c.src), testctx(c.opts...))
			if err == nil {
				t.Fatalf("%q: no error", c.src)
			}
			switch want := c.err.(type) {
			case *SyntaxError:
				got, ok := err.(*SyntaxError)
				if !ok || *got != *want {
					t.Errorf("%q: want %#v, got %#v", c.src, want, err)
				}
			case *NameError:
				got, ok := err.(*NameError)
				if !ok || *got != *want {
					t.Errorf("%q: want %#v, got %#v", c.src, want, err)
				}
			case *ArithmeticError:
				got, ok := err.(*ArithmeticError)
				if !ok || *got != *want {
					t.Errorf("%q: want %#v, got %#v", c.src, want, err)
				}
			}
		})
	}
}

func TestArithWraps(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"big + 1", math.MinInt64},
		{"small - 1", math.MaxInt64},
		{"big * 2", -2},
		{"small / (0 - 1)", math.MinInt64},
		{"0 - small", math.MinInt64},
	}
	for _, c := range cases {
		got, err := parseexpr(newCursor(c.src), testctx())
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: want %d, got %d", c.src, c.want, got)
		}
	}
}

func TestArithChecked(t *testing.T) {
	p := testctx(CheckOverflow())
	cases := []struct {
		op   rune
		l, r int64
		want int64
	}{
		{'+', math.MaxInt64 - 1, 1, math.MaxInt64},
		{'+', math.MinInt64, math.MaxInt64, -1},
		{'-', math.MinInt64 + 1, 1, math.MinInt64},
		{'-', -1, math.MaxInt64, math.MinInt64},
		{'*', math.MinInt64, 1, math.MinInt64},
		{'*', -1, math.MaxInt64, -math.MaxInt64},
		{'*', 0, math.MinInt64, 0},
		{'*', 1 << 31, 1 << 31, 1 << 62},
		{'/', math.MinInt64, 1, math.MinInt64},
		{'/', -7, 2, -3},
	}
	for _, c := range cases {
		got, err := p.arith(c.op, 1, c.l, c.r)
		if err != nil {
			t.Errorf("%d %c %d: unexpected error %v", c.l, c.op, c.r, err)
			continue
		}
		if got != c.want {
			t.Errorf("%d %c %d: want %d, got %d", c.l, c.op, c.r, c.want, got)
		}
	}
}

func TestParseEnd(t *testing.T) {
	cases := []struct {
		src  string
		opts []Option
		col  int
	}{
		{"1", nil, 0},
		{"1 )", nil, 0},
		{"1", []Option{RequireEnd()}, 0},
		{"1   ", []Option{RequireEnd()}, 0},
		{"1 )", []Option{RequireEnd()}, 3},
		{"1 2", []Option{RequireEnd()}, 3},
	}
	for _, c := range cases {
		cur := newCursor(c.src)
		p := testctx(c.opts...)
		if _, err := parseexpr(cur, p); err != nil {
			t.Fatalf("%q: unexpected error %v", c.src, err)
		}
		err := p.end(cur)
		if c.col == 0 {
			if err != nil {
				t.Errorf("%q: unexpected error %v", c.src, err)
			}
			continue
		}
		se, ok := err.(*SyntaxError)
		if !ok || se.Col != c.col || se.Want != "end of input" {
			t.Errorf("%q: want end of input error at %d, got %#v", c.src, c.col, err)
		}
	}
}
