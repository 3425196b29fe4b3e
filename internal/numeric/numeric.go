// --- trycatch/internal/numeric/numeric.go ---

// Package numeric holds the int/float operands used by the division demo.
// Two ints divide with floor semantics; any float operand promotes the
// division to true float division.
package numeric

import (
	"math"
	"strconv"
	"strings"

	"github.com/v4rm4n/trycatch/internal/fault"
)

type Number struct {
	i       int64
	f       float64
	isFloat bool
}

func Int(v int64) Number     { return Number{i: v} }
func Float(v float64) Number { return Number{f: v, isFloat: true} }

func (n Number) IsFloat() bool { return n.isFloat }

// Float64 returns n as a float regardless of its representation.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// Int64 is only meaningful when IsFloat is false.
func (n Number) Int64() int64 { return n.i }

func (n Number) IsZero() bool {
	if n.isFloat {
		return n.f == 0
	}
	return n.i == 0
}

func Divide(a, b Number) (Number, error) {
	if !a.isFloat && !b.isFloat {
		if b.i == 0 {
			return Number{}, fault.New(fault.ZeroDivisionError, "integer division or modulo by zero")
		}
		if a.i == math.MinInt64 && b.i == -1 {
			return Number{}, fault.New(fault.OverflowError, "integer division result too large")
		}
		return Int(floorDiv(a.i, b.i)), nil
	}
	if b.IsZero() {
		return Number{}, fault.New(fault.ZeroDivisionError, "float division by zero")
	}
	return Float(a.Float64() / b.Float64()), nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (n Number) String() string {
	if !n.isFloat {
		return strconv.FormatInt(n.i, 10)
	}
	switch {
	case math.IsNaN(n.f):
		return "nan"
	case math.IsInf(n.f, 1):
		return "inf"
	case math.IsInf(n.f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(n.f, 'g', 12, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
