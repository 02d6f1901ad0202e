package fixedpoint

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxScale bounds the scale accepted by Parse and Pow10.
const MaxScale = 77

var (
	ErrSyntax    = errors.New("fixedpoint: invalid decimal")
	ErrNegative  = errors.New("fixedpoint: negative value")
	ErrPrecision = errors.New("fixedpoint: fractional digits exceed scale")
	ErrScale     = errors.New("fixedpoint: scale out of range")
)

// Value is an arbitrary-precision integer holding a decimal amount scaled by
// 10^scale. The scale is not stored; callers keep track of it.
// ⭐ Operations never mutate the receiver or the argument.
type Value struct {
	i *big.Int
}

// Zero returns the zero value
func Zero() Value {
	return Value{}
}

// FromInt64 wraps a raw, already-scaled integer
func FromInt64(n int64) Value {
	return Value{i: big.NewInt(n)}
}

// FromBigInt copies a raw, already-scaled integer
func FromBigInt(n *big.Int) Value {
	if n == nil {
		return Value{}
	}
	return Value{i: new(big.Int).Set(n)}
}

// Pow10 returns 10^n
func Pow10(n int) (Value, error) {
	if n < 0 || n > MaxScale {
		return Value{}, fmt.Errorf("%w: 10^%d", ErrScale, n)
	}
	return Value{i: new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)}, nil
}

// Parse converts a non-negative decimal string into an integer scaled by
// 10^scale. Extra fractional digits are an error unless they are zeros.
//
// Example: Parse("1.5", 18) == 1500000000000000000
func Parse(s string, scale int) (Value, error) {
	if scale < 0 || scale > MaxScale {
		return Value{}, fmt.Errorf("%w: %d", ErrScale, scale)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty string", ErrSyntax)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	return FromDecimal(d, scale)
}

// FromDecimal scales an already parsed decimal
func FromDecimal(d decimal.Decimal, scale int) (Value, error) {
	if scale < 0 || scale > MaxScale {
		return Value{}, fmt.Errorf("%w: %d", ErrScale, scale)
	}
	if d.IsNegative() {
		return Value{}, fmt.Errorf("%w: %s", ErrNegative, d.String())
	}

	shifted := d.Shift(int32(scale))
	if !shifted.IsInteger() {
		return Value{}, fmt.Errorf("%w: %s at scale %d", ErrPrecision, d.String(), scale)
	}

	return Value{i: shifted.BigInt()}, nil
}

// FromFloat scales the shortest decimal representation of f
// (1.1 is read as "1.1", not as its binary expansion).
func FromFloat(f float64, scale int) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, f)
	}
	return FromDecimal(decimal.NewFromFloat(f), scale)
}

func (v Value) big() *big.Int {
	if v.i == nil {
		return new(big.Int)
	}
	return v.i
}

// Add returns v + o
func (v Value) Add(o Value) Value {
	return Value{i: new(big.Int).Add(v.big(), o.big())}
}

// Mul returns v * o
func (v Value) Mul(o Value) Value {
	return Value{i: new(big.Int).Mul(v.big(), o.big())}
}

// Quo returns v / o truncated toward zero. It panics if o is zero.
func (v Value) Quo(o Value) Value {
	return Value{i: new(big.Int).Quo(v.big(), o.big())}
}

// Cmp compares v and o and returns -1, 0 or +1
func (v Value) Cmp(o Value) int {
	return v.big().Cmp(o.big())
}

// Sign returns -1, 0 or +1
func (v Value) Sign() int {
	return v.big().Sign()
}

// IsZero reports whether v == 0
func (v Value) IsZero() bool {
	return v.Sign() == 0
}

// BigInt returns a copy of the raw scaled integer
func (v Value) BigInt() *big.Int {
	return new(big.Int).Set(v.big())
}

// Decimal converts v back to a decimal, interpreting it at the given scale
func (v Value) Decimal(scale int) decimal.Decimal {
	return decimal.NewFromBigInt(v.big(), int32(-scale))
}

// Format renders v as a decimal string at the given scale
func (v Value) Format(scale int) string {
	return v.Decimal(scale).String()
}

// String renders the raw scaled integer
func (v Value) String() string {
	return v.big().String()
}
