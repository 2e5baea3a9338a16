package conv

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// number is the common representation of every numeric category value
type number struct {
	kind Kind //KindSigned, KindUnsigned, KindFloat or KindDecimal
	bits int
	i    int64
	u    uint64
	f    float64
	d    decimal.Decimal
}

func numberOf(value reflect.Value, category *Category) number {
	switch category.Kind {
	case KindSigned, KindChar:
		return number{kind: KindSigned, i: value.Int()}
	case KindUnsigned:
		return number{kind: KindUnsigned, u: value.Uint()}
	case KindEnum:
		if category.Unsigned {
			return number{kind: KindUnsigned, u: value.Uint()}
		}
		return number{kind: KindSigned, i: value.Int()}
	case KindFloat:
		return number{kind: KindFloat, bits: category.Bits, f: value.Float()}
	case KindDecimal:
		return number{kind: KindDecimal, d: value.Interface().(decimal.Decimal)}
	case KindBool:
		if value.Bool() {
			return number{kind: KindSigned, i: 1}
		}
		return number{kind: KindSigned}
	}
	return number{}
}

func (n number) String() string {
	switch n.kind {
	case KindSigned:
		return big.NewInt(n.i).String()
	case KindUnsigned:
		return new(big.Int).SetUint64(n.u).String()
	case KindFloat:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	case KindDecimal:
		return n.d.String()
	}
	return "NaN"
}

func (n number) isZero() bool {
	switch n.kind {
	case KindSigned:
		return n.i == 0
	case KindUnsigned:
		return n.u == 0
	case KindFloat:
		return n.f == 0
	case KindDecimal:
		return n.d.IsZero()
	}
	return true
}

// integer returns integral value of n, fractions are rounded half to even
func (n number) integer() (*big.Int, bool) {
	switch n.kind {
	case KindSigned:
		return big.NewInt(n.i), true
	case KindUnsigned:
		return new(big.Int).SetUint64(n.u), true
	case KindFloat:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return nil, false
		}
		ret, _ := big.NewFloat(math.RoundToEven(n.f)).Int(nil)
		return ret, true
	case KindDecimal:
		return n.d.RoundBank(0).BigInt(), true
	}
	return nil, false
}

func (n number) asSigned(bits int) (int64, bool) {
	switch n.kind {
	case KindSigned:
		if bits < 64 && (n.i < -(1<<(bits-1)) || n.i > (1<<(bits-1))-1) {
			return 0, false
		}
		return n.i, true
	case KindUnsigned:
		if n.u > uint64(1)<<(bits-1)-1 {
			return 0, false
		}
		return int64(n.u), true
	}
	value, ok := n.integer()
	if !ok || !value.IsInt64() {
		return 0, false
	}
	return number{kind: KindSigned, i: value.Int64()}.asSigned(bits)
}

func (n number) asUnsigned(bits int) (uint64, bool) {
	limit := uint64(math.MaxUint64)
	if bits < 64 {
		limit = uint64(1)<<bits - 1
	}
	switch n.kind {
	case KindSigned:
		if n.i < 0 || uint64(n.i) > limit {
			return 0, false
		}
		return uint64(n.i), true
	case KindUnsigned:
		if n.u > limit {
			return 0, false
		}
		return n.u, true
	}
	value, ok := n.integer()
	if !ok || !value.IsUint64() {
		return 0, false
	}
	return number{kind: KindUnsigned, u: value.Uint64()}.asUnsigned(bits)
}

func (n number) asFloat(bits int) (float64, bool) {
	var ret float64
	switch n.kind {
	case KindSigned:
		ret = float64(n.i)
	case KindUnsigned:
		ret = float64(n.u)
	case KindFloat:
		ret = n.f
	case KindDecimal:
		ret, _ = n.d.Float64()
		if math.IsInf(ret, 0) {
			return 0, false
		}
	default:
		return 0, false
	}
	if bits == 32 && !math.IsInf(ret, 0) && !math.IsNaN(ret) && math.Abs(ret) > math.MaxFloat32 {
		return 0, false
	}
	return ret, true
}

func (n number) asDecimal() (decimal.Decimal, bool) {
	switch n.kind {
	case KindSigned:
		return decimal.NewFromInt(n.i), true
	case KindUnsigned:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(n.u), 0), true
	case KindFloat:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return decimal.Decimal{}, false
		}
		if n.bits == 32 {
			return decimal.NewFromFloat32(float32(n.f)), true
		}
		return decimal.NewFromFloat(n.f), true
	case KindDecimal:
		return n.d, true
	}
	return decimal.Decimal{}, false
}

func (n number) asChar() (rune, bool) {
	value, ok := n.asSigned(32)
	if !ok || !utf8.ValidRune(rune(value)) {
		return 0, false
	}
	return rune(value), true
}

// asEnum returns enum raw value, unsigned enum values are stored bit-for-bit in int64
func (n number) asEnum(category *Category) (int64, bool) {
	if category.Unsigned {
		u, ok := n.asUnsigned(category.Bits)
		return int64(u), ok
	}
	return n.asSigned(category.Bits)
}
