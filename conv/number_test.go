package conv

import (
	"math"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConverter_NumericRange(t *testing.T) {
	converter := newTestConverter()

	var testCases = []struct {
		description string
		src         interface{}
		target      reflect.Type
		expect      interface{}
		reason      error
	}{
		{description: "narrowing in range", src: int64(-128), target: reflect.TypeOf(int8(0)), expect: int8(-128)},
		{description: "narrowing overflow", src: int64(300), target: reflect.TypeOf(int8(0)), reason: ErrValueOutOfRange},
		{description: "narrowing underflow", src: int64(-129), target: reflect.TypeOf(int8(0)), reason: ErrValueOutOfRange},
		{description: "negative to unsigned", src: -1, target: reflect.TypeOf(uint(0)), reason: ErrValueOutOfRange},
		{description: "unsigned max to signed", src: uint64(math.MaxUint64), target: reflect.TypeOf(int64(0)), reason: ErrValueOutOfRange},
		{description: "unsigned to signed in range", src: uint64(math.MaxInt64), target: reflect.TypeOf(int64(0)), expect: int64(math.MaxInt64)},
		{description: "uint16 max", src: 65535, target: reflect.TypeOf(uint16(0)), expect: uint16(65535)},
		{description: "uint16 overflow", src: 65536, target: reflect.TypeOf(uint16(0)), reason: ErrValueOutOfRange},
		{description: "float rounds half to even down", src: 2.5, target: reflect.TypeOf(0), expect: 2},
		{description: "float rounds half to even up", src: 3.5, target: reflect.TypeOf(0), expect: 4},
		{description: "negative float", src: -42.4, target: reflect.TypeOf(int32(0)), expect: int32(-42)},
		{description: "float NaN to int", src: math.NaN(), target: reflect.TypeOf(0), reason: ErrValueOutOfRange},
		{description: "float Inf to int", src: math.Inf(1), target: reflect.TypeOf(0), reason: ErrValueOutOfRange},
		{description: "float beyond int64", src: 9.3e18, target: reflect.TypeOf(int64(0)), reason: ErrValueOutOfRange},
		{description: "float 2^63 to int64", src: math.Ldexp(1, 63), target: reflect.TypeOf(int64(0)), reason: ErrValueOutOfRange},
		{description: "float 2^63 to uint64", src: math.Ldexp(1, 63), target: reflect.TypeOf(uint64(0)), expect: uint64(1) << 63},
		{description: "float64 beyond float32", src: 1e40, target: reflect.TypeOf(float32(0)), reason: ErrValueOutOfRange},
		{description: "float64 inf to float32", src: math.Inf(-1), target: reflect.TypeOf(float32(0)), expect: float32(math.Inf(-1))},
		{description: "float NaN to decimal", src: math.NaN(), target: reflect.TypeOf(decimal.Decimal{}), reason: ErrValueOutOfRange},
		{description: "float NaN to bool", src: math.NaN(), target: reflect.TypeOf(false), expect: true},
		{description: "decimal rounds half to even", src: decimal.RequireFromString("42.5"), target: reflect.TypeOf(int8(0)), expect: int8(42)},
		{description: "decimal overflow", src: decimal.RequireFromString("1e30"), target: reflect.TypeOf(int64(0)), reason: ErrValueOutOfRange},
		{description: "decimal to float", src: decimal.RequireFromString("0.5"), target: reflect.TypeOf(float64(0)), expect: 0.5},
		{description: "zero to bool", src: uint8(0), target: reflect.TypeOf(false), expect: false},
		{description: "false to int", src: false, target: reflect.TypeOf(int16(0)), expect: int16(0)},
		{description: "code point", src: 0x1F600, target: reflect.TypeOf(Char(0)), expect: Char('😀')},
		{description: "beyond unicode", src: 0x110000, target: reflect.TypeOf(Char(0)), reason: ErrValueOutOfRange},
		{description: "surrogate", src: 0xD800, target: reflect.TypeOf(Char(0)), reason: ErrValueOutOfRange},
		{description: "negative code point", src: -1, target: reflect.TypeOf(Char(0)), reason: ErrValueOutOfRange},
		{description: "char to byte overflow", src: Char('ł'), target: reflect.TypeOf(byte(0)), reason: ErrValueOutOfRange},
		{description: "enum non member value", src: 1 << 40, target: reflect.TypeOf(PrimaryColor(0)), expect: PrimaryColor(1 << 40)},
		{description: "rune is numeric", src: rune('*'), target: reflect.TypeOf(""), expect: "42"},
	}

	for _, testCase := range testCases {
		actual, err := converter.ConvertTo(testCase.src, testCase.target)
		tried, ok := converter.TryConvertTo(testCase.src, testCase.target)
		assert.Equal(t, err == nil, ok, testCase.description)
		if testCase.reason != nil {
			assert.ErrorIs(t, err, testCase.reason, testCase.description)
			assert.Equal(t, reflect.Zero(testCase.target).Interface(), tried, testCase.description)
			continue
		}
		if assert.Nil(t, err, testCase.description) {
			assert.Equal(t, testCase.expect, actual, testCase.description)
		}
	}
}

func TestNumber_Decimal(t *testing.T) {
	converter := newTestConverter()
	actual, err := ConvertWith[decimal.Decimal](converter, float32(0.1))
	assert.Nil(t, err)
	assert.Equal(t, "0.1", actual.String())

	actual, err = ConvertWith[decimal.Decimal](converter, uint64(math.MaxUint64))
	assert.Nil(t, err)
	assert.Equal(t, "18446744073709551615", actual.String())

	back, err := ConvertWith[uint64](converter, actual)
	assert.Nil(t, err)
	assert.Equal(t, uint64(math.MaxUint64), back)
}

func TestConverter_NumericRange_Message(t *testing.T) {
	converter := newTestConverter()
	_, err := ConvertWith[int](converter, math.NaN())
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	assert.NotContains(t, err.Error(), "PANIC")
	assert.Contains(t, err.Error(), "NaN overflows int")

	_, err = ConvertWith[int8](converter, 1e3)
	assert.Contains(t, err.Error(), "1000 overflows int8")
}
