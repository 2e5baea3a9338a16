package conv

import (
	"fmt"
	"reflect"
	"strconv"
)

// Kind represents conversion category kind
type Kind int

const (
	KindInvalid Kind = iota
	KindSigned
	KindUnsigned
	KindFloat
	KindDecimal
	KindBool
	KindChar
	KindEnum
	KindString
	KindGUID
	KindDateTime
	KindDateTimeOffset
	KindTimeInterval
	KindURI
	KindBytes
	KindType
	KindNonConvertible
	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:        "invalid",
	KindSigned:         "signed",
	KindUnsigned:       "unsigned",
	KindFloat:          "float",
	KindDecimal:        "decimal",
	KindBool:           "boolean",
	KindChar:           "character",
	KindEnum:           "enum",
	KindString:         "string",
	KindGUID:           "guid",
	KindDateTime:       "datetime",
	KindDateTimeOffset: "datetimeoffset",
	KindTimeInterval:   "timeinterval",
	KindURI:            "uri",
	KindBytes:          "bytes",
	KindType:           "type",
	KindNonConvertible: "nonconvertible",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsNumeric returns true for kinds sharing the numeric conversion rules
func (k Kind) IsNumeric() bool {
	switch k {
	case KindSigned, KindUnsigned, KindFloat, KindDecimal, KindBool, KindChar, KindEnum:
		return true
	}
	return false
}

// Category represents classified go type
type Category struct {
	Kind Kind
	//Bits numeric width, for enum the width of the underlying integer
	Bits int
	//Unsigned is set for unsigned integers and enums with unsigned underlying type
	Unsigned bool
	Type     reflect.Type
	enum     *enumType
}

func (c *Category) String() string {
	switch c.Kind {
	case KindSigned, KindUnsigned, KindFloat:
		return fmt.Sprintf("%v%v(%v)", c.Kind, c.Bits, c.Type)
	case KindNonConvertible, KindInvalid:
		return fmt.Sprintf("%v(%v)", c.Kind, c.Type)
	}
	if c.Type == nil {
		return c.Kind.String()
	}
	return fmt.Sprintf("%v(%v)", c.Kind, c.Type)
}

func (c *Category) isNumeric() bool {
	return c.Kind.IsNumeric()
}

var nullCategory = &Category{Kind: KindInvalid}

// CategoryOf returns category of supplied type
func (c *Converter) CategoryOf(t reflect.Type) *Category {
	if t == nil {
		return nullCategory
	}
	return c.categories.GetOrCompute(t, c.classify)
}

func (c *Converter) classify(t reflect.Type) *Category {
	if enum := c.lookupEnum(t); enum != nil {
		return &Category{Kind: KindEnum, Bits: intBits(t), Unsigned: isUnsignedKind(t.Kind()), Type: t, enum: enum}
	}
	switch t {
	case charType:
		return &Category{Kind: KindChar, Bits: 32, Type: t}
	case decimalType:
		return &Category{Kind: KindDecimal, Type: t}
	case guidType:
		return &Category{Kind: KindGUID, Type: t}
	case timeType:
		return &Category{Kind: KindDateTime, Type: t}
	case dateTimeOffsetType:
		return &Category{Kind: KindDateTimeOffset, Type: t}
	case durationType:
		return &Category{Kind: KindTimeInterval, Type: t}
	case urlType:
		return &Category{Kind: KindURI, Type: t}
	case typeRefType:
		return &Category{Kind: KindType, Type: t}
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Category{Kind: KindSigned, Bits: intBits(t), Type: t}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return &Category{Kind: KindUnsigned, Bits: intBits(t), Unsigned: true, Type: t}
	case reflect.Float32, reflect.Float64:
		return &Category{Kind: KindFloat, Bits: t.Bits(), Type: t}
	case reflect.Bool:
		return &Category{Kind: KindBool, Type: t}
	case reflect.String:
		return &Category{Kind: KindString, Type: t}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return &Category{Kind: KindBytes, Type: t}
		}
	}
	return &Category{Kind: KindNonConvertible, Type: t}
}

func intBits(t reflect.Type) int {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return t.Bits()
	}
	return 0
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return isUnsignedKind(k)
}

func isUnsignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
