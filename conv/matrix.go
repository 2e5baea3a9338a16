package conv

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// rule converts a non null source value to the target category
type rule func(c *Converter, src reflect.Value, source, target *Category) (reflect.Value, error)

// matrix holds conversion rules indexed by source and target category kind, nil rule means unsupported pair
var matrix [kindCount][kindCount]rule

func init() {
	numeric := []Kind{KindSigned, KindUnsigned, KindFloat, KindDecimal, KindBool, KindChar, KindEnum}
	for _, source := range numeric {
		for _, target := range numeric {
			matrix[source][target] = numberToNumber
		}
		matrix[source][KindString] = toString
	}
	for target := KindSigned; target < KindNonConvertible; target++ {
		matrix[KindString][target] = fromString
	}

	matrix[KindGUID][KindGUID] = identity
	matrix[KindGUID][KindBytes] = guidToBytes
	matrix[KindGUID][KindString] = toString

	for _, source := range []Kind{KindDateTime, KindDateTimeOffset} {
		matrix[source][KindDateTime] = timeToTime
		matrix[source][KindDateTimeOffset] = timeToTime
		matrix[source][KindString] = toString
	}

	matrix[KindTimeInterval][KindTimeInterval] = identity
	matrix[KindTimeInterval][KindString] = toString

	matrix[KindURI][KindURI] = identity
	matrix[KindURI][KindString] = toString

	matrix[KindBytes][KindBytes] = bytesToBytes
	matrix[KindBytes][KindGUID] = bytesToGUID
	matrix[KindBytes][KindString] = toString

	matrix[KindType][KindType] = identity
	matrix[KindType][KindString] = toString
}

// Supports returns true if source kind converts to target kind for at least some values
func Supports(source, target Kind) bool {
	if source <= KindInvalid || source >= kindCount || target <= KindInvalid || target >= kindCount {
		return false
	}
	return matrix[source][target] != nil
}

func numberToNumber(c *Converter, src reflect.Value, source, target *Category) (reflect.Value, error) {
	return c.fromNumber(numberOf(src, source), target)
}

func (c *Converter) fromNumber(n number, target *Category) (reflect.Value, error) {
	ret := reflect.New(target.Type).Elem()
	switch target.Kind {
	case KindSigned:
		value, ok := n.asSigned(target.Bits)
		if !ok {
			return ret, outOfRangef("%v overflows %v", n, target.Type)
		}
		ret.SetInt(value)
	case KindUnsigned:
		value, ok := n.asUnsigned(target.Bits)
		if !ok {
			return ret, outOfRangef("%v overflows %v", n, target.Type)
		}
		ret.SetUint(value)
	case KindFloat:
		value, ok := n.asFloat(target.Bits)
		if !ok {
			return ret, outOfRangef("%v overflows %v", n, target.Type)
		}
		ret.SetFloat(value)
	case KindDecimal:
		value, ok := n.asDecimal()
		if !ok {
			return ret, outOfRangef("%v is not a finite number", n)
		}
		ret.Set(reflect.ValueOf(value))
	case KindBool:
		ret.SetBool(!n.isZero())
	case KindChar:
		value, ok := n.asChar()
		if !ok {
			return ret, outOfRangef("%v is not a valid character code point", n)
		}
		ret.SetInt(int64(value))
	case KindEnum:
		value, ok := n.asEnum(target)
		if !ok {
			return ret, outOfRangef("%v overflows %v", n, target.Type)
		}
		if c.options.StrictEnums && !c.isEnumMember(target.enum, value) {
			return ret, outOfRangef("%v is not a member of %v", n, target.Type)
		}
		if target.Unsigned {
			ret.SetUint(uint64(value))
		} else {
			ret.SetInt(value)
		}
	default:
		return ret, unsupported()
	}
	return ret, nil
}

func toString(c *Converter, src reflect.Value, source, target *Category) (reflect.Value, error) {
	text, err := c.formatString(src, source)
	if err != nil {
		return reflect.Value{}, err
	}
	ret := reflect.New(target.Type).Elem()
	ret.SetString(text)
	return ret, nil
}

func fromString(c *Converter, src reflect.Value, source, target *Category) (reflect.Value, error) {
	return c.parseString(src.String(), target)
}

func identity(c *Converter, src reflect.Value, source, target *Category) (reflect.Value, error) {
	ret := reflect.New(target.Type).Elem()
	ret.Set(src)
	return ret, nil
}

func timeToTime(c *Converter, src reflect.Value, source, target *Category) (reflect.Value, error) {
	var value time.Time
	switch actual := src.Interface().(type) {
	case time.Time:
		value = actual
	case DateTimeOffset:
		value = actual.Time
	}
	if target.Kind == KindDateTimeOffset {
		return reflect.ValueOf(DateTimeOffset{Time: value}), nil
	}
	return reflect.ValueOf(value), nil
}

func guidToBytes(c *Converter, src reflect.Value, source, target *Category) (reflect.Value, error) {
	guid := src.Interface().(uuid.UUID)
	data := make([]byte, len(guid))
	copy(data, guid[:])
	return reflect.ValueOf(data).Convert(target.Type), nil
}

func bytesToBytes(c *Converter, src reflect.Value, source, target *Category) (reflect.Value, error) {
	if src.IsNil() {
		return reflect.Zero(target.Type), nil
	}
	data := make([]byte, src.Len())
	copy(data, src.Bytes())
	return reflect.ValueOf(data).Convert(target.Type), nil
}

func bytesToGUID(c *Converter, src reflect.Value, source, target *Category) (reflect.Value, error) {
	guid, err := uuid.FromBytes(src.Bytes())
	if err != nil {
		return reflect.Value{}, outOfRange(err)
	}
	return reflect.ValueOf(guid), nil
}
