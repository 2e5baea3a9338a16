package conv

import (
	"encoding/base64"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	ftime "github.com/viant/jsonapi/format/time"
)

// formatString returns canonical text of a value, parseString(formatString(v)) reproduces v
func (c *Converter) formatString(value reflect.Value, category *Category) (string, error) {
	switch category.Kind {
	case KindString:
		return value.String(), nil
	case KindSigned:
		return strconv.FormatInt(value.Int(), 10), nil
	case KindUnsigned:
		return strconv.FormatUint(value.Uint(), 10), nil
	case KindFloat:
		return strconv.FormatFloat(value.Float(), 'f', -1, category.Bits), nil
	case KindDecimal:
		return value.Interface().(decimal.Decimal).String(), nil
	case KindBool:
		return strconv.FormatBool(value.Bool()), nil
	case KindChar:
		r := value.Int()
		if r < 0 || r > utf8.MaxRune || !utf8.ValidRune(rune(r)) {
			return "", outOfRangef("%v is not a valid character code point", r)
		}
		return string(rune(r)), nil
	case KindEnum:
		if category.Unsigned {
			return c.formatEnum(category.enum, int64(value.Uint()), true), nil
		}
		return c.formatEnum(category.enum, value.Int(), false), nil
	case KindGUID:
		return value.Interface().(uuid.UUID).String(), nil
	case KindDateTime:
		return ftime.Format(c.options.timeLayout(), value.Interface().(time.Time)), nil
	case KindDateTimeOffset:
		return ftime.Format(c.options.timeLayout(), value.Interface().(DateTimeOffset).Time), nil
	case KindTimeInterval:
		return time.Duration(value.Int()).String(), nil
	case KindURI:
		u := value.Interface().(url.URL)
		return u.String(), nil
	case KindBytes:
		return base64.StdEncoding.EncodeToString(value.Bytes()), nil
	case KindType:
		rType, _ := value.Interface().(reflect.Type)
		if rType == nil {
			return "", outOfRangef("nil type reference")
		}
		return rType.String(), nil
	}
	return "", unsupported()
}

// parseString parses text with the target category grammar
func (c *Converter) parseString(text string, target *Category) (reflect.Value, error) {
	ret := reflect.New(target.Type).Elem()
	trimmed := strings.TrimSpace(text)
	switch target.Kind {
	case KindString:
		ret.SetString(text)
	case KindSigned:
		value, err := strconv.ParseInt(trimmed, 10, target.Bits)
		if err != nil {
			return ret, numericError(err)
		}
		ret.SetInt(value)
	case KindUnsigned:
		value, err := parseUnsigned(trimmed, target.Bits)
		if err != nil {
			return ret, err
		}
		ret.SetUint(value)
	case KindFloat:
		value, err := strconv.ParseFloat(trimmed, target.Bits)
		if err != nil {
			return ret, numericError(err)
		}
		ret.SetFloat(value)
	case KindDecimal:
		value, err := decimal.NewFromString(trimmed)
		if err != nil {
			return ret, malformed(err)
		}
		ret.Set(reflect.ValueOf(value))
	case KindBool:
		value, err := strconv.ParseBool(trimmed)
		if err != nil {
			return ret, malformed(err)
		}
		ret.SetBool(value)
	case KindChar:
		if utf8.RuneCountInString(text) != 1 {
			return ret, malformedf("expected single character, but had %d", utf8.RuneCountInString(text))
		}
		r, size := utf8.DecodeRuneInString(text)
		if r == utf8.RuneError && size == 1 {
			return ret, malformedf("invalid utf-8 character")
		}
		ret.SetInt(int64(r))
	case KindEnum:
		return c.parseEnum(trimmed, target)
	case KindGUID:
		value, err := uuid.Parse(trimmed)
		if err != nil {
			return ret, malformed(err)
		}
		ret.Set(reflect.ValueOf(value))
	case KindDateTime, KindDateTimeOffset:
		value, err := ftime.Parse(c.options.dateLayout(), trimmed)
		if err != nil {
			return ret, malformed(err)
		}
		if target.Kind == KindDateTimeOffset {
			ret.Set(reflect.ValueOf(DateTimeOffset{Time: value}))
			break
		}
		ret.Set(reflect.ValueOf(value))
	case KindTimeInterval:
		value, err := parseDuration(trimmed)
		if err != nil {
			return ret, err
		}
		ret.SetInt(int64(value))
	case KindURI:
		if trimmed == "" {
			return ret, malformedf("empty uri")
		}
		value, err := url.Parse(trimmed)
		if err != nil {
			return ret, malformed(err)
		}
		ret.Set(reflect.ValueOf(*value))
	case KindBytes:
		value, err := base64.StdEncoding.DecodeString(trimmed)
		if err != nil {
			return ret, malformed(err)
		}
		ret.Set(reflect.ValueOf(value).Convert(target.Type))
	case KindType:
		rType, ok := c.types.Get(trimmed)
		if !ok {
			return ret, malformedf("unknown type: %q", trimmed)
		}
		ret.Set(reflect.ValueOf(rType))
	default:
		return ret, unsupported()
	}
	return ret, nil
}

func (c *Converter) parseEnum(text string, target *Category) (reflect.Value, error) {
	ret := reflect.New(target.Type).Elem()
	value, ok := target.enum.lookup(text)
	if !ok {
		var n number
		if target.Unsigned {
			u, err := parseUnsigned(text, target.Bits)
			if err != nil {
				if errors.Is(err, ErrMalformedInput) {
					return ret, malformedf("%q is neither numeric nor one of %v members: %v", text, target.Type, strings.Join(target.enum.members, ", "))
				}
				return ret, err
			}
			n = number{kind: KindUnsigned, u: u}
		} else {
			i, err := strconv.ParseInt(text, 10, target.Bits)
			if err != nil {
				if errors.Is(err, strconv.ErrSyntax) {
					return ret, malformedf("%q is neither numeric nor one of %v members: %v", text, target.Type, strings.Join(target.enum.members, ", "))
				}
				return ret, numericError(err)
			}
			n = number{kind: KindSigned, i: i}
		}
		return c.fromNumber(n, target)
	}
	if target.Unsigned {
		ret.SetUint(uint64(value))
	} else {
		ret.SetInt(value)
	}
	return ret, nil
}

func parseUnsigned(text string, bits int) (uint64, error) {
	value, err := strconv.ParseUint(text, 10, bits)
	if err == nil {
		return value, nil
	}
	if strings.HasPrefix(text, "-") {
		if _, sErr := strconv.ParseInt(text, 10, 64); sErr == nil || errors.Is(sErr, strconv.ErrRange) {
			return 0, outOfRangef("negative value %v", text)
		}
	}
	return 0, numericError(err)
}

func numericError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return outOfRange(err)
	}
	return malformed(err)
}

// intervalExpr matches [-][d.]hh:mm[:ss[.fffffffff]]
var intervalExpr = regexp.MustCompile(`^(-)?(?:(\d+)\.)?(\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?$`)

func parseDuration(text string) (time.Duration, error) {
	if value, err := time.ParseDuration(text); err == nil {
		return value, nil
	}
	match := intervalExpr.FindStringSubmatch(text)
	if match == nil {
		return 0, malformedf("invalid time interval: %q", text)
	}
	days, err := strconv.ParseInt("0"+match[2], 10, 64)
	if err != nil {
		return 0, numericError(err)
	}
	hours, _ := strconv.Atoi(match[3])
	minutes, _ := strconv.Atoi(match[4])
	seconds, _ := strconv.Atoi("0" + match[5])
	if hours > 23 || minutes > 59 || seconds > 59 {
		return 0, outOfRangef("invalid time interval: %q", text)
	}
	nanos := 0
	if fraction := match[6]; fraction != "" {
		nanos, _ = strconv.Atoi(fraction + strings.Repeat("0", 9-len(fraction)))
	}
	if days > int64(math.MaxInt64/(24*time.Hour)) {
		return 0, outOfRangef("time interval overflow: %q", text)
	}
	value := time.Duration(days)*24*time.Hour + time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second + time.Duration(nanos)
	if value < 0 {
		return 0, outOfRangef("time interval overflow: %q", text)
	}
	if match[1] == "-" {
		value = -value
	}
	return value, nil
}
