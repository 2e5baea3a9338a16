package conv

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/tagly/format/text"
)

// Integer represents integer types that can back an enum
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type enumType struct {
	rType  reflect.Type
	names  map[int64]string
	values map[string]int64
	//ordered member names, used to keep error messages deterministic
	members []string
}

func (e *enumType) name(value int64) (string, bool) {
	name, ok := e.names[value]
	return name, ok
}

func (e *enumType) lookup(name string) (int64, bool) {
	value, ok := e.values[foldName(name)]
	return value, ok
}

// foldName makes member lookup insensitive to letter case and word separators
func foldName(name string) string {
	name = strings.TrimSpace(name)
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		switch r {
		case '_', '-', ' ', '.':
			continue
		}
		sb.WriteRune(r)
	}
	return strings.ToLower(sb.String())
}

// RegisterEnum registers integer based enum type with its members (value to name).
// Numbers and strings convert to a registered enum by value or member name, enum converts to string by member name.
func (c *Converter) RegisterEnum(rType reflect.Type, members map[int64]string) error {
	if rType == nil || !isIntegerKind(rType.Kind()) {
		return errors.Errorf("invalid enum type %v: expected integer based type", rType)
	}
	enum := &enumType{
		rType:  rType,
		names:  make(map[int64]string, len(members)),
		values: make(map[string]int64, len(members)),
	}
	for value, name := range members {
		if name == "" {
			return errors.Errorf("invalid enum %v member: empty name for value %v", rType, value)
		}
		key := foldName(name)
		if prev, ok := enum.values[key]; ok && prev != value {
			return errors.Errorf("invalid enum %v: ambiguous member name %v", rType, name)
		}
		if _, err := strconv.ParseInt(key, 10, 64); err == nil {
			return errors.Errorf("invalid enum %v: numeric member name %v", rType, name)
		}
		enum.values[key] = value
		enum.names[value] = name
		enum.members = append(enum.members, name)
	}
	sort.Strings(enum.members)
	c.enums.Put(rType, enum)
	c.categories.Put(rType, c.classify(rType))
	return nil
}

// RegisterEnum registers T enum members
func RegisterEnum[T Integer](c *Converter, members map[T]string) error {
	values := make(map[int64]string, len(members))
	for value, name := range members {
		values[int64(value)] = name
	}
	var zero T
	return c.RegisterEnum(reflect.TypeOf(zero), values)
}

func (c *Converter) lookupEnum(rType reflect.Type) *enumType {
	enum, _ := c.enums.Get(rType)
	return enum
}

func (c *Converter) formatEnum(enum *enumType, value int64, unsigned bool) string {
	if name, ok := enum.name(value); ok {
		if c.options.EnumCaseFormat.IsDefined() {
			return text.DetectCaseFormat(name).Format(name, c.options.EnumCaseFormat)
		}
		return name
	}
	if unsigned {
		return strconv.FormatUint(uint64(value), 10)
	}
	return strconv.FormatInt(value, 10)
}

func (c *Converter) isEnumMember(enum *enumType, value int64) bool {
	_, ok := enum.names[value]
	return ok
}
