package conv

import (
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/viant/jsonapi/internal/cache"
)

// Converter provides type conversion functionality, it is safe for concurrent use
type Converter struct {
	options       Options
	categories    *cache.SyncMap[reflect.Type, *Category]
	enums         *cache.SyncMap[reflect.Type, *enumType]
	types         *cache.SyncMap[string, reflect.Type]
	customConvMap *cache.SyncMap[typeKey, ConversionFunc]
}

// ConversionFunc defines a custom conversion function, returned value has to be assignable to target
type ConversionFunc func(src interface{}, target reflect.Type, opts Options) (interface{}, error)

type typeKey struct {
	srcType  reflect.Type
	destType reflect.Type
}

var defaultConverter = NewConverter(DefaultOptions())

// Default returns package level converter used by Convert and TryConvert
func Default() *Converter {
	return defaultConverter
}

// NewConverter creates a new type converter with the provided options
func NewConverter(options Options) *Converter {
	ret := &Converter{
		options:       options,
		categories:    cache.NewSyncMap[reflect.Type, *Category](),
		enums:         cache.NewSyncMap[reflect.Type, *enumType](),
		types:         cache.NewSyncMap[string, reflect.Type](),
		customConvMap: cache.NewSyncMap[typeKey, ConversionFunc](),
	}
	for _, rType := range builtinTypes {
		ret.RegisterType(rType)
	}
	return ret
}

var builtinTypes = []reflect.Type{
	reflect.TypeOf(false), stringType, bytesType, charType,
	reflect.TypeOf(int(0)), reflect.TypeOf(int8(0)), reflect.TypeOf(int16(0)), reflect.TypeOf(int32(0)), reflect.TypeOf(int64(0)),
	reflect.TypeOf(uint(0)), reflect.TypeOf(uint8(0)), reflect.TypeOf(uint16(0)), reflect.TypeOf(uint32(0)), reflect.TypeOf(uint64(0)),
	reflect.TypeOf(float32(0)), reflect.TypeOf(float64(0)),
	reflect.TypeOf(decimal.Decimal{}), reflect.TypeOf(uuid.UUID{}), reflect.TypeOf(url.URL{}),
	reflect.TypeOf(time.Time{}), reflect.TypeOf(time.Duration(0)), dateTimeOffsetType, typeRefType,
}

// Options returns converter options
func (c *Converter) Options() Options {
	return c.options
}

// WithOptions returns a converter with adjusted options sharing registered enums, types and conversions
func (c *Converter) WithOptions(mutate func(o *Options)) *Converter {
	ret := *c
	mutate(&ret.options)
	return &ret
}

// RegisterConversion registers a custom conversion function between source and destination types
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Put(typeKey{srcType, destType}, fn)
}

// RegisterType registers type reference under its go name and supplied aliases
func (c *Converter) RegisterType(rType reflect.Type, names ...string) {
	if rType == nil {
		return
	}
	c.types.Put(rType.String(), rType)
	for _, name := range names {
		c.types.Put(name, rType)
	}
}

// Convert converts the source value to the destination pointer value
func (c *Converter) Convert(src interface{}, dest interface{}) error {
	destValue, err := destinationOf(dest)
	if err != nil {
		return err
	}
	value, err := c.convert(src, destValue.Type().Elem())
	if err != nil {
		return err
	}
	destValue.Elem().Set(value)
	return nil
}

// TryConvert converts the source value to the destination pointer value,
// on failure it sets destination to its zero value and returns false
func (c *Converter) TryConvert(src interface{}, dest interface{}) bool {
	destValue, err := destinationOf(dest)
	if err != nil {
		return false
	}
	value, err := c.convert(src, destValue.Type().Elem())
	if err != nil {
		destValue.Elem().Set(reflect.Zero(destValue.Type().Elem()))
		return false
	}
	destValue.Elem().Set(value)
	return true
}

// ConvertTo converts the source value to target type
func (c *Converter) ConvertTo(src interface{}, target reflect.Type) (interface{}, error) {
	value, err := c.convert(src, target)
	if err != nil {
		return nil, err
	}
	return value.Interface(), nil
}

// TryConvertTo converts the source value to target type, on failure it returns target zero value and false
func (c *Converter) TryConvertTo(src interface{}, target reflect.Type) (interface{}, bool) {
	value, err := c.convert(src, target)
	if err != nil {
		if target == nil {
			return nil, false
		}
		return reflect.Zero(target).Interface(), false
	}
	return value.Interface(), true
}

func destinationOf(dest interface{}) (reflect.Value, error) {
	if dest == nil {
		return reflect.Value{}, errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return reflect.Value{}, errors.Errorf("destination must be a pointer, but had %T", dest)
	}
	if destValue.IsNil() {
		return reflect.Value{}, errors.New("destination pointer cannot be nil")
	}
	return destValue, nil
}

// convert is the only conversion path, both calling conventions derive from its outcome
func (c *Converter) convert(src interface{}, target reflect.Type) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, &Error{Reason: ErrUnsupportedConversion, Value: src, Source: nullCategory}
	}
	if src != nil {
		if fn, ok := c.customConvMap.Get(typeKey{reflect.TypeOf(src), target}); ok {
			return c.convertCustom(fn, src, target)
		}
	}
	srcValue, source, isNull := c.sourceOf(src)
	base, nullable := target, false
	if target.Kind() == reflect.Ptr {
		base, nullable = target.Elem(), true
	}
	dest := c.CategoryOf(base)
	if dest.Kind == KindNonConvertible || source.Kind == KindNonConvertible {
		return reflect.Value{}, asError(unsupported(), src, source, target)
	}
	if isNull {
		if nullable {
			return reflect.Zero(target), nil
		}
		return reflect.Value{}, asError(&Error{Reason: ErrNullValue}, src, source, target)
	}
	convert := matrix[source.Kind][dest.Kind]
	if convert == nil {
		return reflect.Value{}, asError(unsupported(), src, source, target)
	}
	value, err := convert(c, srcValue, source, dest)
	if err != nil {
		return reflect.Value{}, asError(err, src, source, target)
	}
	if !nullable {
		return value, nil
	}
	ptr := reflect.New(base)
	ptr.Elem().Set(value)
	return ptr, nil
}

// sourceOf unwraps nullable source, typed nil pointers keep their category
func (c *Converter) sourceOf(src interface{}) (reflect.Value, *Category, bool) {
	if src == nil {
		return reflect.Value{}, nullCategory, true
	}
	if rType, ok := src.(reflect.Type); ok {
		value := reflect.ValueOf(&rType).Elem()
		return value, c.CategoryOf(typeRefType), false
	}
	value := reflect.ValueOf(src)
	if value.Kind() != reflect.Ptr {
		return value, c.CategoryOf(value.Type()), false
	}
	category := c.CategoryOf(value.Type().Elem())
	if value.IsNil() {
		return value, category, true
	}
	return value.Elem(), category, false
}

func (c *Converter) convertCustom(fn ConversionFunc, src interface{}, target reflect.Type) (reflect.Value, error) {
	source := c.CategoryOf(reflect.TypeOf(src))
	result, err := fn(src, target, c.options)
	if err != nil {
		return reflect.Value{}, asError(err, src, source, target)
	}
	if result == nil {
		return reflect.Zero(target), nil
	}
	value := reflect.ValueOf(result)
	if !value.Type().AssignableTo(target) {
		return reflect.Value{}, asError(unsupported(), src, source, target)
	}
	ret := reflect.New(target).Elem()
	ret.Set(value)
	return ret, nil
}
