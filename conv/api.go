package conv

import "reflect"

// Convert converts src to T with the default converter
func Convert[T any](src interface{}) (T, error) {
	return ConvertWith[T](defaultConverter, src)
}

// TryConvert converts src to T with the default converter, on failure it returns T zero value and false
func TryConvert[T any](src interface{}) (T, bool) {
	return TryConvertWith[T](defaultConverter, src)
}

// ConvertWith converts src to T with supplied converter
func ConvertWith[T any](c *Converter, src interface{}) (T, error) {
	var zero T
	value, err := c.convert(src, typeOf[T]())
	if err != nil {
		return zero, err
	}
	ret, _ := value.Interface().(T)
	return ret, nil
}

// TryConvertWith converts src to T with supplied converter, on failure it returns T zero value and false
func TryConvertWith[T any](c *Converter, src interface{}) (T, bool) {
	var zero T
	value, err := c.convert(src, typeOf[T]())
	if err != nil {
		return zero, false
	}
	ret, _ := value.Interface().(T)
	return ret, true
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
