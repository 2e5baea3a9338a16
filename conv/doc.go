// Package conv provides a deterministic, category-driven value converter.
//
// Every Go type is classified once into a Category (signed, unsigned, float, decimal, boolean,
// character, enum, string, GUID, date/time, date/time with offset, time interval, URI, byte sequence,
// type reference or non-convertible). Conversions dispatch on the (source, target) category pair
// through a fixed matrix, pointers represent nullable values, and every conversion is available
// with two calling conventions: error returning (Convert, ConvertTo) and boolean (TryConvert, TryConvertTo).
// Both conventions share one core function and therefore always agree.
package conv
