package conv

import (
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Char represents a single unicode character; rune is an alias of int32 and classifies as a signed number
type Char rune

// String returns character text
func (c Char) String() string {
	return string(rune(c))
}

// DateTimeOffset represents a point in time with an explicit UTC offset carried by its location
type DateTimeOffset struct {
	time.Time
}

// NewDateTimeOffset creates a DateTimeOffset with a fixed zone of the supplied offset
func NewDateTimeOffset(t time.Time, offset time.Duration) DateTimeOffset {
	return DateTimeOffset{Time: t.In(time.FixedZone("", int(offset/time.Second)))}
}

// Offset returns offset from UTC
func (d DateTimeOffset) Offset() time.Duration {
	_, offset := d.Zone()
	return time.Duration(offset) * time.Second
}

// Equal reports whether both represent the same instant and offset
func (d DateTimeOffset) Equal(other DateTimeOffset) bool {
	return d.Time.Equal(other.Time) && d.Offset() == other.Offset()
}

var (
	charType           = reflect.TypeOf(Char(0))
	dateTimeOffsetType = reflect.TypeOf(DateTimeOffset{})
	timeType           = reflect.TypeOf(time.Time{})
	durationType       = reflect.TypeOf(time.Duration(0))
	decimalType        = reflect.TypeOf(decimal.Decimal{})
	guidType           = reflect.TypeOf(uuid.UUID{})
	urlType            = reflect.TypeOf(url.URL{})
	bytesType          = reflect.TypeOf([]byte{})
	stringType         = reflect.TypeOf("")
	typeRefType        = reflect.TypeOf((*reflect.Type)(nil)).Elem()
)
