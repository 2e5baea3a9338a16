package conv

import (
	"time"

	ftime "github.com/viant/jsonapi/format/time"
	"github.com/viant/tagly/format/text"
)

// DefaultTimeLayout is the layout used to format date/time values when no layout is specified
const DefaultTimeLayout = time.RFC3339Nano

// Options contains configuration for the converter
type Options struct {
	// DateLayout specifies the layout for time parsing, empty layout enables layout detection
	DateLayout string
	// DateFormat specifies ISO date format (i.e. YYYY-MM-DD) used when DateLayout is empty
	DateFormat string
	// TimeLayout specifies the layout for time formatting
	TimeLayout string
	// StrictEnums rejects numbers not matching any registered enum member
	StrictEnums bool
	// EnumCaseFormat controls enum member name case when converting to string, undefined keeps registered names
	EnumCaseFormat text.CaseFormat
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		TimeLayout: DefaultTimeLayout,
	}
}

func (o *Options) dateLayout() string {
	if o.DateLayout != "" {
		return o.DateLayout
	}
	if o.DateFormat != "" {
		return ftime.DateFormatToTimeLayout(o.DateFormat)
	}
	return ""
}

func (o *Options) timeLayout() string {
	if o.TimeLayout != "" {
		return o.TimeLayout
	}
	return DefaultTimeLayout
}
