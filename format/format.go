package format

import (
	"time"

	ftime "github.com/viant/jsonapi/format/time"
	"github.com/viant/tagly/format/text"
)

// FormatName returns Name in the tag case format
func (t *Tag) FormatName() string {
	if t.CaseFormat == "-" || t.CaseFormat == "" || t.Name == "" {
		return t.Name
	}
	from := text.DetectCaseFormat(t.Name)
	if !from.IsDefined() {
		from = text.CaseFormatUpperCamel
	}
	return from.Format(t.Name, text.CaseFormat(t.CaseFormat))
}

func (t *Tag) FormatTime(ts time.Time) string {
	return ftime.Format(t.TimeLayout, ts)
}

func (t *Tag) ParseTime(value string) (time.Time, error) {
	return ftime.Parse(t.TimeLayout, value)
}
