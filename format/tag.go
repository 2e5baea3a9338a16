package format

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
	ftime "github.com/viant/jsonapi/format/time"
	"github.com/viant/parsly"
)

const (
	TagName = "format"
)

// Tag represents attribute format settings
type Tag struct {
	Name       string //attribute name, formatted with CaseFormat when defined
	CaseFormat string
	DateFormat string //ISO style date format, i.e. YYYY-MM-DD
	TimeLayout string //go time layout, derived from DateFormat when not set
	Omitempty  bool
	Ignore     bool
}

func (t *Tag) update(key string, value string, strictMode bool) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "dateformat", "isodateformat":
		t.DateFormat = value
		t.TimeLayout = ftime.DateFormatToTimeLayout(value)
	case "timelayout", "datelayout":
		t.TimeLayout = value
	case "caseformat":
		t.CaseFormat = value
	case "omitempty":
		t.Omitempty = true
	case "ignore", "-", "transient":
		t.Ignore = true
	default:
		if strictMode {
			return errors.Errorf("unknown format key: %v", key)
		}
	}
	return nil
}

// merge copies settings not defined by t from fallback
func (t *Tag) merge(fallback *Tag) {
	if t.Name == "" {
		t.Name = fallback.Name
	}
	if t.CaseFormat == "" {
		t.CaseFormat = fallback.CaseFormat
	}
	if t.TimeLayout == "" {
		t.DateFormat = fallback.DateFormat
		t.TimeLayout = fallback.TimeLayout
	}
	t.Omitempty = t.Omitempty || fallback.Omitempty
	t.Ignore = t.Ignore || fallback.Ignore
}

// Parse parses format tag, names define fallback tags (i.e. json) consulted for settings format tag does not define.
// Fallback tags follow json convention where the first bare value is a name.
func Parse(tag reflect.StructTag, names ...string) (*Tag, error) {
	ret := &Tag{}
	names = append([]string{TagName}, names...)
	for i, name := range names {
		encoded := tag.Get(name)
		if encoded == "" {
			continue
		}
		fallback := i > 0
		if encoded == "-" {
			ret.Ignore = true
			continue
		}
		candidate := &Tag{}
		cursor := parsly.NewCursor("", []byte(encoded), 0)
		for j := 0; cursor.Pos < len(cursor.Input); j++ {
			key, value := matchPair(cursor)
			if key == "" {
				if fallback && j == 0 {
					candidate.Name = strings.TrimSpace(value)
					continue
				}
				key, value = value, ""
			}
			if err := candidate.update(strings.TrimSpace(key), value, !fallback); err != nil {
				return nil, errors.Wrapf(err, "invalid %v tag", name)
			}
		}
		if fallback {
			ret.merge(candidate)
			continue
		}
		*ret = *candidate
	}
	return ret, nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	match := cursor.MatchAny(scopeBlockMatcher, commaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAny(commaTerminatorMatcher)
	case commaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if index := strings.Index(value, "="); index != -1 {
		key = value[:index]
		value = value[index+1:]
	}
	return key, value
}
