package time

import (
	"fmt"
	"strings"
	"time"
)

// isoDateFormatReplacer translates ISO style date format tokens into Go time layout fragments.
// Longer tokens are listed first so that a replacement never consumes part of a longer token.
var isoDateFormatReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MMMM", "January",
	"MMM", "Jan",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSSSSSSSS", ".999999999",
	".SSSSSS", ".999999",
	".SSS", ".999",
	".SS", ".99",
	".S", ".9",
	"-hh", "Z07",
	"Z", "Z07:00",
)

// layoutCandidates is the ordered list of layouts tried when no layout is supplied
var layoutCandidates = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DateFormatToTimeLayout converts ISO date format (i.e. YYYY-MM-DD hh:mm:ss) to Go time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return isoDateFormatReplacer.Replace(dateFormat)
}

// DetectLayout returns the first candidate layout matching value or empty string
func DetectLayout(value string) string {
	for _, layout := range layoutCandidates {
		if _, err := time.Parse(layout, value); err == nil {
			return layout
		}
	}
	return ""
}

// Parse parses value with layout, values without zone information are assumed UTC.
// When layout is empty it is detected from the value.
func Parse(layout, value string) (time.Time, error) {
	if layout == "" {
		if layout = DetectLayout(value); layout == "" {
			return time.Time{}, fmt.Errorf("unsupported time format: %q", value)
		}
		return time.ParseInLocation(layout, value, time.UTC)
	}
	//adjust T fragment
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err == nil {
		return t, nil
	}
	//explicit layouts tolerate a precision mismatch between layout and value
	if len(value) > len(layout) {
		if t, fErr := time.ParseInLocation(layout, value[:len(layout)], time.UTC); fErr == nil {
			return t, nil
		}
	} else if len(value) < len(layout) {
		if t, fErr := time.ParseInLocation(layout[:len(value)], value, time.UTC); fErr == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// Format formats t with layout, RFC3339Nano is used when layout is empty
func Format(layout string, t time.Time) string {
	if layout == "" {
		layout = time.RFC3339Nano
	}
	return t.Format(layout)
}
