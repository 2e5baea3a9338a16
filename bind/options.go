package bind

import "github.com/viant/tagly/format/text"

const (
	//TagName defines attribute name tag
	TagName = "jsonapi"
	//SetMarkerTag defines presence marker holder tag
	SetMarkerTag = "setMarker"
	//PresenceMarkerTag defines alternative presence marker holder tag
	PresenceMarkerTag = "presenceMarker"
)

// Options represents binder options
type Options struct {
	Strict     bool
	CaseFormat text.CaseFormat
	TagName    string
}

// Option binder option
type Option func(o *Options)

func newOptions(opts []Option) Options {
	ret := Options{CaseFormat: text.CaseFormatLowerCamel, TagName: TagName}
	for _, opt := range opts {
		opt(&ret)
	}
	return ret
}

// WithStrict reports attributes without a matching field as errors
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithCaseFormat sets case format used to derive attribute names from untagged field names
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *Options) {
		o.CaseFormat = caseFormat
	}
}

// WithTagName sets attribute name tag
func WithTagName(name string) Option {
	return func(o *Options) {
		o.TagName = name
	}
}
