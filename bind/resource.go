package bind

import (
	"reflect"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/viant/jsonapi/conv"
	"github.com/viant/jsonapi/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

type (
	// resourceType represents struct attributes layout
	resourceType struct {
		rType      reflect.Type
		attributes []*attribute
		byName     map[string]*attribute
		byFold     map[string]*attribute
		marker     *marker
		err        error
	}

	attribute struct {
		name      string
		path      []*xunsafe.Field //embedded struct fields followed by the attribute field
		rType     reflect.Type
		raw       bool //assignable values are set without conversion
		markerPos int
		converter *conv.Converter
	}
)

func (r *resourceType) lookup(name string) *attribute {
	if ret, ok := r.byName[name]; ok {
		return ret
	}
	return r.byFold[strings.ToLower(name)]
}

// pointer returns attribute field pointer
func (a *attribute) pointer(ptr unsafe.Pointer) unsafe.Pointer {
	for _, field := range a.path {
		ptr = field.Pointer(ptr)
	}
	return ptr
}

func (a *attribute) value(ptr unsafe.Pointer) reflect.Value {
	return reflect.NewAt(a.rType, a.pointer(ptr)).Elem()
}

func (b *Binder) newResourceType(t reflect.Type) *resourceType {
	ret := &resourceType{rType: t, byName: map[string]*attribute{}, byFold: map[string]*attribute{}, marker: newMarker(t)}
	ret.err = b.addAttributes(ret, t, nil)
	return ret
}

func (b *Binder) addAttributes(resource *resourceType, t reflect.Type, ancestors []*xunsafe.Field) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if IsSetMarker(field.Tag) {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct && field.Tag.Get(b.options.TagName) == "" {
			if err := b.addAttributes(resource, field.Type, append(ancestors, xunsafe.NewField(field))); err != nil {
				return err
			}
			continue
		}
		if field.PkgPath != "" {
			continue
		}
		name, tag, err := b.attributeName(field)
		if err != nil {
			return errors.Wrapf(err, "invalid %v.%v tag", t.Name(), field.Name)
		}
		if name == "" {
			continue
		}
		path := make([]*xunsafe.Field, len(ancestors), len(ancestors)+1)
		copy(path, ancestors)
		attr := &attribute{
			name:      name,
			path:      append(path, xunsafe.NewField(field)),
			rType:     field.Type,
			markerPos: resource.marker.position(field.Name),
			converter: b.converter,
		}
		base := field.Type
		if base.Kind() == reflect.Ptr {
			base = base.Elem()
		}
		if b.converter.CategoryOf(base).Kind == conv.KindNonConvertible {
			attr.raw = true
		}
		if layout := tag.TimeLayout; layout != "" {
			attr.converter = b.converter.WithOptions(func(o *conv.Options) {
				o.DateLayout = layout
				o.TimeLayout = layout
			})
		}
		if _, ok := resource.byName[name]; ok {
			return errors.Errorf("duplicate attribute %v in %v", name, resource.rType.String())
		}
		resource.attributes = append(resource.attributes, attr)
		resource.byName[name] = attr
		if _, ok := resource.byFold[strings.ToLower(name)]; !ok {
			resource.byFold[strings.ToLower(name)] = attr
		}
	}
	return nil
}

// attributeName resolves attribute name: binder tag, then format/json tag name, then field name in binder case format
func (b *Binder) attributeName(field reflect.StructField) (string, *format.Tag, error) {
	tag, err := format.Parse(field.Tag, "json")
	if err != nil {
		return "", nil, err
	}
	if value, ok := field.Tag.Lookup(b.options.TagName); ok {
		name := value
		if index := strings.Index(value, ","); index != -1 {
			name = value[:index]
		}
		if name == "-" {
			return "", tag, nil
		}
		if name != "" {
			return name, tag, nil
		}
	}
	if tag.Ignore {
		return "", tag, nil
	}
	if tag.Name != "" {
		return tag.FormatName(), tag, nil
	}
	return b.formatName(field.Name), tag, nil
}

func (b *Binder) formatName(fieldName string) string {
	caseFormat := b.options.CaseFormat
	if !caseFormat.IsDefined() {
		return fieldName
	}
	if fieldName == "ID" {
		switch caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(fieldName, caseFormat)
}
