package bind

import (
	"reflect"
	"strconv"
	"unsafe"

	"github.com/viant/xunsafe"
)

// marker records which attributes were bound in a struct field tagged with `setMarker:"true"` or `presenceMarker`,
// marker holder is a pointer to struct with a bool field per resource field
type marker struct {
	holder *xunsafe.Field
	fields []*xunsafe.Field
	index  map[string]int
}

// IsSetMarker returns true if field tag defines presence marker holder
func IsSetMarker(tag reflect.StructTag) bool {
	if _, ok := tag.Lookup(PresenceMarkerTag); ok {
		return true
	}
	value, ok := tag.Lookup(SetMarkerTag)
	if !ok {
		return false
	}
	flag, _ := strconv.ParseBool(value)
	return flag
}

func newMarker(t reflect.Type) *marker {
	var ret *marker
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !IsSetMarker(field.Tag) || field.Type.Kind() != reflect.Ptr || field.Type.Elem().Kind() != reflect.Struct {
			continue
		}
		ret = &marker{holder: xunsafe.NewField(field), index: map[string]int{}}
		holderType := field.Type.Elem()
		for j := 0; j < holderType.NumField(); j++ {
			markerField := holderType.Field(j)
			if markerField.Type.Kind() != reflect.Bool {
				continue
			}
			ret.index[markerField.Name] = len(ret.fields)
			ret.fields = append(ret.fields, xunsafe.NewField(markerField))
		}
		break
	}
	return ret
}

// position returns marker field position for a resource field name or -1
func (m *marker) position(name string) int {
	if m == nil {
		return -1
	}
	pos, ok := m.index[name]
	if !ok {
		return -1
	}
	return pos
}

// ensureHolder allocates marker holder when nil
func (m *marker) ensureHolder(ptr unsafe.Pointer) {
	if !m.holder.IsNil(ptr) {
		return
	}
	holder := reflect.NewAt(m.holder.Type, m.holder.Pointer(ptr)).Elem()
	holder.Set(reflect.New(m.holder.Type.Elem()))
}

func (m *marker) set(ptr unsafe.Pointer, pos int, flag bool) {
	if pos < 0 || pos >= len(m.fields) {
		return
	}
	m.ensureHolder(ptr)
	m.fields[pos].SetBool(m.holder.ValuePointer(ptr), flag)
}

// isSet returns true if marker field was flagged, resources without marker report every field as set
func (m *marker) isSet(ptr unsafe.Pointer, pos int) bool {
	if m == nil || m.holder.IsNil(ptr) {
		return true
	}
	if pos < 0 || pos >= len(m.fields) {
		return false
	}
	return m.fields[pos].Bool(m.holder.ValuePointer(ptr))
}
