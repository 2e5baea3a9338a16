package bind

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/viant/jsonapi/conv"
	"github.com/viant/jsonapi/internal/cache"
	"github.com/viant/xunsafe"
)

// Binder binds resource attributes onto struct fields, converting every value with the conversion engine
type Binder struct {
	converter *conv.Converter
	options   Options
	resources *cache.SyncMap[reflect.Type, *resourceType]
}

// New creates a binder, nil converter uses the default one
func New(converter *conv.Converter, opts ...Option) *Binder {
	if converter == nil {
		converter = conv.Default()
	}
	return &Binder{
		converter: converter,
		options:   newOptions(opts),
		resources: cache.NewSyncMap[reflect.Type, *resourceType](),
	}
}

// Bind binds attributes onto dest struct pointer, the first failing attribute stops binding
func (b *Binder) Bind(attributes map[string]interface{}, dest interface{}) error {
	resource, ptr, err := b.resourceOf(dest)
	if err != nil {
		return err
	}
	for _, name := range sortedNames(attributes) {
		attr := resource.lookup(name)
		if attr == nil {
			if b.options.Strict {
				return errors.Errorf("unknown %v attribute: %v", resource.rType.String(), name)
			}
			continue
		}
		if err = b.set(resource, attr, ptr, attributes[name]); err != nil {
			return errors.Wrapf(err, "failed to bind attribute %v", name)
		}
	}
	return nil
}

// TryBind binds every attribute it can and returns names of attributes that failed, failed fields are left zero
func (b *Binder) TryBind(attributes map[string]interface{}, dest interface{}) []string {
	resource, ptr, err := b.resourceOf(dest)
	if err != nil {
		return sortedNames(attributes)
	}
	var failed []string
	for _, name := range sortedNames(attributes) {
		attr := resource.lookup(name)
		if attr == nil {
			if b.options.Strict {
				failed = append(failed, name)
			}
			continue
		}
		if err = b.set(resource, attr, ptr, attributes[name]); err != nil {
			attr.value(ptr).Set(reflect.Zero(attr.rType))
			if resource.marker != nil {
				resource.marker.set(ptr, attr.markerPos, false)
			}
			failed = append(failed, name)
		}
	}
	return failed
}

// IsBound returns true if attribute was bound onto dest, resources without presence marker report every attribute as bound
func (b *Binder) IsBound(dest interface{}, name string) bool {
	resource, ptr, err := b.resourceOf(dest)
	if err != nil {
		return false
	}
	attr := resource.lookup(name)
	if attr == nil {
		return false
	}
	if resource.marker == nil {
		return true
	}
	return resource.marker.isSet(ptr, attr.markerPos)
}

func (b *Binder) set(resource *resourceType, attr *attribute, ptr unsafe.Pointer, value interface{}) error {
	field := attr.value(ptr)
	if attr.raw && (value == nil || reflect.TypeOf(value).AssignableTo(attr.rType)) {
		if value == nil {
			field.Set(reflect.Zero(attr.rType))
		} else {
			field.Set(reflect.ValueOf(value))
		}
	} else {
		converted, err := attr.converter.ConvertTo(value, attr.rType)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(converted))
	}
	if resource.marker != nil {
		resource.marker.set(ptr, attr.markerPos, true)
	}
	return nil
}

func (b *Binder) resourceOf(dest interface{}) (*resourceType, unsafe.Pointer, error) {
	rType := reflect.TypeOf(dest)
	if rType == nil || rType.Kind() != reflect.Ptr || rType.Elem().Kind() != reflect.Struct {
		return nil, nil, errors.Errorf("invalid destination %T: expected struct pointer", dest)
	}
	ptr := xunsafe.AsPointer(dest)
	if ptr == nil {
		return nil, nil, errors.Errorf("invalid destination %T: nil pointer", dest)
	}
	resource := b.resources.GetOrCompute(rType.Elem(), b.newResourceType)
	if resource.err != nil {
		return nil, nil, resource.err
	}
	return resource, ptr, nil
}

func sortedNames(attributes map[string]interface{}) []string {
	ret := make([]string, 0, len(attributes))
	for name := range attributes {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
