package extract

import (
	"reflect"
	"sync"

	"github.com/reoring/wireparity"
)

// EnumLookup returns the registered enum for a type, or nil.
type EnumLookup func(reflect.Type) *wireparity.EnumType

// Extractor reads per-field wire names for two codecs. Results are cached per
// model type; an Extractor is safe for concurrent use.
type Extractor struct {
	a, b  wireparity.Codec
	enums EnumLookup

	cache sync.Map // map[reflect.Type][]wireparity.FieldDescriptor
}

// New creates an Extractor for codecs a and b. enums may be nil, in which case
// no field is treated as enum-typed.
func New(a, b wireparity.Codec, enums EnumLookup) *Extractor {
	if enums == nil {
		enums = func(reflect.Type) *wireparity.EnumType { return nil }
	}
	return &Extractor{a: a, b: b, enums: enums}
}

// FieldsOf returns the exported fields of mt in declaration order. Each codec's
// declared name is read independently; a missing declaration stays missing.
// Untagged embedded structs are flattened by both codecs and are checked as
// model types of their own, so they are left out here.
func (x *Extractor) FieldsOf(mt wireparity.ModelType) []wireparity.FieldDescriptor {
	if mt.Type == nil || mt.Type.Kind() != reflect.Struct {
		return nil
	}
	if cached, ok := x.cache.Load(mt.Type); ok {
		return cached.([]wireparity.FieldDescriptor)
	}

	t := mt.Type
	fields := make([]wireparity.FieldDescriptor, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fd, skip := x.describe(sf)
		if skip {
			continue
		}
		fields = append(fields, fd)
	}

	actual, _ := x.cache.LoadOrStore(t, fields)
	return actual.([]wireparity.FieldDescriptor)
}

// ConstantsOf returns a copy of et's constants in registration order.
func (x *Extractor) ConstantsOf(et wireparity.EnumType) []wireparity.EnumConstant {
	out := make([]wireparity.EnumConstant, len(et.Constants))
	copy(out, et.Constants)
	return out
}

func (x *Extractor) describe(sf reflect.StructField) (wireparity.FieldDescriptor, bool) {
	nameA, okA := x.a.DeclaredName(sf)
	nameB, okB := x.b.DeclaredName(sf)

	if sf.Anonymous && !okA && !okB && wireparity.Deref(sf.Type).Kind() == reflect.Struct {
		return wireparity.FieldDescriptor{}, true
	}
	if !sf.IsExported() {
		return wireparity.FieldDescriptor{}, true
	}

	fd := wireparity.FieldDescriptor{
		Name:  sf.Name,
		Index: sf.Index,
		Type:  sf.Type,
	}
	if okA {
		fd.A = wireparity.Declare(nameA)
	}
	if okB {
		fd.B = wireparity.Declare(nameB)
	}
	fd.Enum = x.enumOf(sf.Type)
	return fd, false
}

func (x *Extractor) enumOf(t reflect.Type) *wireparity.EnumType {
	for {
		if e := x.enums(t); e != nil {
			return e
		}
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		default:
			return nil
		}
	}
}
