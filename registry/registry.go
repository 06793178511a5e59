package registry

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/reoring/wireparity"
)

// Default is the process-wide registry generated model packages register into
// from their init functions.
var Default = New()

// Registry holds every registered model, enum and polymorphic family.
type Registry struct {
	mu       sync.RWMutex
	models   map[reflect.Type]struct{}
	enums    map[reflect.Type]*wireparity.EnumType
	families map[reflect.Type]*Family // keyed by the family interface type
	variants map[reflect.Type]*Family
}

// Family is a closed set of variant types distinguished by a string
// discriminator field.
type Family struct {
	Name          string
	Interface     reflect.Type
	Discriminator string                  // Go field name shared by every variant.
	Variants      map[string]reflect.Type // discriminator value -> variant type
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		models:   make(map[reflect.Type]struct{}),
		enums:    make(map[reflect.Type]*wireparity.EnumType),
		families: make(map[reflect.Type]*Family),
		variants: make(map[reflect.Type]*Family),
	}
}

// Constant builds an enum constant for RegisterEnum.
func Constant(name string, value any) wireparity.EnumConstant {
	return wireparity.EnumConstant{Name: name, Value: value}
}

// RegisterModel registers the struct types of the given samples (values or
// pointers). Registering a type twice is a no-op.
func (r *Registry) RegisterModel(samples ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range samples {
		t, err := structType(s)
		if err != nil {
			return err
		}
		r.models[t] = struct{}{}
	}
	return nil
}

// MustRegisterModel is RegisterModel that panics on error.
func (r *Registry) MustRegisterModel(samples ...any) {
	if err := r.RegisterModel(samples...); err != nil {
		panic(err)
	}
}

// RegisterEnum registers one enum type from its constants. All constants must
// share a single non-struct type and names must be unique. Constants sharing a
// value are aliases; each is kept and checked on its own.
func (r *Registry) RegisterEnum(constants ...wireparity.EnumConstant) error {
	if len(constants) == 0 {
		return fmt.Errorf("%w: no constants", wireparity.ErrInvalidEnum)
	}
	t := reflect.TypeOf(constants[0].Value)
	if t == nil || t.Kind() == reflect.Struct || t.Kind() == reflect.Pointer || t.Name() == "" || !t.Comparable() {
		return fmt.Errorf("%w: constant %q must be a value of a named, comparable, non-struct type", wireparity.ErrInvalidEnum, constants[0].Name)
	}
	names := make(map[string]struct{}, len(constants))
	out := make([]wireparity.EnumConstant, 0, len(constants))
	for _, c := range constants {
		if c.Name == "" {
			return fmt.Errorf("%w: %s has a constant without a name", wireparity.ErrInvalidEnum, t)
		}
		if ct := reflect.TypeOf(c.Value); ct != t {
			return fmt.Errorf("%w: constant %s is %v, want %s", wireparity.ErrInvalidEnum, c.Name, ct, t)
		}
		if _, dup := names[c.Name]; dup {
			return fmt.Errorf("%w: %s declares %s twice", wireparity.ErrInvalidEnum, t, c.Name)
		}
		names[c.Name] = struct{}{}
		out = append(out, wireparity.EnumConstant{Name: c.Name, Value: c.Value})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.enums[t]; exists {
		return fmt.Errorf("%w: %s registered twice", wireparity.ErrInvalidEnum, t)
	}
	r.enums[t] = &wireparity.EnumType{Name: wireparity.TypeName(t), Pkg: t.PkgPath(), Type: t, Constants: out}
	return nil
}

// MustRegisterEnum is RegisterEnum that panics on error.
func (r *Registry) MustRegisterEnum(constants ...wireparity.EnumConstant) {
	if err := r.RegisterEnum(constants...); err != nil {
		panic(err)
	}
}

// RegisterFamily registers a polymorphic family. iface is a typed nil pointer to
// the family interface, e.g. (*PaymentMethodDetails)(nil). Every variant must
// implement the interface, carry a string field named discriminator (directly
// or promoted from an embedded base) and report a discriminator value that is
// unique within the family. Variants are registered as models too.
func (r *Registry) RegisterFamily(name, discriminator string, iface any, variants ...wireparity.Variant) error {
	it := reflect.TypeOf(iface)
	if it == nil || it.Kind() != reflect.Pointer || it.Elem().Kind() != reflect.Interface {
		return fmt.Errorf("%w: %s: iface must be a nil pointer to an interface", wireparity.ErrInvalidFamily, name)
	}
	it = it.Elem()
	if len(variants) == 0 {
		return fmt.Errorf("%w: %s has no variants", wireparity.ErrInvalidFamily, name)
	}
	f := &Family{
		Name:          name,
		Interface:     it,
		Discriminator: discriminator,
		Variants:      make(map[string]reflect.Type, len(variants)),
	}
	for _, v := range variants {
		vt, err := structType(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", wireparity.ErrInvalidFamily, name, err)
		}
		if !reflect.TypeOf(v).Implements(it) {
			return fmt.Errorf("%w: %s: %s does not implement %s", wireparity.ErrInvalidFamily, name, vt, it)
		}
		sf, ok := vt.FieldByName(discriminator)
		if !ok || sf.Type.Kind() != reflect.String {
			return fmt.Errorf("%w: %s: %s has no string field %s", wireparity.ErrInvalidFamily, name, vt, discriminator)
		}
		dv := v.DiscriminatorValue()
		if dv == "" {
			return fmt.Errorf("%w: %s: %s has an empty discriminator value", wireparity.ErrInvalidFamily, name, vt)
		}
		if prev, dup := f.Variants[dv]; dup {
			return fmt.Errorf("%w: %s: %s and %s share discriminator %q", wireparity.ErrInvalidFamily, name, prev, vt, dv)
		}
		f.Variants[dv] = vt
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.families[it]; exists {
		return fmt.Errorf("%w: %s registered twice", wireparity.ErrInvalidFamily, name)
	}
	for _, vt := range f.Variants {
		if other, taken := r.variants[vt]; taken {
			return fmt.Errorf("%w: %s is already a variant of %s", wireparity.ErrInvalidFamily, vt, other.Name)
		}
	}
	r.families[it] = f
	for _, vt := range f.Variants {
		r.variants[vt] = f
		r.models[vt] = struct{}{}
	}
	return nil
}

// MustRegisterFamily is RegisterFamily that panics on error.
func (r *Registry) MustRegisterFamily(name, discriminator string, iface any, variants ...wireparity.Variant) {
	if err := r.RegisterFamily(name, discriminator, iface, variants...); err != nil {
		panic(err)
	}
}

// Families returns the registered families sorted by name.
func (r *Registry) Families() []*Family {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Family, 0, len(r.families))
	for _, f := range r.families {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FamilyOf returns the family the given interface type heads, if any.
func (r *Registry) FamilyOf(iface reflect.Type) (*Family, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.families[iface]
	return f, ok
}

// Enum returns the registered enum for t, or nil.
func (r *Registry) Enum(t reflect.Type) *wireparity.EnumType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enums[t]
}

// Resolve returns the variant type registered for a discriminator value.
func (f *Family) Resolve(value string) (reflect.Type, bool) {
	t, ok := f.Variants[value]
	return t, ok
}

func structType(v any) (reflect.Type, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T is not a struct", wireparity.ErrInvalidModel, v)
	}
	if t.Name() == "" {
		return nil, fmt.Errorf("%w: anonymous struct %s", wireparity.ErrInvalidModel, t)
	}
	return t, nil
}

func inNamespace(t reflect.Type, ns string) bool {
	p := t.PkgPath()
	return p == ns || strings.HasPrefix(p, ns+"/")
}
