package registry

import (
	"reflect"
	"sort"

	"github.com/reoring/wireparity"
)

// DiscoverModelTypes returns every registered model type in namespace (a Go
// package path, matched with its sub-packages) together with every struct type
// reachable from them by composition, embedding or family membership. Each type
// appears once. The result is sorted by name and then import path; callers must
// not depend on that.
func (r *Registry) DiscoverModelTypes(namespace string) ([]wireparity.ModelType, error) {
	if namespace == "" {
		return nil, &wireparity.DiscoveryError{Namespace: namespace, Reason: "empty namespace"}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	roots := make([]reflect.Type, 0, len(r.models))
	for t := range r.models {
		if inNamespace(t, namespace) {
			roots = append(roots, t)
		}
	}
	if len(roots) == 0 {
		return nil, &wireparity.DiscoveryError{Namespace: namespace, Reason: "no registered model types", Cause: wireparity.ErrNoModels}
	}

	seen := make(map[reflect.Type]struct{}, len(roots))
	var walk func(t reflect.Type)
	walk = func(t reflect.Type) {
		t = wireparity.Deref(t)
		switch t.Kind() {
		case reflect.Interface:
			if f, ok := r.families[t]; ok {
				for _, vt := range f.Variants {
					walk(vt)
				}
			}
			return
		case reflect.Struct:
		default:
			return
		}
		if t.Name() == "" || !inNamespace(t, namespace) {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() && !sf.Anonymous {
				continue
			}
			walk(sf.Type)
		}
	}
	for _, t := range roots {
		walk(t)
	}

	out := make([]wireparity.ModelType, 0, len(seen))
	for t := range seen {
		mt := wireparity.ModelType{Name: wireparity.TypeName(t), Pkg: t.PkgPath(), Type: t}
		if f, ok := r.variants[t]; ok {
			mt.Polymorphic = true
			mt.Family = f.Name
			mt.Discriminator = f.Discriminator
			for dv, vt := range f.Variants {
				if vt == t {
					mt.DiscriminatorValue = dv
				}
			}
		}
		out = append(out, mt)
	}
	sort.Slice(out, func(i, j int) bool { return byName(out[i].Name, out[i].Pkg, out[j].Name, out[j].Pkg) })
	return out, nil
}

// DiscoverEnumTypes returns every registered enum referenced by a field of the
// given models, through pointers, slices, arrays and maps. Enums are
// deduplicated by type identity and sorted by name and import path.
func (r *Registry) DiscoverEnumTypes(models []wireparity.ModelType) ([]wireparity.EnumType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[reflect.Type]*wireparity.EnumType)
	visit := func(t reflect.Type) {
		if e, ok := r.enums[t]; ok {
			seen[t] = e
		}
	}
	for _, mt := range models {
		if mt.Type == nil || mt.Type.Kind() != reflect.Struct {
			return nil, &wireparity.DiscoveryError{Namespace: mt.Name, Reason: "model type has no struct metadata"}
		}
		for i := 0; i < mt.Type.NumField(); i++ {
			sf := mt.Type.Field(i)
			if !sf.IsExported() {
				continue
			}
			t := sf.Type
			for {
				visit(t)
				switch t.Kind() {
				case reflect.Pointer, reflect.Slice, reflect.Array:
					t = t.Elem()
					continue
				case reflect.Map:
					visit(t.Key())
					t = t.Elem()
					continue
				}
				break
			}
		}
	}

	out := make([]wireparity.EnumType, 0, len(seen))
	for _, e := range seen {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return byName(out[i].Name, out[i].Pkg, out[j].Name, out[j].Pkg) })
	return out, nil
}

// byName orders by short name, then import path. The pair is unique per type.
func byName(name, pkg, otherName, otherPkg string) bool {
	if name != otherName {
		return name < otherName
	}
	return pkg < otherPkg
}
