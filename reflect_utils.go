package wireparity

import (
	"reflect"
	"strings"
)

// TagName resolves the name a codec declares for a struct field under the given
// tag key. The option list after the first comma is ignored and "-" is returned
// as is. An empty name part (e.g. `json:",omitempty"`) counts as not declared.
func TagName(sf reflect.StructField, key string) (string, bool) {
	tag, ok := sf.Tag.Lookup(key)
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", false
	}
	return tag, true
}

// Deref strips pointer, slice, array and map-value layers off t.
func Deref(t reflect.Type) reflect.Type {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		default:
			return t
		}
	}
}
