package wireparity

import (
	"reflect"
	"strings"
)

// Undeclared is rendered in place of a wire name or value that a codec did not
// declare, or could not produce.
const Undeclared = "<undeclared>"

// Wire is one codec's view of a field name or an enum value.
type Wire struct {
	Value    string // Declared name, or raw serialized text for enum values.
	Declared bool
	Err      error // Set when the codec failed; Value is empty in that case.
}

// Declare returns a Wire holding a declared value.
func Declare(v string) Wire { return Wire{Value: v, Declared: true} }

// Failed returns a Wire recording a codec failure.
func Failed(err error) Wire { return Wire{Err: err} }

// Key is the comparison key: the produced text, or the Undeclared sentinel when
// the codec failed or produced nothing.
func (w Wire) Key() string {
	if w.Err != nil || (!w.Declared && w.Value == "") {
		return Undeclared
	}
	return w.Value
}

func (w Wire) String() string {
	switch {
	case w.Err != nil:
		return Undeclared
	case w.Declared:
		return w.Value
	case w.Value != "":
		return w.Value + " (" + Undeclared + ")"
	}
	return Undeclared
}

// Variant is implemented by every member of a polymorphic family.
type Variant interface {
	DiscriminatorValue() string
}

// ModelType identifies a discoverable value type.
type ModelType struct {
	Name string // Package-qualified Go name, e.g. "checkout.GooglePayDetails".
	Pkg  string // Import path; tells apart models whose Name collides.
	Type reflect.Type

	Polymorphic        bool
	Family             string
	Discriminator      string // Go field name of the discriminator.
	DiscriminatorValue string
}

func (m ModelType) String() string { return m.Name }

// FieldDescriptor describes one exported field of a ModelType together with the
// wire name each codec declares for it.
type FieldDescriptor struct {
	Name  string
	Index []int
	Type  reflect.Type
	A     Wire
	B     Wire
	Enum  *EnumType // Non-nil when the field's base type is a registered enum.
}

// IsEnum reports whether the field is enum-typed.
func (f FieldDescriptor) IsEnum() bool { return f.Enum != nil }

// EnumConstant is one constant of an EnumType. A and B are filled by the
// checker from live serialization.
type EnumConstant struct {
	Name  string
	Value any
	A     Wire
	B     Wire
}

// EnumType is a registered enum and its constants in registration order.
type EnumType struct {
	Name      string
	Pkg       string // Import path.
	Type      reflect.Type
	Constants []EnumConstant
}

func (e EnumType) String() string { return e.Name }

// TypeName returns the short package-qualified name used for t throughout
// reports. Two packages sharing a name yield the same TypeName; the import path
// keeps them apart.
func TypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// QualifiedName joins an import path with the bare type name taken from a
// TypeName, e.g. "example.com/v2/checkout.Amount".
func QualifiedName(pkg, typeName string) string {
	if pkg == "" {
		return typeName
	}
	if i := strings.LastIndexByte(typeName, '.'); i >= 0 {
		typeName = typeName[i+1:]
	}
	return pkg + "." + typeName
}
