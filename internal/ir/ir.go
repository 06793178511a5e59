// Package ir defines the intermediate representation passed from the source
// scanner to the registry generator. This package is internal and not part of
// the public API.
package ir

// DeclKind identifies a registrable declaration.
type DeclKind int

const (
	DeclModel DeclKind = iota
	DeclEnum
	DeclFamily
)

// Decl is implemented by every registrable declaration.
type Decl interface {
	Kind() DeclKind
	TypeName() string
}

// Package is everything one Go package contributes to the registry.
type Package struct {
	Name     string // Go package name.
	Models   []Model
	Enums    []Enum
	Families []Family
}

// Model is an exported struct type that is not a family variant.
type Model struct {
	Name string
}

func (m Model) Kind() DeclKind   { return DeclModel }
func (m Model) TypeName() string { return m.Name }

// Enum is a named basic type with typed constants.
type Enum struct {
	Name      string
	Constants []Constant // declaration order
}

func (e Enum) Kind() DeclKind   { return DeclEnum }
func (e Enum) TypeName() string { return e.Name }

// Constant binds a Go identifier to the member name used in diagnostics.
type Constant struct {
	Ident  string // e.g. FundingSourceDebit
	Member string // e.g. DEBIT
}

// Family is a sealed interface and the struct types implementing it.
type Family struct {
	Name          string
	Interface     string
	Discriminator string   // Go field name carrying the discriminator.
	Variants      []string // sorted
}

func (f Family) Kind() DeclKind   { return DeclFamily }
func (f Family) TypeName() string { return f.Interface }

// Decls flattens the package into models, enums then families.
func (p *Package) Decls() []Decl {
	out := make([]Decl, 0, len(p.Models)+len(p.Enums)+len(p.Families))
	for _, m := range p.Models {
		out = append(out, m)
	}
	for _, e := range p.Enums {
		out = append(out, e)
	}
	for _, f := range p.Families {
		out = append(out, f)
	}
	return out
}

// Empty reports whether the package contributes nothing.
func (p *Package) Empty() bool {
	return len(p.Models) == 0 && len(p.Enums) == 0 && len(p.Families) == 0
}
