// Package scan reads a Go package from source and collects the declarations
// the registry generator needs.
package scan

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/reoring/wireparity/internal/ir"
)

// Directive marks a family interface, e.g.
//
//	//wireparity:family name=paymentMethod discriminator=Type
const Directive = "//wireparity:family"

// GeneratedPrefix is the file name prefix of generated files, which are never scanned.
const GeneratedPrefix = "zz_generated"

const discriminatorMethod = "DiscriminatorValue"

type pkgIndex struct {
	structs    map[string]bool
	basics     map[string]bool // named types over a basic type
	ifaces     map[string]*ast.InterfaceType
	directives map[string]string
	methods    map[string]map[string]bool // receiver type -> method names
	consts     map[string][]string        // type -> identifiers in order
	constOrder []string
}

// Dir scans the non-test package in dir.
func Dir(dir string) (*ir.Package, error) {
	fset := token.NewFileSet()
	filter := func(fi os.FileInfo) bool {
		name := fi.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasPrefix(name, GeneratedPrefix)
	}
	pkgs, err := parser.ParseDir(fset, dir, filter, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("scan %s: want exactly one package, found %d", dir, len(pkgs))
	}
	var pkg *ast.Package
	for _, p := range pkgs {
		pkg = p
	}

	names := make([]string, 0, len(pkg.Files))
	for name := range pkg.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	files := make([]*ast.File, 0, len(names))
	for _, name := range names {
		files = append(files, pkg.Files[name])
	}
	return Files(pkg.Name, files)
}

// Files builds the package description from already parsed files. Files are
// visited in the order given.
func Files(pkgName string, files []*ast.File) (*ir.Package, error) {
	idx := &pkgIndex{
		structs:    map[string]bool{},
		basics:     map[string]bool{},
		ifaces:     map[string]*ast.InterfaceType{},
		directives: map[string]string{},
		methods:    map[string]map[string]bool{},
		consts:     map[string][]string{},
	}
	for _, f := range files {
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				switch d.Tok {
				case token.TYPE:
					idx.collectTypes(d)
				case token.CONST:
					idx.collectConsts(d)
				}
			case *ast.FuncDecl:
				idx.collectMethod(d)
			}
		}
	}
	return idx.build(pkgName)
}

func (idx *pkgIndex) collectTypes(gd *ast.GenDecl) {
	for _, spec := range gd.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok || ts.Name == nil || ts.Assign.IsValid() || ts.TypeParams != nil {
			continue
		}
		name := ts.Name.Name
		switch t := ts.Type.(type) {
		case *ast.StructType:
			idx.structs[name] = true
		case *ast.Ident:
			if isBasic(t.Name) {
				idx.basics[name] = true
			}
		case *ast.InterfaceType:
			idx.ifaces[name] = t
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}
			if dir, ok := directive(doc); ok {
				idx.directives[name] = dir
			}
		}
	}
}

// collectConsts follows the implicit repetition rule: a spec without type and
// values inherits the previous spec's type.
func (idx *pkgIndex) collectConsts(gd *ast.GenDecl) {
	current := ""
	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		switch {
		case vs.Type != nil:
			current = ""
			if id, ok := vs.Type.(*ast.Ident); ok {
				current = id.Name
			}
		case len(vs.Values) > 0:
			current = conversionTarget(vs.Values[0])
		}
		if current == "" {
			continue
		}
		for _, n := range vs.Names {
			if n.Name == "_" {
				continue
			}
			if _, seen := idx.consts[current]; !seen {
				idx.constOrder = append(idx.constOrder, current)
			}
			idx.consts[current] = append(idx.consts[current], n.Name)
		}
	}
}

// conversionTarget returns T for a T(x) expression.
func conversionTarget(e ast.Expr) string {
	call, ok := e.(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		return ""
	}
	if id, ok := call.Fun.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func (idx *pkgIndex) collectMethod(fd *ast.FuncDecl) {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return
	}
	// Variants are registered as values, so pointer receivers do not count.
	id, ok := fd.Recv.List[0].Type.(*ast.Ident)
	if !ok {
		return
	}
	if idx.methods[id.Name] == nil {
		idx.methods[id.Name] = map[string]bool{}
	}
	idx.methods[id.Name][fd.Name.Name] = true
}

func (idx *pkgIndex) build(pkgName string) (*ir.Package, error) {
	out := &ir.Package{Name: pkgName}

	variants := map[string]string{}
	for _, iface := range sortedKeys(idx.directives) {
		fam, err := idx.family(iface, idx.directives[iface])
		if err != nil {
			return nil, err
		}
		for _, v := range fam.Variants {
			if prev, taken := variants[v]; taken {
				return nil, fmt.Errorf("scan: %s implements both %s and %s", v, prev, iface)
			}
			variants[v] = iface
		}
		out.Families = append(out.Families, fam)
	}
	sort.Slice(out.Families, func(i, j int) bool { return out.Families[i].Name < out.Families[j].Name })

	for _, name := range sortedKeys(idx.structs) {
		if !ast.IsExported(name) || variants[name] != "" {
			continue
		}
		out.Models = append(out.Models, ir.Model{Name: name})
	}

	for _, typ := range idx.constOrder {
		if !idx.basics[typ] || !ast.IsExported(typ) {
			continue
		}
		e := ir.Enum{Name: typ}
		for _, ident := range idx.consts[typ] {
			e.Constants = append(e.Constants, ir.Constant{Ident: ident, Member: MemberName(typ, ident)})
		}
		out.Enums = append(out.Enums, e)
	}
	sort.Slice(out.Enums, func(i, j int) bool { return out.Enums[i].Name < out.Enums[j].Name })
	return out, nil
}

func (idx *pkgIndex) family(iface, dir string) (ir.Family, error) {
	fam := ir.Family{Name: iface, Interface: iface}
	for _, kv := range strings.Fields(dir) {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return fam, fmt.Errorf("scan: %s: malformed directive argument %q", iface, kv)
		}
		switch k {
		case "name":
			fam.Name = v
		case "discriminator":
			fam.Discriminator = v
		default:
			return fam, fmt.Errorf("scan: %s: unknown directive argument %q", iface, k)
		}
	}
	if fam.Discriminator == "" {
		return fam, fmt.Errorf("scan: %s: directive needs discriminator=<Field>", iface)
	}

	required := []string{discriminatorMethod}
	for _, m := range idx.ifaces[iface].Methods.List {
		for _, n := range m.Names {
			if n.Name != discriminatorMethod {
				required = append(required, n.Name)
			}
		}
	}
	for _, name := range sortedKeys(idx.structs) {
		if hasAll(idx.methods[name], required) {
			fam.Variants = append(fam.Variants, name)
		}
	}
	if len(fam.Variants) == 0 {
		return fam, fmt.Errorf("scan: family %s has no variants", fam.Name)
	}
	return fam, nil
}

func directive(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}
	for _, c := range doc.List {
		if rest, ok := strings.CutPrefix(c.Text, Directive); ok {
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
				return strings.TrimSpace(rest), true
			}
		}
	}
	return "", false
}

// MemberName derives the diagnostic member name of an enum constant: the type
// name prefix is dropped and the rest is upper snake case, so
// FundingSourceDebit becomes DEBIT and ShopperInteractionContAuth CONT_AUTH.
func MemberName(typ, ident string) string {
	rest := strings.TrimPrefix(ident, typ)
	if rest == "" {
		rest = ident
	}
	var b strings.Builder
	runes := []rune(rest)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		if r == '_' && i > 0 && runes[i-1] == '_' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return strings.Trim(b.String(), "_")
}

func isBasic(name string) bool {
	switch name {
	case "string", "bool",
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float32", "float64", "byte", "rune":
		return true
	}
	return false
}

func hasAll(have map[string]bool, want []string) bool {
	for _, w := range want {
		if !have[w] {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
