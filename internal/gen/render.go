// Package gen renders the registry file for a scanned package.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/reoring/wireparity/internal/ir"
	"github.com/reoring/wireparity/internal/scan"
)

// FileName is the default name of the generated registry file.
const FileName = scan.GeneratedPrefix + ".registry.go"

// Header marks generated files.
const Header = "// Code generated by wireparity gen. DO NOT EDIT."

var (
	// ErrStale is returned by Verify when the file on disk differs from a fresh rendering.
	ErrStale = errors.New("generated registry is stale")
	// ErrEmpty is returned when a package declares nothing to register.
	ErrEmpty = errors.New("nothing to register")
)

var fileTmpl = template.Must(template.New("registry").Parse(Header + `

package {{.Name}}

import "github.com/reoring/wireparity/registry"

func init() {
{{- if .Models}}
	registry.Default.MustRegisterModel(
{{- range .Models}}
		{{.Name}}{},
{{- end}}
	)
{{- end}}
{{- range .Enums}}
	registry.Default.MustRegisterEnum(
{{- range .Constants}}
		registry.Constant({{printf "%q" .Member}}, {{.Ident}}),
{{- end}}
	)
{{- end}}
{{- range .Families}}
	registry.Default.MustRegisterFamily({{printf "%q" .Name}}, {{printf "%q" .Discriminator}}, (*{{.Interface}})(nil),
{{- range .Variants}}
		{{.}}{},
{{- end}}
	)
{{- end}}
}
`))

// RenderFile renders the registry init file for pkg, gofmt'ed.
func RenderFile(pkg *ir.Package) ([]byte, error) {
	if pkg == nil || pkg.Empty() {
		return nil, ErrEmpty
	}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, pkg); err != nil {
		return nil, fmt.Errorf("render %s: %w", pkg.Name, err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", pkg.Name, err)
	}
	return out, nil
}

// Options selects the package to scan and where its registry goes.
type Options struct {
	PkgDir string
	Out    string // Defaults to FileName inside PkgDir.
	Verify bool   // Compare instead of writing.
}

// Generate scans opts.PkgDir and writes, or with Verify compares, its registry file.
func Generate(opts Options) (*ir.Package, error) {
	pkg, err := scan.Dir(opts.PkgDir)
	if err != nil {
		return nil, err
	}
	code, err := RenderFile(pkg)
	if err != nil {
		return pkg, err
	}
	out := opts.Out
	if out == "" {
		out = filepath.Join(opts.PkgDir, FileName)
	}
	if opts.Verify {
		return pkg, Verify(out, code)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return pkg, fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		return pkg, fmt.Errorf("writing output: %w", err)
	}
	return pkg, nil
}

// Verify reports ErrStale unless the file at path holds exactly want.
func Verify(path string, want []byte) error {
	got, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStale, err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%w: %s, run wireparity gen", ErrStale, path)
	}
	return nil
}
