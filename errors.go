package wireparity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Divergence kinds (exported consts for IDE completion and type safety by convention)
const (
	KindEnumMismatch      = "enum_mismatch"
	KindFieldNameMismatch = "field_name_mismatch"
	KindPayloadMismatch   = "payload_mismatch"
)

// kindRank orders kinds inside a sorted run.
var kindRank = map[string]int{
	KindEnumMismatch:      0,
	KindFieldNameMismatch: 1,
	KindPayloadMismatch:   2,
}

// Divergence records one disagreement between the two codecs.
type Divergence struct {
	Kind   string // One of the kinds listed above.
	Type   string // Enum or model type name.
	Pkg    string // Import path of Type; empty when unknown.
	Member string // Constant or field name; empty for payload mismatches.
	A      Wire
	B      Wire
	// Detail is optional free text, e.g. the JSON pointers of a payload diff.
	Detail string
}

func (d Divergence) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s %s", d.Kind, d.Type)
	if d.Member != "" {
		fmt.Fprintf(b, ".%s", d.Member)
	}
	fmt.Fprintf(b, ": A=%s B=%s", d.A, d.B)
	if d.Detail != "" {
		fmt.Fprintf(b, " (%s)", d.Detail)
	}
	return b.String()
}

// Divergences is the ordered output of a conformance run.
type Divergences []Divergence

// Sort orders records by (kind, type, package, member), keeping the relative
// order of equal keys.
func (ds Divergences) Sort() {
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].less(ds[j]) })
}

// Compact drops adjacent duplicates from a sorted sequence.
func (ds Divergences) Compact() Divergences {
	if len(ds) < 2 {
		return ds
	}
	out := ds[:1]
	for _, d := range ds[1:] {
		if prev := out[len(out)-1]; d.Pkg == prev.Pkg && d.String() == prev.String() {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (d Divergence) less(o Divergence) bool {
	if d.Kind != o.Kind {
		return kindRank[d.Kind] < kindRank[o.Kind]
	}
	if d.Type != o.Type {
		return d.Type < o.Type
	}
	if d.Pkg != o.Pkg {
		return d.Pkg < o.Pkg
	}
	return d.Member < o.Member
}

// Registration and discovery errors.
var (
	ErrNoModels      = errors.New("wireparity: no model types found")
	ErrInvalidModel  = errors.New("wireparity: invalid model")
	ErrInvalidEnum   = errors.New("wireparity: invalid enum")
	ErrInvalidFamily = errors.New("wireparity: invalid family")
)

// DiscoveryError reports that a namespace could not be enumerated. It is fatal:
// no partial analysis is attempted after it.
type DiscoveryError struct {
	Namespace string
	Reason    string
	Cause     error // Optional: underlying error.
}

func (e *DiscoveryError) Error() string {
	msg := fmt.Sprintf("wireparity: discovery of %q failed: %s", e.Namespace, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *DiscoveryError) Unwrap() error { return e.Cause }

// AsDiscoveryError extracts a DiscoveryError from an error using errors.As
// internally.
func AsDiscoveryError(err error) (*DiscoveryError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DiscoveryError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
