package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/wireparity"
	"github.com/reoring/wireparity/i18n"
)

// GateResult is the pass/fail outcome of a conformance run.
type GateResult struct {
	Passed    bool
	Summaries []string // One line per divergence, in record order.
	Records   wireparity.Divergences
	LabelA    string
	LabelB    string
}

// Option configures Report.
type Option func(*GateResult)

// WithCodecs labels the two sides of every summary with the codec names.
func WithCodecs(a, b wireparity.Codec) Option {
	return func(r *GateResult) {
		if a != nil {
			r.LabelA = a.Name()
		}
		if b != nil {
			r.LabelB = b.Name()
		}
	}
}

// Report turns divergence records into a gate result. Passed is true iff there
// are no records. Records are sorted and de-duplicated before summarizing.
func Report(records wireparity.Divergences, opts ...Option) GateResult {
	res := GateResult{LabelA: "A", LabelB: "B"}
	for _, opt := range opts {
		opt(&res)
	}
	recs := make(wireparity.Divergences, len(records))
	copy(recs, records)
	recs.Sort()
	recs = recs.Compact()

	res.Records = recs
	res.Passed = len(recs) == 0
	res.Summaries = make([]string, 0, len(recs))
	label := typeLabels(recs)
	for _, d := range recs {
		res.Summaries = append(res.Summaries, res.summarize(d, label(d)))
	}
	return res
}

// typeLabels names each record by its short type name, falling back to the
// import-path form for names that more than one package uses.
func typeLabels(recs wireparity.Divergences) func(wireparity.Divergence) string {
	pkgs := make(map[string]map[string]struct{})
	for _, d := range recs {
		if pkgs[d.Type] == nil {
			pkgs[d.Type] = make(map[string]struct{})
		}
		pkgs[d.Type][d.Pkg] = struct{}{}
	}
	return func(d wireparity.Divergence) string {
		if len(pkgs[d.Type]) > 1 {
			return wireparity.QualifiedName(d.Pkg, d.Type)
		}
		return d.Type
	}
}

func (r GateResult) summarize(d wireparity.Divergence, typ string) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s: %s", i18n.T(d.Kind, nil), typ)
	if d.Member != "" {
		fmt.Fprintf(b, ".%s", d.Member)
	}
	fmt.Fprintf(b, " %s=%s %s=%s", r.LabelA, d.A, r.LabelB, d.B)
	if d.Detail != "" {
		fmt.Fprintf(b, " (%s)", d.Detail)
	}
	return b.String()
}

// Headline is the one-line outcome message.
func (r GateResult) Headline() string {
	if r.Passed {
		return i18n.T("gate_passed", nil)
	}
	return i18n.T("gate_failed", map[string]string{"count": strconv.Itoa(len(r.Records))})
}

// ExitCode follows test-runner conventions: 0 on pass, 1 on any divergence.
func (r GateResult) ExitCode() int {
	if r.Passed {
		return 0
	}
	return 1
}

// Err returns nil on pass, otherwise an error listing every summary.
func (r GateResult) Err() error {
	if r.Passed {
		return nil
	}
	return errors.New(r.Headline() + "\n" + strings.Join(r.Summaries, "\n"))
}

// TB is the subset of testing.TB the gate needs.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// Require fails t with one diagnostic line per divergence when res did not pass.
func Require(t TB, res GateResult) {
	t.Helper()
	if res.Passed {
		return
	}
	t.Errorf("%s", res.Headline())
	for _, s := range res.Summaries {
		t.Errorf("%s", s)
	}
	t.FailNow()
}
