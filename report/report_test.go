package report_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reoring/wireparity"
	"github.com/reoring/wireparity/codec/gojson"
	"github.com/reoring/wireparity/codec/jsoniter"
	"github.com/reoring/wireparity/report"
)

func debitMismatch() wireparity.Divergence {
	return wireparity.Divergence{
		Kind:   wireparity.KindEnumMismatch,
		Type:   "checkout.FundingSource",
		Member: "DEBIT",
		A:      wireparity.Declare(`"debit"`),
		B:      wireparity.Declare(`"deb"`),
	}
}

func fieldMismatch() wireparity.Divergence {
	return wireparity.Divergence{
		Kind:   wireparity.KindFieldNameMismatch,
		Type:   "checkout.GooglePayDetails",
		Member: "FundingSource",
		A:      wireparity.Declare("fundingSource"),
	}
}

func TestReport_Pass(t *testing.T) {
	res := report.Report(nil)
	assert.True(t, res.Passed)
	assert.Empty(t, res.Summaries)
	assert.Equal(t, 0, res.ExitCode())
	assert.NoError(t, res.Err())
}

func TestReport_Fail(t *testing.T) {
	res := report.Report(wireparity.Divergences{debitMismatch()}, report.WithCodecs(gojson.New(), jsoniter.New("")))
	require.False(t, res.Passed)
	require.Len(t, res.Summaries, 1)
	assert.Equal(t, 1, res.ExitCode())

	s := res.Summaries[0]
	assert.Contains(t, s, "checkout.FundingSource.DEBIT")
	assert.Contains(t, s, `go-json="debit"`)
	assert.Contains(t, s, `jsoniter="deb"`)

	err := res.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), s)
}

func TestReport_SortsAndDeduplicates(t *testing.T) {
	res := report.Report(wireparity.Divergences{fieldMismatch(), debitMismatch(), fieldMismatch()})
	require.Len(t, res.Records, 2)
	assert.Equal(t, wireparity.KindEnumMismatch, res.Records[0].Kind)
	assert.Equal(t, wireparity.KindFieldNameMismatch, res.Records[1].Kind)
	assert.Contains(t, res.Summaries[1], "B="+wireparity.Undeclared)
}

func TestReport_Idempotent(t *testing.T) {
	in := wireparity.Divergences{fieldMismatch(), debitMismatch()}
	first := report.Report(in)
	second := report.Report(in)
	assert.Equal(t, first.Summaries, second.Summaries)
	// input is not reordered
	assert.Equal(t, wireparity.KindFieldNameMismatch, in[0].Kind)
}

func TestReport_SameNameDifferentPackage(t *testing.T) {
	v1 := fieldMismatch()
	v1.Pkg = "example.com/shop/checkout"
	v2 := fieldMismatch()
	v2.Pkg = "example.com/shop/v2/checkout"
	solo := debitMismatch()
	solo.Pkg = "example.com/shop/checkout"

	res := report.Report(wireparity.Divergences{v2, solo, v1})
	require.Len(t, res.Records, 3)
	require.Len(t, res.Summaries, 3)
	assert.Contains(t, res.Summaries[0], ": checkout.FundingSource.DEBIT ")
	assert.Contains(t, res.Summaries[1], ": example.com/shop/checkout.GooglePayDetails.FundingSource ")
	assert.Contains(t, res.Summaries[2], ": example.com/shop/v2/checkout.GooglePayDetails.FundingSource ")

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, res, report.FormatJSON))
	assert.Contains(t, buf.String(), `"package": "example.com/shop/v2/checkout"`)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	report.Render(&buf, report.Report(wireparity.Divergences{debitMismatch()}), false)
	out := buf.String()
	assert.Contains(t, out, "DEBIT")
	assert.Contains(t, out, `"deb"`)
	assert.Contains(t, out, "1 divergence(s) between codecs")
	assert.NotContains(t, out, "\x1b[")

	buf.Reset()
	report.Render(&buf, report.Report(nil), false)
	assert.Equal(t, "no divergence between codecs\n", buf.String())
}

func TestEncode(t *testing.T) {
	res := report.Report(wireparity.Divergences{debitMismatch(), fieldMismatch()})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.Encode(&buf, res, report.FormatJSON))
		var doc map[string]any
		require.NoError(t, j.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, false, doc["passed"])
		assert.Len(t, doc["records"], 2)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.Encode(&buf, res, report.FormatYAML))
		var doc struct {
			Passed  bool `yaml:"passed"`
			Records []struct {
				Member string `yaml:"member"`
				B      string `yaml:"b"`
			} `yaml:"records"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
		assert.False(t, doc.Passed)
		require.Len(t, doc.Records, 2)
		assert.Equal(t, `"deb"`, doc.Records[0].B)
		assert.Equal(t, wireparity.Undeclared, doc.Records[1].B)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.Encode(&buf, res, report.FormatText))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 3)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, report.Encode(&bytes.Buffer{}, res, "xml"))
	})
}

type recordingTB struct {
	errors []string
	failed bool
}

func (r *recordingTB) Helper() {}
func (r *recordingTB) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}
func (r *recordingTB) FailNow() { r.failed = true }

func TestRequire(t *testing.T) {
	pass := &recordingTB{}
	report.Require(pass, report.Report(nil))
	assert.False(t, pass.failed)
	assert.Empty(t, pass.errors)

	fail := &recordingTB{}
	res := report.Report(wireparity.Divergences{debitMismatch()})
	report.Require(fail, res)
	assert.True(t, fail.failed)
	// headline plus one line per record
	require.Len(t, fail.errors, 2)
	assert.Equal(t, res.Summaries[0], fail.errors[1])
}
