package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	j "github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatTable = "table"
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Render writes a table of divergences followed by a coloured headline.
func Render(w io.Writer, res GateResult, colored bool) {
	if len(res.Records) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Kind", "Type", "Member", res.LabelA, res.LabelB, "Detail"})
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(false)
		table.SetBorder(true)
		label := typeLabels(res.Records)
		for _, d := range res.Records {
			table.Append([]string{d.Kind, label(d), d.Member, d.A.String(), d.B.String(), d.Detail})
		}
		table.Render()
	}

	paint := color.New(color.FgGreen, color.Bold)
	if !res.Passed {
		paint = color.New(color.FgRed, color.Bold)
	}
	if colored {
		paint.EnableColor()
	} else {
		paint.DisableColor()
	}
	paint.Fprintln(w, res.Headline())
}

type recordDoc struct {
	Kind   string `json:"kind" yaml:"kind"`
	Type   string `json:"type" yaml:"type"`
	Pkg    string `json:"package,omitempty" yaml:"package,omitempty"`
	Member string `json:"member,omitempty" yaml:"member,omitempty"`
	A      string `json:"a" yaml:"a"`
	B      string `json:"b" yaml:"b"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

type document struct {
	Passed    bool        `json:"passed" yaml:"passed"`
	CodecA    string      `json:"codecA" yaml:"codecA"`
	CodecB    string      `json:"codecB" yaml:"codecB"`
	Summaries []string    `json:"summaries" yaml:"summaries"`
	Records   []recordDoc `json:"records" yaml:"records"`
}

func toDocument(res GateResult) document {
	doc := document{
		Passed:    res.Passed,
		CodecA:    res.LabelA,
		CodecB:    res.LabelB,
		Summaries: res.Summaries,
		Records:   make([]recordDoc, 0, len(res.Records)),
	}
	for _, d := range res.Records {
		doc.Records = append(doc.Records, recordDoc{
			Kind:   d.Kind,
			Type:   d.Type,
			Pkg:    d.Pkg,
			Member: d.Member,
			A:      d.A.String(),
			B:      d.B.String(),
			Detail: d.Detail,
		})
	}
	return doc
}

// Encode writes res in the given format. Table output is never coloured.
func Encode(w io.Writer, res GateResult, format string) error {
	switch format {
	case FormatTable, "":
		Render(w, res, false)
		return nil
	case FormatText:
		for _, s := range res.Summaries {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w, res.Headline())
		return err
	case FormatJSON:
		enc := j.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toDocument(res))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(res)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("report: unknown format %q", format)
}
