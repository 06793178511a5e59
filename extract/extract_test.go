package extract_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/wireparity"
	"github.com/reoring/wireparity/codec/gojson"
	"github.com/reoring/wireparity/codec/jsoniter"
	"github.com/reoring/wireparity/extract"
)

type fundingSource string

type base struct {
	Type string `json:"type" wire:"type"`
}

type googlePayDetails struct {
	base
	FundingSource        fundingSource `json:"fundingSource,omitempty"`
	GooglePayToken       string        `json:"googlePayToken" wire:"googlePayToken"`
	GooglePayCardNetwork string        `json:"googlePayCardNetwork"`
	Plain                string
	Wrapped              base `json:"wrapped" wire:"wrapped"`
	internal             string
}

func fixture() (*extract.Extractor, wireparity.ModelType, *wireparity.EnumType) {
	enum := &wireparity.EnumType{Name: "extract_test.fundingSource", Type: reflect.TypeOf(fundingSource(""))}
	lookup := func(t reflect.Type) *wireparity.EnumType {
		if t == enum.Type {
			return enum
		}
		return nil
	}
	x := extract.New(gojson.New(), jsoniter.New(""), lookup)
	mt := wireparity.ModelType{Name: "extract_test.googlePayDetails", Type: reflect.TypeOf(googlePayDetails{})}
	return x, mt, enum
}

func byName(fields []wireparity.FieldDescriptor) map[string]wireparity.FieldDescriptor {
	out := make(map[string]wireparity.FieldDescriptor, len(fields))
	for _, f := range fields {
		out[f.Name] = f
	}
	return out
}

func TestFieldsOf_DeclarationsAreIndependent(t *testing.T) {
	x, mt, enum := fixture()
	fields := x.FieldsOf(mt)

	var order []string
	for _, f := range fields {
		order = append(order, f.Name)
	}
	assert.Equal(t, []string{"FundingSource", "GooglePayToken", "GooglePayCardNetwork", "Plain", "Wrapped"}, order)

	m := byName(fields)

	tok := m["GooglePayToken"]
	assert.Equal(t, wireparity.Declare("googlePayToken"), tok.A)
	assert.Equal(t, wireparity.Declare("googlePayToken"), tok.B)

	network := m["GooglePayCardNetwork"]
	assert.True(t, network.A.Declared)
	assert.False(t, network.B.Declared)
	assert.Equal(t, wireparity.Undeclared, network.B.String())

	plain := m["Plain"]
	assert.False(t, plain.A.Declared)
	assert.False(t, plain.B.Declared)

	fs := m["FundingSource"]
	require.True(t, fs.IsEnum())
	assert.Same(t, enum, fs.Enum)
	assert.False(t, m["GooglePayToken"].IsEnum())
}

func TestFieldsOf_Cached(t *testing.T) {
	x, mt, _ := fixture()
	first := x.FieldsOf(mt)
	second := x.FieldsOf(mt)
	require.NotEmpty(t, first)
	assert.Same(t, &first[0], &second[0])
}

func TestFieldsOf_NonStruct(t *testing.T) {
	x, _, _ := fixture()
	assert.Nil(t, x.FieldsOf(wireparity.ModelType{Name: "x"}))
}

func TestConstantsOf_Copy(t *testing.T) {
	x, _, _ := fixture()
	et := wireparity.EnumType{
		Name: "extract_test.fundingSource",
		Constants: []wireparity.EnumConstant{
			{Name: "CREDIT", Value: fundingSource("credit")},
			{Name: "DEBIT", Value: fundingSource("debit")},
		},
	}
	got := x.ConstantsOf(et)
	require.Len(t, got, 2)
	got[0].A = wireparity.Declare(`"credit"`)
	assert.False(t, et.Constants[0].A.Declared)
}
