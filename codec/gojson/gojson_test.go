package gojson_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/wireparity/codec/gojson"
)

type channel string

type brokenEnum string

func (brokenEnum) MarshalJSON() ([]byte, error) { return nil, errors.New("boom") }

type sample struct {
	Plain     string
	Renamed   string `json:"renamed,omitempty"`
	OptsOnly  string `json:",omitempty"`
	Skipped   string `json:"-"`
	OtherOnly string `wire:"other"`
}

func TestSerialize_Enum(t *testing.T) {
	c := gojson.New()
	out, err := c.Serialize(channel("Web"))
	require.NoError(t, err)
	assert.Equal(t, `"Web"`, out)
	assert.Equal(t, "go-json", c.Name())
}

func TestSerialize_MarshalerError(t *testing.T) {
	_, err := gojson.New().Serialize(brokenEnum("x"))
	require.Error(t, err)
}

func TestDeclaredName(t *testing.T) {
	c := gojson.New()
	typ := reflect.TypeOf(sample{})
	cases := map[string]struct {
		name string
		ok   bool
	}{
		"Plain":     {"", false},
		"Renamed":   {"renamed", true},
		"OptsOnly":  {"", false},
		"Skipped":   {"-", true},
		"OtherOnly": {"", false},
	}
	for field, want := range cases {
		sf, _ := typ.FieldByName(field)
		name, ok := c.DeclaredName(sf)
		assert.Equal(t, want.ok, ok, field)
		assert.Equal(t, want.name, name, field)
	}
}
