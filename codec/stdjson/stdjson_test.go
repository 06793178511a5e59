package stdjson_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/wireparity/codec/stdjson"
)

type resultCode string

func TestSerialize(t *testing.T) {
	c := stdjson.New()
	out, err := c.Serialize(resultCode("Authorised"))
	require.NoError(t, err)
	assert.Equal(t, `"Authorised"`, out)
	assert.Equal(t, "encoding/json", c.Name())
}

func TestSerialize_Unsupported(t *testing.T) {
	_, err := stdjson.New().Serialize(make(chan int))
	require.Error(t, err)
}

func TestDeclaredName(t *testing.T) {
	type m struct {
		PspReference string `json:"pspReference"`
	}
	sf, _ := reflect.TypeOf(m{}).FieldByName("PspReference")
	name, ok := stdjson.New().DeclaredName(sf)
	assert.True(t, ok)
	assert.Equal(t, "pspReference", name)
}
