package gojson

import (
	"fmt"
	"reflect"

	j "github.com/goccy/go-json"

	"github.com/reoring/wireparity"
)

// TagKey is the struct tag go-json reads field names from.
const TagKey = "json"

// New returns a wireparity.Codec backed by goccy/go-json.
func New() wireparity.Codec { return codecGoJSON{} }

type codecGoJSON struct{}

func (codecGoJSON) Name() string { return "go-json" }

func (codecGoJSON) Serialize(v any) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("go-json: panic while serializing %T: %v", v, r)
		}
	}()
	b, err := j.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (codecGoJSON) DeclaredName(sf reflect.StructField) (string, bool) {
	return wireparity.TagName(sf, TagKey)
}
