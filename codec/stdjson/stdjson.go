package stdjson

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/reoring/wireparity"
)

// TagKey is the struct tag encoding/json reads field names from.
const TagKey = "json"

// New returns a wireparity.Codec backed by encoding/json.
func New() wireparity.Codec { return codecStd{} }

type codecStd struct{}

func (codecStd) Name() string { return "encoding/json" }

func (codecStd) Serialize(v any) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("encoding/json: panic while serializing %T: %v", v, r)
		}
	}()
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (codecStd) DeclaredName(sf reflect.StructField) (string, bool) {
	return wireparity.TagName(sf, TagKey)
}
