package jsoniter

import (
	"fmt"
	"reflect"
	"unsafe"

	ji "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/reoring/wireparity"
)

// DefaultTagKey is the struct tag json-iterator reads field names from unless
// configured otherwise.
const DefaultTagKey = "wire"

// WireValuer is implemented by enum types that declare their wire value for this
// codec. It plays the role a per-type type adapter plays in other JSON
// libraries and takes precedence over json.Marshaler.
type WireValuer interface {
	WireValue() string
}

var wireValuerType = reflect.TypeOf((*WireValuer)(nil)).Elem()

// New returns a wireparity.Codec backed by a frozen json-iterator config that
// reads field names from tagKey. An empty tagKey selects DefaultTagKey.
func New(tagKey string) wireparity.Codec {
	if tagKey == "" {
		tagKey = DefaultTagKey
	}
	api := ji.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		TagKey:                 tagKey,
	}.Froze()
	// Scoped to this config; the package-level jsoniter registries stay untouched.
	api.RegisterExtension(&wireValueExtension{})
	return &codecJSONIter{api: api, tagKey: tagKey}
}

type codecJSONIter struct {
	api    ji.API
	tagKey string
}

func (c *codecJSONIter) Name() string { return "jsoniter" }

// TagKey reports the struct tag this codec reads.
func (c *codecJSONIter) TagKey() string { return c.tagKey }

func (c *codecJSONIter) Serialize(v any) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("jsoniter: panic while serializing %T: %v", v, r)
		}
	}()
	return c.api.MarshalToString(v)
}

func (c *codecJSONIter) DeclaredName(sf reflect.StructField) (string, bool) {
	return wireparity.TagName(sf, c.tagKey)
}

// ---- enum extension ----

type wireValueExtension struct {
	ji.DummyExtension
}

func (e *wireValueExtension) CreateEncoder(typ reflect2.Type) ji.ValEncoder {
	if typ.Kind() == reflect.Pointer || !typ.Type1().Implements(wireValuerType) {
		return nil
	}
	return &wireValueEncoder{typ: typ}
}

type wireValueEncoder struct {
	typ reflect2.Type
}

func (enc *wireValueEncoder) Encode(ptr unsafe.Pointer, stream *ji.Stream) {
	v := enc.typ.UnsafeIndirect(ptr).(WireValuer)
	stream.WriteString(v.WireValue())
}

func (enc *wireValueEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return reflect.ValueOf(enc.typ.UnsafeIndirect(ptr)).IsZero()
}
