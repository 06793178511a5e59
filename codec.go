package wireparity

import "reflect"

// Codec is the contract a JSON library adapter exposes to the checker. The
// checker never looks past it, so any serializer can be plugged in.
type Codec interface {
	// Name identifies the codec in reports, e.g. "go-json".
	Name() string
	// Serialize renders v as JSON text.
	Serialize(v any) (string, error)
	// DeclaredName returns the wire name the codec declares for sf, if any.
	DeclaredName(sf reflect.StructField) (string, bool)
}
