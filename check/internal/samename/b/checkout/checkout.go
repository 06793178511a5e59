// Package checkout mirrors samename/a/checkout under another import path.
package checkout

// Details is renamed for codec A only.
type Details struct {
	Network string `json:"network"`
}
