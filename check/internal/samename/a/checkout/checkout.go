// Package checkout is one of two test packages that share a name and declare
// the same model.
package checkout

// Details is renamed for codec A only.
type Details struct {
	Network string `json:"network"`
}
