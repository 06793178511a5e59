// Package checkout holds the payment API models whose wire format is kept in
// parity between the go-json (`json` tag) and json-iterator (`wire` tag)
// codecs. Run `wireparity gen --pkgdir model/checkout` after adding a model,
// enum or payment method.
package checkout
