package checkout

import (
	"errors"
	"fmt"
	"reflect"

	j "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/reoring/wireparity/registry"
)

var (
	ErrMissingType            = errors.New("checkout: payment method has no type")
	ErrUnknownPaymentMethod   = errors.New("checkout: unknown payment method type")
	paymentMethodDetailsIface = reflect.TypeOf((*PaymentMethodDetails)(nil)).Elem()
)

// UnmarshalPaymentMethodDetails decodes a payment method object into the
// variant its "type" member names.
func UnmarshalPaymentMethodDetails(data []byte) (PaymentMethodDetails, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("checkout: invalid payment method JSON")
	}
	typ := gjson.GetBytes(data, "type")
	if !typ.Exists() || typ.Type != gjson.String || typ.Str == "" {
		return nil, ErrMissingType
	}
	fam, ok := registry.Default.FamilyOf(paymentMethodDetailsIface)
	if !ok {
		return nil, fmt.Errorf("checkout: payment method family is not registered")
	}
	vt, ok := fam.Resolve(typ.Str)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPaymentMethod, typ.Str)
	}
	ptr := reflect.New(vt)
	if err := j.Unmarshal(data, ptr.Interface()); err != nil {
		return nil, fmt.Errorf("checkout: decode %s: %w", vt.Name(), err)
	}
	return ptr.Elem().Interface().(PaymentMethodDetails), nil
}

// UnmarshalPaymentRequest decodes a payment request including its polymorphic
// payment method.
func UnmarshalPaymentRequest(data []byte) (*PaymentRequest, error) {
	type plain PaymentRequest
	var aux struct {
		plain
		PaymentMethod j.RawMessage `json:"paymentMethod"`
	}
	if err := j.Unmarshal(data, &aux); err != nil {
		return nil, fmt.Errorf("checkout: decode PaymentRequest: %w", err)
	}
	req := PaymentRequest(aux.plain)
	if len(aux.PaymentMethod) > 0 && string(aux.PaymentMethod) != "null" {
		pm, err := UnmarshalPaymentMethodDetails(aux.PaymentMethod)
		if err != nil {
			return nil, err
		}
		req.PaymentMethod = pm
	}
	return &req, nil
}
