package checkout

import "github.com/reoring/wireparity"

// PaymentMethodDetails is implemented by every payment method a shopper can
// pay with. The "type" member selects the concrete variant on the wire.
//
//wireparity:family name=paymentMethodDetails discriminator=Type
type PaymentMethodDetails interface {
	wireparity.Variant
	isPaymentMethodDetails()
}

// GenericPaymentMethodDetails carries the discriminator shared by all payment
// methods.
type GenericPaymentMethodDetails struct {
	Type string `json:"type,omitempty" wire:"type,omitempty"`
}

// GooglePayDetails pays with a Google Pay token.
type GooglePayDetails struct {
	GenericPaymentMethodDetails
	FundingSource        FundingSource `json:"fundingSource,omitempty" wire:"fundingSource,omitempty"`
	GooglePayCardNetwork string        `json:"googlePayCardNetwork,omitempty" wire:"googlePayCardNetwork,omitempty"`
	GooglePayToken       string        `json:"googlePayToken,omitempty" wire:"googlePayToken,omitempty"`
}

func (GooglePayDetails) DiscriminatorValue() string { return "googlepay" }
func (GooglePayDetails) isPaymentMethodDetails()    {}

// CardDetails pays with card scheme data.
type CardDetails struct {
	GenericPaymentMethodDetails
	Number              string        `json:"number,omitempty" wire:"number,omitempty"`
	ExpiryMonth         string        `json:"expiryMonth,omitempty" wire:"expiryMonth,omitempty"`
	ExpiryYear          string        `json:"expiryYear,omitempty" wire:"expiryYear,omitempty"`
	CVC                 string        `json:"cvc,omitempty" wire:"cvc,omitempty"`
	HolderName          string        `json:"holderName,omitempty" wire:"holderName,omitempty"`
	EncryptedCardNumber string        `json:"encryptedCardNumber,omitempty" wire:"encryptedCardNumber,omitempty"`
	FundingSource       FundingSource `json:"fundingSource,omitempty" wire:"fundingSource,omitempty"`
}

func (CardDetails) DiscriminatorValue() string { return "scheme" }
func (CardDetails) isPaymentMethodDetails()    {}

// IdealDetails pays through an iDEAL issuer.
type IdealDetails struct {
	GenericPaymentMethodDetails
	Issuer string `json:"issuer,omitempty" wire:"issuer,omitempty"`
}

func (IdealDetails) DiscriminatorValue() string { return "ideal" }
func (IdealDetails) isPaymentMethodDetails()    {}
