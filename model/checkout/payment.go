package checkout

// Amount is a value in minor units of a currency.
type Amount struct {
	Currency string `json:"currency" wire:"currency"`
	Value    int64  `json:"value" wire:"value"`
}

// PaymentRequest asks to charge an amount with one payment method.
type PaymentRequest struct {
	Amount             Amount               `json:"amount" wire:"amount"`
	MerchantAccount    string               `json:"merchantAccount" wire:"merchantAccount"`
	Reference          string               `json:"reference" wire:"reference"`
	PaymentMethod      PaymentMethodDetails `json:"paymentMethod" wire:"paymentMethod"`
	ReturnURL          string               `json:"returnUrl,omitempty" wire:"returnUrl,omitempty"`
	ShopperReference   string               `json:"shopperReference,omitempty" wire:"shopperReference,omitempty"`
	Channel            Channel              `json:"channel,omitempty" wire:"channel,omitempty"`
	ShopperInteraction ShopperInteraction   `json:"shopperInteraction,omitempty" wire:"shopperInteraction,omitempty"`
	Metadata           map[string]string    `json:"metadata,omitempty" wire:"metadata,omitempty"`
}

// PaymentResponse is the outcome of a PaymentRequest.
type PaymentResponse struct {
	PSPReference   string            `json:"pspReference,omitempty" wire:"pspReference,omitempty"`
	ResultCode     ResultCode        `json:"resultCode,omitempty" wire:"resultCode,omitempty"`
	RefusalReason  string            `json:"refusalReason,omitempty" wire:"refusalReason,omitempty"`
	Amount         *Amount           `json:"amount,omitempty" wire:"amount,omitempty"`
	AdditionalData map[string]string `json:"additionalData,omitempty" wire:"additionalData,omitempty"`
}
