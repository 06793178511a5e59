package checkout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/reoring/wireparity"
	"github.com/reoring/wireparity/check"
	"github.com/reoring/wireparity/codec/gojson"
	"github.com/reoring/wireparity/codec/jsoniter"
	"github.com/reoring/wireparity/model/checkout"
	"github.com/reoring/wireparity/registry"
	"github.com/reoring/wireparity/report"
)

const namespace = "github.com/reoring/wireparity/model"

// TestWireParity fails the build when the two codecs disagree on any model.
func TestWireParity(t *testing.T) {
	a, b := gojson.New(), jsoniter.New(jsoniter.DefaultTagKey)
	got, err := check.Suite{
		Namespace: namespace,
		A:         a,
		B:         b,
		Logger:    zaptest.NewLogger(t),
		Options:   []check.Option{check.WithPayloads(true), check.WithStrictUndeclared(true)},
	}.Run()
	require.NoError(t, err)
	report.Require(t, report.Report(got, report.WithCodecs(a, b)))
}

// renamingCodec rewrites a wire value after serializing, like a codec whose
// adapter for one constant is misconfigured.
type renamingCodec struct {
	wireparity.Codec
	from, to string
}

func (c renamingCodec) Serialize(v any) (string, error) {
	s, err := c.Codec.Serialize(v)
	return strings.ReplaceAll(s, c.from, c.to), err
}

func TestWireParity_MisconfiguredDebit(t *testing.T) {
	a := gojson.New()
	b := renamingCodec{Codec: jsoniter.New(jsoniter.DefaultTagKey), from: `"debit"`, to: `"deb"`}
	got, err := check.Suite{
		Namespace: namespace,
		A:         a,
		B:         b,
		Logger:    zaptest.NewLogger(t),
		Options:   []check.Option{check.WithPayloads(true), check.WithStrictUndeclared(true)},
	}.Run()
	require.NoError(t, err)

	res := report.Report(got, report.WithCodecs(a, b))
	assert.False(t, res.Passed)
	assert.Equal(t, 1, res.ExitCode())
	require.Len(t, res.Summaries, 1)
	assert.Contains(t, res.Summaries[0], "checkout.FundingSource.DEBIT")
	assert.Contains(t, res.Summaries[0], `go-json="debit"`)
	assert.Contains(t, res.Summaries[0], `jsoniter="deb"`)
}

func TestDiscovery(t *testing.T) {
	models, err := registry.Default.DiscoverModelTypes(namespace)
	require.NoError(t, err)
	var names []string
	for _, m := range models {
		names = append(names, m.Name)
		if m.Name == "checkout.GooglePayDetails" {
			assert.True(t, m.Polymorphic)
			assert.Equal(t, "googlepay", m.DiscriminatorValue)
		}
	}
	assert.Equal(t, []string{
		"checkout.Amount",
		"checkout.CardDetails",
		"checkout.GenericPaymentMethodDetails",
		"checkout.GooglePayDetails",
		"checkout.IdealDetails",
		"checkout.PaymentRequest",
		"checkout.PaymentResponse",
	}, names)

	enums, err := registry.Default.DiscoverEnumTypes(models)
	require.NoError(t, err)
	require.Len(t, enums, 4)
	assert.Equal(t, "checkout.FundingSource", enums[1].Name)
}

func TestUnmarshalPaymentMethodDetails(t *testing.T) {
	pm, err := checkout.UnmarshalPaymentMethodDetails([]byte(`{"type":"googlepay","fundingSource":"debit","googlePayToken":"tok"}`))
	require.NoError(t, err)
	gp, ok := pm.(checkout.GooglePayDetails)
	require.True(t, ok)
	assert.Equal(t, "googlepay", gp.Type)
	assert.Equal(t, checkout.FundingSourceDebit, gp.FundingSource)
	assert.Equal(t, "tok", gp.GooglePayToken)

	pm, err = checkout.UnmarshalPaymentMethodDetails([]byte(`{"type":"ideal","issuer":"1121"}`))
	require.NoError(t, err)
	assert.Equal(t, checkout.IdealDetails{GenericPaymentMethodDetails: checkout.GenericPaymentMethodDetails{Type: "ideal"}, Issuer: "1121"}, pm)
}

func TestUnmarshalPaymentMethodDetails_Errors(t *testing.T) {
	_, err := checkout.UnmarshalPaymentMethodDetails([]byte(`{"issuer":"1121"}`))
	assert.ErrorIs(t, err, checkout.ErrMissingType)

	_, err = checkout.UnmarshalPaymentMethodDetails([]byte(`{"type":7}`))
	assert.ErrorIs(t, err, checkout.ErrMissingType)

	_, err = checkout.UnmarshalPaymentMethodDetails([]byte(`{"type":"paypal"}`))
	assert.ErrorIs(t, err, checkout.ErrUnknownPaymentMethod)

	_, err = checkout.UnmarshalPaymentMethodDetails([]byte(`{"type":`))
	assert.Error(t, err)
}

func TestUnmarshalPaymentRequest(t *testing.T) {
	req, err := checkout.UnmarshalPaymentRequest([]byte(`{
		"amount": {"currency": "EUR", "value": 1000},
		"merchantAccount": "TestMerchant",
		"reference": "order-1",
		"channel": "Web",
		"paymentMethod": {"type": "scheme", "holderName": "J. Smith", "fundingSource": "credit"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, checkout.Amount{Currency: "EUR", Value: 1000}, req.Amount)
	assert.Equal(t, checkout.ChannelWeb, req.Channel)
	card, ok := req.PaymentMethod.(checkout.CardDetails)
	require.True(t, ok)
	assert.Equal(t, "J. Smith", card.HolderName)
	assert.Equal(t, checkout.FundingSourceCredit, card.FundingSource)

	req, err = checkout.UnmarshalPaymentRequest([]byte(`{"reference":"order-2","paymentMethod":null}`))
	require.NoError(t, err)
	assert.Nil(t, req.PaymentMethod)
}

// Both codecs agree on a populated request, not only on zero values.
func TestPopulatedRequestParity(t *testing.T) {
	req := checkout.PaymentRequest{
		Amount:          checkout.Amount{Currency: "EUR", Value: 1000},
		MerchantAccount: "TestMerchant",
		Reference:       "order-1",
		PaymentMethod: checkout.GooglePayDetails{
			GenericPaymentMethodDetails: checkout.GenericPaymentMethodDetails{Type: "googlepay"},
			FundingSource:               checkout.FundingSourceDebit,
		},
		ShopperInteraction: checkout.ShopperInteractionContAuth,
	}
	a, err := gojson.New().Serialize(req)
	require.NoError(t, err)
	b, err := jsoniter.New(jsoniter.DefaultTagKey).Serialize(req)
	require.NoError(t, err)
	assert.JSONEq(t, a, b)
	assert.Contains(t, a, `"fundingSource":"debit"`)
}
