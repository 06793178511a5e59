package checkout

// FundingSource is the funding source of a wallet card.
type FundingSource string

const (
	FundingSourceCredit FundingSource = "credit"
	FundingSourceDebit  FundingSource = "debit"
)

// ResultCode is the outcome of a payment request.
type ResultCode string

const (
	ResultCodeAuthorised       ResultCode = "Authorised"
	ResultCodeRefused          ResultCode = "Refused"
	ResultCodePending          ResultCode = "Pending"
	ResultCodeReceived         ResultCode = "Received"
	ResultCodeCancelled        ResultCode = "Cancelled"
	ResultCodeError            ResultCode = "Error"
	ResultCodeRedirectShopper  ResultCode = "RedirectShopper"
	ResultCodeIdentifyShopper  ResultCode = "IdentifyShopper"
	ResultCodeChallengeShopper ResultCode = "ChallengeShopper"
)

// Channel is the platform the shopper pays from.
type Channel string

const (
	ChannelIOS     Channel = "iOS"
	ChannelAndroid Channel = "Android"
	ChannelWeb     Channel = "Web"
)

// ShopperInteraction is the sales channel through which the shopper gives
// their card details.
type ShopperInteraction string

const (
	ShopperInteractionEcommerce ShopperInteraction = "Ecommerce"
	ShopperInteractionContAuth  ShopperInteraction = "ContAuth"
	ShopperInteractionMoto      ShopperInteraction = "Moto"
	ShopperInteractionPOS       ShopperInteraction = "POS"
)
