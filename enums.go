package paystack

// Currency is an ISO 4217 code accepted by the API.
type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyGHS Currency = "GHS"
	CurrencyZAR Currency = "ZAR"
	CurrencyUSD Currency = "USD"
	CurrencyKES Currency = "KES"
	CurrencyXOF Currency = "XOF"
	CurrencyEGP Currency = "EGP"
	CurrencyRWF Currency = "RWF"
)

// Interval is a subscription billing cadence.
type Interval string

const (
	IntervalHourly     Interval = "hourly"
	IntervalDaily      Interval = "daily"
	IntervalWeekly     Interval = "weekly"
	IntervalMonthly    Interval = "monthly"
	IntervalQuarterly  Interval = "quarterly"
	IntervalBiannually Interval = "biannually"
	IntervalAnnually   Interval = "annually"
)

// Bearer designates who absorbs transaction fees.
type Bearer string

const (
	BearerAccount    Bearer = "account"
	BearerSubaccount Bearer = "subaccount"
)

// RecipientType identifies how a transfer recipient is routed. Bank-routed
// types require a bank code at creation time.
type RecipientType string

const (
	RecipientNuban         RecipientType = "nuban"
	RecipientMobileMoney   RecipientType = "mobile_money"
	RecipientBasa          RecipientType = "basa"
	RecipientGhipss        RecipientType = "ghipss"
	RecipientAuthorization RecipientType = "authorization"
)

// bankRouted reports whether the recipient type pays out through a bank and
// therefore needs a bank code.
func (t RecipientType) bankRouted() bool {
	switch t {
	case RecipientNuban, RecipientBasa, RecipientGhipss:
		return true
	}
	return false
}

// RiskAction controls whether a customer may transact.
type RiskAction string

const (
	RiskActionDefault RiskAction = "default"
	RiskActionAllow   RiskAction = "allow"
	RiskActionDeny    RiskAction = "deny"
)

// IdentificationType is a customer identity-validation method.
type IdentificationType string

const (
	IdentificationBVN         IdentificationType = "bvn"
	IdentificationBankAccount IdentificationType = "bank_account"
)

// DisputeStatus filters dispute listings.
type DisputeStatus string

const (
	DisputeAwaitingMerchantFeedback DisputeStatus = "awaiting-merchant-feedback"
	DisputeAwaitingBankFeedback     DisputeStatus = "awaiting-bank-feedback"
	DisputePending                  DisputeStatus = "pending"
	DisputeResolved                 DisputeStatus = "resolved"
)

// Resolution is the outcome recorded when resolving a dispute.
type Resolution string

const (
	ResolutionMerchantAccepted Resolution = "merchant-accepted"
	ResolutionDeclined         Resolution = "declined"
)

// TerminalEvent is the kind of payload pushed to a physical terminal.
type TerminalEvent string

const (
	TerminalEventInvoice     TerminalEvent = "invoice"
	TerminalEventTransaction TerminalEvent = "transaction"
)

// TerminalAction tells the terminal what to do with a pushed event.
type TerminalAction string

const (
	TerminalActionProcess TerminalAction = "process"
	TerminalActionView    TerminalAction = "view"
	TerminalActionPrint   TerminalAction = "print"
)

// terminalActions maps each event type to the actions the device accepts.
var terminalActions = map[TerminalEvent][]TerminalAction{
	TerminalEventInvoice:     {TerminalActionProcess, TerminalActionView},
	TerminalEventTransaction: {TerminalActionProcess, TerminalActionPrint},
}

// TransferSource is where transfer funds are drawn from.
type TransferSource string

const TransferSourceBalance TransferSource = "balance"

// SplitType is how a transaction split shares funds.
type SplitType string

const (
	SplitPercentage SplitType = "percentage"
	SplitFlat       SplitType = "flat"
)

// PageType distinguishes hosted payment page layouts.
type PageType string

const (
	PageTypePayment      PageType = "payment"
	PageTypeSubscription PageType = "subscription"
	PageTypeProduct      PageType = "product"
	PageTypePlan         PageType = "plan"
)
