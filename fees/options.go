package fees

import (
	"fmt"

	"github.com/anyulbade/paystack-go"
)

// Service names a priced product line.
type Service string

const (
	ServiceTransactions   Service = "transactions"
	ServiceTransfers      Service = "transfers"
	ServiceVirtualAccount Service = "virtual_account"
)

// CardBrand selects a card network where pricing differs by brand.
type CardBrand string

const (
	CardVisa       CardBrand = "visa"
	CardMastercard CardBrand = "mastercard"
	CardAmex       CardBrand = "amex"
)

// Options selects which pricing formula applies to a charge. The zero value
// means a local transaction with no channel-specific pricing.
type Options struct {
	Service       Service
	International bool
	CardBrand     CardBrand
	EFT           bool
	MobileMoney   bool
}

// Error is a fee-policy validation failure: either the option combination
// is disallowed or the (currency, service) pair has no published pricing.
type Error struct {
	Currency paystack.Currency
	Service  Service
	Reason   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("fees: %s/%s: %s", e.Currency, e.Service, e.Reason)
}

// normalized fills in the default service. Every path that interprets
// Options goes through this so the default is defined exactly once.
func (o Options) normalized() Options {
	if o.Service == "" {
		o.Service = ServiceTransactions
	}
	return o
}

// Validate rejects option combinations the pricing policy disallows.
func (o Options) Validate(currency paystack.Currency) error {
	o = o.normalized()
	if o.CardBrand != "" && o.International {
		return &Error{Currency: currency, Service: o.Service, Reason: "card brand cannot be combined with international pricing"}
	}
	if o.CardBrand != "" && currency != paystack.CurrencyZAR {
		return &Error{Currency: currency, Service: o.Service, Reason: "card brand pricing only applies to ZAR"}
	}
	if o.EFT && currency != paystack.CurrencyZAR {
		return &Error{Currency: currency, Service: o.Service, Reason: "EFT pricing only applies to ZAR"}
	}
	if o.MobileMoney && currency != paystack.CurrencyKES && currency != paystack.CurrencyGHS {
		return &Error{Currency: currency, Service: o.Service, Reason: "mobile money pricing only applies to KES and GHS"}
	}
	return nil
}
