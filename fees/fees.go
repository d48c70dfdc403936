// Package fees computes Paystack's published charges for a transaction,
// transfer, or virtual-account payment. All amounts are integers in the
// currency's minor unit (kobo, pesewa, cent); all formulas are pure.
package fees

import (
	"github.com/anyulbade/paystack-go"
)

// Percentage rates in basis points, flat fees in minor units.
const (
	ngnLocalRate  = 150 // 1.5%
	ngnIntlRate   = 390 // 3.9%
	ngnFlatFee    = 10_000
	ngnFlatWaiver = 250_000 // flat fee waived below this amount
	ngnFeeCap     = 200_000
	ngnDVARate    = 100 // 1%
	ngnDVACap     = 30_000

	ghsLocalRate   = 195 // 1.95%
	ghsIntlRate    = 290 // 2.9%
	ghsTransferFee = 100

	zarCardRate = 290 // 2.9%
	zarIntlRate = 310 // 3.1%
	zarCardFlat = 100
	zarEFTRate  = 200 // 2%
	zarEFTCap   = 500

	kesCardRate  = 290 // 2.9%
	kesMpesaRate = 150 // 1.5%
	kesIntlRate  = 380 // 3.8%

	usdRate = 390 // 3.9%
	usdFlat = 100

	xofRate = 320 // 3.2%
	egpRate = 270 // 2.7%
	egpFlat = 250
	rwfRate = 290 // 2.9%
)

// Kenyan mobile-wallet transfer brackets: up to the bound, the flat fee.
var kesTransferTiers = []struct {
	upTo int64
	fee  int64
}{
	{150_000, 2_000},
	{2_000_000, 4_000},
}

const kesTransferTopFee = 6_000

// Calculate returns the fee for a charge of amount (in the currency's minor
// unit) priced under opts. Unsupported (currency, service) pairs and
// disallowed option combinations return an *Error.
func Calculate(amount int64, currency paystack.Currency, opts Options) (int64, error) {
	if amount < 0 {
		return 0, &Error{Currency: currency, Service: opts.Service, Reason: "amount cannot be negative"}
	}
	opts = opts.normalized()
	if err := opts.Validate(currency); err != nil {
		return 0, err
	}

	switch currency {
	case paystack.CurrencyNGN:
		return nigeriaFee(amount, opts)
	case paystack.CurrencyGHS:
		return ghanaFee(amount, opts)
	case paystack.CurrencyZAR:
		return southAfricaFee(amount, opts)
	case paystack.CurrencyKES:
		return kenyaFee(amount, opts)
	case paystack.CurrencyUSD:
		return flatRateFee(amount, currency, opts, usdRate, usdFlat)
	case paystack.CurrencyXOF:
		return flatRateFee(amount, currency, opts, xofRate, 0)
	case paystack.CurrencyEGP:
		return flatRateFee(amount, currency, opts, egpRate, egpFlat)
	case paystack.CurrencyRWF:
		return flatRateFee(amount, currency, opts, rwfRate, 0)
	}
	return 0, &Error{Currency: currency, Service: opts.Service, Reason: "no published pricing for this currency"}
}

// percentage computes amount*bps/10_000. The split keeps the intermediate
// products inside int64 even when amount is near math.MaxInt64.
func percentage(amount int64, bps int64) int64 {
	return amount/10_000*bps + amount%10_000*bps/10_000
}

func nigeriaFee(amount int64, opts Options) (int64, error) {
	switch opts.Service {
	case ServiceTransactions:
		if opts.International {
			return percentage(amount, ngnIntlRate) + ngnFlatFee, nil
		}
		fee := percentage(amount, ngnLocalRate)
		if amount >= ngnFlatWaiver {
			fee += ngnFlatFee
		}
		if fee > ngnFeeCap {
			fee = ngnFeeCap
		}
		return fee, nil
	case ServiceTransfers:
		switch {
		case amount <= 500_000:
			return 1_000, nil
		case amount <= 5_000_000:
			return 2_500, nil
		default:
			return 5_000, nil
		}
	case ServiceVirtualAccount:
		fee := percentage(amount, ngnDVARate)
		if fee > ngnDVACap {
			fee = ngnDVACap
		}
		return fee, nil
	}
	return 0, &Error{Currency: paystack.CurrencyNGN, Service: opts.Service, Reason: "no published pricing for this service"}
}

func ghanaFee(amount int64, opts Options) (int64, error) {
	switch opts.Service {
	case ServiceTransactions:
		if opts.International {
			return percentage(amount, ghsIntlRate), nil
		}
		return percentage(amount, ghsLocalRate), nil
	case ServiceTransfers:
		return ghsTransferFee, nil
	}
	return 0, &Error{Currency: paystack.CurrencyGHS, Service: opts.Service, Reason: "no published pricing for this service"}
}

func southAfricaFee(amount int64, opts Options) (int64, error) {
	if opts.Service != ServiceTransactions {
		return 0, &Error{Currency: paystack.CurrencyZAR, Service: opts.Service, Reason: "no published pricing for this service"}
	}
	if opts.EFT {
		fee := percentage(amount, zarEFTRate)
		if fee > zarEFTCap {
			fee = zarEFTCap
		}
		return fee, nil
	}
	if opts.International || opts.CardBrand == CardAmex {
		return percentage(amount, zarIntlRate) + zarCardFlat, nil
	}
	return percentage(amount, zarCardRate) + zarCardFlat, nil
}

func kenyaFee(amount int64, opts Options) (int64, error) {
	switch opts.Service {
	case ServiceTransactions:
		if opts.International {
			return percentage(amount, kesIntlRate), nil
		}
		if opts.MobileMoney {
			return percentage(amount, kesMpesaRate), nil
		}
		return percentage(amount, kesCardRate), nil
	case ServiceTransfers:
		if !opts.MobileMoney {
			return 0, &Error{Currency: paystack.CurrencyKES, Service: opts.Service, Reason: "only mobile wallet transfers are priced"}
		}
		for _, tier := range kesTransferTiers {
			if amount <= tier.upTo {
				return tier.fee, nil
			}
		}
		return kesTransferTopFee, nil
	}
	return 0, &Error{Currency: paystack.CurrencyKES, Service: opts.Service, Reason: "no published pricing for this service"}
}

// flatRateFee covers the currencies priced as a single percentage plus an
// optional flat fee, transactions only.
func flatRateFee(amount int64, currency paystack.Currency, opts Options, bps, flat int64) (int64, error) {
	if opts.Service != ServiceTransactions {
		return 0, &Error{Currency: currency, Service: opts.Service, Reason: "no published pricing for this service"}
	}
	return percentage(amount, bps) + flat, nil
}
