package fees

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/paystack-go"
)

func TestCalculateNigeria(t *testing.T) {
	t.Run("happy: local card below the flat-fee waiver", func(t *testing.T) {
		fee, err := Calculate(240_000, paystack.CurrencyNGN, Options{})
		require.NoError(t, err)
		assert.Equal(t, int64(3_600), fee)
	})

	t.Run("happy: local card above the waiver adds the flat fee", func(t *testing.T) {
		fee, err := Calculate(1_000_000, paystack.CurrencyNGN, Options{})
		require.NoError(t, err)
		assert.Equal(t, int64(25_000), fee)
	})

	t.Run("happy: local card fee is capped", func(t *testing.T) {
		fee, err := Calculate(100_000_000, paystack.CurrencyNGN, Options{})
		require.NoError(t, err)
		assert.Equal(t, int64(200_000), fee)
	})

	t.Run("happy: cap holds near the int64 limit", func(t *testing.T) {
		fee, err := Calculate(math.MaxInt64/100, paystack.CurrencyNGN, Options{})
		require.NoError(t, err)
		assert.Equal(t, int64(200_000), fee)

		intl, err := Calculate(math.MaxInt64/100, paystack.CurrencyNGN, Options{International: true})
		require.NoError(t, err)
		assert.Positive(t, intl)

		dva, err := Calculate(math.MaxInt64/100, paystack.CurrencyNGN, Options{Service: ServiceVirtualAccount})
		require.NoError(t, err)
		assert.Equal(t, int64(30_000), dva)
	})

	t.Run("happy: international card is not capped", func(t *testing.T) {
		fee, err := Calculate(100_000_000, paystack.CurrencyNGN, Options{International: true})
		require.NoError(t, err)
		assert.Equal(t, int64(3_910_000), fee)
	})

	t.Run("happy: transfer tiers", func(t *testing.T) {
		for _, tc := range []struct {
			amount int64
			want   int64
		}{
			{500_000, 1_000},
			{500_001, 2_500},
			{5_000_000, 2_500},
			{5_000_001, 5_000},
		} {
			fee, err := Calculate(tc.amount, paystack.CurrencyNGN, Options{Service: ServiceTransfers})
			require.NoError(t, err)
			assert.Equal(t, tc.want, fee, "amount %d", tc.amount)
		}
	})

	t.Run("happy: virtual account fee is capped", func(t *testing.T) {
		fee, err := Calculate(10_000_000, paystack.CurrencyNGN, Options{Service: ServiceVirtualAccount})
		require.NoError(t, err)
		assert.Equal(t, int64(30_000), fee)
	})

	t.Run("bad: negative amount", func(t *testing.T) {
		_, err := Calculate(-1, paystack.CurrencyNGN, Options{})
		var ferr *Error
		require.ErrorAs(t, err, &ferr)
	})
}

func TestCalculateGhana(t *testing.T) {
	t.Run("happy: local card", func(t *testing.T) {
		fee, err := Calculate(100_000, paystack.CurrencyGHS, Options{})
		require.NoError(t, err)
		assert.Equal(t, int64(1_950), fee)
	})

	t.Run("happy: transfers are a flat fee", func(t *testing.T) {
		fee, err := Calculate(5_000_000, paystack.CurrencyGHS, Options{Service: ServiceTransfers})
		require.NoError(t, err)
		assert.Equal(t, int64(100), fee)
	})
}

func TestCalculateSouthAfrica(t *testing.T) {
	t.Run("happy: local card keeps the flat component", func(t *testing.T) {
		fee, err := Calculate(100_000, paystack.CurrencyZAR, Options{})
		require.NoError(t, err)
		assert.Equal(t, int64(3_000), fee)
	})

	t.Run("happy: amex is priced like international", func(t *testing.T) {
		amex, err := Calculate(100_000, paystack.CurrencyZAR, Options{CardBrand: CardAmex})
		require.NoError(t, err)
		intl, err := Calculate(100_000, paystack.CurrencyZAR, Options{International: true})
		require.NoError(t, err)
		assert.Equal(t, intl, amex)
		assert.Equal(t, int64(3_200), amex)
	})

	t.Run("happy: EFT fee is capped", func(t *testing.T) {
		fee, err := Calculate(10_000_000, paystack.CurrencyZAR, Options{EFT: true})
		require.NoError(t, err)
		assert.Equal(t, int64(500), fee)
	})
}

func TestCalculateKenya(t *testing.T) {
	t.Run("happy: card vs mobile money vs international", func(t *testing.T) {
		card, err := Calculate(100_000, paystack.CurrencyKES, Options{})
		require.NoError(t, err)
		assert.Equal(t, int64(2_900), card)

		mpesa, err := Calculate(100_000, paystack.CurrencyKES, Options{MobileMoney: true})
		require.NoError(t, err)
		assert.Equal(t, int64(1_500), mpesa)

		intl, err := Calculate(100_000, paystack.CurrencyKES, Options{International: true})
		require.NoError(t, err)
		assert.Equal(t, int64(3_800), intl)
	})

	t.Run("happy: mobile wallet transfer tiers", func(t *testing.T) {
		for _, tc := range []struct {
			amount int64
			want   int64
		}{
			{150_000, 2_000},
			{150_001, 4_000},
			{2_000_000, 4_000},
			{2_000_001, 6_000},
		} {
			fee, err := Calculate(tc.amount, paystack.CurrencyKES, Options{Service: ServiceTransfers, MobileMoney: true})
			require.NoError(t, err)
			assert.Equal(t, tc.want, fee, "amount %d", tc.amount)
		}
	})

	t.Run("bad: non-wallet transfers are not priced", func(t *testing.T) {
		_, err := Calculate(100_000, paystack.CurrencyKES, Options{Service: ServiceTransfers})
		var ferr *Error
		require.ErrorAs(t, err, &ferr)
	})
}

func TestCalculateFlatRateCurrencies(t *testing.T) {
	for _, tc := range []struct {
		currency paystack.Currency
		want     int64
	}{
		{paystack.CurrencyUSD, 4_000},
		{paystack.CurrencyXOF, 3_200},
		{paystack.CurrencyEGP, 2_950},
		{paystack.CurrencyRWF, 2_900},
	} {
		fee, err := Calculate(100_000, tc.currency, Options{})
		require.NoError(t, err)
		assert.Equal(t, tc.want, fee, string(tc.currency))
	}
}

func TestCalculateRejections(t *testing.T) {
	t.Run("bad: unsupported currency", func(t *testing.T) {
		_, err := Calculate(100_000, paystack.Currency("GBP"), Options{})
		var ferr *Error
		require.ErrorAs(t, err, &ferr)
		assert.Contains(t, ferr.Reason, "no published pricing")
	})

	t.Run("bad: unsupported service for currency", func(t *testing.T) {
		_, err := Calculate(100_000, paystack.CurrencyUSD, Options{Service: ServiceTransfers})
		var ferr *Error
		require.ErrorAs(t, err, &ferr)
	})

	t.Run("bad: card brand combined with international", func(t *testing.T) {
		_, err := Calculate(100_000, paystack.CurrencyZAR, Options{CardBrand: CardVisa, International: true})
		var ferr *Error
		require.ErrorAs(t, err, &ferr)
	})

	t.Run("bad: card brand outside ZAR", func(t *testing.T) {
		_, err := Calculate(100_000, paystack.CurrencyNGN, Options{CardBrand: CardVisa})
		var ferr *Error
		require.ErrorAs(t, err, &ferr)
	})

	t.Run("bad: EFT outside ZAR", func(t *testing.T) {
		_, err := Calculate(100_000, paystack.CurrencyNGN, Options{EFT: true})
		var ferr *Error
		require.ErrorAs(t, err, &ferr)
	})

	t.Run("bad: mobile money outside KES and GHS", func(t *testing.T) {
		_, err := Calculate(100_000, paystack.CurrencyNGN, Options{MobileMoney: true})
		var ferr *Error
		require.ErrorAs(t, err, &ferr)
	})
}
