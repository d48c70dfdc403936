package paystack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"amount":           "amount",
		"authorizationUrl": "authorization_url",
		"AccountNumber":    "account_number",
		"parseHTTPBody":    "parse_http_body",
		"customerID":       "customer_id",
		"already_snake":    "already_snake",
		"v2":               "v2",
	}
	for in, want := range cases {
		assert.Equal(t, want, toSnake(in), in)
	}
}

func TestNormalizeKeys(t *testing.T) {
	t.Run("happy: nested objects and arrays", func(t *testing.T) {
		in := []byte(`{"customerCode":"CUS_1","authorizations":[{"authorizationCode":"AUTH_1","cardType":"visa"}]}`)
		out, err := NormalizeKeys(in)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"customer_code":"CUS_1","authorizations":[{"authorization_code":"AUTH_1","card_type":"visa"}]}`,
			string(out))
	})

	t.Run("happy: idempotent on snake_case input", func(t *testing.T) {
		in := []byte(`{"customer_code":"CUS_1","created_at":"2024-01-01"}`)
		out, err := NormalizeKeys(in)
		require.NoError(t, err)
		assert.JSONEq(t, string(in), string(out))
	})

	t.Run("happy: currency codes stay upper-case", func(t *testing.T) {
		in := []byte(`{"feesBreakdown":{"NGN":150,"USD":390,"localRate":"1.5%"}}`)
		out, err := NormalizeKeys(in)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"fees_breakdown":{"NGN":150,"USD":390,"local_rate":"1.5%"}}`,
			string(out))
	})

	t.Run("happy: integers beyond float64 precision are kept exact", func(t *testing.T) {
		in := []byte(`{"transactionId":9007199254740993}`)
		out, err := NormalizeKeys(in)
		require.NoError(t, err)
		assert.Equal(t, `{"transaction_id":9007199254740993}`, string(out))
	})

	t.Run("happy: values are never rewritten", func(t *testing.T) {
		in := []byte(`{"cardType":"someValueWithCaps"}`)
		out, err := NormalizeKeys(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"card_type":"someValueWithCaps"}`, string(out))
	})

	t.Run("bad: invalid JSON is rejected", func(t *testing.T) {
		_, err := NormalizeKeys([]byte(`{"unterminated`))
		assert.Error(t, err)
	})
}
