package paystack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionInitialize(t *testing.T) {
	t.Run("happy: posts the request and decodes the handle", func(t *testing.T) {
		var (
			gotPath string
			gotBody map[string]any
		)
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			raw, _ := io.ReadAll(r.Body)
			json.Unmarshal(raw, &gotBody)
			w.Write([]byte(`{
				"status": true,
				"message": "Authorization URL created",
				"data": {
					"authorizationUrl": "https://checkout.paystack.com/abc123",
					"accessCode": "abc123",
					"reference": "ref_1"
				}
			}`))
		})

		resp, err := client.Transactions.Initialize(context.Background(), &InitializeTransactionRequest{
			Email:  "customer@example.com",
			Amount: 500_000,
		})
		require.NoError(t, err)

		assert.Equal(t, "/transaction/initialize", gotPath)
		assert.Equal(t, "customer@example.com", gotBody["email"])
		assert.Equal(t, float64(500_000), gotBody["amount"])

		require.NotNil(t, resp.Data)
		assert.Equal(t, "https://checkout.paystack.com/abc123", resp.Data.AuthorizationURL)
		assert.Equal(t, "ref_1", resp.Data.Reference)
	})

	t.Run("bad: missing email never reaches the network", func(t *testing.T) {
		called := false
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

		_, err := client.Transactions.Initialize(context.Background(), &InitializeTransactionRequest{Amount: 1})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "email", verr.Field)
		assert.False(t, called)
	})

	t.Run("bad: non-positive amount", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.Transactions.Initialize(context.Background(), &InitializeTransactionRequest{
			Email: "customer@example.com",
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "amount", verr.Field)
	})

	t.Run("bad: nil request", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.Transactions.Initialize(context.Background(), nil)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestTransactionVerify(t *testing.T) {
	t.Run("happy: decodes the transaction with nested authorization", func(t *testing.T) {
		var gotPath string
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{
				"status": true,
				"message": "Verification successful",
				"data": {
					"id": 12345,
					"status": "success",
					"reference": "ref_1",
					"amount": 500000,
					"gatewayResponse": "Successful",
					"currency": "NGN",
					"authorization": {
						"authorizationCode": "AUTH_xyz",
						"cardType": "visa",
						"reusable": true
					}
				}
			}`))
		})

		resp, err := client.Transactions.Verify(context.Background(), "ref_1")
		require.NoError(t, err)

		assert.Equal(t, "/transaction/verify/ref_1", gotPath)
		require.NotNil(t, resp.Data)
		assert.Equal(t, int64(12345), resp.Data.ID)
		assert.Equal(t, "Successful", resp.Data.GatewayResponse)
		assert.Equal(t, CurrencyNGN, resp.Data.Currency)
		require.NotNil(t, resp.Data.Authorization)
		assert.Equal(t, "AUTH_xyz", resp.Data.Authorization.AuthorizationCode)
		assert.True(t, resp.Data.Authorization.Reusable)
	})

	t.Run("bad: empty reference", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.Transactions.Verify(context.Background(), "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestTransactionList(t *testing.T) {
	t.Run("happy: filters become query parameters", func(t *testing.T) {
		var gotQuery map[string][]string
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"status":true,"data":[{"id":1},{"id":2}]}`))
		})

		resp, err := client.Transactions.List(context.Background(), &ListTransactionsOptions{
			PerPage: 25,
			Page:    2,
			Status:  "success",
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"25"}, gotQuery["perPage"])
		assert.Equal(t, []string{"2"}, gotQuery["page"])
		assert.Equal(t, []string{"success"}, gotQuery["status"])

		require.NotNil(t, resp.Data)
		require.Len(t, *resp.Data, 2)
		assert.Equal(t, int64(1), (*resp.Data)[0].ID)
	})

	t.Run("happy: nil options send no query", func(t *testing.T) {
		var gotRawQuery string
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotRawQuery = r.URL.RawQuery
			w.Write([]byte(`{"status":true,"data":[]}`))
		})

		_, err := client.Transactions.List(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, gotRawQuery)
	})
}

func TestTransactionChargeAuthorization(t *testing.T) {
	t.Run("bad: missing authorization code", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.Transactions.ChargeAuthorization(context.Background(), &ChargeAuthorizationRequest{
			Email:  "customer@example.com",
			Amount: 1_000,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "authorization_code", verr.Field)
	})
}
