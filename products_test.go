package paystack

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreate(t *testing.T) {
	valid := func() *ProductRequest {
		return &ProductRequest{
			Name:     "Widget",
			Price:    50_000,
			Currency: CurrencyNGN,
		}
	}

	t.Run("happy: finite quantity", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":true,"data":{"id":1,"name":"Widget"}}`))
		})

		req := valid()
		req.Quantity = 10
		resp, err := client.Products.Create(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, resp.Data)
		assert.Equal(t, "Widget", resp.Data.Name)
	})

	t.Run("happy: unlimited with no quantity", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":true,"data":{"id":1}}`))
		})

		req := valid()
		req.Unlimited = true
		_, err := client.Products.Create(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("bad: unlimited stock with a finite quantity", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

		req := valid()
		req.Unlimited = true
		req.Quantity = 10
		_, err := client.Products.Create(context.Background(), req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "quantity", verr.Field)
	})

	t.Run("bad: missing price", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

		req := valid()
		req.Price = 0
		_, err := client.Products.Create(context.Background(), req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "price", verr.Field)
	})
}

func TestProductUpdate(t *testing.T) {
	t.Run("bad: conflict rule also applies on update", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.Products.Update(context.Background(), 1, &ProductRequest{
			Name:      "Widget",
			Price:     50_000,
			Currency:  CurrencyNGN,
			Unlimited: true,
			Quantity:  3,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
