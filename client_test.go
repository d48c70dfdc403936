package paystack

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithSecretKey("sk_test_abc"), WithBaseURL(srv.URL)}, opts...)
	client, err := NewClient(opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("happy: explicit key", func(t *testing.T) {
		client, err := NewClient(WithSecretKey("sk_test_abc"))
		require.NoError(t, err)
		assert.Equal(t, "sk_test_abc", client.secretKey)
	})

	t.Run("happy: key from environment", func(t *testing.T) {
		t.Setenv(envSecretKey, "sk_test_env")
		client, err := NewClient()
		require.NoError(t, err)
		assert.Equal(t, "sk_test_env", client.secretKey)
	})

	t.Run("happy: explicit key wins over environment", func(t *testing.T) {
		t.Setenv(envSecretKey, "sk_test_env")
		client, err := NewClient(WithSecretKey("sk_test_abc"))
		require.NoError(t, err)
		assert.Equal(t, "sk_test_abc", client.secretKey)
	})

	t.Run("bad: no key anywhere", func(t *testing.T) {
		t.Setenv(envSecretKey, "")
		client, err := NewClient()
		assert.Nil(t, client)
		assert.ErrorIs(t, err, ErrNoSecretKey)
	})
}

func TestExecute(t *testing.T) {
	t.Run("happy: bearer and content headers are set", func(t *testing.T) {
		var got *http.Request
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.Clone(context.Background())
			w.Write([]byte(`{"status":true,"message":"ok"}`))
		})

		_, _, err := client.execute(context.Background(), http.MethodGet, "/transaction", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer sk_test_abc", got.Header.Get("Authorization"))
		assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
		assert.Equal(t, userAgent, got.Header.Get("User-Agent"))
	})

	t.Run("happy: GET drops a supplied body", func(t *testing.T) {
		var contentLength int64
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			contentLength = r.ContentLength
			w.Write([]byte(`{"status":true}`))
		})

		_, _, err := client.execute(context.Background(), http.MethodGet, "/transaction", map[string]string{"x": "y"})
		require.NoError(t, err)
		assert.Zero(t, contentLength)
	})

	t.Run("happy: DELETE drops a supplied body", func(t *testing.T) {
		var contentLength int64
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			contentLength = r.ContentLength
			w.Write([]byte(`{"status":true}`))
		})

		_, _, err := client.execute(context.Background(), http.MethodDelete, "/transaction/1", map[string]string{"x": "y"})
		require.NoError(t, err)
		assert.Zero(t, contentLength)
	})

	t.Run("bad: unsupported verb fails before any request", func(t *testing.T) {
		called := false
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, _, err := client.execute(context.Background(), "TRACE", "/transaction", nil)
		var merr *UnsupportedMethodError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, "TRACE", merr.Method)
		assert.False(t, called)
	})

	t.Run("bad: connection failure wraps into NetworkError", func(t *testing.T) {
		client, err := NewClient(WithSecretKey("sk_test_abc"), WithBaseURL("http://127.0.0.1:1"))
		require.NoError(t, err)

		_, _, err = client.execute(context.Background(), http.MethodGet, "/transaction", nil)
		var nerr *NetworkError
		require.ErrorAs(t, err, &nerr)
		assert.Error(t, nerr.Unwrap())
	})
}

type fakeRecord struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func TestDecodeResponse(t *testing.T) {
	client, err := NewClient(WithSecretKey("sk_test_abc"))
	require.NoError(t, err)

	t.Run("happy: single record", func(t *testing.T) {
		body := []byte(`{"status":true,"message":"ok","data":{"id":1,"email":"a@b.c"}}`)
		resp, err := decodeResponse[fakeRecord](client, "/fake", 200, body)
		require.NoError(t, err)
		assert.True(t, resp.Status)
		assert.Equal(t, 200, resp.StatusCode)
		require.NotNil(t, resp.Data)
		assert.Equal(t, int64(1), resp.Data.ID)
	})

	t.Run("happy: list of records, order preserved", func(t *testing.T) {
		body := []byte(`{"status":true,"message":"ok","data":[{"id":1},{"id":2}]}`)
		resp, err := decodeResponse[[]fakeRecord](client, "/fake", 200, body)
		require.NoError(t, err)
		require.NotNil(t, resp.Data)
		require.Len(t, *resp.Data, 2)
		assert.Equal(t, int64(1), (*resp.Data)[0].ID)
		assert.Equal(t, int64(2), (*resp.Data)[1].ID)
	})

	t.Run("happy: ids beyond float64 precision decode exactly", func(t *testing.T) {
		body := []byte(`{"status":true,"data":{"id":9007199254740993}}`)
		resp, err := decodeResponse[fakeRecord](client, "/fake", 200, body)
		require.NoError(t, err)
		require.NotNil(t, resp.Data)
		assert.Equal(t, int64(9007199254740993), resp.Data.ID)
	})

	t.Run("happy: camelCase keys normalized before decoding", func(t *testing.T) {
		body := []byte(`{"status":true,"data":{"id":3,"Email":"x@y.z"}}`)
		resp, err := decodeResponse[fakeRecord](client, "/fake", 200, body)
		require.NoError(t, err)
		require.NotNil(t, resp.Data)
		assert.Equal(t, "x@y.z", resp.Data.Email)
	})

	t.Run("happy: missing data leaves Data nil", func(t *testing.T) {
		body := []byte(`{"status":true,"message":"ok"}`)
		resp, err := decodeResponse[fakeRecord](client, "/fake", 200, body)
		require.NoError(t, err)
		assert.Nil(t, resp.Data)
	})

	t.Run("happy: empty object data leaves Data nil", func(t *testing.T) {
		body := []byte(`{"status":true,"message":"ok","data":{}}`)
		resp, err := decodeResponse[fakeRecord](client, "/fake", 200, body)
		require.NoError(t, err)
		assert.Nil(t, resp.Data)
	})

	t.Run("happy: meta and error classifiers carried over", func(t *testing.T) {
		body := []byte(`{"status":false,"message":"nope","type":"api_error","code":"unknown","meta":{"page":1}}`)
		resp, err := decodeResponse[fakeRecord](client, "/fake", 400, body)
		require.NoError(t, err)
		assert.False(t, resp.Status)
		assert.Equal(t, "api_error", resp.Type)
		assert.Equal(t, "unknown", resp.Code)
		assert.Equal(t, float64(1), resp.Meta["page"])
	})

	t.Run("bad: non-JSON body degrades into the envelope", func(t *testing.T) {
		body := []byte("<html>gateway timeout</html>")
		resp, err := decodeResponse[fakeRecord](client, "/fake", 504, body)
		require.NoError(t, err)
		assert.False(t, resp.Status)
		assert.Equal(t, msgNotJSON, resp.Message)
		assert.Nil(t, resp.Data)
		assert.Equal(t, body, []byte(resp.Raw))
	})

	t.Run("bad: schema mismatch leaves Data nil and Raw intact", func(t *testing.T) {
		body := []byte(`{"status":true,"message":"ok","data":{"id":"not-a-number"}}`)
		resp, err := decodeResponse[fakeRecord](client, "/fake", 200, body)
		require.NoError(t, err)
		assert.Nil(t, resp.Data)
		assert.Equal(t, body, []byte(resp.Raw))
		assert.True(t, resp.Status)
	})

	t.Run("bad: schema mismatch surfaces in strict mode", func(t *testing.T) {
		strict, err := NewClient(WithSecretKey("sk_test_abc"), WithStrictDecoding())
		require.NoError(t, err)

		body := []byte(`{"status":true,"data":{"id":"not-a-number"}}`)
		resp, err := decodeResponse[fakeRecord](strict, "/fake", 200, body)
		assert.Nil(t, resp)
		var derr *DecodeError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "/fake", derr.Path)
		assert.Error(t, errors.Unwrap(derr))
	})
}
