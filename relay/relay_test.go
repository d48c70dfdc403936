package relay

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/paystack-go/webhook"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestConfigValidate(t *testing.T) {
	t.Run("happy: forward mode with URL", func(t *testing.T) {
		cfg := Config{Mode: ModeForward, ForwardURL: "http://localhost:3000/hook"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("happy: proxy mode with clients", func(t *testing.T) {
		cfg := Config{Mode: ModeProxy, ProxyClients: []string{"http://localhost:3000"}}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("bad: forward mode without URL", func(t *testing.T) {
		cfg := Config{Mode: ModeForward}
		assert.ErrorIs(t, cfg.Validate(), ErrNoForwardURL)
	})

	t.Run("bad: proxy mode without clients", func(t *testing.T) {
		cfg := Config{Mode: ModeProxy}
		assert.ErrorIs(t, cfg.Validate(), ErrNoProxyClients)
	})

	t.Run("bad: unknown mode", func(t *testing.T) {
		cfg := Config{Mode: Mode("tee")}
		assert.Error(t, cfg.Validate())
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RELAY_ADDR", ":9999")
	t.Setenv("RELAY_MODE", "proxy")
	t.Setenv("RELAY_PROXY_CLIENTS", "http://a:1, http://b:2")
	t.Setenv("RELAY_LOG_PAYLOADS", "true")

	cfg := FromEnv()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, ModeProxy, cfg.Mode)
	assert.Equal(t, []string{"http://a:1", "http://b:2"}, cfg.ProxyClients)
	assert.True(t, cfg.LogPayloads)
}

func TestBroadcast(t *testing.T) {
	payload := []byte(`{"event":"charge.success"}`)

	t.Run("happy: outcomes come back in listener order", func(t *testing.T) {
		var okBody atomic.Value
		okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			buf, _ := io.ReadAll(r.Body)
			okBody.Store(string(buf))
			w.WriteHeader(http.StatusOK)
		}))
		defer okSrv.Close()

		failSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer failSrv.Close()

		rly, err := New(Config{
			Mode:         ModeProxy,
			ProxyClients: []string{okSrv.URL, failSrv.URL, "http://127.0.0.1:1"},
		}, zerolog.Nop())
		require.NoError(t, err)

		outcomes := rly.Broadcast(context.Background(), "dlv_1", payload)
		require.Len(t, outcomes, 3)

		assert.Equal(t, okSrv.URL, outcomes[0].Listener)
		assert.True(t, outcomes[0].Delivered())
		assert.Equal(t, string(payload), okBody.Load())

		assert.Equal(t, failSrv.URL, outcomes[1].Listener)
		assert.False(t, outcomes[1].Delivered())
		assert.Equal(t, http.StatusInternalServerError, outcomes[1].StatusCode)

		assert.False(t, outcomes[2].Delivered())
		assert.Error(t, outcomes[2].Err)
	})

	t.Run("happy: forward mode delivers to the single URL", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer srv.Close()

		rly, err := New(Config{Mode: ModeForward, ForwardURL: srv.URL}, zerolog.Nop())
		require.NoError(t, err)

		outcomes := rly.Broadcast(context.Background(), "dlv_2", payload)
		require.Len(t, outcomes, 1)
		assert.True(t, outcomes[0].Delivered())
		assert.Equal(t, int32(1), hits.Load())
	})
}

func TestWebhookEndpoint(t *testing.T) {
	sign := func(payload []byte, secret string) string {
		mac := hmac.New(sha512.New, []byte(secret))
		mac.Write(payload)
		return hex.EncodeToString(mac.Sum(nil))
	}
	payload := `{"event":"charge.success","data":{}}`

	t.Run("happy: acknowledged and delivered downstream", func(t *testing.T) {
		delivered := make(chan string, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			buf, _ := io.ReadAll(r.Body)
			delivered <- string(buf)
		}))
		defer srv.Close()

		rly, err := New(Config{Mode: ModeForward, ForwardURL: srv.URL}, zerolog.Nop())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
		rly.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, payload, <-delivered)
		rly.Wait()
	})

	t.Run("happy: valid signature accepted when secret configured", func(t *testing.T) {
		rly, err := New(Config{
			Mode:       ModeForward,
			ForwardURL: "http://127.0.0.1:1",
			SecretKey:  "sk_test_abc",
		}, zerolog.Nop())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
		req.Header.Set(webhook.SignatureHeader, sign([]byte(payload), "sk_test_abc"))
		rly.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		rly.Wait()
	})

	t.Run("bad: wrong signature rejected before any delivery", func(t *testing.T) {
		rly, err := New(Config{
			Mode:       ModeForward,
			ForwardURL: "http://127.0.0.1:1",
			SecretKey:  "sk_test_abc",
		}, zerolog.Nop())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
		req.Header.Set(webhook.SignatureHeader, "deadbeef")
		rly.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	rly, err := New(Config{Mode: ModeForward, ForwardURL: "http://127.0.0.1:1"}, zerolog.Nop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rly.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}
