package webhook

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(payload []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	payload := []byte(`{"event":"charge.success","data":{"id":1}}`)
	secret := "sk_test_abc"

	t.Run("happy: matching signature", func(t *testing.T) {
		assert.True(t, ValidateSignature(payload, sign(payload, secret), secret))
	})

	t.Run("bad: wrong secret", func(t *testing.T) {
		assert.False(t, ValidateSignature(payload, sign(payload, "sk_test_other"), secret))
	})

	t.Run("bad: tampered payload", func(t *testing.T) {
		signature := sign(payload, secret)
		tampered := []byte(`{"event":"charge.success","data":{"id":2}}`)
		assert.False(t, ValidateSignature(tampered, signature, secret))
	})

	t.Run("bad: empty signature", func(t *testing.T) {
		assert.False(t, ValidateSignature(payload, "", secret))
	})
}

func TestParseEvent(t *testing.T) {
	t.Run("happy: envelope decoded, data kept raw", func(t *testing.T) {
		ev, err := ParseEvent([]byte(`{"event":"transfer.success","data":{"amount":5000}}`))
		require.NoError(t, err)
		assert.Equal(t, "transfer.success", ev.Event)
		assert.JSONEq(t, `{"amount":5000}`, string(ev.Data))
	})

	t.Run("bad: not JSON", func(t *testing.T) {
		_, err := ParseEvent([]byte("nope"))
		assert.Error(t, err)
	})

	t.Run("bad: missing event name", func(t *testing.T) {
		_, err := ParseEvent([]byte(`{"data":{}}`))
		assert.Error(t, err)
	})
}
