// Package webhook verifies and parses inbound Paystack webhook events.
//
// Paystack signs every webhook body with HMAC-SHA512 using the integration's
// secret key and sends the hex digest in the x-paystack-signature header.
package webhook

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// SignatureHeader is the header carrying the payload signature.
const SignatureHeader = "x-paystack-signature"

// Event is the envelope of one webhook delivery. Data is kept raw so the
// caller can decode it into the model matching the event name.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ValidateSignature reports whether signature is the HMAC-SHA512 hex digest
// of payload under secret. The comparison is constant time.
func ValidateSignature(payload []byte, signature, secret string) bool {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ParseEvent decodes a webhook body into its envelope.
func ParseEvent(payload []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("webhook: parsing event payload: %w", err)
	}
	if ev.Event == "" {
		return nil, fmt.Errorf("webhook: payload has no event field")
	}
	return &ev, nil
}
