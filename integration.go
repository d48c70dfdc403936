package paystack

import (
	"context"
	"net/http"
)

// IntegrationService wraps the integration settings endpoints.
type IntegrationService service

// PaymentSessionTimeout is how long a checkout session may idle, in
// seconds. Zero means sessions never time out.
type PaymentSessionTimeout struct {
	PaymentSessionTimeout int `json:"payment_session_timeout"`
}

// FetchTimeout reads the integration's payment session timeout.
func (s *IntegrationService) FetchTimeout(ctx context.Context) (*Response[PaymentSessionTimeout], error) {
	return do[PaymentSessionTimeout](ctx, s.client, http.MethodGet, "/integration/payment_session_timeout", nil)
}

// UpdateTimeout sets the integration's payment session timeout.
func (s *IntegrationService) UpdateTimeout(ctx context.Context, seconds int) (*Response[PaymentSessionTimeout], error) {
	if seconds < 0 {
		return nil, &ValidationError{Field: "timeout", Message: "timeout cannot be negative"}
	}
	body := map[string]int{"timeout": seconds}
	return do[PaymentSessionTimeout](ctx, s.client, http.MethodPut, "/integration/payment_session_timeout", body)
}
