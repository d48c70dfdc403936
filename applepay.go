package paystack

import (
	"context"
	"net/http"
	"net/url"
)

// ApplePayService wraps the /apple-pay domain registration endpoints.
type ApplePayService service

// ApplePayDomains lists the domains registered for Apple Pay.
type ApplePayDomains struct {
	DomainNames []string `json:"domain_names"`
}

// RegisterDomain registers a top-level domain for Apple Pay.
func (s *ApplePayService) RegisterDomain(ctx context.Context, domainName string) (*Response[struct{}], error) {
	if domainName == "" {
		return nil, &ValidationError{Field: "domain_name", Message: "domain name is required"}
	}
	body := map[string]string{"domainName": domainName}
	return do[struct{}](ctx, s.client, http.MethodPost, "/apple-pay/domain", body)
}

// ListDomains returns the registered domains. Apple Pay listing uses cursor
// paging.
func (s *ApplePayService) ListDomains(ctx context.Context, useCursor bool, next, previous string) (*Response[ApplePayDomains], error) {
	q := url.Values{}
	setBool(q, "use_cursor", useCursor)
	setString(q, "next", next)
	setString(q, "previous", previous)
	return do[ApplePayDomains](ctx, s.client, http.MethodGet, withQuery("/apple-pay/domain", q), nil)
}

// UnregisterDomain removes a domain from Apple Pay. The API routes this
// through DELETE with the domain in the query string.
func (s *ApplePayService) UnregisterDomain(ctx context.Context, domainName string) (*Response[struct{}], error) {
	if domainName == "" {
		return nil, &ValidationError{Field: "domain_name", Message: "domain name is required"}
	}
	q := url.Values{}
	q.Set("domainName", domainName)
	return do[struct{}](ctx, s.client, http.MethodDelete, withQuery("/apple-pay/domain", q), nil)
}
