package paystack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DedicatedAccountService wraps the /dedicated_account endpoints.
type DedicatedAccountService service

// DedicatedAccount mirrors one dedicated virtual account.
type DedicatedAccount struct {
	ID            int64        `json:"id"`
	AccountName   string       `json:"account_name"`
	AccountNumber string       `json:"account_number"`
	Currency      Currency     `json:"currency"`
	Active        bool         `json:"active"`
	Assigned      bool         `json:"assigned"`
	Bank          *Bank        `json:"bank"`
	Customer      *CustomerRef `json:"customer"`
	Assignment    Metadata     `json:"assignment"`
	SplitConfig   Metadata     `json:"split_config"`
	Metadata      Metadata     `json:"metadata"`
	CreatedAt     *time.Time   `json:"created_at"`
	UpdatedAt     *time.Time   `json:"updated_at"`
}

// DedicatedAccountProvider is one bank able to issue virtual accounts.
type DedicatedAccountProvider struct {
	ProviderSlug string `json:"provider_slug"`
	BankID       int64  `json:"bank_id"`
	BankName     string `json:"bank_name"`
	ID           int64  `json:"id"`
}

// CreateDedicatedAccountRequest issues a virtual account for a customer.
type CreateDedicatedAccountRequest struct {
	Customer      string `json:"customer"`
	PreferredBank string `json:"preferred_bank,omitempty"`
	Subaccount    string `json:"subaccount,omitempty"`
	SplitCode     string `json:"split_code,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// AssignDedicatedAccountRequest creates a customer and assigns a virtual
// account in one call.
type AssignDedicatedAccountRequest struct {
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	PreferredBank string `json:"preferred_bank"`
	Country       string `json:"country"`
	BVN           string `json:"bvn,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
	Subaccount    string `json:"subaccount,omitempty"`
	SplitCode     string `json:"split_code,omitempty"`
}

// ListDedicatedAccountsOptions filters a virtual-account listing.
type ListDedicatedAccountsOptions struct {
	Active       *bool
	Currency     Currency
	ProviderSlug string
	BankID       int64
	Customer     string
}

func (o *ListDedicatedAccountsOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Active != nil {
		if *o.Active {
			q.Set("active", "true")
		} else {
			q.Set("active", "false")
		}
	}
	setString(q, "currency", string(o.Currency))
	setString(q, "provider_slug", o.ProviderSlug)
	setInt(q, "bank_id", o.BankID)
	setString(q, "customer", o.Customer)
	return q
}

// Create issues a virtual account for an existing customer.
func (s *DedicatedAccountService) Create(ctx context.Context, req *CreateDedicatedAccountRequest) (*Response[DedicatedAccount], error) {
	if req == nil || req.Customer == "" {
		return nil, &ValidationError{Field: "customer", Message: "customer id or code is required"}
	}
	return do[DedicatedAccount](ctx, s.client, http.MethodPost, "/dedicated_account", req)
}

// Assign creates the customer and the virtual account in one step.
func (s *DedicatedAccountService) Assign(ctx context.Context, req *AssignDedicatedAccountRequest) (*Response[struct{}], error) {
	if req == nil || req.Email == "" {
		return nil, &ValidationError{Field: "email", Message: "customer email is required"}
	}
	if req.Country == "" {
		return nil, &ValidationError{Field: "country", Message: "country is required"}
	}
	if req.PreferredBank == "" {
		return nil, &ValidationError{Field: "preferred_bank", Message: "preferred bank slug is required"}
	}
	return do[struct{}](ctx, s.client, http.MethodPost, "/dedicated_account/assign", req)
}

// List returns virtual accounts on the integration.
func (s *DedicatedAccountService) List(ctx context.Context, opts *ListDedicatedAccountsOptions) (*Response[[]DedicatedAccount], error) {
	return do[[]DedicatedAccount](ctx, s.client, http.MethodGet, withQuery("/dedicated_account", opts.values()), nil)
}

// Fetch retrieves one virtual account.
func (s *DedicatedAccountService) Fetch(ctx context.Context, id int64) (*Response[DedicatedAccount], error) {
	return do[DedicatedAccount](ctx, s.client, http.MethodGet, fmt.Sprintf("/dedicated_account/%d", id), nil)
}

// Requery asks the provider to re-check an account for new payments.
func (s *DedicatedAccountService) Requery(ctx context.Context, accountNumber, providerSlug, date string) (*Response[struct{}], error) {
	if accountNumber == "" {
		return nil, &ValidationError{Field: "account_number", Message: "account number is required"}
	}
	if providerSlug == "" {
		return nil, &ValidationError{Field: "provider_slug", Message: "provider slug is required"}
	}
	q := url.Values{}
	q.Set("account_number", accountNumber)
	q.Set("provider_slug", providerSlug)
	setString(q, "date", date)
	return do[struct{}](ctx, s.client, http.MethodGet, withQuery("/dedicated_account/requery", q), nil)
}

// Deactivate releases a virtual account.
func (s *DedicatedAccountService) Deactivate(ctx context.Context, id int64) (*Response[DedicatedAccount], error) {
	return do[DedicatedAccount](ctx, s.client, http.MethodDelete, fmt.Sprintf("/dedicated_account/%d", id), nil)
}

// SplitTransaction configures split settlement on a virtual account.
func (s *DedicatedAccountService) SplitTransaction(ctx context.Context, customer, subaccount, splitCode string) (*Response[DedicatedAccount], error) {
	if customer == "" {
		return nil, &ValidationError{Field: "customer", Message: "customer id or code is required"}
	}
	body := map[string]string{"customer": customer}
	if subaccount != "" {
		body["subaccount"] = subaccount
	}
	if splitCode != "" {
		body["split_code"] = splitCode
	}
	return do[DedicatedAccount](ctx, s.client, http.MethodPost, "/dedicated_account/split", body)
}

// RemoveSplit reverts a virtual account to plain settlement.
func (s *DedicatedAccountService) RemoveSplit(ctx context.Context, accountNumber string) (*Response[DedicatedAccount], error) {
	if accountNumber == "" {
		return nil, &ValidationError{Field: "account_number", Message: "account number is required"}
	}
	body := map[string]string{"account_number": accountNumber}
	return do[DedicatedAccount](ctx, s.client, http.MethodDelete, "/dedicated_account/split", body)
}

// ListProviders returns the banks able to issue virtual accounts.
func (s *DedicatedAccountService) ListProviders(ctx context.Context) (*Response[[]DedicatedAccountProvider], error) {
	return do[[]DedicatedAccountProvider](ctx, s.client, http.MethodGet, "/dedicated_account/available_providers", nil)
}
