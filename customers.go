package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// CustomerService wraps the /customer endpoints.
type CustomerService service

// Customer mirrors one customer object.
type Customer struct {
	ID                       int64           `json:"id"`
	CustomerCode             string          `json:"customer_code"`
	FirstName                string          `json:"first_name"`
	LastName                 string          `json:"last_name"`
	Email                    string          `json:"email"`
	Phone                    string          `json:"phone"`
	Domain                   string          `json:"domain"`
	Metadata                 Metadata        `json:"metadata"`
	RiskAction               RiskAction      `json:"risk_action"`
	InternationalFormatPhone string          `json:"international_format_phone"`
	Identified               bool            `json:"identified"`
	Identifications          Metadata        `json:"identifications"`
	Authorizations           []Authorization `json:"authorizations"`
	Subscriptions            []Subscription  `json:"subscriptions"`
	Transactions             []Transaction   `json:"transactions"`
	CreatedAt                *time.Time      `json:"created_at"`
	UpdatedAt                *time.Time      `json:"updated_at"`
}

// CustomerRef is either a bare customer id or a nested customer object,
// depending on the endpoint.
type CustomerRef struct {
	ID       int64
	Customer *Customer
}

func (r *CustomerRef) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '{' {
		var c Customer
		if err := json.Unmarshal(b, &c); err != nil {
			return err
		}
		r.Customer = &c
		r.ID = c.ID
		return nil
	}
	return json.Unmarshal(b, &r.ID)
}

func (r CustomerRef) MarshalJSON() ([]byte, error) {
	if r.Customer != nil {
		return json.Marshal(r.Customer)
	}
	return json.Marshal(r.ID)
}

// CreateCustomerRequest registers a customer.
type CreateCustomerRequest struct {
	Email     string   `json:"email"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Metadata  Metadata `json:"metadata,omitempty"`
}

// UpdateCustomerRequest changes customer details.
type UpdateCustomerRequest struct {
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Metadata  Metadata `json:"metadata,omitempty"`
}

// ValidateCustomerRequest carries the identity details for customer
// validation. Bank-account identification additionally requires the bank
// code and account number.
type ValidateCustomerRequest struct {
	FirstName     string             `json:"first_name"`
	LastName      string             `json:"last_name"`
	Type          IdentificationType `json:"type"`
	Value         string             `json:"value,omitempty"`
	Country       string             `json:"country"`
	BVN           string             `json:"bvn"`
	BankCode      string             `json:"bank_code,omitempty"`
	AccountNumber string             `json:"account_number,omitempty"`
	MiddleName    string             `json:"middle_name,omitempty"`
}

// ListCustomersOptions filters a customer listing.
type ListCustomersOptions struct {
	PerPage int
	Page    int
	From    time.Time
	To      time.Time
}

func (o *ListCustomersOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "perPage", int64(o.PerPage))
	setInt(q, "page", int64(o.Page))
	setTime(q, "from", o.From)
	setTime(q, "to", o.To)
	return q
}

// Create registers a new customer.
func (s *CustomerService) Create(ctx context.Context, req *CreateCustomerRequest) (*Response[Customer], error) {
	if req == nil || req.Email == "" {
		return nil, &ValidationError{Field: "email", Message: "customer email is required"}
	}
	return do[Customer](ctx, s.client, http.MethodPost, "/customer", req)
}

// List returns one page of customers.
func (s *CustomerService) List(ctx context.Context, opts *ListCustomersOptions) (*Response[[]Customer], error) {
	return do[[]Customer](ctx, s.client, http.MethodGet, withQuery("/customer", opts.values()), nil)
}

// Fetch retrieves a customer by email or customer code.
func (s *CustomerService) Fetch(ctx context.Context, emailOrCode string) (*Response[Customer], error) {
	if emailOrCode == "" {
		return nil, &ValidationError{Field: "email_or_code", Message: "customer email or code is required"}
	}
	return do[Customer](ctx, s.client, http.MethodGet, "/customer/"+url.PathEscape(emailOrCode), nil)
}

// Update changes a customer's details.
func (s *CustomerService) Update(ctx context.Context, code string, req *UpdateCustomerRequest) (*Response[Customer], error) {
	if code == "" {
		return nil, &ValidationError{Field: "code", Message: "customer code is required"}
	}
	return do[Customer](ctx, s.client, http.MethodPut, "/customer/"+url.PathEscape(code), req)
}

// Validate submits identity details for a customer. Identification by bank
// account requires a bank code and account number; this is checked before
// the network call.
func (s *CustomerService) Validate(ctx context.Context, code string, req *ValidateCustomerRequest) (*Response[struct{}], error) {
	if code == "" {
		return nil, &ValidationError{Field: "code", Message: "customer code is required"}
	}
	if req == nil {
		return nil, &ValidationError{Field: "request", Message: "validation details are required"}
	}
	if req.Type == IdentificationBankAccount {
		if req.BankCode == "" {
			return nil, &ValidationError{Field: "bank_code", Message: "bank code is required for bank_account identification"}
		}
		if req.AccountNumber == "" {
			return nil, &ValidationError{Field: "account_number", Message: "account number is required for bank_account identification"}
		}
	}
	return do[struct{}](ctx, s.client, http.MethodPost, "/customer/"+url.PathEscape(code)+"/identification", req)
}

// SetRiskAction whitelists or blacklists a customer.
func (s *CustomerService) SetRiskAction(ctx context.Context, customer string, action RiskAction) (*Response[Customer], error) {
	if customer == "" {
		return nil, &ValidationError{Field: "customer", Message: "customer code or email is required"}
	}
	body := map[string]string{"customer": customer, "risk_action": string(action)}
	return do[Customer](ctx, s.client, http.MethodPost, "/customer/set_risk_action", body)
}

// DeactivateAuthorization forgets a stored card authorization.
func (s *CustomerService) DeactivateAuthorization(ctx context.Context, authorizationCode string) (*Response[struct{}], error) {
	if authorizationCode == "" {
		return nil, &ValidationError{Field: "authorization_code", Message: "authorization code is required"}
	}
	body := map[string]string{"authorization_code": authorizationCode}
	return do[struct{}](ctx, s.client, http.MethodPost, "/customer/deactivate_authorization", body)
}
