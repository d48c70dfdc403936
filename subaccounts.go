package paystack

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// SubaccountService wraps the /subaccount endpoints.
type SubaccountService service

// Subaccount mirrors one settlement subaccount.
type Subaccount struct {
	ID                  int64      `json:"id"`
	SubaccountCode      string     `json:"subaccount_code"`
	BusinessName        string     `json:"business_name"`
	Description         string     `json:"description"`
	PrimaryContactName  string     `json:"primary_contact_name"`
	PrimaryContactEmail string     `json:"primary_contact_email"`
	PrimaryContactPhone string     `json:"primary_contact_phone"`
	PercentageCharge    float64    `json:"percentage_charge"`
	SettlementBank      string     `json:"settlement_bank"`
	BankID              int64      `json:"bank_id"`
	AccountNumber       string     `json:"account_number"`
	Currency            Currency   `json:"currency"`
	Active              bool       `json:"active"`
	IsVerified          bool       `json:"is_verified"`
	Domain              string     `json:"domain"`
	Metadata            Metadata   `json:"metadata"`
	SettlementSchedule  string     `json:"settlement_schedule"`
	CreatedAt           *time.Time `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at"`
}

// SubaccountRequest creates or updates a subaccount.
type SubaccountRequest struct {
	BusinessName        string   `json:"business_name"`
	SettlementBank      string   `json:"settlement_bank"`
	AccountNumber       string   `json:"account_number"`
	PercentageCharge    float64  `json:"percentage_charge"`
	Description         string   `json:"description,omitempty"`
	PrimaryContactName  string   `json:"primary_contact_name,omitempty"`
	PrimaryContactEmail string   `json:"primary_contact_email,omitempty"`
	PrimaryContactPhone string   `json:"primary_contact_phone,omitempty"`
	SettlementSchedule  string   `json:"settlement_schedule,omitempty"`
	Metadata            Metadata `json:"metadata,omitempty"`
}

func (r *SubaccountRequest) validate() error {
	if r == nil || r.BusinessName == "" {
		return &ValidationError{Field: "business_name", Message: "business name is required"}
	}
	if r.SettlementBank == "" {
		return &ValidationError{Field: "settlement_bank", Message: "settlement bank code is required"}
	}
	if r.AccountNumber == "" {
		return &ValidationError{Field: "account_number", Message: "account number is required"}
	}
	if r.PercentageCharge <= 0 {
		return &ValidationError{Field: "percentage_charge", Message: "percentage charge must be positive"}
	}
	return nil
}

// ListSubaccountsOptions filters a subaccount listing.
type ListSubaccountsOptions struct {
	PerPage int
	Page    int
	From    time.Time
	To      time.Time
}

func (o *ListSubaccountsOptions) values() url.Values {
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

// Create registers a subaccount.
func (s *SubaccountService) Create(ctx context.Context, req *SubaccountRequest) (*Response[Subaccount], error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	return do[Subaccount](ctx, s.client, http.MethodPost, "/subaccount", req)
}

// List returns one page of subaccounts.
func (s *SubaccountService) List(ctx context.Context, opts *ListSubaccountsOptions) (*Response[[]Subaccount], error) {
	return do[[]Subaccount](ctx, s.client, http.MethodGet, withQuery("/subaccount", opts.values()), nil)
}

// Fetch retrieves a subaccount by id or code.
func (s *SubaccountService) Fetch(ctx context.Context, idOrCode string) (*Response[Subaccount], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "subaccount id or code is required"}
	}
	return do[Subaccount](ctx, s.client, http.MethodGet, "/subaccount/"+url.PathEscape(idOrCode), nil)
}

// Update changes a subaccount's details.
func (s *SubaccountService) Update(ctx context.Context, idOrCode string, req *SubaccountRequest) (*Response[Subaccount], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "subaccount id or code is required"}
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return do[Subaccount](ctx, s.client, http.MethodPut, "/subaccount/"+url.PathEscape(idOrCode), req)
}
