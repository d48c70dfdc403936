package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// PlanService wraps the /plan endpoints.
type PlanService service

// Plan mirrors one subscription plan.
type Plan struct {
	ID                  int64          `json:"id"`
	Name                string         `json:"name"`
	PlanCode            string         `json:"plan_code"`
	Description         string         `json:"description"`
	Amount              int64          `json:"amount"`
	Interval            Interval       `json:"interval"`
	Currency            Currency       `json:"currency"`
	InvoiceLimit        int            `json:"invoice_limit"`
	SendInvoices        bool           `json:"send_invoices"`
	SendSMS             bool           `json:"send_sms"`
	HostedPage          bool           `json:"hosted_page"`
	HostedPageURL       string         `json:"hosted_page_url"`
	Domain              string         `json:"domain"`
	Migrate             bool           `json:"migrate"`
	IsArchived          bool           `json:"is_archived"`
	ActiveSubscriptions int64          `json:"active_subscriptions"`
	TotalSubscriptions  int64          `json:"total_subscriptions"`
	Subscriptions       []Subscription `json:"subscriptions"`
	CreatedAt           *time.Time     `json:"created_at"`
	UpdatedAt           *time.Time     `json:"updated_at"`
}

// PlanRef is either a bare plan id or a nested plan object.
type PlanRef struct {
	ID   int64
	Plan *Plan
}

func (r *PlanRef) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '{' {
		var p Plan
		if err := json.Unmarshal(b, &p); err != nil {
			return err
		}
		r.Plan = &p
		r.ID = p.ID
		return nil
	}
	return json.Unmarshal(b, &r.ID)
}

func (r PlanRef) MarshalJSON() ([]byte, error) {
	if r.Plan != nil {
		return json.Marshal(r.Plan)
	}
	return json.Marshal(r.ID)
}

// CreatePlanRequest defines a new plan.
type CreatePlanRequest struct {
	Name         string   `json:"name"`
	Amount       int64    `json:"amount"`
	Interval     Interval `json:"interval"`
	Description  string   `json:"description,omitempty"`
	Currency     Currency `json:"currency,omitempty"`
	InvoiceLimit int      `json:"invoice_limit,omitempty"`
	SendInvoices *bool    `json:"send_invoices,omitempty"`
	SendSMS      *bool    `json:"send_sms,omitempty"`
}

// ListPlansOptions filters a plan listing.
type ListPlansOptions struct {
	PerPage  int
	Page     int
	Status   string
	Interval Interval
	Amount   int64
}

func (o *ListPlansOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "perPage", int64(o.PerPage))
	setInt(q, "page", int64(o.Page))
	setString(q, "status", o.Status)
	setString(q, "interval", string(o.Interval))
	setInt(q, "amount", o.Amount)
	return q
}

// Create defines a new plan. Name, amount and interval are required.
func (s *PlanService) Create(ctx context.Context, req *CreatePlanRequest) (*Response[Plan], error) {
	if req == nil || req.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "plan name is required"}
	}
	if req.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must be a positive integer in the subunit of the currency"}
	}
	if req.Interval == "" {
		return nil, &ValidationError{Field: "interval", Message: "billing interval is required"}
	}
	return do[Plan](ctx, s.client, http.MethodPost, "/plan", req)
}

// List returns one page of plans.
func (s *PlanService) List(ctx context.Context, opts *ListPlansOptions) (*Response[[]Plan], error) {
	return do[[]Plan](ctx, s.client, http.MethodGet, withQuery("/plan", opts.values()), nil)
}

// Fetch retrieves a plan by id or plan code.
func (s *PlanService) Fetch(ctx context.Context, idOrCode string) (*Response[Plan], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "plan id or code is required"}
	}
	return do[Plan](ctx, s.client, http.MethodGet, "/plan/"+url.PathEscape(idOrCode), nil)
}

// Update changes a plan's details.
func (s *PlanService) Update(ctx context.Context, idOrCode string, req *CreatePlanRequest) (*Response[struct{}], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "plan id or code is required"}
	}
	return do[struct{}](ctx, s.client, http.MethodPut, "/plan/"+url.PathEscape(idOrCode), req)
}
