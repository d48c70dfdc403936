package paystack

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// SubscriptionService wraps the /subscription endpoints.
type SubscriptionService service

// Subscription mirrors one subscription object. Customer and Plan arrive as
// bare ids on some endpoints and as nested objects on others.
type Subscription struct {
	ID               int64          `json:"id"`
	SubscriptionCode string         `json:"subscription_code"`
	EmailToken       string         `json:"email_token"`
	Amount           int64          `json:"amount"`
	Status           string         `json:"status"`
	Domain           string         `json:"domain"`
	Quantity         int            `json:"quantity"`
	Customer         *CustomerRef   `json:"customer"`
	Plan             *PlanRef       `json:"plan"`
	Authorization    *Authorization `json:"authorization"`
	EasyCronID       string         `json:"easy_cron_id"`
	CronExpression   string         `json:"cron_expression"`
	NextPaymentDate  *time.Time     `json:"next_payment_date"`
	OpenInvoice      string         `json:"open_invoice"`
	InvoiceLimit     int            `json:"invoice_limit"`
	SplitCode        string         `json:"split_code"`
	CreatedAt        *time.Time     `json:"created_at"`
	UpdatedAt        *time.Time     `json:"updated_at"`
}

// SubscriptionLink is a hosted page for updating a subscription's card.
type SubscriptionLink struct {
	Link string `json:"link"`
}

// CreateSubscriptionRequest subscribes a customer to a plan.
type CreateSubscriptionRequest struct {
	Customer      string     `json:"customer"`
	Plan          string     `json:"plan"`
	Authorization string     `json:"authorization,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	Quantity      int        `json:"quantity,omitempty"`
}

// ListSubscriptionsOptions filters a subscription listing.
type ListSubscriptionsOptions struct {
	PerPage  int
	Page     int
	Customer int64
	Plan     int64
}

func (o *ListSubscriptionsOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "perPage", int64(o.PerPage))
	setInt(q, "page", int64(o.Page))
	setInt(q, "customer", o.Customer)
	setInt(q, "plan", o.Plan)
	return q
}

// Create subscribes a customer to a plan.
func (s *SubscriptionService) Create(ctx context.Context, req *CreateSubscriptionRequest) (*Response[Subscription], error) {
	if req == nil || req.Customer == "" {
		return nil, &ValidationError{Field: "customer", Message: "customer email or code is required"}
	}
	if req.Plan == "" {
		return nil, &ValidationError{Field: "plan", Message: "plan code is required"}
	}
	return do[Subscription](ctx, s.client, http.MethodPost, "/subscription", req)
}

// List returns one page of subscriptions.
func (s *SubscriptionService) List(ctx context.Context, opts *ListSubscriptionsOptions) (*Response[[]Subscription], error) {
	return do[[]Subscription](ctx, s.client, http.MethodGet, withQuery("/subscription", opts.values()), nil)
}

// Fetch retrieves a subscription by id or code.
func (s *SubscriptionService) Fetch(ctx context.Context, idOrCode string) (*Response[Subscription], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "subscription id or code is required"}
	}
	return do[Subscription](ctx, s.client, http.MethodGet, "/subscription/"+url.PathEscape(idOrCode), nil)
}

// Enable re-activates a subscription. Both the subscription code and the
// email token from the subscription object are required.
func (s *SubscriptionService) Enable(ctx context.Context, code, emailToken string) (*Response[struct{}], error) {
	if err := requireSubscriptionPair(code, emailToken); err != nil {
		return nil, err
	}
	body := map[string]string{"code": code, "token": emailToken}
	return do[struct{}](ctx, s.client, http.MethodPost, "/subscription/enable", body)
}

// Disable stops a subscription from charging.
func (s *SubscriptionService) Disable(ctx context.Context, code, emailToken string) (*Response[struct{}], error) {
	if err := requireSubscriptionPair(code, emailToken); err != nil {
		return nil, err
	}
	body := map[string]string{"code": code, "token": emailToken}
	return do[struct{}](ctx, s.client, http.MethodPost, "/subscription/disable", body)
}

// GenerateUpdateLink returns a hosted page for updating the card on file.
func (s *SubscriptionService) GenerateUpdateLink(ctx context.Context, code string) (*Response[SubscriptionLink], error) {
	if code == "" {
		return nil, &ValidationError{Field: "code", Message: "subscription code is required"}
	}
	return do[SubscriptionLink](ctx, s.client, http.MethodGet, "/subscription/"+url.PathEscape(code)+"/manage/link", nil)
}

// SendUpdateLink emails the card-update page to the customer.
func (s *SubscriptionService) SendUpdateLink(ctx context.Context, code string) (*Response[struct{}], error) {
	if code == "" {
		return nil, &ValidationError{Field: "code", Message: "subscription code is required"}
	}
	return do[struct{}](ctx, s.client, http.MethodPost, "/subscription/"+url.PathEscape(code)+"/manage/email", nil)
}

func requireSubscriptionPair(code, emailToken string) error {
	if code == "" {
		return &ValidationError{Field: "code", Message: "subscription code is required"}
	}
	if emailToken == "" {
		return &ValidationError{Field: "token", Message: "email token is required"}
	}
	return nil
}
