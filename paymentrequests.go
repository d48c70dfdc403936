package paystack

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// PaymentRequestService wraps the /paymentrequest (invoice) endpoints.
type PaymentRequestService service

// PaymentRequest mirrors one invoice.
type PaymentRequest struct {
	ID               int64         `json:"id"`
	RequestCode      string        `json:"request_code"`
	Description      string        `json:"description"`
	Amount           int64         `json:"amount"`
	Currency         Currency      `json:"currency"`
	Status           string        `json:"status"`
	Paid             bool          `json:"paid"`
	PaidAt           *time.Time    `json:"paid_at"`
	DueDate          *time.Time    `json:"due_date"`
	HasInvoice       bool          `json:"has_invoice"`
	InvoiceNumber    int64         `json:"invoice_number"`
	OfflineReference string        `json:"offline_reference"`
	PDFURL           string        `json:"pdf_url"`
	LineItems        []LineItem    `json:"line_items"`
	Tax              []TaxItem     `json:"tax"`
	Discount         Metadata      `json:"discount"`
	Customer         *CustomerRef  `json:"customer"`
	Transactions     []Transaction `json:"transactions"`
	Notifications    []Metadata    `json:"notifications"`
	Domain           string        `json:"domain"`
	Archived         bool          `json:"archived"`
	Source           string        `json:"source"`
	Integration      int64         `json:"integration"`
	SplitCode        string        `json:"split_code"`
	CreatedAt        *time.Time    `json:"created_at"`
	UpdatedAt        *time.Time    `json:"updated_at"`
}

// LineItem is one billed line on an invoice.
type LineItem struct {
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Quantity int    `json:"quantity,omitempty"`
}

// TaxItem is one tax line on an invoice.
type TaxItem struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// PaymentRequestTotals aggregates invoice volume.
type PaymentRequestTotals struct {
	Pending    []CurrencyAmount `json:"pending"`
	Successful []CurrencyAmount `json:"successful"`
	Total      []CurrencyAmount `json:"total"`
}

// CreatePaymentRequestRequest raises an invoice against a customer. Amount
// may be omitted when line items carry the pricing.
type CreatePaymentRequestRequest struct {
	Customer         string     `json:"customer"`
	Amount           int64      `json:"amount,omitempty"`
	Description      string     `json:"description,omitempty"`
	Currency         Currency   `json:"currency,omitempty"`
	DueDate          string     `json:"due_date,omitempty"`
	LineItems        []LineItem `json:"line_items,omitempty"`
	Tax              []TaxItem  `json:"tax,omitempty"`
	SendNotification *bool      `json:"send_notification,omitempty"`
	Draft            *bool      `json:"draft,omitempty"`
	HasInvoice       *bool      `json:"has_invoice,omitempty"`
	InvoiceNumber    int64      `json:"invoice_number,omitempty"`
	SplitCode        string     `json:"split_code,omitempty"`
}

// ListPaymentRequestsOptions filters an invoice listing.
type ListPaymentRequestsOptions struct {
	PerPage        int
	Page           int
	Customer       string
	Status         string
	Currency       Currency
	IncludeArchive bool
	From           time.Time
	To             time.Time
}

func (o *ListPaymentRequestsOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "perPage", int64(o.PerPage))
	setInt(q, "page", int64(o.Page))
	setString(q, "customer", o.Customer)
	setString(q, "status", o.Status)
	setString(q, "currency", string(o.Currency))
	setBool(q, "include_archive", o.IncludeArchive)
	setTime(q, "from", o.From)
	setTime(q, "to", o.To)
	return q
}

// Create raises an invoice.
func (s *PaymentRequestService) Create(ctx context.Context, req *CreatePaymentRequestRequest) (*Response[PaymentRequest], error) {
	if req == nil || req.Customer == "" {
		return nil, &ValidationError{Field: "customer", Message: "customer id or code is required"}
	}
	if req.Amount <= 0 && len(req.LineItems) == 0 {
		return nil, &ValidationError{Field: "amount", Message: "an amount or at least one line item is required"}
	}
	return do[PaymentRequest](ctx, s.client, http.MethodPost, "/paymentrequest", req)
}

// List returns one page of invoices.
func (s *PaymentRequestService) List(ctx context.Context, opts *ListPaymentRequestsOptions) (*Response[[]PaymentRequest], error) {
	return do[[]PaymentRequest](ctx, s.client, http.MethodGet, withQuery("/paymentrequest", opts.values()), nil)
}

// Fetch retrieves an invoice by id or code.
func (s *PaymentRequestService) Fetch(ctx context.Context, idOrCode string) (*Response[PaymentRequest], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "payment request id or code is required"}
	}
	return do[PaymentRequest](ctx, s.client, http.MethodGet, "/paymentrequest/"+url.PathEscape(idOrCode), nil)
}

// Verify checks the status of an invoice by code.
func (s *PaymentRequestService) Verify(ctx context.Context, code string) (*Response[PaymentRequest], error) {
	if code == "" {
		return nil, &ValidationError{Field: "code", Message: "payment request code is required"}
	}
	return do[PaymentRequest](ctx, s.client, http.MethodGet, "/paymentrequest/verify/"+url.PathEscape(code), nil)
}

// Notify re-sends the invoice notification to the customer.
func (s *PaymentRequestService) Notify(ctx context.Context, code string) (*Response[struct{}], error) {
	if code == "" {
		return nil, &ValidationError{Field: "code", Message: "payment request code is required"}
	}
	return do[struct{}](ctx, s.client, http.MethodPost, "/paymentrequest/notify/"+url.PathEscape(code), nil)
}

// Total aggregates invoice volume on the integration.
func (s *PaymentRequestService) Total(ctx context.Context) (*Response[PaymentRequestTotals], error) {
	return do[PaymentRequestTotals](ctx, s.client, http.MethodGet, "/paymentrequest/totals", nil)
}

// Finalize publishes a draft invoice.
func (s *PaymentRequestService) Finalize(ctx context.Context, code string, sendNotification bool) (*Response[PaymentRequest], error) {
	if code == "" {
		return nil, &ValidationError{Field: "code", Message: "payment request code is required"}
	}
	body := map[string]bool{"send_notification": sendNotification}
	return do[PaymentRequest](ctx, s.client, http.MethodPost, "/paymentrequest/finalize/"+url.PathEscape(code), body)
}

// Update changes a pending invoice.
func (s *PaymentRequestService) Update(ctx context.Context, idOrCode string, req *CreatePaymentRequestRequest) (*Response[PaymentRequest], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "payment request id or code is required"}
	}
	return do[PaymentRequest](ctx, s.client, http.MethodPut, "/paymentrequest/"+url.PathEscape(idOrCode), req)
}

// Archive hides an invoice from listings.
func (s *PaymentRequestService) Archive(ctx context.Context, code string) (*Response[struct{}], error) {
	if code == "" {
		return nil, &ValidationError{Field: "code", Message: "payment request code is required"}
	}
	return do[struct{}](ctx, s.client, http.MethodPost, "/paymentrequest/archive/"+url.PathEscape(code), nil)
}
