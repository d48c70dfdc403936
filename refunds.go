package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// RefundService wraps the /refund endpoints.
type RefundService service

// Refund mirrors one refund object.
type Refund struct {
	ID             int64           `json:"id"`
	Transaction    *TransactionRef `json:"transaction"`
	Dispute        int64           `json:"dispute"`
	Settlement     int64           `json:"settlement"`
	Integration    int64           `json:"integration"`
	Domain         string          `json:"domain"`
	Currency       Currency        `json:"currency"`
	Amount         int64           `json:"amount"`
	Status         string          `json:"status"`
	RefundedBy     string          `json:"refunded_by"`
	RefundedAt     *time.Time      `json:"refunded_at"`
	ExpectedAt     *time.Time      `json:"expected_at"`
	CustomerNote   string          `json:"customer_note"`
	MerchantNote   string          `json:"merchant_note"`
	DeductedAmount int64           `json:"deducted_amount"`
	FullyDeducted  bool            `json:"fully_deducted"`
	CreatedAt      *time.Time      `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at"`
}

// TransactionRef is either a bare transaction id or a nested transaction
// object.
type TransactionRef struct {
	ID          int64
	Transaction *Transaction
}

func (r *TransactionRef) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '{' {
		var t Transaction
		if err := json.Unmarshal(b, &t); err != nil {
			return err
		}
		r.Transaction = &t
		r.ID = t.ID
		return nil
	}
	return json.Unmarshal(b, &r.ID)
}

func (r TransactionRef) MarshalJSON() ([]byte, error) {
	if r.Transaction != nil {
		return json.Marshal(r.Transaction)
	}
	return json.Marshal(r.ID)
}

// CreateRefundRequest refunds all or part of a transaction.
type CreateRefundRequest struct {
	Transaction  string   `json:"transaction"`
	Amount       int64    `json:"amount,omitempty"`
	Currency     Currency `json:"currency,omitempty"`
	CustomerNote string   `json:"customer_note,omitempty"`
	MerchantNote string   `json:"merchant_note,omitempty"`
}

// ListRefundsOptions filters a refund listing.
type ListRefundsOptions struct {
	PerPage     int
	Page        int
	Transaction string
	Currency    Currency
	From        time.Time
	To          time.Time
}

func (o *ListRefundsOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "perPage", int64(o.PerPage))
	setInt(q, "page", int64(o.Page))
	setString(q, "transaction", o.Transaction)
	setString(q, "currency", string(o.Currency))
	setTime(q, "from", o.From)
	setTime(q, "to", o.To)
	return q
}

// Create refunds a transaction, fully when Amount is zero.
func (s *RefundService) Create(ctx context.Context, req *CreateRefundRequest) (*Response[Refund], error) {
	if req == nil || req.Transaction == "" {
		return nil, &ValidationError{Field: "transaction", Message: "transaction reference or id is required"}
	}
	return do[Refund](ctx, s.client, http.MethodPost, "/refund", req)
}

// List returns one page of refunds.
func (s *RefundService) List(ctx context.Context, opts *ListRefundsOptions) (*Response[[]Refund], error) {
	return do[[]Refund](ctx, s.client, http.MethodGet, withQuery("/refund", opts.values()), nil)
}

// Fetch retrieves one refund.
func (s *RefundService) Fetch(ctx context.Context, id int64) (*Response[Refund], error) {
	return do[Refund](ctx, s.client, http.MethodGet, fmt.Sprintf("/refund/%d", id), nil)
}
