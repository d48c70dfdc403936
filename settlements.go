package paystack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// SettlementService wraps the /settlement endpoints.
type SettlementService service

// Settlement mirrors one payout to the merchant's bank.
type Settlement struct {
	ID              int64      `json:"id"`
	Domain          string     `json:"domain"`
	Status          string     `json:"status"`
	Currency        Currency   `json:"currency"`
	Integration     int64      `json:"integration"`
	TotalAmount     int64      `json:"total_amount"`
	EffectiveAmount int64      `json:"effective_amount"`
	TotalFees       int64      `json:"total_fees"`
	TotalProcessed  int64      `json:"total_processed"`
	Deductions      Metadata   `json:"deductions"`
	SettlementDate  *time.Time `json:"settlement_date"`
	SettledBy       string     `json:"settled_by"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

// ListSettlementsOptions filters a settlement listing.
type ListSettlementsOptions struct {
	PerPage    int
	Page       int
	Status     string
	Subaccount string
	From       time.Time
	To         time.Time
}

func (o *ListSettlementsOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "perPage", int64(o.PerPage))
	setInt(q, "page", int64(o.Page))
	setString(q, "status", o.Status)
	setString(q, "subaccount", o.Subaccount)
	setTime(q, "from", o.From)
	setTime(q, "to", o.To)
	return q
}

// List returns one page of settlements.
func (s *SettlementService) List(ctx context.Context, opts *ListSettlementsOptions) (*Response[[]Settlement], error) {
	return do[[]Settlement](ctx, s.client, http.MethodGet, withQuery("/settlement", opts.values()), nil)
}

// ListTransactions returns the transactions that made up one settlement.
func (s *SettlementService) ListTransactions(ctx context.Context, settlementID int64, perPage, page int) (*Response[[]Transaction], error) {
	q := url.Values{}
	setInt(q, "perPage", int64(perPage))
	setInt(q, "page", int64(page))
	return do[[]Transaction](ctx, s.client, http.MethodGet, withQuery(fmt.Sprintf("/settlement/%d/transactions", settlementID), q), nil)
}
