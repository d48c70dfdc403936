package paystack

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// BulkChargeService wraps the /bulkcharge endpoints.
type BulkChargeService service

// BulkChargeBatch mirrors one bulk-charge batch object.
type BulkChargeBatch struct {
	ID             int64      `json:"id"`
	BatchCode      string     `json:"batch_code"`
	Reference      string     `json:"reference"`
	Domain         string     `json:"domain"`
	Status         string     `json:"status"`
	TotalCharges   int64      `json:"total_charges"`
	PendingCharges int64      `json:"pending_charges"`
	Integration    int64      `json:"integration"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// BulkChargeEntry is one charge within a batch.
type BulkChargeEntry struct {
	Integration   int64          `json:"integration"`
	BulkCharge    int64          `json:"bulkcharge"`
	Customer      *Customer      `json:"customer"`
	Authorization *Authorization `json:"authorization"`
	Transaction   *Transaction   `json:"transaction"`
	Domain        string         `json:"domain"`
	Amount        int64          `json:"amount"`
	Currency      Currency       `json:"currency"`
	Status        string         `json:"status"`
	ID            int64          `json:"id"`
	CreatedAt     *time.Time     `json:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at"`
}

// BulkChargeInstruction is one (authorization, amount) pair submitted when
// initiating a batch.
type BulkChargeInstruction struct {
	Authorization string `json:"authorization"`
	Amount        int64  `json:"amount"`
	Reference     string `json:"reference,omitempty"`
}

// ListBulkChargesOptions filters a batch listing.
type ListBulkChargesOptions struct {
	PerPage int
	Page    int
	From    time.Time
	To      time.Time
}

func (o *ListBulkChargesOptions) values() url.Values {
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

// Initiate submits a batch of charges against stored authorizations.
func (s *BulkChargeService) Initiate(ctx context.Context, charges []BulkChargeInstruction) (*Response[BulkChargeBatch], error) {
	if len(charges) == 0 {
		return nil, &ValidationError{Field: "charges", Message: "at least one charge instruction is required"}
	}
	for i := range charges {
		if charges[i].Authorization == "" {
			return nil, &ValidationError{Field: "authorization", Message: "every charge instruction needs an authorization code"}
		}
		if charges[i].Amount <= 0 {
			return nil, &ValidationError{Field: "amount", Message: "every charge instruction needs a positive amount"}
		}
	}
	return do[BulkChargeBatch](ctx, s.client, http.MethodPost, "/bulkcharge", charges)
}

// List returns one page of batches.
func (s *BulkChargeService) List(ctx context.Context, opts *ListBulkChargesOptions) (*Response[[]BulkChargeBatch], error) {
	return do[[]BulkChargeBatch](ctx, s.client, http.MethodGet, withQuery("/bulkcharge", opts.values()), nil)
}

// Fetch retrieves a batch by id or code.
func (s *BulkChargeService) Fetch(ctx context.Context, idOrCode string) (*Response[BulkChargeBatch], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "batch id or code is required"}
	}
	return do[BulkChargeBatch](ctx, s.client, http.MethodGet, "/bulkcharge/"+url.PathEscape(idOrCode), nil)
}

// FetchCharges lists the individual charges inside a batch, optionally
// filtered by status (pending, success, failed).
func (s *BulkChargeService) FetchCharges(ctx context.Context, idOrCode, status string) (*Response[[]BulkChargeEntry], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "batch id or code is required"}
	}
	q := url.Values{}
	setString(q, "status", status)
	return do[[]BulkChargeEntry](ctx, s.client, http.MethodGet, withQuery("/bulkcharge/"+url.PathEscape(idOrCode)+"/charges", q), nil)
}

// Pause stops processing a batch.
func (s *BulkChargeService) Pause(ctx context.Context, batchCode string) (*Response[struct{}], error) {
	if batchCode == "" {
		return nil, &ValidationError{Field: "batch_code", Message: "batch code is required"}
	}
	return do[struct{}](ctx, s.client, http.MethodGet, "/bulkcharge/pause/"+url.PathEscape(batchCode), nil)
}

// Resume restarts a paused batch.
func (s *BulkChargeService) Resume(ctx context.Context, batchCode string) (*Response[struct{}], error) {
	if batchCode == "" {
		return nil, &ValidationError{Field: "batch_code", Message: "batch code is required"}
	}
	return do[struct{}](ctx, s.client, http.MethodGet, "/bulkcharge/resume/"+url.PathEscape(batchCode), nil)
}
