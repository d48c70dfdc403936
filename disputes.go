package paystack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DisputeService wraps the /dispute endpoints.
type DisputeService service

// Dispute mirrors one chargeback dispute.
type Dispute struct {
	ID                   int64            `json:"id"`
	RefundAmount         int64            `json:"refund_amount"`
	Currency             Currency         `json:"currency"`
	Status               DisputeStatus    `json:"status"`
	Resolution           Resolution       `json:"resolution"`
	Domain               string           `json:"domain"`
	Transaction          *Transaction     `json:"transaction"`
	TransactionReference string           `json:"transaction_reference"`
	Category             string           `json:"category"`
	Customer             *Customer        `json:"customer"`
	Bin                  string           `json:"bin"`
	Last4                string           `json:"last4"`
	DueAt                *time.Time       `json:"due_at"`
	ResolvedAt           *time.Time       `json:"resolved_at"`
	Evidence             *DisputeEvidence `json:"evidence"`
	Attachments          Metadata         `json:"attachments"`
	Note                 Metadata         `json:"note"`
	History              []Metadata       `json:"history"`
	Messages             []Metadata       `json:"messages"`
	CreatedAt            *time.Time       `json:"created_at"`
	UpdatedAt            *time.Time       `json:"updated_at"`
}

// DisputeEvidence is the merchant-supplied evidence on a dispute.
type DisputeEvidence struct {
	ID              int64      `json:"id"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerName    string     `json:"customer_name"`
	CustomerPhone   string     `json:"customer_phone"`
	ServiceDetails  string     `json:"service_details"`
	DeliveryAddress string     `json:"delivery_address"`
	DeliveryDate    *time.Time `json:"delivery_date"`
	Dispute         int64      `json:"dispute"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

// DisputeUploadURL is a pre-signed location for evidence attachments.
type DisputeUploadURL struct {
	SignedURL string `json:"signed_url"`
	FileName  string `json:"file_name"`
}

// AddEvidenceRequest attaches evidence to a dispute.
type AddEvidenceRequest struct {
	CustomerEmail   string `json:"customer_email"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	ServiceDetails  string `json:"service_details"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	DeliveryDate    string `json:"delivery_date,omitempty"`
}

// ResolveDisputeRequest settles a dispute.
type ResolveDisputeRequest struct {
	Resolution       Resolution `json:"resolution"`
	Message          string     `json:"message"`
	RefundAmount     int64      `json:"refund_amount,omitempty"`
	UploadedFileName string     `json:"uploaded_filename,omitempty"`
	Evidence         int64      `json:"evidence,omitempty"`
}

// ListDisputesOptions filters a dispute listing.
type ListDisputesOptions struct {
	PerPage     int
	Page        int
	From        time.Time
	To          time.Time
	Status      DisputeStatus
	Transaction string
}

func (o *ListDisputesOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "perPage", int64(o.PerPage))
	setInt(q, "page", int64(o.Page))
	setTime(q, "from", o.From)
	setTime(q, "to", o.To)
	setString(q, "status", string(o.Status))
	setString(q, "transaction", o.Transaction)
	return q
}

// List returns one page of disputes.
func (s *DisputeService) List(ctx context.Context, opts *ListDisputesOptions) (*Response[[]Dispute], error) {
	return do[[]Dispute](ctx, s.client, http.MethodGet, withQuery("/dispute", opts.values()), nil)
}

// Fetch retrieves one dispute.
func (s *DisputeService) Fetch(ctx context.Context, id int64) (*Response[Dispute], error) {
	return do[Dispute](ctx, s.client, http.MethodGet, fmt.Sprintf("/dispute/%d", id), nil)
}

// ListTransactionDisputes returns the disputes raised against one
// transaction.
func (s *DisputeService) ListTransactionDisputes(ctx context.Context, transactionID int64) (*Response[Dispute], error) {
	return do[Dispute](ctx, s.client, http.MethodGet, fmt.Sprintf("/dispute/transaction/%d", transactionID), nil)
}

// Update changes the refund amount or attached file on a dispute.
func (s *DisputeService) Update(ctx context.Context, id int64, refundAmount int64, uploadedFileName string) (*Response[Dispute], error) {
	if refundAmount <= 0 {
		return nil, &ValidationError{Field: "refund_amount", Message: "refund amount must be a positive integer in the subunit of the currency"}
	}
	body := map[string]any{"refund_amount": refundAmount}
	if uploadedFileName != "" {
		body["uploaded_filename"] = uploadedFileName
	}
	return do[Dispute](ctx, s.client, http.MethodPut, fmt.Sprintf("/dispute/%d", id), body)
}

// AddEvidence attaches merchant evidence to a dispute.
func (s *DisputeService) AddEvidence(ctx context.Context, id int64, req *AddEvidenceRequest) (*Response[DisputeEvidence], error) {
	if req == nil || req.CustomerEmail == "" {
		return nil, &ValidationError{Field: "customer_email", Message: "customer email is required"}
	}
	if req.CustomerName == "" {
		return nil, &ValidationError{Field: "customer_name", Message: "customer name is required"}
	}
	if req.CustomerPhone == "" {
		return nil, &ValidationError{Field: "customer_phone", Message: "customer phone is required"}
	}
	if req.ServiceDetails == "" {
		return nil, &ValidationError{Field: "service_details", Message: "service details are required"}
	}
	return do[DisputeEvidence](ctx, s.client, http.MethodPost, fmt.Sprintf("/dispute/%d/evidence", id), req)
}

// GetUploadURL returns a pre-signed URL for uploading an evidence file.
func (s *DisputeService) GetUploadURL(ctx context.Context, id int64, uploadFileName string) (*Response[DisputeUploadURL], error) {
	if uploadFileName == "" {
		return nil, &ValidationError{Field: "upload_filename", Message: "upload file name is required"}
	}
	q := url.Values{}
	q.Set("upload_filename", uploadFileName)
	return do[DisputeUploadURL](ctx, s.client, http.MethodGet, withQuery(fmt.Sprintf("/dispute/%d/upload_url", id), q), nil)
}

// Resolve settles a dispute with a resolution and message.
func (s *DisputeService) Resolve(ctx context.Context, id int64, req *ResolveDisputeRequest) (*Response[Dispute], error) {
	if req == nil || req.Resolution == "" {
		return nil, &ValidationError{Field: "resolution", Message: "resolution is required"}
	}
	if req.Message == "" {
		return nil, &ValidationError{Field: "message", Message: "resolution message is required"}
	}
	return do[Dispute](ctx, s.client, http.MethodPut, fmt.Sprintf("/dispute/%d/resolve", id), req)
}

// Export asks the API for a CSV export of disputes.
func (s *DisputeService) Export(ctx context.Context, opts *ListDisputesOptions) (*Response[ExportedTransactions], error) {
	return do[ExportedTransactions](ctx, s.client, http.MethodGet, withQuery("/dispute/export", opts.values()), nil)
}
