package paystack

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// TransferService wraps the /transfer endpoints.
type TransferService service

// Transfer mirrors one transfer object.
type Transfer struct {
	ID            int64         `json:"id"`
	TransferCode  string        `json:"transfer_code"`
	Reference     string        `json:"reference"`
	Amount        int64         `json:"amount"`
	Currency      Currency      `json:"currency"`
	Source        string        `json:"source"`
	SourceDetails Metadata      `json:"source_details"`
	Reason        string        `json:"reason"`
	Status        string        `json:"status"`
	Failures      Metadata      `json:"failures"`
	TitanCode     string        `json:"titan_code"`
	TransferredAt *time.Time    `json:"transferred_at"`
	Recipient     *RecipientRef `json:"recipient"`
	Domain        string        `json:"domain"`
	Integration   int64         `json:"integration"`
	CreatedAt     *time.Time    `json:"created_at"`
	UpdatedAt     *time.Time    `json:"updated_at"`
}

// InitiateTransferRequest moves money from the balance to a recipient.
type InitiateTransferRequest struct {
	Source    TransferSource `json:"source"`
	Amount    int64          `json:"amount"`
	Recipient string         `json:"recipient"`
	Reason    string         `json:"reason,omitempty"`
	Currency  Currency       `json:"currency,omitempty"`
	Reference string         `json:"reference,omitempty"`
}

func (r *InitiateTransferRequest) validate() error {
	if r == nil || r.Source == "" {
		return &ValidationError{Field: "source", Message: "transfer source is required"}
	}
	if r.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "amount must be a positive integer in the subunit of the currency"}
	}
	if r.Recipient == "" {
		return &ValidationError{Field: "recipient", Message: "recipient code is required"}
	}
	return nil
}

// BulkTransferRequest initiates several transfers in one call.
type BulkTransferRequest struct {
	Source    TransferSource            `json:"source"`
	Currency  Currency                  `json:"currency,omitempty"`
	Transfers []BulkTransferInstruction `json:"transfers"`
}

// BulkTransferInstruction is one entry of a bulk transfer.
type BulkTransferInstruction struct {
	Amount    int64  `json:"amount"`
	Recipient string `json:"recipient"`
	Reference string `json:"reference,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// ListTransfersOptions filters a transfer listing.
type ListTransfersOptions struct {
	PerPage   int
	Page      int
	Recipient int64
	From      time.Time
	To        time.Time
}

func (o *ListTransfersOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "perPage", int64(o.PerPage))
	setInt(q, "page", int64(o.Page))
	setInt(q, "recipient", o.Recipient)
	setTime(q, "from", o.From)
	setTime(q, "to", o.To)
	return q
}

// Initiate starts a single transfer.
func (s *TransferService) Initiate(ctx context.Context, req *InitiateTransferRequest) (*Response[Transfer], error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	return do[Transfer](ctx, s.client, http.MethodPost, "/transfer", req)
}

// Finalize completes a transfer that requires an OTP.
func (s *TransferService) Finalize(ctx context.Context, transferCode, otp string) (*Response[Transfer], error) {
	if transferCode == "" {
		return nil, &ValidationError{Field: "transfer_code", Message: "transfer code is required"}
	}
	if otp == "" {
		return nil, &ValidationError{Field: "otp", Message: "otp is required"}
	}
	body := map[string]string{"transfer_code": transferCode, "otp": otp}
	return do[Transfer](ctx, s.client, http.MethodPost, "/transfer/finalize_transfer", body)
}

// BulkInitiate queues several transfers in one call. OTP must be disabled
// on the integration for this to succeed remotely.
func (s *TransferService) BulkInitiate(ctx context.Context, req *BulkTransferRequest) (*Response[[]Transfer], error) {
	if req == nil || req.Source == "" {
		return nil, &ValidationError{Field: "source", Message: "transfer source is required"}
	}
	if len(req.Transfers) == 0 {
		return nil, &ValidationError{Field: "transfers", Message: "at least one transfer instruction is required"}
	}
	return do[[]Transfer](ctx, s.client, http.MethodPost, "/transfer/bulk", req)
}

// List returns one page of transfers.
func (s *TransferService) List(ctx context.Context, opts *ListTransfersOptions) (*Response[[]Transfer], error) {
	return do[[]Transfer](ctx, s.client, http.MethodGet, withQuery("/transfer", opts.values()), nil)
}

// Fetch retrieves a transfer by id or code.
func (s *TransferService) Fetch(ctx context.Context, idOrCode string) (*Response[Transfer], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "transfer id or code is required"}
	}
	return do[Transfer](ctx, s.client, http.MethodGet, "/transfer/"+url.PathEscape(idOrCode), nil)
}

// Verify confirms a transfer's status by reference.
func (s *TransferService) Verify(ctx context.Context, reference string) (*Response[Transfer], error) {
	if reference == "" {
		return nil, &ValidationError{Field: "reference", Message: "transfer reference is required"}
	}
	return do[Transfer](ctx, s.client, http.MethodGet, "/transfer/verify/"+url.PathEscape(reference), nil)
}

// TransfersControlService wraps the balance and OTP control endpoints.
type TransfersControlService service

// Balance is one currency bucket of the integration's balance.
type Balance struct {
	Currency Currency `json:"currency"`
	Balance  int64    `json:"balance"`
}

// LedgerEntry is one movement on the balance ledger.
type LedgerEntry struct {
	Integration      int64      `json:"integration"`
	Domain           string     `json:"domain"`
	Balance          int64      `json:"balance"`
	Currency         Currency   `json:"currency"`
	Difference       int64      `json:"difference"`
	Reason           string     `json:"reason"`
	ModelResponsible string     `json:"model_responsible"`
	ModelRow         int64      `json:"model_row"`
	ID               int64      `json:"id"`
	CreatedAt        *time.Time `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

// CheckBalance returns the available balance per currency.
func (s *TransfersControlService) CheckBalance(ctx context.Context) (*Response[[]Balance], error) {
	return do[[]Balance](ctx, s.client, http.MethodGet, "/balance", nil)
}

// BalanceLedger lists all balance movements.
func (s *TransfersControlService) BalanceLedger(ctx context.Context, perPage, page int) (*Response[[]LedgerEntry], error) {
	q := url.Values{}
	setInt(q, "perPage", int64(perPage))
	setInt(q, "page", int64(page))
	return do[[]LedgerEntry](ctx, s.client, http.MethodGet, withQuery("/balance/ledger", q), nil)
}

// ResendOTP re-sends the OTP for a pending transfer. Reason is either
// "resend_otp" or "transfer".
func (s *TransfersControlService) ResendOTP(ctx context.Context, transferCode, reason string) (*Response[struct{}], error) {
	if transferCode == "" {
		return nil, &ValidationError{Field: "transfer_code", Message: "transfer code is required"}
	}
	if reason == "" {
		return nil, &ValidationError{Field: "reason", Message: "reason is required"}
	}
	body := map[string]string{"transfer_code": transferCode, "reason": reason}
	return do[struct{}](ctx, s.client, http.MethodPost, "/transfer/resend_otp", body)
}

// DisableOTP begins turning off OTP confirmation for transfers.
func (s *TransfersControlService) DisableOTP(ctx context.Context) (*Response[struct{}], error) {
	return do[struct{}](ctx, s.client, http.MethodPost, "/transfer/disable_otp", nil)
}

// FinalizeDisableOTP completes the OTP opt-out with the code sent to the
// business phone.
func (s *TransfersControlService) FinalizeDisableOTP(ctx context.Context, otp string) (*Response[struct{}], error) {
	if otp == "" {
		return nil, &ValidationError{Field: "otp", Message: "otp is required"}
	}
	body := map[string]string{"otp": otp}
	return do[struct{}](ctx, s.client, http.MethodPost, "/transfer/disable_otp_finalize", body)
}

// EnableOTP turns OTP confirmation back on.
func (s *TransfersControlService) EnableOTP(ctx context.Context) (*Response[struct{}], error) {
	return do[struct{}](ctx, s.client, http.MethodPost, "/transfer/enable_otp", nil)
}
