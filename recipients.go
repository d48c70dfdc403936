package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// TransferRecipientService wraps the /transferrecipient endpoints.
type TransferRecipientService service

// TransferRecipient mirrors one beneficiary of transfers.
type TransferRecipient struct {
	ID            int64             `json:"id"`
	RecipientCode string            `json:"recipient_code"`
	Type          RecipientType     `json:"type"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Email         string            `json:"email"`
	Metadata      Metadata          `json:"metadata"`
	Domain        string            `json:"domain"`
	Currency      Currency          `json:"currency"`
	Active        bool              `json:"active"`
	IsDeleted     bool              `json:"is_deleted"`
	Details       *RecipientDetails `json:"details"`
	CreatedAt     *time.Time        `json:"created_at"`
	UpdatedAt     *time.Time        `json:"updated_at"`
}

// RecipientDetails carries the payout routing of a recipient.
type RecipientDetails struct {
	AuthorizationCode string `json:"authorization_code"`
	AccountNumber     string `json:"account_number"`
	AccountName       string `json:"account_name"`
	BankCode          string `json:"bank_code"`
	BankName          string `json:"bank_name"`
}

// RecipientRef is either a bare recipient id or a nested recipient object.
type RecipientRef struct {
	ID        int64
	Recipient *TransferRecipient
}

func (r *RecipientRef) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '{' {
		var tr TransferRecipient
		if err := json.Unmarshal(b, &tr); err != nil {
			return err
		}
		r.Recipient = &tr
		r.ID = tr.ID
		return nil
	}
	return json.Unmarshal(b, &r.ID)
}

func (r RecipientRef) MarshalJSON() ([]byte, error) {
	if r.Recipient != nil {
		return json.Marshal(r.Recipient)
	}
	return json.Marshal(r.ID)
}

// CreateRecipientRequest registers a transfer beneficiary. Bank-routed
// recipient types require a bank code.
type CreateRecipientRequest struct {
	Type              RecipientType `json:"type"`
	Name              string        `json:"name"`
	AccountNumber     string        `json:"account_number,omitempty"`
	BankCode          string        `json:"bank_code,omitempty"`
	Description       string        `json:"description,omitempty"`
	Currency          Currency      `json:"currency,omitempty"`
	AuthorizationCode string        `json:"authorization_code,omitempty"`
	Metadata          Metadata      `json:"metadata,omitempty"`
}

func (r *CreateRecipientRequest) validate() error {
	if r == nil || r.Type == "" {
		return &ValidationError{Field: "type", Message: "recipient type is required"}
	}
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "recipient name is required"}
	}
	if r.Type.bankRouted() && r.BankCode == "" {
		return &ValidationError{Field: "bank_code", Message: "bank code is required for bank-routed recipient type " + string(r.Type)}
	}
	return nil
}

// BulkCreateRecipientsResponse reports which entries succeeded.
type BulkCreateRecipientsResponse struct {
	Success []TransferRecipient `json:"success"`
	Errors  []Metadata          `json:"errors"`
}

// ListRecipientsOptions filters a recipient listing.
type ListRecipientsOptions struct {
	PerPage int
	Page    int
	From    time.Time
	To      time.Time
}

func (o *ListRecipientsOptions) values() url.Values {
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

// Create registers a transfer recipient.
func (s *TransferRecipientService) Create(ctx context.Context, req *CreateRecipientRequest) (*Response[TransferRecipient], error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	return do[TransferRecipient](ctx, s.client, http.MethodPost, "/transferrecipient", req)
}

// BulkCreate registers several recipients in one call. Every entry is
// validated locally before anything is sent.
func (s *TransferRecipientService) BulkCreate(ctx context.Context, batch []CreateRecipientRequest) (*Response[BulkCreateRecipientsResponse], error) {
	if len(batch) == 0 {
		return nil, &ValidationError{Field: "batch", Message: "at least one recipient is required"}
	}
	for i := range batch {
		if err := batch[i].validate(); err != nil {
			return nil, err
		}
	}
	body := map[string]any{"batch": batch}
	return do[BulkCreateRecipientsResponse](ctx, s.client, http.MethodPost, "/transferrecipient/bulk", body)
}

// List returns one page of recipients.
func (s *TransferRecipientService) List(ctx context.Context, opts *ListRecipientsOptions) (*Response[[]TransferRecipient], error) {
	return do[[]TransferRecipient](ctx, s.client, http.MethodGet, withQuery("/transferrecipient", opts.values()), nil)
}

// Fetch retrieves a recipient by id or code.
func (s *TransferRecipientService) Fetch(ctx context.Context, idOrCode string) (*Response[TransferRecipient], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "recipient id or code is required"}
	}
	return do[TransferRecipient](ctx, s.client, http.MethodGet, "/transferrecipient/"+url.PathEscape(idOrCode), nil)
}

// Update changes a recipient's name or email.
func (s *TransferRecipientService) Update(ctx context.Context, idOrCode, name, email string) (*Response[TransferRecipient], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "recipient id or code is required"}
	}
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "recipient name is required"}
	}
	body := map[string]string{"name": name}
	if email != "" {
		body["email"] = email
	}
	return do[TransferRecipient](ctx, s.client, http.MethodPut, "/transferrecipient/"+url.PathEscape(idOrCode), body)
}

// Delete deactivates a recipient.
func (s *TransferRecipientService) Delete(ctx context.Context, idOrCode string) (*Response[struct{}], error) {
	if idOrCode == "" {
		return nil, &ValidationError{Field: "id_or_code", Message: "recipient id or code is required"}
	}
	return do[struct{}](ctx, s.client, http.MethodDelete, "/transferrecipient/"+url.PathEscape(idOrCode), nil)
}
