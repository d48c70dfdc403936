package paystack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// TransactionService wraps the /transaction endpoints.
type TransactionService service

// Transaction mirrors one transaction object as returned by the API.
type Transaction struct {
	ID                 int64          `json:"id"`
	Domain             string         `json:"domain"`
	Status             string         `json:"status"`
	Reference          string         `json:"reference"`
	ReceiptNumber      string         `json:"receipt_number"`
	Amount             int64          `json:"amount"`
	Message            string         `json:"message"`
	GatewayResponse    string         `json:"gateway_response"`
	PaidAt             *time.Time     `json:"paid_at"`
	CreatedAt          *time.Time     `json:"created_at"`
	Channel            string         `json:"channel"`
	Currency           Currency       `json:"currency"`
	IPAddress          string         `json:"ip_address"`
	Metadata           Metadata       `json:"metadata"`
	Fees               int64          `json:"fees"`
	FeesSplit          Metadata       `json:"fees_split"`
	Authorization      *Authorization `json:"authorization"`
	Customer           *Customer      `json:"customer"`
	Plan               *PlanRef       `json:"plan"`
	Subaccount         Metadata       `json:"subaccount"`
	OrderID            string         `json:"order_id"`
	RequestedAmount    int64          `json:"requested_amount"`
	PosTransactionData Metadata       `json:"pos_transaction_data"`
}

// Authorization is a reusable card authorization attached to a transaction.
type Authorization struct {
	AuthorizationCode string `json:"authorization_code"`
	Bin               string `json:"bin"`
	Last4             string `json:"last4"`
	ExpMonth          string `json:"exp_month"`
	ExpYear           string `json:"exp_year"`
	Channel           string `json:"channel"`
	CardType          string `json:"card_type"`
	Bank              string `json:"bank"`
	CountryCode       string `json:"country_code"`
	Brand             string `json:"brand"`
	Reusable          bool   `json:"reusable"`
	Signature         string `json:"signature"`
	AccountName       string `json:"account_name"`
}

// InitializedTransaction is the handle returned when a transaction is
// initialized: the caller redirects the customer to AuthorizationURL.
type InitializedTransaction struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// TransactionTotals aggregates volume across the integration.
type TransactionTotals struct {
	TotalTransactions          int64            `json:"total_transactions"`
	UniqueCustomers            int64            `json:"unique_customers"`
	TotalVolume                int64            `json:"total_volume"`
	TotalVolumeByCurrency      []CurrencyAmount `json:"total_volume_by_currency"`
	PendingTransfers           int64            `json:"pending_transfers"`
	PendingTransfersByCurrency []CurrencyAmount `json:"pending_transfers_by_currency"`
}

// CurrencyAmount is an amount tagged with its currency.
type CurrencyAmount struct {
	Currency Currency `json:"currency"`
	Amount   int64    `json:"amount"`
}

// ExportedTransactions points at a generated CSV export.
type ExportedTransactions struct {
	Path      string     `json:"path"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// TimelineEntry is one step of a transaction's processing timeline.
type TimelineEntry struct {
	TimeSpent      int64      `json:"time_spent"`
	Attempts       int64      `json:"attempts"`
	Authentication string     `json:"authentication"`
	Errors         int64      `json:"errors"`
	Success        bool       `json:"success"`
	Mobile         bool       `json:"mobile"`
	Channel        string     `json:"channel"`
	History        []Metadata `json:"history"`
}

// InitializeTransactionRequest starts a new payment.
type InitializeTransactionRequest struct {
	Email             string    `json:"email"`
	Amount            int64     `json:"amount"`
	Currency          Currency  `json:"currency,omitempty"`
	Reference         string    `json:"reference,omitempty"`
	CallbackURL       string    `json:"callback_url,omitempty"`
	Plan              string    `json:"plan,omitempty"`
	InvoiceLimit      int       `json:"invoice_limit,omitempty"`
	Metadata          Metadata  `json:"metadata,omitempty"`
	Channels          []string  `json:"channels,omitempty"`
	SplitCode         string    `json:"split_code,omitempty"`
	Subaccount        string    `json:"subaccount,omitempty"`
	TransactionCharge int64     `json:"transaction_charge,omitempty"`
	Bearer            Bearer    `json:"bearer,omitempty"`
}

// ChargeAuthorizationRequest charges a previously stored authorization.
type ChargeAuthorizationRequest struct {
	Email             string   `json:"email"`
	Amount            int64    `json:"amount"`
	AuthorizationCode string   `json:"authorization_code"`
	Reference         string   `json:"reference,omitempty"`
	Currency          Currency `json:"currency,omitempty"`
	Metadata          Metadata `json:"metadata,omitempty"`
	Channels          []string `json:"channels,omitempty"`
	SplitCode         string   `json:"split_code,omitempty"`
	Subaccount        string   `json:"subaccount,omitempty"`
	TransactionCharge int64    `json:"transaction_charge,omitempty"`
	Bearer            Bearer   `json:"bearer,omitempty"`
	Queue             bool     `json:"queue,omitempty"`
}

// PartialDebitRequest debits as much as is available up to Amount.
type PartialDebitRequest struct {
	AuthorizationCode string   `json:"authorization_code"`
	Currency          Currency `json:"currency"`
	Amount            int64    `json:"amount"`
	Email             string   `json:"email"`
	Reference         string   `json:"reference,omitempty"`
	AtLeast           int64    `json:"at_least,omitempty,string"`
}

// ListTransactionsOptions filters a transaction listing. Zero values are
// omitted from the query.
type ListTransactionsOptions struct {
	PerPage    int
	Page       int
	Customer   int64
	TerminalID string
	Status     string
	From       time.Time
	To         time.Time
	Amount     int64
}

func (o *ListTransactionsOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "perPage", int64(o.PerPage))
	setInt(q, "page", int64(o.Page))
	setInt(q, "customer", o.Customer)
	setString(q, "terminalid", o.TerminalID)
	setString(q, "status", o.Status)
	setTime(q, "from", o.From)
	setTime(q, "to", o.To)
	setInt(q, "amount", o.Amount)
	return q
}

// Initialize begins a transaction and returns the checkout handle.
func (s *TransactionService) Initialize(ctx context.Context, req *InitializeTransactionRequest) (*Response[InitializedTransaction], error) {
	if req == nil || req.Email == "" {
		return nil, &ValidationError{Field: "email", Message: "customer email is required"}
	}
	if req.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must be a positive integer in the subunit of the currency"}
	}
	return do[InitializedTransaction](ctx, s.client, http.MethodPost, "/transaction/initialize", req)
}

// Verify confirms the status of a transaction by its reference.
func (s *TransactionService) Verify(ctx context.Context, reference string) (*Response[Transaction], error) {
	if reference == "" {
		return nil, &ValidationError{Field: "reference", Message: "transaction reference is required"}
	}
	return do[Transaction](ctx, s.client, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil)
}

// List returns one page of transactions.
func (s *TransactionService) List(ctx context.Context, opts *ListTransactionsOptions) (*Response[[]Transaction], error) {
	return do[[]Transaction](ctx, s.client, http.MethodGet, withQuery("/transaction", opts.values()), nil)
}

// Fetch retrieves one transaction by id.
func (s *TransactionService) Fetch(ctx context.Context, id int64) (*Response[Transaction], error) {
	return do[Transaction](ctx, s.client, http.MethodGet, fmt.Sprintf("/transaction/%d", id), nil)
}

// ChargeAuthorization debits a stored authorization without customer input.
func (s *TransactionService) ChargeAuthorization(ctx context.Context, req *ChargeAuthorizationRequest) (*Response[Transaction], error) {
	if req == nil || req.Email == "" {
		return nil, &ValidationError{Field: "email", Message: "customer email is required"}
	}
	if req.AuthorizationCode == "" {
		return nil, &ValidationError{Field: "authorization_code", Message: "authorization code is required"}
	}
	return do[Transaction](ctx, s.client, http.MethodPost, "/transaction/charge_authorization", req)
}

// Timeline returns the processing timeline for a transaction id or reference.
func (s *TransactionService) Timeline(ctx context.Context, idOrReference string) (*Response[TimelineEntry], error) {
	if idOrReference == "" {
		return nil, &ValidationError{Field: "id_or_reference", Message: "transaction id or reference is required"}
	}
	return do[TimelineEntry](ctx, s.client, http.MethodGet, "/transaction/timeline/"+url.PathEscape(idOrReference), nil)
}

// Totals reports transaction volume for the integration.
func (s *TransactionService) Totals(ctx context.Context, from, to time.Time) (*Response[TransactionTotals], error) {
	q := url.Values{}
	setTime(q, "from", from)
	setTime(q, "to", to)
	return do[TransactionTotals](ctx, s.client, http.MethodGet, withQuery("/transaction/totals", q), nil)
}

// Export asks the API to generate a CSV export of transactions.
func (s *TransactionService) Export(ctx context.Context, opts *ListTransactionsOptions) (*Response[ExportedTransactions], error) {
	return do[ExportedTransactions](ctx, s.client, http.MethodGet, withQuery("/transaction/export", opts.values()), nil)
}

// PartialDebit charges whatever is available on the account, up to Amount.
func (s *TransactionService) PartialDebit(ctx context.Context, req *PartialDebitRequest) (*Response[Transaction], error) {
	if req == nil || req.AuthorizationCode == "" {
		return nil, &ValidationError{Field: "authorization_code", Message: "authorization code is required"}
	}
	if req.Currency == "" {
		return nil, &ValidationError{Field: "currency", Message: "currency is required"}
	}
	if req.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must be a positive integer in the subunit of the currency"}
	}
	if req.Email == "" {
		return nil, &ValidationError{Field: "email", Message: "customer email is required"}
	}
	return do[Transaction](ctx, s.client, http.MethodPost, "/transaction/partial_debit", req)
}
