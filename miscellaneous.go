package paystack

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// MiscellaneousService wraps the bank, country and state lookups.
type MiscellaneousService service

// Bank mirrors one supported bank.
type Bank struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Code        string     `json:"code"`
	LongCode    string     `json:"longcode"`
	Gateway     string     `json:"gateway"`
	PayWithBank bool       `json:"pay_with_bank"`
	Active      bool       `json:"active"`
	Country     string     `json:"country"`
	Currency    Currency   `json:"currency"`
	Type        string     `json:"type"`
	IsDeleted   bool       `json:"is_deleted"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// Country mirrors one supported country.
type Country struct {
	ID                  int64    `json:"id"`
	Name                string   `json:"name"`
	ISOCode             string   `json:"iso_code"`
	DefaultCurrencyCode Currency `json:"default_currency_code"`
	Integration         Metadata `json:"integration_defaults"`
	Relationships       Metadata `json:"relationships"`
}

// State mirrors one state usable for address verification.
type State struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Abbreviation string `json:"abbreviation"`
}

// ListBanksOptions filters the bank directory.
type ListBanksOptions struct {
	Country     string
	Currency    Currency
	Type        string
	PayWithBank bool
	UseCursor   bool
	PerPage     int
	Next        string
	Previous    string
}

func (o *ListBanksOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setString(q, "country", o.Country)
	setString(q, "currency", string(o.Currency))
	setString(q, "type", o.Type)
	setBool(q, "pay_with_bank", o.PayWithBank)
	setBool(q, "use_cursor", o.UseCursor)
	setInt(q, "perPage", int64(o.PerPage))
	setString(q, "next", o.Next)
	setString(q, "previous", o.Previous)
	return q
}

// ListBanks returns the bank directory.
func (s *MiscellaneousService) ListBanks(ctx context.Context, opts *ListBanksOptions) (*Response[[]Bank], error) {
	return do[[]Bank](ctx, s.client, http.MethodGet, withQuery("/bank", opts.values()), nil)
}

// ListCountries returns the countries Paystack operates in.
func (s *MiscellaneousService) ListCountries(ctx context.Context) (*Response[[]Country], error) {
	return do[[]Country](ctx, s.client, http.MethodGet, "/country", nil)
}

// ListStates returns the states of a country for address verification.
func (s *MiscellaneousService) ListStates(ctx context.Context, countryCode string) (*Response[[]State], error) {
	if countryCode == "" {
		return nil, &ValidationError{Field: "country", Message: "country code is required"}
	}
	q := url.Values{}
	q.Set("country", countryCode)
	return do[[]State](ctx, s.client, http.MethodGet, withQuery("/address_verification/states", q), nil)
}
