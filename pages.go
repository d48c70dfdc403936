package paystack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// PageService wraps the /page endpoints for hosted payment pages.
type PageService service

// Page mirrors one hosted payment page.
type Page struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Slug              string     `json:"slug"`
	Amount            int64      `json:"amount"`
	Currency          Currency   `json:"currency"`
	Type              PageType   `json:"type"`
	RedirectURL       string     `json:"redirect_url"`
	SuccessMessage    string     `json:"success_message"`
	CollectPhone      bool       `json:"collect_phone"`
	Active            bool       `json:"active"`
	Published         bool       `json:"published"`
	Domain            string     `json:"domain"`
	Plan              int64      `json:"plan"`
	FixedAmount       bool       `json:"fixed_amount"`
	SplitCode         string     `json:"split_code"`
	CustomFields      Metadata   `json:"custom_fields"`
	Metadata          Metadata   `json:"metadata"`
	Integration       int64      `json:"integration"`
	CreatedAt         *time.Time `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

// PageRequest creates or updates a payment page.
type PageRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Amount         int64    `json:"amount,omitempty"`
	Currency       Currency `json:"currency,omitempty"`
	Slug           string   `json:"slug,omitempty"`
	Type           PageType `json:"type,omitempty"`
	Plan           string   `json:"plan,omitempty"`
	FixedAmount    *bool    `json:"fixed_amount,omitempty"`
	SplitCode      string   `json:"split_code,omitempty"`
	RedirectURL    string   `json:"redirect_url,omitempty"`
	SuccessMessage string   `json:"success_message,omitempty"`
	CollectPhone   *bool    `json:"collect_phone,omitempty"`
	Metadata       Metadata `json:"metadata,omitempty"`
	CustomFields   Metadata `json:"custom_fields,omitempty"`
}

// SlugAvailability reports whether a page slug is free to use.
type SlugAvailability struct {
	Slug string `json:"slug"`
}

// ListPagesOptions filters a page listing.
type ListPagesOptions struct {
	PerPage int
	Page    int
	From    time.Time
	To      time.Time
}

func (o *ListPagesOptions) values() url.Values {
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

// Create registers a hosted payment page.
func (s *PageService) Create(ctx context.Context, req *PageRequest) (*Response[Page], error) {
	if req == nil || req.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "page name is required"}
	}
	return do[Page](ctx, s.client, http.MethodPost, "/page", req)
}

// List returns one page of payment pages.
func (s *PageService) List(ctx context.Context, opts *ListPagesOptions) (*Response[[]Page], error) {
	return do[[]Page](ctx, s.client, http.MethodGet, withQuery("/page", opts.values()), nil)
}

// Fetch retrieves a payment page by id or slug.
func (s *PageService) Fetch(ctx context.Context, idOrSlug string) (*Response[Page], error) {
	if idOrSlug == "" {
		return nil, &ValidationError{Field: "id_or_slug", Message: "page id or slug is required"}
	}
	return do[Page](ctx, s.client, http.MethodGet, "/page/"+url.PathEscape(idOrSlug), nil)
}

// Update changes a payment page.
func (s *PageService) Update(ctx context.Context, idOrSlug string, req *PageRequest) (*Response[Page], error) {
	if idOrSlug == "" {
		return nil, &ValidationError{Field: "id_or_slug", Message: "page id or slug is required"}
	}
	return do[Page](ctx, s.client, http.MethodPut, "/page/"+url.PathEscape(idOrSlug), req)
}

// CheckSlug reports whether a slug is available for a new page.
func (s *PageService) CheckSlug(ctx context.Context, slug string) (*Response[SlugAvailability], error) {
	if slug == "" {
		return nil, &ValidationError{Field: "slug", Message: "slug is required"}
	}
	return do[SlugAvailability](ctx, s.client, http.MethodGet, "/page/check_slug_availability/"+url.PathEscape(slug), nil)
}

// AddProducts attaches products to a page.
func (s *PageService) AddProducts(ctx context.Context, id int64, productIDs []int64) (*Response[Page], error) {
	if len(productIDs) == 0 {
		return nil, &ValidationError{Field: "products", Message: "at least one product id is required"}
	}
	body := map[string]any{"product": productIDs}
	return do[Page](ctx, s.client, http.MethodPost, fmt.Sprintf("/page/%d/product", id), body)
}
