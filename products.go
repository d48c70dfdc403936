package paystack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ProductService wraps the /product endpoints.
type ProductService service

// Product mirrors one product object.
type Product struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	ProductCode    string     `json:"product_code"`
	Slug           string     `json:"slug"`
	Price          int64      `json:"price"`
	Currency       Currency   `json:"currency"`
	Quantity       int64      `json:"quantity"`
	QuantitySold   int64      `json:"quantity_sold"`
	Unlimited      bool       `json:"unlimited"`
	Active         bool       `json:"active"`
	Domain         string     `json:"domain"`
	Type           string     `json:"type"`
	InStock        bool       `json:"in_stock"`
	Shippable      bool       `json:"is_shippable"`
	ShippingFields Metadata   `json:"shipping_fields"`
	Files          Metadata   `json:"files"`
	Metadata       Metadata   `json:"metadata"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// ProductRequest creates or updates a product. Unlimited stock and a finite
// Quantity are mutually exclusive.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Currency    Currency `json:"currency"`
	Unlimited   bool     `json:"unlimited,omitempty"`
	Quantity    int64    `json:"quantity,omitempty"`
}

func (r *ProductRequest) validate() error {
	if r == nil || r.Name == "" {
		return &ValidationError{Field: "name", Message: "product name is required"}
	}
	if r.Price <= 0 {
		return &ValidationError{Field: "price", Message: "price must be a positive integer in the subunit of the currency"}
	}
	if r.Currency == "" {
		return &ValidationError{Field: "currency", Message: "currency is required"}
	}
	if r.Unlimited && r.Quantity > 0 {
		return &ValidationError{Field: "quantity", Message: "cannot set a finite quantity when stock is unlimited"}
	}
	return nil
}

// ListProductsOptions filters a product listing.
type ListProductsOptions struct {
	PerPage int
	Page    int
	From    time.Time
	To      time.Time
}

func (o *ListProductsOptions) values() url.Values {
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

// Create registers a product.
func (s *ProductService) Create(ctx context.Context, req *ProductRequest) (*Response[Product], error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	return do[Product](ctx, s.client, http.MethodPost, "/product", req)
}

// List returns one page of products.
func (s *ProductService) List(ctx context.Context, opts *ListProductsOptions) (*Response[[]Product], error) {
	return do[[]Product](ctx, s.client, http.MethodGet, withQuery("/product", opts.values()), nil)
}

// Fetch retrieves one product by id.
func (s *ProductService) Fetch(ctx context.Context, id int64) (*Response[Product], error) {
	return do[Product](ctx, s.client, http.MethodGet, fmt.Sprintf("/product/%d", id), nil)
}

// Update changes a product. The unlimited/quantity conflict rule applies
// here as well.
func (s *ProductService) Update(ctx context.Context, id int64, req *ProductRequest) (*Response[Product], error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	return do[Product](ctx, s.client, http.MethodPut, fmt.Sprintf("/product/%d", id), req)
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id int64) (*Response[struct{}], error) {
	return do[struct{}](ctx, s.client, http.MethodDelete, fmt.Sprintf("/product/%d", id), nil)
}
