package paystack

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// SplitService wraps the /split endpoints.
type SplitService service

// Split mirrors one transaction split.
type Split struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	SplitCode        string            `json:"split_code"`
	Type             SplitType         `json:"type"`
	Currency         Currency          `json:"currency"`
	Active           bool              `json:"active"`
	Domain           string            `json:"domain"`
	BearerType       string            `json:"bearer_type"`
	BearerSubaccount int64             `json:"bearer_subaccount"`
	TotalSubaccounts int               `json:"total_subaccounts"`
	Integration      int64             `json:"integration"`
	Subaccounts      []SplitSubaccount `json:"subaccounts"`
	CreatedAt        *time.Time        `json:"created_at"`
	UpdatedAt        *time.Time        `json:"updated_at"`
}

// SplitSubaccount is one participant in a split.
type SplitSubaccount struct {
	Subaccount *Subaccount `json:"subaccount"`
	Share      float64     `json:"share"`
}

// SplitShare pairs a subaccount code with its share when creating a split.
type SplitShare struct {
	Subaccount string  `json:"subaccount"`
	Share      float64 `json:"share"`
}

// CreateSplitRequest defines a new split.
type CreateSplitRequest struct {
	Name             string       `json:"name"`
	Type             SplitType    `json:"type"`
	Currency         Currency     `json:"currency"`
	Subaccounts      []SplitShare `json:"subaccounts"`
	BearerType       string       `json:"bearer_type,omitempty"`
	BearerSubaccount string       `json:"bearer_subaccount,omitempty"`
}

// UpdateSplitRequest changes a split's name or state.
type UpdateSplitRequest struct {
	Name             string `json:"name,omitempty"`
	Active           *bool  `json:"active,omitempty"`
	BearerType       string `json:"bearer_type,omitempty"`
	BearerSubaccount string `json:"bearer_subaccount,omitempty"`
}

// ListSplitsOptions filters a split listing.
type ListSplitsOptions struct {
	PerPage int
	Page    int
	Name    string
	Active  *bool
	From    time.Time
	To      time.Time
}

func (o *ListSplitsOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "perPage", int64(o.PerPage))
	setInt(q, "page", int64(o.Page))
	setString(q, "name", o.Name)
	if o.Active != nil {
		if *o.Active {
			q.Set("active", "true")
		} else {
			q.Set("active", "false")
		}
	}
	setTime(q, "from", o.From)
	setTime(q, "to", o.To)
	return q
}

// Create defines a new transaction split.
func (s *SplitService) Create(ctx context.Context, req *CreateSplitRequest) (*Response[Split], error) {
	if req == nil || req.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "split name is required"}
	}
	if req.Type == "" {
		return nil, &ValidationError{Field: "type", Message: "split type is required"}
	}
	if req.Currency == "" {
		return nil, &ValidationError{Field: "currency", Message: "currency is required"}
	}
	if len(req.Subaccounts) == 0 {
		return nil, &ValidationError{Field: "subaccounts", Message: "at least one subaccount share is required"}
	}
	return do[Split](ctx, s.client, http.MethodPost, "/split", req)
}

// List returns one page of splits.
func (s *SplitService) List(ctx context.Context, opts *ListSplitsOptions) (*Response[[]Split], error) {
	return do[[]Split](ctx, s.client, http.MethodGet, withQuery("/split", opts.values()), nil)
}

// Fetch retrieves one split.
func (s *SplitService) Fetch(ctx context.Context, id string) (*Response[Split], error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "split id is required"}
	}
	return do[Split](ctx, s.client, http.MethodGet, "/split/"+url.PathEscape(id), nil)
}

// Update changes a split.
func (s *SplitService) Update(ctx context.Context, id string, req *UpdateSplitRequest) (*Response[Split], error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "split id is required"}
	}
	return do[Split](ctx, s.client, http.MethodPut, "/split/"+url.PathEscape(id), req)
}

// AddSubaccount adds a participant to a split, or updates its share.
func (s *SplitService) AddSubaccount(ctx context.Context, id string, share SplitShare) (*Response[Split], error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "split id is required"}
	}
	if share.Subaccount == "" {
		return nil, &ValidationError{Field: "subaccount", Message: "subaccount code is required"}
	}
	return do[Split](ctx, s.client, http.MethodPost, "/split/"+url.PathEscape(id)+"/subaccount/add", share)
}

// RemoveSubaccount drops a participant from a split.
func (s *SplitService) RemoveSubaccount(ctx context.Context, id, subaccount string) (*Response[struct{}], error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "split id is required"}
	}
	if subaccount == "" {
		return nil, &ValidationError{Field: "subaccount", Message: "subaccount code is required"}
	}
	body := map[string]string{"subaccount": subaccount}
	return do[struct{}](ctx, s.client, http.MethodPost, "/split/"+url.PathEscape(id)+"/subaccount/remove", body)
}
