package paystack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// TerminalService wraps the /terminal endpoints for physical POS devices.
type TerminalService service

// Terminal mirrors one registered device.
type Terminal struct {
	ID           int64  `json:"id"`
	SerialNumber string `json:"serial_number"`
	DeviceMake   string `json:"device_make"`
	TerminalID   string `json:"terminal_id"`
	Integration  int64  `json:"integration"`
	Domain       string `json:"domain"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Status       string `json:"status"`
}

// TerminalEventHandle identifies an event pushed to a device.
type TerminalEventHandle struct {
	EventID string `json:"id"`
}

// TerminalEventStatus reports whether a pushed event was delivered.
type TerminalEventStatus struct {
	Delivered bool `json:"delivered"`
}

// TerminalPresence reports device availability.
type TerminalPresence struct {
	Online    bool `json:"online"`
	Available bool `json:"available"`
}

// SendTerminalEventRequest pushes an invoice or transaction to a device.
// The action must be permitted for the event type: invoices accept process
// and view, transactions accept process and print.
type SendTerminalEventRequest struct {
	Type   TerminalEvent  `json:"type"`
	Action TerminalAction `json:"action"`
	Data   Metadata       `json:"data"`
}

func (r *SendTerminalEventRequest) validate() error {
	if r == nil || r.Type == "" {
		return &ValidationError{Field: "type", Message: "event type is required"}
	}
	allowed, ok := terminalActions[r.Type]
	if !ok {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown terminal event type %q", r.Type)}
	}
	for _, a := range allowed {
		if a == r.Action {
			return nil
		}
	}
	return &ValidationError{
		Field:   "action",
		Message: fmt.Sprintf("action %q is not permitted for %q events", r.Action, r.Type),
	}
}

// ListTerminalsOptions pages through registered devices.
type ListTerminalsOptions struct {
	PerPage  int
	Next     string
	Previous string
}

func (o *ListTerminalsOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "perPage", int64(o.PerPage))
	setString(q, "next", o.Next)
	setString(q, "previous", o.Previous)
	return q
}

// SendEvent pushes an event to a device.
func (s *TerminalService) SendEvent(ctx context.Context, terminalID string, req *SendTerminalEventRequest) (*Response[TerminalEventHandle], error) {
	if terminalID == "" {
		return nil, &ValidationError{Field: "terminal_id", Message: "terminal id is required"}
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return do[TerminalEventHandle](ctx, s.client, http.MethodPost, "/terminal/"+url.PathEscape(terminalID)+"/event", req)
}

// FetchEventStatus checks delivery of a pushed event.
func (s *TerminalService) FetchEventStatus(ctx context.Context, terminalID, eventID string) (*Response[TerminalEventStatus], error) {
	if terminalID == "" {
		return nil, &ValidationError{Field: "terminal_id", Message: "terminal id is required"}
	}
	if eventID == "" {
		return nil, &ValidationError{Field: "event_id", Message: "event id is required"}
	}
	return do[TerminalEventStatus](ctx, s.client, http.MethodGet, "/terminal/"+url.PathEscape(terminalID)+"/event/"+url.PathEscape(eventID), nil)
}

// FetchStatus checks whether a device is online.
func (s *TerminalService) FetchStatus(ctx context.Context, terminalID string) (*Response[TerminalPresence], error) {
	if terminalID == "" {
		return nil, &ValidationError{Field: "terminal_id", Message: "terminal id is required"}
	}
	return do[TerminalPresence](ctx, s.client, http.MethodGet, "/terminal/"+url.PathEscape(terminalID)+"/presence", nil)
}

// List returns registered devices. Terminal listing uses cursor paging.
func (s *TerminalService) List(ctx context.Context, opts *ListTerminalsOptions) (*Response[[]Terminal], error) {
	return do[[]Terminal](ctx, s.client, http.MethodGet, withQuery("/terminal", opts.values()), nil)
}

// Fetch retrieves one device.
func (s *TerminalService) Fetch(ctx context.Context, terminalID string) (*Response[Terminal], error) {
	if terminalID == "" {
		return nil, &ValidationError{Field: "terminal_id", Message: "terminal id is required"}
	}
	return do[Terminal](ctx, s.client, http.MethodGet, "/terminal/"+url.PathEscape(terminalID), nil)
}

// Update changes a device's name or address.
func (s *TerminalService) Update(ctx context.Context, terminalID, name, address string) (*Response[struct{}], error) {
	if terminalID == "" {
		return nil, &ValidationError{Field: "terminal_id", Message: "terminal id is required"}
	}
	body := map[string]string{}
	if name != "" {
		body["name"] = name
	}
	if address != "" {
		body["address"] = address
	}
	return do[struct{}](ctx, s.client, http.MethodPut, "/terminal/"+url.PathEscape(terminalID), body)
}

// Commission activates a device fresh from the dealer.
func (s *TerminalService) Commission(ctx context.Context, serialNumber string) (*Response[struct{}], error) {
	if serialNumber == "" {
		return nil, &ValidationError{Field: "serial_number", Message: "device serial number is required"}
	}
	body := map[string]string{"serial_number": serialNumber}
	return do[struct{}](ctx, s.client, http.MethodPost, "/terminal/commission_device", body)
}

// Decommission releases a device from the integration.
func (s *TerminalService) Decommission(ctx context.Context, serialNumber string) (*Response[struct{}], error) {
	if serialNumber == "" {
		return nil, &ValidationError{Field: "serial_number", Message: "device serial number is required"}
	}
	body := map[string]string{"serial_number": serialNumber}
	return do[struct{}](ctx, s.client, http.MethodPost, "/terminal/decommission_device", body)
}
