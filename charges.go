package paystack

import (
	"context"
	"net/http"
	"net/url"
)

// ChargeService wraps the /charge endpoints used for direct card, bank and
// mobile-money charges with interactive follow-ups (PIN, OTP, and so on).
type ChargeService service

// ChargeState is the in-flight state of a direct charge. Status carries the
// next required step (send_pin, send_otp, pending, success, failed).
type ChargeState struct {
	ID              int64          `json:"id"`
	Reference       string         `json:"reference"`
	Status          string         `json:"status"`
	DisplayText     string         `json:"display_text"`
	Message         string         `json:"message"`
	Amount          int64          `json:"amount"`
	Currency        Currency       `json:"currency"`
	GatewayResponse string         `json:"gateway_response"`
	Channel         string         `json:"channel"`
	Authorization   *Authorization `json:"authorization"`
	Customer        *Customer      `json:"customer"`
	Metadata        Metadata       `json:"metadata"`
	Fees            int64          `json:"fees"`
	URL             string         `json:"url"`
}

// CreateChargeRequest starts a direct charge. Exactly one payment
// instrument (card, bank, mobile money, USSD, QR, authorization code)
// should be populated.
type CreateChargeRequest struct {
	Email             string             `json:"email"`
	Amount            int64              `json:"amount"`
	Currency          Currency           `json:"currency,omitempty"`
	Reference         string             `json:"reference,omitempty"`
	AuthorizationCode string             `json:"authorization_code,omitempty"`
	PIN               string             `json:"pin,omitempty"`
	Bank              *ChargeBank        `json:"bank,omitempty"`
	MobileMoney       *ChargeMobileMoney `json:"mobile_money,omitempty"`
	USSD              *ChargeUSSD        `json:"ussd,omitempty"`
	QR                *ChargeQR          `json:"qr,omitempty"`
	Metadata          Metadata           `json:"metadata,omitempty"`
	DeviceID          string             `json:"device_id,omitempty"`
}

// ChargeBank identifies a bank account to charge.
type ChargeBank struct {
	Code          string `json:"code"`
	AccountNumber string `json:"account_number"`
}

// ChargeMobileMoney identifies a mobile wallet to charge.
type ChargeMobileMoney struct {
	Phone    string `json:"phone"`
	Provider string `json:"provider"`
}

// ChargeUSSD selects a USSD bank type.
type ChargeUSSD struct {
	Type string `json:"type"`
}

// ChargeQR selects a QR provider.
type ChargeQR struct {
	Provider string `json:"provider"`
}

// Create starts a direct charge.
func (s *ChargeService) Create(ctx context.Context, req *CreateChargeRequest) (*Response[ChargeState], error) {
	if req == nil || req.Email == "" {
		return nil, &ValidationError{Field: "email", Message: "customer email is required"}
	}
	if req.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must be a positive integer in the subunit of the currency"}
	}
	return do[ChargeState](ctx, s.client, http.MethodPost, "/charge", req)
}

// SubmitPIN continues a charge that requested the card PIN.
func (s *ChargeService) SubmitPIN(ctx context.Context, pin, reference string) (*Response[ChargeState], error) {
	if err := requireChargeFollowup("pin", pin, reference); err != nil {
		return nil, err
	}
	body := map[string]string{"pin": pin, "reference": reference}
	return do[ChargeState](ctx, s.client, http.MethodPost, "/charge/submit_pin", body)
}

// SubmitOTP continues a charge that requested a one-time password.
func (s *ChargeService) SubmitOTP(ctx context.Context, otp, reference string) (*Response[ChargeState], error) {
	if err := requireChargeFollowup("otp", otp, reference); err != nil {
		return nil, err
	}
	body := map[string]string{"otp": otp, "reference": reference}
	return do[ChargeState](ctx, s.client, http.MethodPost, "/charge/submit_otp", body)
}

// SubmitPhone continues a charge that requested a phone number.
func (s *ChargeService) SubmitPhone(ctx context.Context, phone, reference string) (*Response[ChargeState], error) {
	if err := requireChargeFollowup("phone", phone, reference); err != nil {
		return nil, err
	}
	body := map[string]string{"phone": phone, "reference": reference}
	return do[ChargeState](ctx, s.client, http.MethodPost, "/charge/submit_phone", body)
}

// SubmitBirthday continues a charge that requested the customer's birthday
// (YYYY-MM-DD).
func (s *ChargeService) SubmitBirthday(ctx context.Context, birthday, reference string) (*Response[ChargeState], error) {
	if err := requireChargeFollowup("birthday", birthday, reference); err != nil {
		return nil, err
	}
	body := map[string]string{"birthday": birthday, "reference": reference}
	return do[ChargeState](ctx, s.client, http.MethodPost, "/charge/submit_birthday", body)
}

// ChargeAddress is the billing address requested by some card issuers.
type ChargeAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipcode"`
}

// SubmitAddress continues a charge that requested a billing address.
func (s *ChargeService) SubmitAddress(ctx context.Context, addr *ChargeAddress, reference string) (*Response[ChargeState], error) {
	if addr == nil || addr.Address == "" {
		return nil, &ValidationError{Field: "address", Message: "address is required"}
	}
	if reference == "" {
		return nil, &ValidationError{Field: "reference", Message: "charge reference is required"}
	}
	body := map[string]string{
		"address":   addr.Address,
		"city":      addr.City,
		"state":     addr.State,
		"zipcode":   addr.ZipCode,
		"reference": reference,
	}
	return do[ChargeState](ctx, s.client, http.MethodPost, "/charge/submit_address", body)
}

// CheckPending polls the state of a charge awaiting processing.
func (s *ChargeService) CheckPending(ctx context.Context, reference string) (*Response[ChargeState], error) {
	if reference == "" {
		return nil, &ValidationError{Field: "reference", Message: "charge reference is required"}
	}
	return do[ChargeState](ctx, s.client, http.MethodGet, "/charge/"+url.PathEscape(reference), nil)
}

func requireChargeFollowup(field, value, reference string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: field + " is required"}
	}
	if reference == "" {
		return &ValidationError{Field: "reference", Message: "charge reference is required"}
	}
	return nil
}
