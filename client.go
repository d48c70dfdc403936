package paystack

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://api.paystack.co"
	envSecretKey   = "PAYSTACK_SECRET_KEY"
	userAgent      = "paystack-go/1.0"

	defaultTimeout = 30 * time.Second
)

// Client talks to the Paystack API. It holds no mutable state beyond the
// configuration set at construction, so a single instance is safe for
// concurrent use.
type Client struct {
	secretKey string
	baseURL   string
	http      *http.Client
	logger    zerolog.Logger
	strict    bool

	common service

	Transactions      *TransactionService
	Customers         *CustomerService
	Plans             *PlanService
	Subscriptions     *SubscriptionService
	Products          *ProductService
	Pages             *PageService
	PaymentRequests   *PaymentRequestService
	Recipients        *TransferRecipientService
	Transfers         *TransferService
	TransfersControl  *TransfersControlService
	BulkCharges       *BulkChargeService
	Charges           *ChargeService
	Disputes          *DisputeService
	Refunds           *RefundService
	Settlements       *SettlementService
	Subaccounts       *SubaccountService
	Splits            *SplitService
	DedicatedAccounts *DedicatedAccountService
	Terminals         *TerminalService
	ApplePay          *ApplePayService
	Verification      *VerificationService
	Miscellaneous     *MiscellaneousService
	Integration       *IntegrationService
}

type service struct {
	client *Client
}

// Option configures a Client.
type Option func(*Client)

// WithSecretKey sets the bearer credential explicitly, taking precedence
// over the PAYSTACK_SECRET_KEY environment variable.
func WithSecretKey(key string) Option {
	return func(c *Client) { c.secretKey = strings.TrimSpace(key) }
}

// WithBaseURL overrides the API host, e.g. to point at a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a logger. Schema mismatches are logged at warn level;
// by default logging is disabled entirely.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithStrictDecoding makes a response whose data field fails to decode into
// the expected model return a *DecodeError instead of silently yielding an
// envelope with nil Data.
func WithStrictDecoding() Option {
	return func(c *Client) { c.strict = true }
}

// NewClient builds a Client. The secret key is resolved from WithSecretKey
// first, then from PAYSTACK_SECRET_KEY; if both are absent it returns
// ErrNoSecretKey without touching the network.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.secretKey == "" {
		c.secretKey = strings.TrimSpace(os.Getenv(envSecretKey))
	}
	if c.secretKey == "" {
		return nil, ErrNoSecretKey
	}

	c.common.client = c
	c.Transactions = (*TransactionService)(&c.common)
	c.Customers = (*CustomerService)(&c.common)
	c.Plans = (*PlanService)(&c.common)
	c.Subscriptions = (*SubscriptionService)(&c.common)
	c.Products = (*ProductService)(&c.common)
	c.Pages = (*PageService)(&c.common)
	c.PaymentRequests = (*PaymentRequestService)(&c.common)
	c.Recipients = (*TransferRecipientService)(&c.common)
	c.Transfers = (*TransferService)(&c.common)
	c.TransfersControl = (*TransfersControlService)(&c.common)
	c.BulkCharges = (*BulkChargeService)(&c.common)
	c.Charges = (*ChargeService)(&c.common)
	c.Disputes = (*DisputeService)(&c.common)
	c.Refunds = (*RefundService)(&c.common)
	c.Settlements = (*SettlementService)(&c.common)
	c.Subaccounts = (*SubaccountService)(&c.common)
	c.Splits = (*SplitService)(&c.common)
	c.DedicatedAccounts = (*DedicatedAccountService)(&c.common)
	c.Terminals = (*TerminalService)(&c.common)
	c.ApplePay = (*ApplePayService)(&c.common)
	c.Verification = (*VerificationService)(&c.common)
	c.Miscellaneous = (*MiscellaneousService)(&c.common)
	c.Integration = (*IntegrationService)(&c.common)

	return c, nil
}
