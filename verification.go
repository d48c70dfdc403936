package paystack

import (
	"context"
	"net/http"
	"net/url"
)

// VerificationService wraps the account and BIN resolution endpoints.
type VerificationService service

// ResolvedAccount is the owner of a bank account number.
type ResolvedAccount struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	BankID        int64  `json:"bank_id"`
}

// AccountValidation is the result of a merchant account check.
type AccountValidation struct {
	Verified            bool   `json:"verified"`
	VerificationMessage string `json:"verification_message"`
}

// ResolvedBIN describes the issuer of a card number prefix.
type ResolvedBIN struct {
	Bin          string `json:"bin"`
	Brand        string `json:"brand"`
	SubBrand     string `json:"sub_brand"`
	CountryCode  string `json:"country_code"`
	CountryName  string `json:"country_name"`
	CardType     string `json:"card_type"`
	Bank         string `json:"bank"`
	LinkedBankID int64  `json:"linked_bank_id"`
}

// ValidateAccountRequest checks account ownership for regulated countries.
type ValidateAccountRequest struct {
	AccountName    string `json:"account_name"`
	AccountNumber  string `json:"account_number"`
	AccountType    string `json:"account_type"`
	BankCode       string `json:"bank_code"`
	CountryCode    string `json:"country_code"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number,omitempty"`
}

// ResolveAccount looks up the name behind an account number.
func (s *VerificationService) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*Response[ResolvedAccount], error) {
	if accountNumber == "" {
		return nil, &ValidationError{Field: "account_number", Message: "account number is required"}
	}
	if bankCode == "" {
		return nil, &ValidationError{Field: "bank_code", Message: "bank code is required"}
	}
	q := url.Values{}
	q.Set("account_number", accountNumber)
	q.Set("bank_code", bankCode)
	return do[ResolvedAccount](ctx, s.client, http.MethodGet, withQuery("/bank/resolve", q), nil)
}

// ValidateAccount confirms account ownership with identity documents.
func (s *VerificationService) ValidateAccount(ctx context.Context, req *ValidateAccountRequest) (*Response[AccountValidation], error) {
	if req == nil || req.AccountName == "" {
		return nil, &ValidationError{Field: "account_name", Message: "account name is required"}
	}
	if req.AccountNumber == "" {
		return nil, &ValidationError{Field: "account_number", Message: "account number is required"}
	}
	if req.BankCode == "" {
		return nil, &ValidationError{Field: "bank_code", Message: "bank code is required"}
	}
	if req.CountryCode == "" {
		return nil, &ValidationError{Field: "country_code", Message: "country code is required"}
	}
	return do[AccountValidation](ctx, s.client, http.MethodPost, "/bank/validate", req)
}

// ResolveBIN describes the issuer of the first six digits of a card.
func (s *VerificationService) ResolveBIN(ctx context.Context, bin string) (*Response[ResolvedBIN], error) {
	if len(bin) != 6 {
		return nil, &ValidationError{Field: "bin", Message: "bin must be the first six digits of a card number"}
	}
	return do[ResolvedBIN](ctx, s.client, http.MethodGet, "/decision/bin/"+url.PathEscape(bin), nil)
}
