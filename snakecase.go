package paystack

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// Currency codes appear as map keys in several responses (balances, fee
// breakdowns). They are enum values rather than field names, so they must
// survive key normalization untouched.
var exemptKeys = map[string]struct{}{
	"NGN": {},
	"GHS": {},
	"ZAR": {},
	"USD": {},
	"KES": {},
	"XOF": {},
	"EGP": {},
	"RWF": {},
}

// NormalizeKeys recursively rewrites every camelCase object key in a JSON
// document to snake_case. Keys in the currency-code allow list are left
// alone, as are all values. The transformation is idempotent: snake_case
// input comes back unchanged. Numbers are carried as json.Number so values
// beyond float64 precision survive the rewrite byte-exact.
func NormalizeKeys(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeValue(v))
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[normalizeKey(k)] = normalizeValue(val)
		}
		return out
	case []any:
		for i := range t {
			t[i] = normalizeValue(t[i])
		}
		return t
	default:
		return v
	}
}

func normalizeKey(k string) string {
	if _, ok := exemptKeys[k]; ok {
		return k
	}
	return toSnake(k)
}

// toSnake converts camelCase and PascalCase to snake_case. Runs of capitals
// are kept together ("parseHTTPBody" -> "parse_http_body").
func toSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && runes[i-1] != '_' && (prevLower || (unicode.IsUpper(runes[i-1]) && nextLower)) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
