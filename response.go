package paystack

import (
	"bytes"
	"encoding/json"
)

// msgNotJSON is the fixed diagnostic placed on the envelope when the remote
// body cannot be parsed as JSON at all.
const msgNotJSON = "server error: unable to serialize response as json data"

// Response is the uniform envelope returned by every client call. It is a
// pure transformation of one HTTP response and is never mutated afterwards.
//
// Data is non-nil only when the body carried a non-empty data field that
// decoded cleanly into T; in every other case the untyped payload is still
// available through Raw.
type Response[T any] struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Status is the API body's own success flag.
	Status bool
	// Message is the API's human-readable outcome description.
	Message string
	// Type and Code are optional machine-readable error classifiers.
	Type string
	Code string
	// Data holds the decoded record or list of records, if any.
	Data *T
	// Meta carries free-form pagination and extra info.
	Meta map[string]any
	// Raw is the original response body, byte for byte.
	Raw json.RawMessage
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Type    string          `json:"type"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
}

// decodeResponse turns a raw body into the typed envelope. Parse and schema
// failures degrade into an envelope rather than an error, except schema
// failures under strict decoding.
func decodeResponse[T any](c *Client, path string, statusCode int, raw []byte) (*Response[T], error) {
	resp := &Response[T]{
		StatusCode: statusCode,
		Raw:        json.RawMessage(raw),
	}

	var env apiEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		resp.Status = false
		resp.Message = msgNotJSON
		return resp, nil
	}

	resp.Status = env.Status
	resp.Message = env.Message
	resp.Type = env.Type
	resp.Code = env.Code
	resp.Meta = env.Meta

	if emptyData(env.Data) {
		return resp, nil
	}

	normalized, err := NormalizeKeys(env.Data)
	if err == nil {
		var v T
		err = json.Unmarshal(normalized, &v)
		if err == nil {
			resp.Data = &v
			return resp, nil
		}
	}

	if c.strict {
		return nil, &DecodeError{Path: path, Err: err}
	}
	c.logger.Warn().
		Str("path", path).
		Err(err).
		Msg("response data did not match expected model")
	return resp, nil
}

// emptyData reports whether a data field is absent, null, or an empty
// object, all of which leave the envelope's Data nil.
func emptyData(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "{}":
		return true
	}
	return false
}
