package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Response is a decoded HealthTrack API response
type Response struct {
	StatusCode int
	// Raw is the body exactly as received, in wire field order.
	Raw json.RawMessage
	// Body is Raw decoded into generic values for field lookups; numbers are json.Number.
	Body any
}

// NewResponse decodes raw as a single JSON document. Trailing data after the
// first value is rejected.
func NewResponse(status int, raw []byte) (*Response, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("invalid JSON response (status %d): %w", status, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid JSON response (status %d): trailing data after JSON value", status)
	}

	return &Response{
		StatusCode: status,
		Raw:        json.RawMessage(bytes.TrimSpace(raw)),
		Body:       body,
	}, nil
}

// IsSuccess reports a 2xx status
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// IsObject reports whether the body is a JSON object
func (r *Response) IsObject() bool {
	_, ok := r.Body.(map[string]any)
	return ok
}

// Field returns a top-level field of an object body
func (r *Response) Field(name string) (any, bool) {
	obj, ok := r.Body.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := obj[name]
	return v, ok
}

// Path follows nested object fields, e.g. Path("data", "accessToken")
func (r *Response) Path(names ...string) (any, bool) {
	var cur any = r.Body
	for _, name := range names {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = obj[name]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func decodeResponse(resp *http.Response) (*Response, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to read response body: %w", err), true)
	}
	return NewResponse(resp.StatusCode, raw)
}
