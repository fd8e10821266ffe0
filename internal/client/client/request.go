package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Request describes one backend call. It is never mutated after it is built:
// the body is kept as bytes so the same Request can be sent again after a
// token refresh.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        []byte
	ContentType string

	// Public marks auth endpoints (login, register, password reset). A 401
	// from them is returned as is and never starts the refresh protocol.
	Public bool
}

// NewRequest builds a bodiless request.
func NewRequest(method, path string, query url.Values) *Request {
	return &Request{Method: method, Path: path, Query: query}
}

// NewJSONRequest builds a request whose body is body encoded as JSON.
// A nil body produces a request without one.
func NewJSONRequest(method, path string, body any) (*Request, error) {
	r := &Request{Method: method, Path: path}
	if body == nil {
		return r, nil
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
	}
	r.Body = b
	r.ContentType = "application/json"
	return r, nil
}

// Response is a successful (2xx) backend response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into out. A nil out or an empty body is a
// no-op.
func (r *Response) Decode(out any) error {
	if out == nil || len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
