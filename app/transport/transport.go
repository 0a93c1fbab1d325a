package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Request is the wire call a connector adapter builds from an envelope.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string

	// Exactly one body representation is set, or neither for GET-style calls.
	FormBody url.Values
	JSONBody []byte
}

// Response is what the transport hands back. Non-2xx statuses are not
// errors at this layer; the connector adapter decides how to fold them.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client is the transport collaborator. Implementations own timeouts and
// cancellation; callers own mapping failures into normalized errors.
type Client interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// HTTPClient is the default Client over net/http.
type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

func (c *HTTPClient) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	contentType := ""
	switch {
	case req.FormBody != nil:
		body = strings.NewReader(req.FormBody.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.JSONBody != nil:
		body = bytes.NewReader(req.JSONBody)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: httpResp.StatusCode, Body: respBody}, nil
}
