package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kerbaras/pible/pkg/data"
)

type API struct {
	client  *http.Client
	baseURL string
	header  http.Header
}

type APIOption func(*API)

// WithClient replaces http.DefaultClient.
func WithClient(client *http.Client) APIOption {
	return func(a *API) {
		if client != nil {
			a.client = client
		}
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) APIOption {
	return func(a *API) {
		a.header.Set(key, value)
	}
}

func NewAPI(baseURL string, opts ...APIOption) *API {
	a := &API{client: http.DefaultClient, baseURL: baseURL, header: make(http.Header)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Get issues a GET for baseURL+path and decodes the JSON body into v.
// Non-2xx responses become *data.RemoteServiceError and undecodable bodies
// *data.MalformedResponseError. The body is closed on every path.
func (a *API) Get(ctx context.Context, path string, params url.Values, header http.Header, v any) error {
	target := a.baseURL + path
	if params != nil {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range a.header {
		req.Header[key] = values
	}
	for key, values := range header {
		req.Header[key] = values
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &data.RemoteServiceError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &data.MalformedResponseError{Reason: "decode body", Err: err}
	}
	return nil
}
