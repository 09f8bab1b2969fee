// Package client is the HTTP data access layer for the artifact store:
// a plain REST collection of artifacts with server-assigned IDs.
// Failures map to two kinds: *RemoteError for non-2xx responses and
// *NetworkError for requests that never completed. The client never
// retries; callers decide how to surface failures.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/acervodigital/acervo/internal/model"
)

// Client talks to one artifact collection endpoint.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the store rooted at baseURL (e.g.
// "http://localhost:8080/api"). The underlying transport's defaults
// apply; no timeout is enforced at this layer.
func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{},
	}
}

// Endpoint returns the full collection URL, for display in error
// messages that name the unreachable store.
func (c *Client) Endpoint() string {
	return c.base + "/artefatos"
}

// do performs one request. A JSON body is sent when in is non-nil and
// the response decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, url string, in, out any) error {
	op := method + " " + url

	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encoding request: %w", op, err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&errBody)
		return &RemoteError{Status: resp.StatusCode, Mensagem: errBody.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &NetworkError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
		}
	}
	return nil
}

// List fetches the whole collection.
func (c *Client) List(ctx context.Context) ([]model.Artefato, error) {
	var artefatos []model.Artefato
	if err := c.do(ctx, http.MethodGet, c.Endpoint(), nil, &artefatos); err != nil {
		return nil, err
	}
	return artefatos, nil
}

// Get fetches one artifact by ID.
func (c *Client) Get(ctx context.Context, id int64) (*model.Artefato, error) {
	var a model.Artefato
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", c.Endpoint(), id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create stores a new artifact; the store assigns the ID and the
// registration date.
func (c *Client) Create(ctx context.Context, a model.Artefato) (*model.Artefato, error) {
	var criado model.Artefato
	if err := c.do(ctx, http.MethodPost, c.Endpoint(), a, &criado); err != nil {
		return nil, err
	}
	return &criado, nil
}

// Update fully replaces an artifact's editable fields.
func (c *Client) Update(ctx context.Context, id int64, a model.Artefato) (*model.Artefato, error) {
	var atualizado model.Artefato
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", c.Endpoint(), id), a, &atualizado); err != nil {
		return nil, err
	}
	return &atualizado, nil
}

// Delete removes an artifact.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", c.Endpoint(), id), nil, nil)
}
