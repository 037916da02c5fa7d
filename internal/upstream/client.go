// internal/upstream/client.go
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"vendora-admin/internal/listquery"
)

const defaultTimeout = 15 * time.Second

// Client talks to the upstream commerce REST API on behalf of the
// admin UI. All list calls take the canonical query descriptor and
// forward it verbatim; validation of filter values is upstream's job.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

// ListResult is the paginated shape every upstream list endpoint
// returns: the rows plus the unpaginated total.
type ListResult[T any] struct {
	Data  []T
	Total int
}

func listResource[T any](ctx context.Context, c *Client, path string, q *listquery.Query) (*ListResult[T], error) {
	var envelope struct {
		Data []T `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}

	if err := c.do(ctx, http.MethodGet, path, q.Values(), nil, &envelope); err != nil {
		return nil, err
	}
	return &ListResult[T]{Data: envelope.Data, Total: envelope.Meta.Total}, nil
}

// do issues one request. Responses with an error status become
// *APIError; failures that never produced a response are returned as
// plain wrapped errors so ErrorMessage can distinguish the two.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", ulid.Make().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{Status: resp.StatusCode, Message: extractMessage(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}

// extractMessage pulls the upstream error message from the response
// body, checking data.message first, then the top-level message.
func extractMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Data    struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Data.Message != "" {
		return payload.Data.Message
	}
	return payload.Message
}
