package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tvmauto/partsbot/internal/infra/metrics"
)

// Error is any non-2xx answer from the parts API. Message carries the
// server's "message" field when the body had one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parts api: %s (status %d)", e.Message, e.Status)
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks HTTP+JSON to the parts API. It owns no session state; the
// caller passes a bearer token per request.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.APIRequests.WithLabelValues(method, metricPath(path), "error").Inc()
		return fmt.Errorf("parts api unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.APIRequests.WithLabelValues(method, metricPath(path), strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.asError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// metricPath collapses record ids so the path label stays low-cardinality:
// "/parts/65a4..." becomes "/parts", auth routes keep both segments.
func metricPath(path string) string {
	seg := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(seg) >= 2 && seg[0] == "auth" {
		return "/" + seg[0] + "/" + seg[1]
	}
	return "/" + seg[0]
}

func (c *Client) asError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode, Message: "request failed"}
	raw, err := io.ReadAll(resp.Body)
	if err == nil && len(raw) > 0 {
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
			apiErr.Message = payload.Message
		}
	}
	c.log.Debug("api error", "status", resp.StatusCode, "message", apiErr.Message)
	return apiErr
}
