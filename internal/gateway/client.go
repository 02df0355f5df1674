package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// APIError non-success response from the remote service. Carries the HTTP
// status text; the optional message is whatever {"error": ...} body the
// service attached.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote API error: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("remote API error: %s", e.Status)
}

// Client wraps the remote persistence API (patients, beds, requests,
// notifications, users). Every call is a single blocking round trip: no
// retry, no pagination, no timeout beyond the network stack's default.
// Callers refetch lists after mutations to observe new state.
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		logger:     logger,
	}
}

func apiError(resp *resty.Response) error {
	e := &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		e.Message = body.Error
	}
	return e
}

// decodeBody unmarshals a successful response into out. Decoding the raw
// body ourselves (instead of resty's content-type-gated SetResult) means a
// 2xx response that isn't valid JSON surfaces as an error rather than as a
// zero value that reads like "no data".
func decodeBody(resp *resty.Response, path string, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("remote API returned unparseable body for %s: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return fmt.Errorf("failed to call remote API: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return decodeBody(resp, path, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.httpClient.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		return fmt.Errorf("failed to call remote API: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	return decodeBody(resp, path, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	resp, err := c.httpClient.R().SetContext(ctx).SetBody(body).Put(path)
	if err != nil {
		return fmt.Errorf("failed to call remote API: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	return decodeBody(resp, path, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.httpClient.R().SetContext(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("failed to call remote API: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}
