// Package client is a small typed client for the SubSage JSON API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"subsage/internal/model"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is returned when the server answers with success=false.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

type envelope struct {
	Success       bool                 `json:"success"`
	Error         string               `json:"error"`
	Subscriptions []model.Subscription `json:"subscriptions"`
	Analytics     model.Analytics      `json:"analytics"`
	Insights      []model.Insight      `json:"insights"`
	Summary       model.InsightSummary `json:"summary"`
	Coupons       []model.Coupon       `json:"coupons"`
}

func (c *Client) get(ctx context.Context, path string) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Error}
	}
	return &env, nil
}

func (c *Client) Subscriptions(ctx context.Context) ([]model.Subscription, error) {
	env, err := c.get(ctx, "/api/subscriptions")
	if err != nil {
		return nil, err
	}
	return env.Subscriptions, nil
}

func (c *Client) Analytics(ctx context.Context) (model.Analytics, error) {
	env, err := c.get(ctx, "/api/analytics")
	if err != nil {
		return model.Analytics{}, err
	}
	return env.Analytics, nil
}

func (c *Client) Insights(ctx context.Context) (model.InsightReport, error) {
	env, err := c.get(ctx, "/api/ai-insights")
	if err != nil {
		return model.InsightReport{}, err
	}
	return model.InsightReport{Insights: env.Insights, Summary: env.Summary}, nil
}

func (c *Client) Coupons(ctx context.Context) ([]model.Coupon, error) {
	env, err := c.get(ctx, "/api/coupons")
	if err != nil {
		return nil, err
	}
	return env.Coupons, nil
}
