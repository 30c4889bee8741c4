// Package payment is the report paywall collaborator: order creation
// against the external payment provider and the boolean unlocked check
// consumers use to decide between the full report and the paywall. The
// parsing core never depends on payment state.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Status is the provider-side lifecycle state of an order.
type Status string

const (
	StatusOpen     Status = "open"
	StatusPaid     Status = "paid"
	StatusExpired  Status = "expired"
	StatusCanceled Status = "canceled"
)

// Order is one payment order for one report.
type Order struct {
	ID          string `json:"id"`
	Status      Status `json:"status"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	CheckoutURL string `json:"checkout_url,omitempty"`
}

// Provider is the external payment service surface this package needs.
type Provider interface {
	CreateOrder(ctx context.Context, amount, description string) (*Order, error)
	OrderStatus(ctx context.Context, orderID string) (Status, error)
}

// Client talks to the payment provider's REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a provider client. A zero timeout falls back to
// 15 seconds.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateOrder registers a new order with the provider and returns it,
// including the checkout URL the consumer redirects the user to.
func (c *Client) CreateOrder(ctx context.Context, amount, description string) (*Order, error) {
	payload, err := json.Marshal(map[string]string{
		"amount":      amount,
		"description": description,
	})
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("create order: unexpected status %d", resp.StatusCode)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &order, nil
}

// OrderStatus polls the provider for the current state of an order.
func (c *Client) OrderStatus(ctx context.Context, orderID string) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders/"+orderID, nil)
	if err != nil {
		return "", fmt.Errorf("build status request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("poll order %s: %w", orderID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("poll order %s: unexpected status %d", orderID, resp.StatusCode)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", fmt.Errorf("decode order %s: %w", orderID, err)
	}
	return order.Status, nil
}

// Gate answers the unlocked check for report consumers.
type Gate struct {
	provider Provider
	log      *logrus.Logger
}

// NewGate wraps a provider. A nil logger falls back to the standard logger.
func NewGate(provider Provider, log *logrus.Logger) *Gate {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Gate{provider: provider, log: log}
}

// Unlocked reports whether the order behind orderID has been paid. A
// missing order reference or a provider failure reports locked.
func (g *Gate) Unlocked(ctx context.Context, orderID string) bool {
	if orderID == "" {
		return false
	}
	status, err := g.provider.OrderStatus(ctx, orderID)
	if err != nil {
		g.log.Warnf("payment: order %s status check failed: %v", orderID, err)
		return false
	}
	return status == StatusPaid
}
