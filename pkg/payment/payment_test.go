package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "25.00", body["amount"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Order{
			ID:          "ord_123",
			Status:      StatusOpen,
			Amount:      body["amount"],
			CheckoutURL: "https://pay.example/ord_123",
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-key", time.Second)
	order, err := c.CreateOrder(context.Background(), "25.00", "ESG report Vietnam/Textiles")
	require.NoError(t, err)
	require.Equal(t, "ord_123", order.ID)
	require.Equal(t, StatusOpen, order.Status)
	require.NotEmpty(t, order.CheckoutURL)
}

func TestOrderStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/ord_123", r.URL.Path)
		json.NewEncoder(w).Encode(Order{ID: "ord_123", Status: StatusPaid})
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-key", time.Second)
	status, err := c.OrderStatus(context.Background(), "ord_123")
	require.NoError(t, err)
	require.Equal(t, StatusPaid, status)
}

type stubProvider struct {
	status Status
	err    error
}

func (s *stubProvider) CreateOrder(ctx context.Context, amount, description string) (*Order, error) {
	return &Order{ID: "stub", Status: s.status}, s.err
}

func (s *stubProvider) OrderStatus(ctx context.Context, orderID string) (Status, error) {
	return s.status, s.err
}

func TestGateUnlocked(t *testing.T) {
	cases := []struct {
		name    string
		orderID string
		status  Status
		err     error
		want    bool
	}{
		{name: "paid order unlocks", orderID: "ord_1", status: StatusPaid, want: true},
		{name: "open order stays locked", orderID: "ord_1", status: StatusOpen, want: false},
		{name: "expired order stays locked", orderID: "ord_1", status: StatusExpired, want: false},
		{name: "empty order reference stays locked", orderID: "", status: StatusPaid, want: false},
		{name: "provider failure stays locked", orderID: "ord_1", err: errors.New("provider down"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gate := NewGate(&stubProvider{status: tc.status, err: tc.err}, nil)
			require.Equal(t, tc.want, gate.Unlocked(context.Background(), tc.orderID))
		})
	}
}
