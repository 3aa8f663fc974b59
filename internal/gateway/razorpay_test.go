package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRazorpayClient_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(150000), payload["amount"])
		assert.Equal(t, "INR", payload["currency"])
		assert.Equal(t, "RCPT-abc123-1700000000000", payload["receipt"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_xyz",
			"amount":   150000,
			"currency": "INR",
			"receipt":  payload["receipt"],
			"status":   "created",
		})
	}))
	defer server.Close()

	client := NewRazorpayClient(RazorpayConfig{
		KeyID:     "key_id",
		KeySecret: "key_secret",
		BaseURL:   server.URL,
	})

	order, err := client.CreateOrder(context.Background(), OrderRequest{
		Amount:   150000,
		Currency: "INR",
		Receipt:  "RCPT-abc123-1700000000000",
		Notes:    map[string]string{"societyName": "Shanti Heights"},
	})

	require.NoError(t, err)
	assert.Equal(t, "order_xyz", order.ID)
	assert.Equal(t, int64(150000), order.Amount)
}

func TestRazorpayClient_CreateOrder_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
	}))
	defer server.Close()

	client := NewRazorpayClient(RazorpayConfig{
		KeyID:     "bad",
		KeySecret: "creds",
		BaseURL:   server.URL,
	})

	_, err := client.CreateOrder(context.Background(), OrderRequest{Amount: 100, Currency: "INR"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestRazorpayClient_CreateOrder_MissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewRazorpayClient(RazorpayConfig{KeyID: "k", KeySecret: "s", BaseURL: server.URL})

	_, err := client.CreateOrder(context.Background(), OrderRequest{Amount: 100, Currency: "INR"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

func TestDummyClient_CreateOrder(t *testing.T) {
	client := NewDummyClient()

	order, err := client.CreateOrder(context.Background(), OrderRequest{Amount: 5000, Currency: "INR"})

	require.NoError(t, err)
	assert.Contains(t, order.ID, "order_dummy_")
	assert.Equal(t, int64(5000), order.Amount)
	assert.Equal(t, "created", order.Status)
}
