package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RazorpayConfig holds Razorpay credentials.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Timeout   time.Duration
}

// RazorpayClient implements Client against the Razorpay Orders API.
type RazorpayClient struct {
	config     RazorpayConfig
	httpClient *http.Client
	baseURL    string
}

// NewRazorpayClient creates a new Razorpay gateway client.
func NewRazorpayClient(config RazorpayConfig) *RazorpayClient {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api.razorpay.com/v1"
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &RazorpayClient{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Name returns the provider name.
func (c *RazorpayClient) Name() string {
	return "razorpay"
}

// CreateOrder creates an order via POST /orders.
func (c *RazorpayClient) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	payload := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}
	if len(req.Notes) > 0 {
		payload["notes"] = req.Notes
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.config.KeyID, c.config.KeySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("razorpay order creation failed: status %d: %s", resp.StatusCode, string(respBody))
	}

	var order Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("razorpay order response decode failed: %w", err)
	}

	if order.ID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}

	return &order, nil
}
