// Package gateway talks to the external payment gateway. Order creation and
// checkout are the gateway's business; this package only wraps its HTTP API.
package gateway

import (
	"context"
)

// OrderRequest describes a gateway order to create. Amount is in the
// currency's smallest unit.
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// Order is the gateway's view of a created order.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Client creates orders with a payment gateway.
type Client interface {
	// Name returns the provider name.
	Name() string

	// CreateOrder creates an order with the gateway. A failed call must not
	// leave any local state behind; callers persist only after success.
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}
