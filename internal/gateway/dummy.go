package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DummyClient is a test/demo gateway that accepts every order without any
// network call. Use it for development when real credentials aren't available.
type DummyClient struct{}

// NewDummyClient creates a new dummy gateway client.
func NewDummyClient() *DummyClient {
	return &DummyClient{}
}

// Name returns the provider name.
func (c *DummyClient) Name() string {
	return "dummy"
}

// CreateOrder fabricates an order id locally.
func (c *DummyClient) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	id := uuid.New().String()
	return &Order{
		ID:       fmt.Sprintf("order_dummy_%s", id[:8]),
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}, nil
}
