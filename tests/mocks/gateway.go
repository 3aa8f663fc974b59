package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/societyops/maintenance-engine/internal/gateway"
)

// MockGatewayClient is a testify mock for gateway.Client
type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) Name() string {
	return "mock"
}

func (m *MockGatewayClient) CreateOrder(ctx context.Context, req gateway.OrderRequest) (*gateway.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Order), args.Error(1)
}
