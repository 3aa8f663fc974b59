package gateway

import (
	"fmt"

	"github.com/societyops/maintenance-engine/internal/config"
)

// NewClient creates a gateway client based on configuration.
func NewClient(cfg *config.Config) (Client, error) {
	switch cfg.Gateway.Provider {
	case "razorpay":
		if cfg.Gateway.KeyID == "" || cfg.Gateway.KeySecret == "" {
			return nil, fmt.Errorf("razorpay key id and key secret are required")
		}
		return NewRazorpayClient(RazorpayConfig{
			KeyID:     cfg.Gateway.KeyID,
			KeySecret: cfg.Gateway.KeySecret,
			BaseURL:   cfg.Gateway.BaseURL,
			Timeout:   cfg.GetGatewayTimeout(),
		}), nil

	case "dummy", "test":
		return NewDummyClient(), nil

	default:
		return nil, fmt.Errorf("unknown payment gateway provider: %s", cfg.Gateway.Provider)
	}
}
