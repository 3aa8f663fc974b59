package domain

import (
	"github.com/shopspring/decimal"
)

// BillCalculation is the derived maintenance bill for a resident. It is
// recomputed on every view and never persisted.
//
// Invariant: TotalAmount = MonthlyTotal + Due - Credit, and at most one of
// Due/Credit is non-zero.
type BillCalculation struct {
	TotalMonths  int             `json:"total_months"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
	Credit       decimal.Decimal `json:"credit"`
	Due          decimal.Decimal `json:"due"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// DTOs for requests and responses

type BillResponse struct {
	Resident     *Resident       `json:"resident"`
	Society      *Society        `json:"society"`
	Bill         BillCalculation `json:"bill"`
	LineItems    ChargeSchedule  `json:"line_items"`
	Receipt      *LastPayment    `json:"receipt,omitempty"`
	GatewayKeyID string          `json:"gateway_key_id"`
}

type CreateOrderRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	SocietyName string          `json:"society_name" validate:"required"`
}

type CreateOrderResponse struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	GatewayKeyID string `json:"key"`
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"gateway_order_id" validate:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" validate:"required"`
	Signature        string `json:"signature" validate:"required"`
}

type VerifyPaymentResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	ReceiptNumber string `json:"receipt_number,omitempty"`
}
