package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ValidationApplied  = "applied"
	ValidationApproved = "approved"
	ValidationDeclined = "declined"
)

// Resident represents a resident account tied to exactly one society
type Resident struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	Username    string    `json:"username" db:"username"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	FlatNumber  string    `json:"flat_number" db:"flat_number"`
	SocietyName string    `json:"society_name" db:"society_name"`
	IsAdmin     bool      `json:"is_admin" db:"is_admin"`
	Validation  string    `json:"validation" db:"validation"` // applied, approved, declined

	// Pending-payment marker. Only the most recent payment attempt is kept;
	// a new order supersedes the previous one.
	LastPaymentDate    sql.NullTime        `json:"-" db:"last_payment_date"`
	LastPaymentAmount  decimal.NullDecimal `json:"-" db:"last_payment_amount"`
	LastPaymentInvoice sql.NullString      `json:"-" db:"last_payment_invoice"`
	PaymentPending     bool                `json:"payment_pending" db:"payment_pending"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// LastPayment is the denormalized view of the pending-payment marker
type LastPayment struct {
	Date    time.Time       `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Invoice string          `json:"invoice"`
}

// LastPayment returns the marker if one has been recorded, nil otherwise
func (r *Resident) LastPayment() *LastPayment {
	if !r.LastPaymentDate.Valid {
		return nil
	}
	return &LastPayment{
		Date:    r.LastPaymentDate.Time,
		Amount:  r.LastPaymentAmount.Decimal,
		Invoice: r.LastPaymentInvoice.String,
	}
}

// IsApproved reports whether the resident may view bills and pay
func (r *Resident) IsApproved() bool {
	return r.Validation == ValidationApproved
}

// DTOs for requests and responses

type RegisterResidentRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Username    string `json:"username" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	FlatNumber  string `json:"flat_number" validate:"required"`
	SocietyName string `json:"society_name" validate:"required"`
}

type ResidentListResponse struct {
	SocietyName      string      `json:"society_name"`
	Residents        []*Resident `json:"residents"`
	AppliedResidents []*Resident `json:"applied_residents"`
}
