package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/societyops/maintenance-engine/internal/domain"
)

// ResidentRepository defines the interface for resident data operations
type ResidentRepository interface {
	// Create creates a new resident in the applied state
	Create(ctx context.Context, resident *domain.Resident) error

	// GetByID retrieves a resident by id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Resident, error)

	// GetByUsername retrieves a resident by username
	GetByUsername(ctx context.Context, username string) (*domain.Resident, error)

	// GetByPendingInvoice retrieves the resident whose pending-payment marker
	// carries the given gateway order id
	GetByPendingInvoice(ctx context.Context, gatewayOrderID string) (*domain.Resident, error)

	// ListBySociety retrieves residents of a society filtered by validation status
	ListBySociety(ctx context.Context, societyName, validation string) ([]*domain.Resident, error)

	// ListApproved retrieves all approved residents across societies
	ListApproved(ctx context.Context) ([]*domain.Resident, error)

	// UpdateValidation moves a resident between applied/approved/declined
	UpdateValidation(ctx context.Context, id uuid.UUID, validation string) error

	// SetPendingPayment writes the pending-payment marker with a single
	// conditional update keyed on the previously observed invoice value.
	// Returns false when the marker changed concurrently and nothing was written.
	SetPendingPayment(ctx context.Context, id uuid.UUID, prevInvoice string, marker *domain.LastPayment) (bool, error)

	// SettlePayment clears the payment-pending flag for the given order with a
	// single conditional update. Returns false when the order was already
	// settled or does not match, so a replayed callback cannot settle twice.
	SettlePayment(ctx context.Context, gatewayOrderID string) (bool, error)
}

// SocietyRepository defines the interface for society data operations
type SocietyRepository interface {
	// Create creates a new society
	Create(ctx context.Context, society *domain.Society) error

	// GetByName retrieves a society by its unique name
	GetByName(ctx context.Context, societyName string) (*domain.Society, error)

	// UpdateMaintenanceBill replaces the society's charge schedule
	UpdateMaintenanceBill(ctx context.Context, societyName string, schedule domain.ChargeSchedule) error
}

// HelpdeskRepository defines the interface for noticeboard, complaints and
// emergency-contact data operations
type HelpdeskRepository interface {
	CreateNotice(ctx context.Context, notice *domain.Notice) error
	ListNotices(ctx context.Context, societyName string) ([]*domain.Notice, error)

	CreateComplaint(ctx context.Context, complaint *domain.Complaint) error
	ListComplaints(ctx context.Context, societyName string) ([]*domain.Complaint, error)

	CreateContact(ctx context.Context, contact *domain.EmergencyContact) error
	ListContacts(ctx context.Context, societyName string) ([]*domain.EmergencyContact, error)
}
