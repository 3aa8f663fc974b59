package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/societyops/maintenance-engine/internal/domain"
)

type residentRepository struct {
	db *sqlx.DB
}

func NewResidentRepository(db *sqlx.DB) ResidentRepository {
	return &residentRepository{db: db}
}

const residentColumns = `
	id, first_name, last_name, username, phone_number, flat_number,
	society_name, is_admin, validation,
	last_payment_date, last_payment_amount, last_payment_invoice, payment_pending,
	created_at, updated_at
`

func (r *residentRepository) Create(ctx context.Context, resident *domain.Resident) error {
	query := `
		INSERT INTO residents (id, first_name, last_name, username, phone_number, flat_number,
			society_name, is_admin, validation, payment_pending, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		resident.ID,
		resident.FirstName,
		resident.LastName,
		resident.Username,
		resident.PhoneNumber,
		resident.FlatNumber,
		resident.SocietyName,
		resident.IsAdmin,
		resident.Validation,
		resident.PaymentPending,
		resident.CreatedAt,
		resident.UpdatedAt,
	)

	return err
}

func (r *residentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE id = $1`

	var resident domain.Resident
	err := r.db.GetContext(ctx, &resident, query, id)
	if err != nil {
		return nil, err
	}

	return &resident, nil
}

func (r *residentRepository) GetByUsername(ctx context.Context, username string) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE username = $1`

	var resident domain.Resident
	err := r.db.GetContext(ctx, &resident, query, username)
	if err != nil {
		return nil, err
	}

	return &resident, nil
}

func (r *residentRepository) GetByPendingInvoice(ctx context.Context, gatewayOrderID string) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE last_payment_invoice = $1`

	var resident domain.Resident
	err := r.db.GetContext(ctx, &resident, query, gatewayOrderID)
	if err != nil {
		return nil, err
	}

	return &resident, nil
}

func (r *residentRepository) ListBySociety(ctx context.Context, societyName, validation string) ([]*domain.Resident, error) {
	query := `
		SELECT ` + residentColumns + `
		FROM residents
		WHERE society_name = $1 AND validation = $2
		ORDER BY created_at
	`

	var residents []*domain.Resident
	err := r.db.SelectContext(ctx, &residents, query, societyName, validation)
	if err != nil {
		return nil, err
	}

	return residents, nil
}

func (r *residentRepository) ListApproved(ctx context.Context) ([]*domain.Resident, error) {
	query := `
		SELECT ` + residentColumns + `
		FROM residents
		WHERE validation = $1
		ORDER BY society_name, created_at
	`

	var residents []*domain.Resident
	err := r.db.SelectContext(ctx, &residents, query, domain.ValidationApproved)
	if err != nil {
		return nil, err
	}

	return residents, nil
}

func (r *residentRepository) UpdateValidation(ctx context.Context, id uuid.UUID, validation string) error {
	query := `
		UPDATE residents
		SET validation = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, validation, time.Now())
	return err
}

// SetPendingPayment overwrites the pending-payment marker only if the invoice
// still holds the value the caller observed. Concurrent order creations for
// the same resident therefore cannot silently clobber each other.
func (r *residentRepository) SetPendingPayment(ctx context.Context, id uuid.UUID, prevInvoice string, marker *domain.LastPayment) (bool, error) {
	query := `
		UPDATE residents
		SET last_payment_date = $2,
		    last_payment_amount = $3,
		    last_payment_invoice = $4,
		    payment_pending = TRUE,
		    updated_at = $5
		WHERE id = $1 AND COALESCE(last_payment_invoice, '') = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		id,
		marker.Date,
		marker.Amount,
		marker.Invoice,
		time.Now(),
		prevInvoice,
	)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows == 1, nil
}

// SettlePayment clears the pending flag exactly once per order id.
func (r *residentRepository) SettlePayment(ctx context.Context, gatewayOrderID string) (bool, error) {
	query := `
		UPDATE residents
		SET payment_pending = FALSE, updated_at = $2
		WHERE last_payment_invoice = $1 AND payment_pending = TRUE
	`

	result, err := r.db.ExecContext(ctx, query, gatewayOrderID, time.Now())
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows == 1, nil
}
