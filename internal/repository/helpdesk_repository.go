package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/societyops/maintenance-engine/internal/domain"
)

type helpdeskRepository struct {
	db *sqlx.DB
}

func NewHelpdeskRepository(db *sqlx.DB) HelpdeskRepository {
	return &helpdeskRepository{db: db}
}

func (r *helpdeskRepository) CreateNotice(ctx context.Context, notice *domain.Notice) error {
	query := `
		INSERT INTO notices (id, society_name, subject, details, posted_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		notice.ID,
		notice.SocietyName,
		notice.Subject,
		notice.Details,
		notice.PostedBy,
		notice.CreatedAt,
	)

	return err
}

func (r *helpdeskRepository) ListNotices(ctx context.Context, societyName string) ([]*domain.Notice, error) {
	query := `
		SELECT id, society_name, subject, details, posted_by, created_at
		FROM notices
		WHERE society_name = $1
		ORDER BY created_at DESC
	`

	var notices []*domain.Notice
	err := r.db.SelectContext(ctx, &notices, query, societyName)
	if err != nil {
		return nil, err
	}

	return notices, nil
}

func (r *helpdeskRepository) CreateComplaint(ctx context.Context, complaint *domain.Complaint) error {
	query := `
		INSERT INTO complaints (id, society_name, resident_id, category, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		complaint.ID,
		complaint.SocietyName,
		complaint.ResidentID,
		complaint.Category,
		complaint.Description,
		complaint.Status,
		complaint.CreatedAt,
	)

	return err
}

func (r *helpdeskRepository) ListComplaints(ctx context.Context, societyName string) ([]*domain.Complaint, error) {
	query := `
		SELECT id, society_name, resident_id, category, description, status, created_at
		FROM complaints
		WHERE society_name = $1
		ORDER BY created_at DESC
	`

	var complaints []*domain.Complaint
	err := r.db.SelectContext(ctx, &complaints, query, societyName)
	if err != nil {
		return nil, err
	}

	return complaints, nil
}

func (r *helpdeskRepository) CreateContact(ctx context.Context, contact *domain.EmergencyContact) error {
	query := `
		INSERT INTO emergency_contacts (id, society_name, name, service, phone_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		contact.ID,
		contact.SocietyName,
		contact.Name,
		contact.Service,
		contact.PhoneNumber,
		contact.CreatedAt,
	)

	return err
}

func (r *helpdeskRepository) ListContacts(ctx context.Context, societyName string) ([]*domain.EmergencyContact, error) {
	query := `
		SELECT id, society_name, name, service, phone_number, created_at
		FROM emergency_contacts
		WHERE society_name = $1
		ORDER BY name
	`

	var contacts []*domain.EmergencyContact
	err := r.db.SelectContext(ctx, &contacts, query, societyName)
	if err != nil {
		return nil, err
	}

	return contacts, nil
}
