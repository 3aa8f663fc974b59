package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/societyops/maintenance-engine/internal/domain"
)

type societyRepository struct {
	db *sqlx.DB
}

func NewSocietyRepository(db *sqlx.DB) SocietyRepository {
	return &societyRepository{db: db}
}

func (r *societyRepository) Create(ctx context.Context, society *domain.Society) error {
	query := `
		INSERT INTO societies (id, society_name, society_address, maintenance_bill, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		society.ID,
		society.SocietyName,
		society.SocietyAddress,
		society.MaintenanceBill,
		society.CreatedAt,
		society.UpdatedAt,
	)

	return err
}

func (r *societyRepository) GetByName(ctx context.Context, societyName string) (*domain.Society, error) {
	query := `
		SELECT id, society_name, society_address, maintenance_bill, created_at, updated_at
		FROM societies
		WHERE society_name = $1
	`

	var society domain.Society
	err := r.db.GetContext(ctx, &society, query, societyName)
	if err != nil {
		return nil, err
	}

	return &society, nil
}

func (r *societyRepository) UpdateMaintenanceBill(ctx context.Context, societyName string, schedule domain.ChargeSchedule) error {
	query := `
		UPDATE societies
		SET maintenance_bill = $2, updated_at = $3
		WHERE society_name = $1
	`

	_, err := r.db.ExecContext(ctx, query, societyName, schedule, time.Now())
	return err
}
