package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeSchedule maps named charge components to their monthly amounts.
// It keeps the free-form document shape of the stored schedule: entries that
// are not numeric are tolerated and simply skipped when totalling.
type ChargeSchedule map[string]interface{}

// MonthlyTotal sums all numeric entries of the schedule. A nil or empty
// schedule totals to zero rather than failing.
func (cs ChargeSchedule) MonthlyTotal() decimal.Decimal {
	total := decimal.Zero
	for _, v := range cs {
		switch n := v.(type) {
		case float64:
			total = total.Add(decimal.NewFromFloat(n))
		case int:
			total = total.Add(decimal.NewFromInt(int64(n)))
		case int64:
			total = total.Add(decimal.NewFromInt(n))
		case json.Number:
			if d, err := decimal.NewFromString(n.String()); err == nil {
				total = total.Add(d)
			}
		case decimal.Decimal:
			total = total.Add(n)
		}
	}
	return total
}

// Value implements driver.Valuer, storing the schedule as JSONB
func (cs ChargeSchedule) Value() (driver.Value, error) {
	if cs == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(cs)
}

// Scan implements sql.Scanner
func (cs *ChargeSchedule) Scan(src interface{}) error {
	if src == nil {
		*cs = ChargeSchedule{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported charge schedule type %T", src)
	}
	return json.Unmarshal(data, cs)
}

// Society represents a managed property/community entity
type Society struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	SocietyName     string         `json:"society_name" db:"society_name"`
	SocietyAddress  string         `json:"society_address" db:"society_address"`
	MaintenanceBill ChargeSchedule `json:"maintenance_bill" db:"maintenance_bill"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// DTOs for requests and responses

type CreateSocietyRequest struct {
	SocietyName     string         `json:"society_name" validate:"required"`
	SocietyAddress  string         `json:"society_address"`
	MaintenanceBill ChargeSchedule `json:"maintenance_bill"`
}

type UpdateMaintenanceBillRequest struct {
	MaintenanceBill ChargeSchedule `json:"maintenance_bill" validate:"required"`
}
