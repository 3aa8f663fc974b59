package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ComplaintStatusOpen     = "open"
	ComplaintStatusResolved = "resolved"
)

// Notice is a noticeboard entry posted by a society admin
type Notice struct {
	ID          uuid.UUID `json:"id" db:"id"`
	SocietyName string    `json:"society_name" db:"society_name"`
	Subject     string    `json:"subject" db:"subject"`
	Details     string    `json:"details" db:"details"`
	PostedBy    string    `json:"posted_by" db:"posted_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Complaint is a helpdesk ticket filed by a resident
type Complaint struct {
	ID          uuid.UUID `json:"id" db:"id"`
	SocietyName string    `json:"society_name" db:"society_name"`
	ResidentID  uuid.UUID `json:"resident_id" db:"resident_id"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"` // open, resolved
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// EmergencyContact is a directory entry for a society
type EmergencyContact struct {
	ID          uuid.UUID `json:"id" db:"id"`
	SocietyName string    `json:"society_name" db:"society_name"`
	Name        string    `json:"name" db:"name"`
	Service     string    `json:"service" db:"service"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// DTOs for requests

type PostNoticeRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Details  string `json:"details"`
	PostedBy string `json:"posted_by"`
}

type FileComplaintRequest struct {
	ResidentID  string `json:"resident_id" validate:"required,uuid"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type AddContactRequest struct {
	Name        string `json:"name" validate:"required"`
	Service     string `json:"service" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}
