package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/societyops/maintenance-engine/internal/domain"
	"github.com/societyops/maintenance-engine/internal/repository"
	customError "github.com/societyops/maintenance-engine/pkg/errors"
)

// defaultChargeSchedule seeds new societies with the standard components, all
// zeroed until the admin edits them.
func defaultChargeSchedule() domain.ChargeSchedule {
	return domain.ChargeSchedule{
		"societyCharges":        float64(0),
		"repairsAndMaintenance": float64(0),
		"sinkingFund":           float64(0),
		"waterCharges":          float64(0),
		"insuranceCharges":      float64(0),
		"parkingCharges":        float64(0),
	}
}

type SocietyService struct {
	residentRepo repository.ResidentRepository
	societyRepo  repository.SocietyRepository
	helpdeskRepo repository.HelpdeskRepository
	logger       zerolog.Logger
}

func NewSocietyService(
	residentRepo repository.ResidentRepository,
	societyRepo repository.SocietyRepository,
	helpdeskRepo repository.HelpdeskRepository,
	logger zerolog.Logger,
) *SocietyService {
	return &SocietyService{
		residentRepo: residentRepo,
		societyRepo:  societyRepo,
		helpdeskRepo: helpdeskRepo,
		logger:       logger,
	}
}

// RegisterResident creates a resident account in the applied state. Admin
// approval moves it to approved before bills or payments are available.
func (s *SocietyService) RegisterResident(ctx context.Context, request *domain.RegisterResidentRequest) (*domain.Resident, error) {
	existing, err := s.residentRepo.GetByUsername(ctx, request.Username)
	if err == nil && existing != nil {
		return nil, customError.WrapResidentAlreadyExists(request.Username)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapDatabaseError(err)
	}

	if _, err := s.societyRepo.GetByName(ctx, request.SocietyName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapSocietyNotFound(request.SocietyName)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	now := time.Now()
	resident := &domain.Resident{
		ID:          uuid.New(),
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Username:    request.Username,
		PhoneNumber: request.PhoneNumber,
		FlatNumber:  request.FlatNumber,
		SocietyName: request.SocietyName,
		Validation:  domain.ValidationApplied,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.residentRepo.Create(ctx, resident); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.logger.Info().
		Str("resident_id", resident.ID.String()).
		Str("society", resident.SocietyName).
		Msg("resident registered")

	return resident, nil
}

// SetResidentValidation approves or declines a pending account request
func (s *SocietyService) SetResidentValidation(ctx context.Context, residentID uuid.UUID, validation string) (*domain.Resident, error) {
	resident, err := s.residentRepo.GetByID(ctx, residentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapResidentNotFound(residentID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	if err := s.residentRepo.UpdateValidation(ctx, residentID, validation); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	resident.Validation = validation
	return resident, nil
}

// ListResidents returns approved residents and pending applications of a society
func (s *SocietyService) ListResidents(ctx context.Context, societyName string) (*domain.ResidentListResponse, error) {
	approved, err := s.residentRepo.ListBySociety(ctx, societyName, domain.ValidationApproved)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	applied, err := s.residentRepo.ListBySociety(ctx, societyName, domain.ValidationApplied)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return &domain.ResidentListResponse{
		SocietyName:      societyName,
		Residents:        approved,
		AppliedResidents: applied,
	}, nil
}

// CreateSociety registers a new society with its charge schedule
func (s *SocietyService) CreateSociety(ctx context.Context, request *domain.CreateSocietyRequest) (*domain.Society, error) {
	existing, err := s.societyRepo.GetByName(ctx, request.SocietyName)
	if err == nil && existing != nil {
		return nil, customError.WrapSocietyAlreadyExists(request.SocietyName)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapDatabaseError(err)
	}

	schedule := request.MaintenanceBill
	if len(schedule) == 0 {
		schedule = defaultChargeSchedule()
	}

	now := time.Now()
	society := &domain.Society{
		ID:              uuid.New(),
		SocietyName:     request.SocietyName,
		SocietyAddress:  request.SocietyAddress,
		MaintenanceBill: schedule,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.societyRepo.Create(ctx, society); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return society, nil
}

// GetSociety fetches a society by name
func (s *SocietyService) GetSociety(ctx context.Context, societyName string) (*domain.Society, error) {
	society, err := s.societyRepo.GetByName(ctx, societyName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapSocietyNotFound(societyName)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return society, nil
}

// UpdateMaintenanceBill replaces a society's charge schedule
func (s *SocietyService) UpdateMaintenanceBill(ctx context.Context, societyName string, schedule domain.ChargeSchedule) (*domain.Society, error) {
	society, err := s.GetSociety(ctx, societyName)
	if err != nil {
		return nil, err
	}

	if err := s.societyRepo.UpdateMaintenanceBill(ctx, societyName, schedule); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	society.MaintenanceBill = schedule
	return society, nil
}

// PostNotice publishes a noticeboard entry for a society
func (s *SocietyService) PostNotice(ctx context.Context, societyName string, request *domain.PostNoticeRequest) (*domain.Notice, error) {
	if _, err := s.GetSociety(ctx, societyName); err != nil {
		return nil, err
	}

	notice := &domain.Notice{
		ID:          uuid.New(),
		SocietyName: societyName,
		Subject:     request.Subject,
		Details:     request.Details,
		PostedBy:    request.PostedBy,
		CreatedAt:   time.Now(),
	}

	if err := s.helpdeskRepo.CreateNotice(ctx, notice); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return notice, nil
}

// ListNotices returns a society's noticeboard. An empty board yields a single
// default welcome entry.
func (s *SocietyService) ListNotices(ctx context.Context, societyName string) ([]*domain.Notice, error) {
	if _, err := s.GetSociety(ctx, societyName); err != nil {
		return nil, err
	}

	notices, err := s.helpdeskRepo.ListNotices(ctx, societyName)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	if len(notices) == 0 {
		notices = []*domain.Notice{{
			SocietyName: societyName,
			Subject:     "Access all important announcements, notices and circulars here.",
			CreatedAt:   time.Now(),
		}}
	}

	return notices, nil
}

// FileComplaint records a helpdesk ticket for a resident
func (s *SocietyService) FileComplaint(ctx context.Context, societyName string, request *domain.FileComplaintRequest) (*domain.Complaint, error) {
	if _, err := s.GetSociety(ctx, societyName); err != nil {
		return nil, err
	}

	residentID, err := uuid.Parse(request.ResidentID)
	if err != nil {
		return nil, customError.WrapResidentNotFound(request.ResidentID)
	}

	resident, err := s.residentRepo.GetByID(ctx, residentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapResidentNotFound(request.ResidentID)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	complaint := &domain.Complaint{
		ID:          uuid.New(),
		SocietyName: societyName,
		ResidentID:  resident.ID,
		Category:    request.Category,
		Description: request.Description,
		Status:      domain.ComplaintStatusOpen,
		CreatedAt:   time.Now(),
	}

	if err := s.helpdeskRepo.CreateComplaint(ctx, complaint); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return complaint, nil
}

// ListComplaints returns all helpdesk tickets of a society
func (s *SocietyService) ListComplaints(ctx context.Context, societyName string) ([]*domain.Complaint, error) {
	if _, err := s.GetSociety(ctx, societyName); err != nil {
		return nil, err
	}

	complaints, err := s.helpdeskRepo.ListComplaints(ctx, societyName)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return complaints, nil
}

// AddContact adds an emergency-contact directory entry
func (s *SocietyService) AddContact(ctx context.Context, societyName string, request *domain.AddContactRequest) (*domain.EmergencyContact, error) {
	if _, err := s.GetSociety(ctx, societyName); err != nil {
		return nil, err
	}

	contact := &domain.EmergencyContact{
		ID:          uuid.New(),
		SocietyName: societyName,
		Name:        request.Name,
		Service:     request.Service,
		PhoneNumber: request.PhoneNumber,
		CreatedAt:   time.Now(),
	}

	if err := s.helpdeskRepo.CreateContact(ctx, contact); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return contact, nil
}

// ListContacts returns the emergency-contacts directory of a society
func (s *SocietyService) ListContacts(ctx context.Context, societyName string) ([]*domain.EmergencyContact, error) {
	if _, err := s.GetSociety(ctx, societyName); err != nil {
		return nil, err
	}

	contacts, err := s.helpdeskRepo.ListContacts(ctx, societyName)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return contacts, nil
}
