package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/societyops/maintenance-engine/internal/domain"
	customError "github.com/societyops/maintenance-engine/pkg/errors"
	"github.com/societyops/maintenance-engine/tests/mocks"
)

func newSocietyTestService(
	residentRepo *mocks.MockResidentRepository,
	societyRepo *mocks.MockSocietyRepository,
	helpdeskRepo *mocks.MockHelpdeskRepository,
) *SocietyService {
	return &SocietyService{
		residentRepo: residentRepo,
		societyRepo:  societyRepo,
		helpdeskRepo: helpdeskRepo,
		logger:       zerolog.Nop(),
	}
}

func TestRegisterResident_Success(t *testing.T) {
	residentRepo := &mocks.MockResidentRepository{}
	societyRepo := &mocks.MockSocietyRepository{}
	helpdeskRepo := &mocks.MockHelpdeskRepository{}

	service := newSocietyTestService(residentRepo, societyRepo, helpdeskRepo)

	residentRepo.On("GetByUsername", mock.Anything, "asha@example.com").Return(nil, sql.ErrNoRows)
	societyRepo.On("GetByName", mock.Anything, "Shanti Heights").Return(&domain.Society{SocietyName: "Shanti Heights"}, nil)
	residentRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Resident) bool {
		return r.Username == "asha@example.com" && r.Validation == domain.ValidationApplied
	})).Return(nil)

	resident, err := service.RegisterResident(context.Background(), &domain.RegisterResidentRequest{
		FirstName:   "Asha",
		LastName:    "Patil",
		Username:    "asha@example.com",
		PhoneNumber: "9820012345",
		FlatNumber:  "B-404",
		SocietyName: "Shanti Heights",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ValidationApplied, resident.Validation)
	assert.False(t, resident.IsApproved())

	residentRepo.AssertExpectations(t)
}

func TestRegisterResident_DuplicateUsername(t *testing.T) {
	residentRepo := &mocks.MockResidentRepository{}
	societyRepo := &mocks.MockSocietyRepository{}
	helpdeskRepo := &mocks.MockHelpdeskRepository{}

	service := newSocietyTestService(residentRepo, societyRepo, helpdeskRepo)

	residentRepo.On("GetByUsername", mock.Anything, "asha@example.com").
		Return(&domain.Resident{Username: "asha@example.com"}, nil)

	_, err := service.RegisterResident(context.Background(), &domain.RegisterResidentRequest{
		Username:    "asha@example.com",
		SocietyName: "Shanti Heights",
	})

	assertBusinessCode(t, err, customError.ErrCodeResidentAlreadyExists)
	residentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterResident_UnknownSociety(t *testing.T) {
	residentRepo := &mocks.MockResidentRepository{}
	societyRepo := &mocks.MockSocietyRepository{}
	helpdeskRepo := &mocks.MockHelpdeskRepository{}

	service := newSocietyTestService(residentRepo, societyRepo, helpdeskRepo)

	residentRepo.On("GetByUsername", mock.Anything, "asha@example.com").Return(nil, sql.ErrNoRows)
	societyRepo.On("GetByName", mock.Anything, "Nowhere").Return(nil, sql.ErrNoRows)

	_, err := service.RegisterResident(context.Background(), &domain.RegisterResidentRequest{
		Username:    "asha@example.com",
		SocietyName: "Nowhere",
	})

	assertBusinessCode(t, err, customError.ErrCodeSocietyNotFound)
}

func TestSetResidentValidation_Approve(t *testing.T) {
	residentRepo := &mocks.MockResidentRepository{}
	societyRepo := &mocks.MockSocietyRepository{}
	helpdeskRepo := &mocks.MockHelpdeskRepository{}

	service := newSocietyTestService(residentRepo, societyRepo, helpdeskRepo)

	resident := &domain.Resident{ID: uuid.New(), Validation: domain.ValidationApplied}
	residentRepo.On("GetByID", mock.Anything, resident.ID).Return(resident, nil)
	residentRepo.On("UpdateValidation", mock.Anything, resident.ID, domain.ValidationApproved).Return(nil)

	updated, err := service.SetResidentValidation(context.Background(), resident.ID, domain.ValidationApproved)

	require.NoError(t, err)
	assert.True(t, updated.IsApproved())
	residentRepo.AssertExpectations(t)
}

func TestCreateSociety_DefaultSchedule(t *testing.T) {
	residentRepo := &mocks.MockResidentRepository{}
	societyRepo := &mocks.MockSocietyRepository{}
	helpdeskRepo := &mocks.MockHelpdeskRepository{}

	service := newSocietyTestService(residentRepo, societyRepo, helpdeskRepo)

	societyRepo.On("GetByName", mock.Anything, "Shanti Heights").Return(nil, sql.ErrNoRows)
	societyRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Society) bool {
		_, hasCharges := s.MaintenanceBill["societyCharges"]
		return s.SocietyName == "Shanti Heights" && hasCharges
	})).Return(nil)

	society, err := service.CreateSociety(context.Background(), &domain.CreateSocietyRequest{
		SocietyName: "Shanti Heights",
	})

	require.NoError(t, err)
	assert.True(t, society.MaintenanceBill.MonthlyTotal().IsZero())
	societyRepo.AssertExpectations(t)
}

func TestUpdateMaintenanceBill(t *testing.T) {
	residentRepo := &mocks.MockResidentRepository{}
	societyRepo := &mocks.MockSocietyRepository{}
	helpdeskRepo := &mocks.MockHelpdeskRepository{}

	service := newSocietyTestService(residentRepo, societyRepo, helpdeskRepo)

	schedule := domain.ChargeSchedule{"societyCharges": float64(900), "waterCharges": float64(100)}

	societyRepo.On("GetByName", mock.Anything, "Shanti Heights").Return(&domain.Society{SocietyName: "Shanti Heights"}, nil)
	societyRepo.On("UpdateMaintenanceBill", mock.Anything, "Shanti Heights", schedule).Return(nil)

	society, err := service.UpdateMaintenanceBill(context.Background(), "Shanti Heights", schedule)

	require.NoError(t, err)
	assert.True(t, society.MaintenanceBill.MonthlyTotal().Equal(decimal.NewFromInt(1000)))
}

func TestListNotices_EmptyBoardGetsWelcomeNotice(t *testing.T) {
	residentRepo := &mocks.MockResidentRepository{}
	societyRepo := &mocks.MockSocietyRepository{}
	helpdeskRepo := &mocks.MockHelpdeskRepository{}

	service := newSocietyTestService(residentRepo, societyRepo, helpdeskRepo)

	societyRepo.On("GetByName", mock.Anything, "Shanti Heights").Return(&domain.Society{SocietyName: "Shanti Heights"}, nil)
	helpdeskRepo.On("ListNotices", mock.Anything, "Shanti Heights").Return([]*domain.Notice{}, nil)

	notices, err := service.ListNotices(context.Background(), "Shanti Heights")

	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Contains(t, notices[0].Subject, "announcements")
}

func TestFileComplaint(t *testing.T) {
	residentRepo := &mocks.MockResidentRepository{}
	societyRepo := &mocks.MockSocietyRepository{}
	helpdeskRepo := &mocks.MockHelpdeskRepository{}

	service := newSocietyTestService(residentRepo, societyRepo, helpdeskRepo)

	resident := &domain.Resident{ID: uuid.New(), SocietyName: "Shanti Heights", Validation: domain.ValidationApproved}
	societyRepo.On("GetByName", mock.Anything, "Shanti Heights").Return(&domain.Society{SocietyName: "Shanti Heights"}, nil)
	residentRepo.On("GetByID", mock.Anything, resident.ID).Return(resident, nil)
	helpdeskRepo.On("CreateComplaint", mock.Anything, mock.MatchedBy(func(c *domain.Complaint) bool {
		return c.Status == domain.ComplaintStatusOpen && c.ResidentID == resident.ID
	})).Return(nil)

	complaint, err := service.FileComplaint(context.Background(), "Shanti Heights", &domain.FileComplaintRequest{
		ResidentID:  resident.ID.String(),
		Category:    "plumbing",
		Description: "Water leakage in basement parking",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ComplaintStatusOpen, complaint.Status)
	helpdeskRepo.AssertExpectations(t)
}

// Helpdesk operations against an unknown society are refused up front rather
// than surfacing a constraint violation or an empty result.
func TestHelpdesk_UnknownSociety(t *testing.T) {
	residentRepo := &mocks.MockResidentRepository{}
	societyRepo := &mocks.MockSocietyRepository{}
	helpdeskRepo := &mocks.MockHelpdeskRepository{}

	service := newSocietyTestService(residentRepo, societyRepo, helpdeskRepo)

	societyRepo.On("GetByName", mock.Anything, "Nowhere").Return(nil, sql.ErrNoRows)

	_, err := service.FileComplaint(context.Background(), "Nowhere", &domain.FileComplaintRequest{
		ResidentID:  uuid.New().String(),
		Category:    "plumbing",
		Description: "Water leakage",
	})
	assertBusinessCode(t, err, customError.ErrCodeSocietyNotFound)

	_, err = service.ListComplaints(context.Background(), "Nowhere")
	assertBusinessCode(t, err, customError.ErrCodeSocietyNotFound)

	_, err = service.ListContacts(context.Background(), "Nowhere")
	assertBusinessCode(t, err, customError.ErrCodeSocietyNotFound)

	helpdeskRepo.AssertNotCalled(t, "CreateComplaint", mock.Anything, mock.Anything)
	helpdeskRepo.AssertNotCalled(t, "ListComplaints", mock.Anything, mock.Anything)
	helpdeskRepo.AssertNotCalled(t, "ListContacts", mock.Anything, mock.Anything)
}
