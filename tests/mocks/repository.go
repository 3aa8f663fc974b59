package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/societyops/maintenance-engine/internal/domain"
)

// MockResidentRepository is a testify mock for repository.ResidentRepository
type MockResidentRepository struct {
	mock.Mock
}

func (m *MockResidentRepository) Create(ctx context.Context, resident *domain.Resident) error {
	args := m.Called(ctx, resident)
	return args.Error(0)
}

func (m *MockResidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resident), args.Error(1)
}

func (m *MockResidentRepository) GetByUsername(ctx context.Context, username string) (*domain.Resident, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resident), args.Error(1)
}

func (m *MockResidentRepository) GetByPendingInvoice(ctx context.Context, gatewayOrderID string) (*domain.Resident, error) {
	args := m.Called(ctx, gatewayOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resident), args.Error(1)
}

func (m *MockResidentRepository) ListBySociety(ctx context.Context, societyName, validation string) ([]*domain.Resident, error) {
	args := m.Called(ctx, societyName, validation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Resident), args.Error(1)
}

func (m *MockResidentRepository) ListApproved(ctx context.Context) ([]*domain.Resident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Resident), args.Error(1)
}

func (m *MockResidentRepository) UpdateValidation(ctx context.Context, id uuid.UUID, validation string) error {
	args := m.Called(ctx, id, validation)
	return args.Error(0)
}

func (m *MockResidentRepository) SetPendingPayment(ctx context.Context, id uuid.UUID, prevInvoice string, marker *domain.LastPayment) (bool, error) {
	args := m.Called(ctx, id, prevInvoice, marker)
	return args.Bool(0), args.Error(1)
}

func (m *MockResidentRepository) SettlePayment(ctx context.Context, gatewayOrderID string) (bool, error) {
	args := m.Called(ctx, gatewayOrderID)
	return args.Bool(0), args.Error(1)
}

// MockSocietyRepository is a testify mock for repository.SocietyRepository
type MockSocietyRepository struct {
	mock.Mock
}

func (m *MockSocietyRepository) Create(ctx context.Context, society *domain.Society) error {
	args := m.Called(ctx, society)
	return args.Error(0)
}

func (m *MockSocietyRepository) GetByName(ctx context.Context, societyName string) (*domain.Society, error) {
	args := m.Called(ctx, societyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Society), args.Error(1)
}

func (m *MockSocietyRepository) UpdateMaintenanceBill(ctx context.Context, societyName string, schedule domain.ChargeSchedule) error {
	args := m.Called(ctx, societyName, schedule)
	return args.Error(0)
}

// MockHelpdeskRepository is a testify mock for repository.HelpdeskRepository
type MockHelpdeskRepository struct {
	mock.Mock
}

func (m *MockHelpdeskRepository) CreateNotice(ctx context.Context, notice *domain.Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockHelpdeskRepository) ListNotices(ctx context.Context, societyName string) ([]*domain.Notice, error) {
	args := m.Called(ctx, societyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Notice), args.Error(1)
}

func (m *MockHelpdeskRepository) CreateComplaint(ctx context.Context, complaint *domain.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockHelpdeskRepository) ListComplaints(ctx context.Context, societyName string) ([]*domain.Complaint, error) {
	args := m.Called(ctx, societyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Complaint), args.Error(1)
}

func (m *MockHelpdeskRepository) CreateContact(ctx context.Context, contact *domain.EmergencyContact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockHelpdeskRepository) ListContacts(ctx context.Context, societyName string) ([]*domain.EmergencyContact, error) {
	args := m.Called(ctx, societyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.EmergencyContact), args.Error(1)
}
