package service

import (
	"context"
	"time"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.RentalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}

func (m *MockRequestRepo) List(ctx context.Context, filter repository.RequestFilter) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}

func (m *MockRequestRepo) CloseIfExpired(ctx context.Context, id int32, now time.Time) (bool, error) {
	args := m.Called(ctx, id, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockRequestRepo) ListExpiredActive(ctx context.Context, now time.Time) ([]int32, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

type MockBidRepo struct {
	mock.Mock
}

func (m *MockBidRepo) Submit(ctx context.Context, b *domain.Bid, now time.Time) error {
	args := m.Called(ctx, b, now)
	return args.Error(0)
}

func (m *MockBidRepo) ListByRequest(ctx context.Context, requestID int32) ([]domain.Bid, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bid), args.Error(1)
}

func (m *MockBidRepo) GetWinnerSummary(ctx context.Context, bidID int32) (*domain.WinnerSummary, error) {
	args := m.Called(ctx, bidID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WinnerSummary), args.Error(1)
}

type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) ListEligible(ctx context.Context, managerCompanyID int32, equipmentType, subtype string) ([]domain.EligibleEquipment, error) {
	args := m.Called(ctx, managerCompanyID, equipmentType, subtype)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EligibleEquipment), args.Error(1)
}

func (m *MockEquipmentRepo) SubtypeSummary(ctx context.Context, managerCompanyID int32) (map[string][]domain.SubtypeCount, error) {
	args := m.Called(ctx, managerCompanyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.SubtypeCount), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, id int32) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

type MockPartnershipRepo struct {
	mock.Mock
}

func (m *MockPartnershipRepo) IsActive(ctx context.Context, ownerCompanyID, managerCompanyID int32) (bool, error) {
	args := m.Called(ctx, ownerCompanyID, managerCompanyID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), int32(args.Int(1)), args.Error(2)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockEligibilityService struct {
	mock.Mock
}

func (m *MockEligibilityService) ResolveForRequest(ctx context.Context, managerID int32, equipmentType, subtype string) ([]domain.EligibleEquipment, error) {
	args := m.Called(ctx, managerID, equipmentType, subtype)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EligibleEquipment), args.Error(1)
}

func (m *MockEligibilityService) CheckBidEligibility(ctx context.Context, req *domain.RentalRequest, ownerID, equipmentID int32) error {
	args := m.Called(ctx, req, ownerID, equipmentID)
	return args.Error(0)
}

func (m *MockEligibilityService) SubtypeSummary(ctx context.Context, managerID int32) (map[string][]domain.SubtypeCount, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.SubtypeCount), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestCreatedNotification(ctx context.Context, ownerEmail, ownerName, equipmentType, equipmentSubtype, location, deadline string) error {
	args := m.Called(ctx, ownerEmail, ownerName, equipmentType, equipmentSubtype, location, deadline)
	return args.Error(0)
}

func (m *MockEmailService) SendAuctionWonNotification(ctx context.Context, managerEmail string, requestID int32, winner *domain.WinnerSummary) error {
	args := m.Called(ctx, managerEmail, requestID, winner)
	return args.Error(0)
}

func (m *MockEmailService) SendAuctionNoWinnerNotification(ctx context.Context, managerEmail string, requestID int32) error {
	args := m.Called(ctx, managerEmail, requestID)
	return args.Error(0)
}

func (m *MockEmailService) SendBidRejectedNotification(ctx context.Context, ownerEmail string, requestID int32) error {
	args := m.Called(ctx, ownerEmail, requestID)
	return args.Error(0)
}
