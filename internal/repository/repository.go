package repository

import (
	"context"
	"time"

	"equipbid-backend/internal/domain"
)

// RequestFilter narrows ListRequests. OwnerID scopes the listing to requests
// the owner is currently eligible for (live partnership + equipment match).
type RequestFilter struct {
	ManagerID int32
	OwnerID   int32
	Status    domain.RequestStatus
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.RentalRequest) error
	GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]domain.RentalRequest, error)

	// CloseIfExpired performs the one-time active->closed transition for a
	// past-deadline request, resolves the winner over the pending bids, flips
	// bid statuses and persists the aggregates, all in a single transaction.
	// Exactly one concurrent caller observes closed=true; every other caller
	// gets closed=false without side effects.
	CloseIfExpired(ctx context.Context, id int32, now time.Time) (closed bool, err error)

	// ListExpiredActive returns ids of active requests whose deadline has
	// passed, for the periodic sweep.
	ListExpiredActive(ctx context.Context, now time.Time) ([]int32, error)
}

type BidRepository interface {
	// Submit is the atomic check-and-insert of bid admission. It locks the
	// request row, re-validates auction state, equipment eligibility,
	// partnership and uniqueness against current stored state, and inserts
	// the bid with status PENDING. Violations map to the domain error
	// taxonomy.
	Submit(ctx context.Context, b *domain.Bid, now time.Time) error

	ListByRequest(ctx context.Context, requestID int32) ([]domain.Bid, error)
	GetWinnerSummary(ctx context.Context, bidID int32) (*domain.WinnerSummary, error)
}

// EquipmentRepository is read-only: equipment state belongs to an external
// collaborator, the auction core only queries it.
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	ListEligible(ctx context.Context, managerCompanyID int32, equipmentType, subtype string) ([]domain.EligibleEquipment, error)
	SubtypeSummary(ctx context.Context, managerCompanyID int32) (map[string][]domain.SubtypeCount, error)
}

// PartnershipRepository is read-only.
type PartnershipRepository interface {
	IsActive(ctx context.Context, ownerCompanyID, managerCompanyID int32) (bool, error)
}

// UserRepository is read-only.
type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
}

// CompanyRepository is read-only.
type CompanyRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Company, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
