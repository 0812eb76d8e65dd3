package service

import (
	"context"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/repository"
)

// CreateRequestInput is the create-request body consumed from the API layer.
type CreateRequestInput struct {
	ManagerID        int32  `json:"requester_id"`
	EquipmentType    string `json:"equipment_type"`
	EquipmentSubtype string `json:"equipment_subtype"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Location         string `json:"location"`
	Description      string `json:"work_description"`
}

// SubmitBidInput is the submit-bid body consumed from the API layer.
type SubmitBidInput struct {
	RequestID       int32  `json:"request_id"`
	OwnerID         int32  `json:"owner_id"`
	EquipmentID     int32  `json:"equipment_id"`
	HourlyRateCents int32  `json:"hourly_rate_cents"`
	DailyRateCents  int32  `json:"daily_rate_cents"`
	TotalPriceCents int32  `json:"total_price_cents"`
	Comment         string `json:"comment"`
}

// RequestService is the request lifecycle facade. Every read routes through
// the idempotent close, so a caller never observes a past-deadline request
// that still reports an active auction.
type RequestService interface {
	CreateRequest(ctx context.Context, in CreateRequestInput) (*domain.RentalRequest, int32, error)
	GetRequest(ctx context.Context, id int32) (*domain.RentalRequest, error)
	ListRequests(ctx context.Context, filter repository.RequestFilter) ([]domain.RentalRequest, error)
	ListBids(ctx context.Context, requestID int32) ([]domain.Bid, error)
	GetResults(ctx context.Context, id int32) (*domain.AuctionResult, error)
	CloseIfExpired(ctx context.Context, id int32) (bool, error)
}

type BidService interface {
	SubmitBid(ctx context.Context, in SubmitBidInput) (*domain.Bid, error)
}

// EligibilityService computes which owners/equipment may see and bid on a
// request. The creation-time result is informational fan-out only; admission
// re-evaluates eligibility against current state inside the bid transaction.
type EligibilityService interface {
	ResolveForRequest(ctx context.Context, managerID int32, equipmentType, subtype string) ([]domain.EligibleEquipment, error)
	CheckBidEligibility(ctx context.Context, req *domain.RentalRequest, ownerID, equipmentID int32) error
	SubtypeSummary(ctx context.Context, managerID int32) (map[string][]domain.SubtypeCount, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendRequestCreatedNotification(ctx context.Context, ownerEmail, ownerName, equipmentType, equipmentSubtype, location, deadline string) error
	SendAuctionWonNotification(ctx context.Context, managerEmail string, requestID int32, winner *domain.WinnerSummary) error
	SendAuctionNoWinnerNotification(ctx context.Context, managerEmail string, requestID int32) error
	SendBidRejectedNotification(ctx context.Context, ownerEmail string, requestID int32) error
}
