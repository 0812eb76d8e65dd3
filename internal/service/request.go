package service

import (
	"context"
	"fmt"
	"time"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/logger"
	"equipbid-backend/internal/repository"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type requestService struct {
	requestRepo    repository.RequestRepository
	bidRepo        repository.BidRepository
	userRepo       repository.UserRepository
	noteRepo       repository.NotificationRepository
	eligibilitySvc EligibilityService
	emailSvc       EmailService
	auctionDur     time.Duration
	now            func() time.Time
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	bidRepo repository.BidRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	eligibilitySvc EligibilityService,
	emailSvc EmailService,
	auctionDurationHours int,
) RequestService {
	return &requestService{
		requestRepo:    requestRepo,
		bidRepo:        bidRepo,
		userRepo:       userRepo,
		noteRepo:       noteRepo,
		eligibilitySvc: eligibilitySvc,
		emailSvc:       emailSvc,
		auctionDur:     time.Duration(auctionDurationHours) * time.Hour,
		now:            time.Now,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, in CreateRequestInput) (*domain.RentalRequest, int32, error) {
	if in.EquipmentType == "" || in.EquipmentSubtype == "" {
		return nil, 0, fmt.Errorf("%w: equipment type and subtype are required", domain.ErrValidation)
	}

	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid start_date", domain.ErrValidation)
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid end_date", domain.ErrValidation)
	}
	if !end.After(start) {
		return nil, 0, fmt.Errorf("%w: end_date must be after start_date", domain.ErrValidation)
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !start.After(today) {
		return nil, 0, fmt.Errorf("%w: start_date must be in the future", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, in.ManagerID); err != nil {
		return nil, 0, err
	}

	req := &domain.RentalRequest{
		ManagerID:        in.ManagerID,
		EquipmentType:    in.EquipmentType,
		EquipmentSubtype: in.EquipmentSubtype,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Location:         in.Location,
		Description:      in.Description,
		Status:           domain.RequestStatusAuctionActive,
		AuctionDeadline:  now.Add(s.auctionDur),
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, 0, err
	}

	// Creation-time eligibility is informational fan-out; admission re-checks
	// against live state. A resolver failure here must not fail the creation.
	eligible, err := s.eligibilitySvc.ResolveForRequest(ctx, in.ManagerID, in.EquipmentType, in.EquipmentSubtype)
	if err != nil {
		logger.Warn("Failed to resolve eligible owners for new request", "request_id", req.ID, "error", err)
		return req, 0, nil
	}

	owners := distinctOwners(eligible)
	s.notifyRequestCreated(ctx, req, owners)

	return req, int32(len(owners)), nil
}

func (s *requestService) GetRequest(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	if _, err := s.CloseIfExpired(ctx, id); err != nil {
		return nil, err
	}
	return s.requestRepo.GetByID(ctx, id)
}

func (s *requestService) ListRequests(ctx context.Context, filter repository.RequestFilter) ([]domain.RentalRequest, error) {
	requests, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Lazy closing: any expired-active entry is closed before the caller sees
	// it. If anything flipped, re-list so statuses and winners are current.
	anyClosed := false
	now := s.now()
	for i := range requests {
		r := &requests[i]
		if r.Status == domain.RequestStatusAuctionActive && !now.Before(r.AuctionDeadline) {
			closed, err := s.CloseIfExpired(ctx, r.ID)
			if err != nil {
				return nil, err
			}
			anyClosed = anyClosed || closed
		}
	}
	if anyClosed {
		return s.requestRepo.List(ctx, filter)
	}
	return requests, nil
}

func (s *requestService) ListBids(ctx context.Context, requestID int32) ([]domain.Bid, error) {
	if _, err := s.CloseIfExpired(ctx, requestID); err != nil {
		return nil, err
	}
	if _, err := s.requestRepo.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	return s.bidRepo.ListByRequest(ctx, requestID)
}

func (s *requestService) GetResults(ctx context.Context, id int32) (*domain.AuctionResult, error) {
	req, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status == domain.RequestStatusAuctionActive {
		return nil, domain.ErrAuctionNotFinished
	}

	result := &domain.AuctionResult{Request: req}
	if req.TotalBids != nil {
		result.Stats.TotalBids = *req.TotalBids
	}
	if req.MinPriceCents != nil {
		result.Stats.MinPriceCents = *req.MinPriceCents
	}
	if req.MaxPriceCents != nil {
		result.Stats.MaxPriceCents = *req.MaxPriceCents
	}
	if req.AvgPriceCents != nil {
		result.Stats.AvgPriceCents = *req.AvgPriceCents
	}

	if req.WinningBidID != nil {
		winner, err := s.bidRepo.GetWinnerSummary(ctx, *req.WinningBidID)
		if err != nil {
			return nil, err
		}
		result.Winner = winner
	}
	return result, nil
}

// CloseIfExpired drives the one-time close transition and, only on the call
// that wins the transition, emits the closing notifications. Losing callers
// return without side effects; the persisted result is what they will read.
func (s *requestService) CloseIfExpired(ctx context.Context, id int32) (bool, error) {
	closed, err := s.requestRepo.CloseIfExpired(ctx, id, s.now())
	if err != nil {
		return false, err
	}
	if closed {
		logger.Info("Auction closed", "request_id", id)
		s.notifyAuctionClosed(ctx, id)
	}
	return closed, nil
}

func (s *requestService) notifyRequestCreated(ctx context.Context, req *domain.RentalRequest, owners []int32) {
	deadline := req.AuctionDeadline.UTC().Format(time.RFC3339)
	for _, ownerID := range owners {
		owner, err := s.userRepo.GetByID(ctx, ownerID)
		if err != nil {
			logger.Warn("Failed to load owner for request-created notification", "owner_id", ownerID, "error", err)
			continue
		}
		_ = s.emailSvc.SendRequestCreatedNotification(ctx, owner.Email, owner.Name, req.EquipmentType, req.EquipmentSubtype, req.Location, deadline)

		note := &domain.Notification{
			UserID:  ownerID,
			Title:   "New Rental Request",
			Message: fmt.Sprintf("New request for %s / %s until %s", req.EquipmentType, req.EquipmentSubtype, deadline),
			Attributes: map[string]string{
				"type":       "REQUEST_CREATED",
				"event_id":   uuid.New().String(),
				"request_id": fmt.Sprintf("%d", req.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, note)
	}
}

func (s *requestService) notifyAuctionClosed(ctx context.Context, id int32) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		logger.Warn("Failed to load request after close", "request_id", id, "error", err)
		return
	}
	manager, err := s.userRepo.GetByID(ctx, req.ManagerID)
	if err != nil {
		logger.Warn("Failed to load manager after close", "request_id", id, "error", err)
		return
	}

	if req.WinningBidID == nil {
		_ = s.emailSvc.SendAuctionNoWinnerNotification(ctx, manager.Email, req.ID)
		note := &domain.Notification{
			UserID:  manager.ID,
			Title:   "Auction Closed",
			Message: fmt.Sprintf("Auction for request %d closed without bids", req.ID),
			Attributes: map[string]string{
				"type":       "AUCTION_CLOSED_NO_WINNER",
				"event_id":   uuid.New().String(),
				"request_id": fmt.Sprintf("%d", req.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, note)
		return
	}

	winner, err := s.bidRepo.GetWinnerSummary(ctx, *req.WinningBidID)
	if err != nil {
		logger.Warn("Failed to load winner summary after close", "request_id", id, "error", err)
		return
	}
	_ = s.emailSvc.SendAuctionWonNotification(ctx, manager.Email, req.ID, winner)
	note := &domain.Notification{
		UserID:  manager.ID,
		Title:   "Auction Closed",
		Message: fmt.Sprintf("Auction for request %d closed, winning price %d", req.ID, winner.TotalPriceCents),
		Attributes: map[string]string{
			"type":           "AUCTION_CLOSED_WITH_WINNER",
			"event_id":       uuid.New().String(),
			"request_id":     fmt.Sprintf("%d", req.ID),
			"winning_bid_id": fmt.Sprintf("%d", winner.BidID),
		},
	}
	_ = s.noteRepo.Create(ctx, note)

	// Losing bidders learn their bid was rejected.
	bids, err := s.bidRepo.ListByRequest(ctx, id)
	if err != nil {
		logger.Warn("Failed to list bids after close", "request_id", id, "error", err)
		return
	}
	notified := make(map[int32]bool)
	for _, b := range bids {
		if b.Status != domain.BidStatusRejected || notified[b.OwnerID] {
			continue
		}
		notified[b.OwnerID] = true
		owner, err := s.userRepo.GetByID(ctx, b.OwnerID)
		if err != nil {
			continue
		}
		_ = s.emailSvc.SendBidRejectedNotification(ctx, owner.Email, req.ID)
		note := &domain.Notification{
			UserID:  b.OwnerID,
			Title:   "Bid Not Selected",
			Message: fmt.Sprintf("Your bid on request %d was not selected", req.ID),
			Attributes: map[string]string{
				"type":       "BID_REJECTED",
				"event_id":   uuid.New().String(),
				"request_id": fmt.Sprintf("%d", req.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, note)
	}
}
