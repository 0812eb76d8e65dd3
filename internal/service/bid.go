package service

import (
	"context"
	"fmt"
	"time"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/logger"
	"equipbid-backend/internal/repository"
)

type bidService struct {
	bidRepo        repository.BidRepository
	requestRepo    repository.RequestRepository
	eligibilitySvc EligibilityService
	now            func() time.Time
}

func NewBidService(
	bidRepo repository.BidRepository,
	requestRepo repository.RequestRepository,
	eligibilitySvc EligibilityService,
) BidService {
	return &bidService{
		bidRepo:        bidRepo,
		requestRepo:    requestRepo,
		eligibilitySvc: eligibilitySvc,
		now:            time.Now,
	}
}

// SubmitBid validates the payload, screens the bid against current auction
// and eligibility state, then hands it to the repository. The screen is a
// fast-fail only: the repository re-checks every precondition atomically
// under the request row lock, so admission never trusts these prior reads.
func (s *bidService) SubmitBid(ctx context.Context, in SubmitBidInput) (*domain.Bid, error) {
	if in.TotalPriceCents <= 0 {
		return nil, fmt.Errorf("%w: total_price must be positive", domain.ErrValidation)
	}
	if in.HourlyRateCents < 0 || in.DailyRateCents < 0 {
		return nil, fmt.Errorf("%w: rates must not be negative", domain.ErrValidation)
	}
	if in.RequestID == 0 || in.OwnerID == 0 || in.EquipmentID == 0 {
		return nil, fmt.Errorf("%w: request, owner and equipment are required", domain.ErrValidation)
	}

	req, err := s.requestRepo.GetByID(ctx, in.RequestID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if req.Status != domain.RequestStatusAuctionActive || !now.Before(req.AuctionDeadline) {
		return nil, domain.ErrAuctionClosed
	}
	if err := s.eligibilitySvc.CheckBidEligibility(ctx, req, in.OwnerID, in.EquipmentID); err != nil {
		return nil, err
	}

	bid := &domain.Bid{
		RequestID:       in.RequestID,
		OwnerID:         in.OwnerID,
		EquipmentID:     in.EquipmentID,
		HourlyRateCents: in.HourlyRateCents,
		DailyRateCents:  in.DailyRateCents,
		TotalPriceCents: in.TotalPriceCents,
		Comment:         in.Comment,
	}
	if err := s.bidRepo.Submit(ctx, bid, now); err != nil {
		return nil, err
	}

	logger.Info("Bid admitted", "bid_id", bid.ID, "request_id", bid.RequestID, "owner_id", bid.OwnerID)
	return bid, nil
}
