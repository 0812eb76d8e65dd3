package service

import (
	"context"
	"fmt"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/repository"
)

type eligibilityService struct {
	equipmentRepo   repository.EquipmentRepository
	userRepo        repository.UserRepository
	companyRepo     repository.CompanyRepository
	partnershipRepo repository.PartnershipRepository
}

func NewEligibilityService(
	equipmentRepo repository.EquipmentRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	partnershipRepo repository.PartnershipRepository,
) EligibilityService {
	return &eligibilityService{
		equipmentRepo:   equipmentRepo,
		userRepo:        userRepo,
		companyRepo:     companyRepo,
		partnershipRepo: partnershipRepo,
	}
}

// ResolveForRequest returns the (owner, equipment) pairs allowed to see and
// bid on a request posted by the given manager. A manager without a company
// has no eligible owners; that is deliberate policy, not a fallback to
// "everyone".
func (s *eligibilityService) ResolveForRequest(ctx context.Context, managerID int32, equipmentType, subtype string) ([]domain.EligibleEquipment, error) {
	manager, err := s.userRepo.GetByID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if manager.CompanyID == nil {
		return nil, nil
	}
	return s.equipmentRepo.ListEligible(ctx, *manager.CompanyID, equipmentType, subtype)
}

// CheckBidEligibility is the pre-admission screen: equipment ownership, type
// match and availability, then the owner↔manager partnership. The bid
// transaction re-evaluates all of this under the request row lock, so a stale
// pass here cannot admit an ineligible bid.
func (s *eligibilityService) CheckBidEligibility(ctx context.Context, req *domain.RentalRequest, ownerID, equipmentID int32) error {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err == domain.ErrNotFound {
		return fmt.Errorf("%w: equipment %d not found", domain.ErrIneligibleEquipment, equipmentID)
	}
	if err != nil {
		return err
	}
	if eq.OwnerID != ownerID {
		return fmt.Errorf("%w: equipment %d is not owned by user %d", domain.ErrIneligibleEquipment, equipmentID, ownerID)
	}
	if eq.Status != domain.EquipmentStatusAvailable {
		return fmt.Errorf("%w: equipment %d is not available", domain.ErrIneligibleEquipment, equipmentID)
	}
	if eq.Type != req.EquipmentType || eq.Subtype != req.EquipmentSubtype {
		return fmt.Errorf("%w: equipment %d does not match %s/%s", domain.ErrIneligibleEquipment, equipmentID, req.EquipmentType, req.EquipmentSubtype)
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}
	manager, err := s.userRepo.GetByID(ctx, req.ManagerID)
	if err != nil {
		return err
	}
	if owner.CompanyID == nil || manager.CompanyID == nil {
		return fmt.Errorf("%w: no partnership between owner and manager", domain.ErrNotAuthorized)
	}
	active, err := s.partnershipRepo.IsActive(ctx, *owner.CompanyID, *manager.CompanyID)
	if err != nil {
		return err
	}
	if !active {
		return fmt.Errorf("%w: no active partnership between owner and manager", domain.ErrNotAuthorized)
	}
	return nil
}

// SubtypeSummary reports available type→subtype counts visible to the given
// manager, scoped to partnered owner companies.
func (s *eligibilityService) SubtypeSummary(ctx context.Context, managerID int32) (map[string][]domain.SubtypeCount, error) {
	manager, err := s.userRepo.GetByID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if manager.CompanyID == nil {
		return map[string][]domain.SubtypeCount{}, nil
	}
	company, err := s.companyRepo.GetByID(ctx, *manager.CompanyID)
	if err != nil {
		return nil, err
	}
	return s.equipmentRepo.SubtypeSummary(ctx, company.ID)
}

// distinctOwners collapses an eligibility set to unique owner ids, preserving
// first-seen order. Used for the "N owners notified" count and fan-out.
func distinctOwners(eligible []domain.EligibleEquipment) []int32 {
	seen := make(map[int32]bool)
	var owners []int32
	for _, e := range eligible {
		if !seen[e.OwnerID] {
			seen[e.OwnerID] = true
			owners = append(owners, e.OwnerID)
		}
	}
	return owners
}
