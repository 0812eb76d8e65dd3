package postgres

import (
	"context"
	"database/sql"

	"equipbid-backend/internal/repository"
)

type partnershipRepository struct {
	db *sql.DB
}

func NewPartnershipRepository(db *sql.DB) repository.PartnershipRepository {
	return &partnershipRepository{db: db}
}

func (r *partnershipRepository) IsActive(ctx context.Context, ownerCompanyID, managerCompanyID int32) (bool, error) {
	var active bool
	query := `SELECT EXISTS (SELECT 1 FROM partnerships WHERE owner_company_id = $1 AND manager_company_id = $2 AND status = 'ACTIVE')`
	err := r.db.QueryRowContext(ctx, query, ownerCompanyID, managerCompanyID).Scan(&active)
	return active, err
}
