package postgres

import (
	"context"
	"database/sql"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	query := `SELECT id, owner_id, name, type, subtype, status, location, created_on FROM equipment WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.OwnerID, &e.Name, &e.Type, &e.Subtype, &e.Status, &e.Location, &e.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListEligible computes the fan-out set for a request: available equipment of
// the exact type/subtype whose owner's company holds an active partnership
// with the manager's company.
func (r *equipmentRepository) ListEligible(ctx context.Context, managerCompanyID int32, equipmentType, subtype string) ([]domain.EligibleEquipment, error) {
	query := `SELECT e.owner_id, e.id
	          FROM equipment e
	          JOIN users u ON u.id = e.owner_id
	          JOIN partnerships p ON p.owner_company_id = u.company_id AND p.manager_company_id = $1 AND p.status = 'ACTIVE'
	          WHERE e.type = $2 AND e.subtype = $3 AND e.status = 'AVAILABLE'
	          ORDER BY e.owner_id, e.id`
	rows, err := r.db.QueryContext(ctx, query, managerCompanyID, equipmentType, subtype)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var eligible []domain.EligibleEquipment
	for rows.Next() {
		var ee domain.EligibleEquipment
		if err := rows.Scan(&ee.OwnerID, &ee.EquipmentID); err != nil {
			return nil, err
		}
		eligible = append(eligible, ee)
	}
	return eligible, rows.Err()
}

func (r *equipmentRepository) SubtypeSummary(ctx context.Context, managerCompanyID int32) (map[string][]domain.SubtypeCount, error) {
	query := `SELECT e.type, e.subtype, count(*)
	          FROM equipment e
	          JOIN users u ON u.id = e.owner_id
	          JOIN partnerships p ON p.owner_company_id = u.company_id AND p.manager_company_id = $1 AND p.status = 'ACTIVE'
	          WHERE e.status = 'AVAILABLE'
	          GROUP BY e.type, e.subtype
	          ORDER BY e.type, e.subtype`
	rows, err := r.db.QueryContext(ctx, query, managerCompanyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make(map[string][]domain.SubtypeCount)
	for rows.Next() {
		var equipmentType string
		var sc domain.SubtypeCount
		if err := rows.Scan(&equipmentType, &sc.Subtype, &sc.Count); err != nil {
			return nil, err
		}
		summary[equipmentType] = append(summary[equipmentType], sc)
	}
	return summary, rows.Err()
}
