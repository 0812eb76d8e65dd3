package postgres

import (
	"context"
	"database/sql"
	"time"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/repository"

	"github.com/lib/pq"
)

type bidRepository struct {
	db *sql.DB
}

func NewBidRepository(db *sql.DB) repository.BidRepository {
	return &bidRepository{db: db}
}

// Submit admits a bid. All preconditions are evaluated inside one transaction
// holding a FOR UPDATE lock on the request row, which is the same lock the
// close transition takes: a bid can never be inserted after the close has
// committed, and a close can never miss a committed bid.
func (r *bidRepository) Submit(ctx context.Context, b *domain.Bid, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status domain.RequestStatus
	var deadline time.Time
	var managerID int32
	var eqType, eqSubtype string
	err = tx.QueryRowContext(ctx,
		`SELECT status, auction_deadline, manager_id, equipment_type, equipment_subtype FROM rental_requests WHERE id = $1 FOR UPDATE`,
		b.RequestID).Scan(&status, &deadline, &managerID, &eqType, &eqSubtype)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if status != domain.RequestStatusAuctionActive || !now.Before(deadline) {
		return domain.ErrAuctionClosed
	}

	var eqOwnerID int32
	var eqStatus domain.EquipmentStatus
	var gotType, gotSubtype string
	err = tx.QueryRowContext(ctx,
		`SELECT owner_id, status, type, subtype FROM equipment WHERE id = $1`,
		b.EquipmentID).Scan(&eqOwnerID, &eqStatus, &gotType, &gotSubtype)
	if err == sql.ErrNoRows {
		return domain.ErrIneligibleEquipment
	}
	if err != nil {
		return err
	}
	if eqOwnerID != b.OwnerID || eqStatus != domain.EquipmentStatusAvailable || gotType != eqType || gotSubtype != eqSubtype {
		return domain.ErrIneligibleEquipment
	}

	// Partnership is re-checked against current state, never trusted from the
	// creation-time snapshot.
	var authorized bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM users o
		     JOIN users m ON m.id = $2
		     JOIN partnerships p ON p.owner_company_id = o.company_id AND p.manager_company_id = m.company_id AND p.status = 'ACTIVE'
		     WHERE o.id = $1 AND o.company_id IS NOT NULL AND m.company_id IS NOT NULL
		 )`,
		b.OwnerID, managerID).Scan(&authorized)
	if err != nil {
		return err
	}
	if !authorized {
		return domain.ErrNotAuthorized
	}

	var duplicate bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM bids WHERE request_id = $1 AND equipment_id = $2)`,
		b.RequestID, b.EquipmentID).Scan(&duplicate)
	if err != nil {
		return err
	}
	if duplicate {
		return domain.ErrDuplicateBid
	}

	b.Status = domain.BidStatusPending
	b.CreatedAt = now
	err = tx.QueryRowContext(ctx,
		`INSERT INTO bids (request_id, owner_id, equipment_id, hourly_rate_cents, daily_rate_cents, total_price_cents, comment, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		b.RequestID, b.OwnerID, b.EquipmentID, b.HourlyRateCents, b.DailyRateCents,
		b.TotalPriceCents, b.Comment, b.Status, b.CreatedAt).Scan(&b.ID)
	if err != nil {
		// The (request_id, equipment_id) unique index backstops the existence
		// check above.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateBid
		}
		return err
	}

	return tx.Commit()
}

func (r *bidRepository) ListByRequest(ctx context.Context, requestID int32) ([]domain.Bid, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, request_id, owner_id, equipment_id, hourly_rate_cents, daily_rate_cents, total_price_cents, comment, status, created_at
		 FROM bids WHERE request_id = $1 ORDER BY created_at ASC`,
		requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var b domain.Bid
		if err := rows.Scan(&b.ID, &b.RequestID, &b.OwnerID, &b.EquipmentID, &b.HourlyRateCents, &b.DailyRateCents, &b.TotalPriceCents, &b.Comment, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

func (r *bidRepository) GetWinnerSummary(ctx context.Context, bidID int32) (*domain.WinnerSummary, error) {
	w := &domain.WinnerSummary{}
	var companyName sql.NullString
	query := `SELECT b.id, u.name, u.phone_number, c.name, e.name, b.total_price_cents, b.hourly_rate_cents, b.daily_rate_cents, b.comment
	          FROM bids b
	          JOIN users u ON u.id = b.owner_id
	          LEFT JOIN companies c ON c.id = u.company_id
	          JOIN equipment e ON e.id = b.equipment_id
	          WHERE b.id = $1`
	err := r.db.QueryRowContext(ctx, query, bidID).Scan(&w.BidID, &w.OwnerName, &w.OwnerPhone, &companyName, &w.EquipmentName, &w.TotalPriceCents, &w.HourlyRateCents, &w.DailyRateCents, &w.Comment)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	w.CompanyName = companyName.String
	return w, nil
}
