package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"equipbid-backend/internal/auction"
	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, manager_id, equipment_type, equipment_subtype, start_date, end_date, location, description, status, auction_deadline, winning_bid_id, total_bids, min_price_cents, max_price_cents, avg_price_cents, created_on, updated_on`

func (r *requestRepository) Create(ctx context.Context, req *domain.RentalRequest) error {
	query := `INSERT INTO rental_requests (manager_id, equipment_type, equipment_subtype, start_date, end_date, location, description, status, auction_deadline, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		req.ManagerID, req.EquipmentType, req.EquipmentSubtype, req.StartDate, req.EndDate,
		req.Location, req.Description, req.Status, req.AuctionDeadline, time.Now(), time.Now(),
	).Scan(&req.ID)
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rental_requests WHERE id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return req, err
}

func (r *requestRepository) List(ctx context.Context, filter repository.RequestFilter) ([]domain.RentalRequest, error) {
	query := `SELECT r.` + "id, r.manager_id, r.equipment_type, r.equipment_subtype, r.start_date, r.end_date, r.location, r.description, r.status, r.auction_deadline, r.winning_bid_id, r.total_bids, r.min_price_cents, r.max_price_cents, r.avg_price_cents, r.created_on, r.updated_on" + ` FROM rental_requests r`

	var args []interface{}
	argIdx := 1
	where := ""

	if filter.OwnerID != 0 {
		// Owner-scoped listing is live eligibility: the owner's company must
		// hold an active partnership with the manager's company, and the
		// owner must have available equipment matching the request.
		query += ` JOIN users m ON m.id = r.manager_id
		           JOIN users o ON o.id = $1
		           JOIN partnerships p ON p.owner_company_id = o.company_id AND p.manager_company_id = m.company_id AND p.status = 'ACTIVE'`
		where = ` WHERE EXISTS (SELECT 1 FROM equipment e WHERE e.owner_id = o.id AND e.type = r.equipment_type AND e.subtype = r.equipment_subtype AND e.status = 'AVAILABLE')`
		args = append(args, filter.OwnerID)
		argIdx++
	} else {
		where = " WHERE 1=1"
	}

	if filter.ManagerID != 0 {
		where += fmt.Sprintf(" AND r.manager_id = $%d", argIdx)
		args = append(args, filter.ManagerID)
		argIdx++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	query += where + " ORDER BY r.created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.RentalRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

// CloseIfExpired flips a past-deadline active request to AUCTION_CLOSED. The
// conditional UPDATE takes the row lock and is the single arbitration point:
// only the caller whose UPDATE reports one affected row resolves the winner,
// flips bid statuses and persists the aggregates. The whole sequence commits
// or rolls back as one transaction.
func (r *requestRepository) CloseIfExpired(ctx context.Context, id int32, now time.Time) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE rental_requests SET status = $1, updated_on = $2 WHERE id = $3 AND status = $4 AND auction_deadline <= $5`,
		domain.RequestStatusAuctionClosed, now, id, domain.RequestStatusAuctionActive, now)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		// Not expired yet, already closed, or unknown id. Nothing to do.
		return false, nil
	}

	bids, err := pendingBids(ctx, tx, id)
	if err != nil {
		return false, err
	}

	winner := auction.ResolveWinner(bids)
	stats := auction.Summarize(bids)

	var winningBidID *int32
	if winner != nil {
		winningBidID = &winner.ID
		if _, err := tx.ExecContext(ctx,
			`UPDATE bids SET status = $1 WHERE id = $2`,
			domain.BidStatusAccepted, winner.ID); err != nil {
			return false, err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE bids SET status = $1 WHERE request_id = $2 AND status = $3`,
			domain.BidStatusRejected, id, domain.BidStatusPending); err != nil {
			return false, err
		}
	}

	var minPrice, maxPrice *int32
	var avgPrice *float64
	if stats.TotalBids > 0 {
		minPrice, maxPrice, avgPrice = &stats.MinPriceCents, &stats.MaxPriceCents, &stats.AvgPriceCents
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE rental_requests SET winning_bid_id = $1, total_bids = $2, min_price_cents = $3, max_price_cents = $4, avg_price_cents = $5 WHERE id = $6`,
		winningBidID, stats.TotalBids, minPrice, maxPrice, avgPrice, id); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

func (r *requestRepository) ListExpiredActive(ctx context.Context, now time.Time) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM rental_requests WHERE status = $1 AND auction_deadline <= $2`,
		domain.RequestStatusAuctionActive, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func pendingBids(ctx context.Context, tx *sql.Tx, requestID int32) ([]domain.Bid, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, request_id, owner_id, equipment_id, hourly_rate_cents, daily_rate_cents, total_price_cents, comment, status, created_at
		 FROM bids WHERE request_id = $1 AND status = $2`,
		requestID, domain.BidStatusPending)
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

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.RentalRequest, error) {
	req := &domain.RentalRequest{}
	err := row.Scan(&req.ID, &req.ManagerID, &req.EquipmentType, &req.EquipmentSubtype,
		&req.StartDate, &req.EndDate, &req.Location, &req.Description, &req.Status,
		&req.AuctionDeadline, &req.WinningBidID, &req.TotalBids, &req.MinPriceCents,
		&req.MaxPriceCents, &req.AvgPriceCents, &req.CreatedOn, &req.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return req, nil
}
