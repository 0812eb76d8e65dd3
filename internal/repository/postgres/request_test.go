package postgres

import (
	"context"
	"testing"
	"time"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var closeNow = time.Date(2026, 4, 1, 16, 0, 0, 0, time.UTC)

func TestRequestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		req := &domain.RentalRequest{
			ManagerID:        1,
			EquipmentType:    "excavator",
			EquipmentSubtype: "crawler",
			StartDate:        "2026-04-02",
			EndDate:          "2026-04-05",
			Location:         "North Yard",
			Status:           domain.RequestStatusAuctionActive,
			AuctionDeadline:  closeNow,
		}

		mock.ExpectQuery("INSERT INTO rental_requests").
			WithArgs(req.ManagerID, req.EquipmentType, req.EquipmentSubtype, req.StartDate, req.EndDate, req.Location, req.Description, req.Status, req.AuctionDeadline, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		err := repo.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), req.ID)
	})
}

func TestRequestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "manager_id", "equipment_type", "equipment_subtype", "start_date", "end_date", "location", "description", "status", "auction_deadline", "winning_bid_id", "total_bids", "min_price_cents", "max_price_cents", "avg_price_cents", "created_on", "updated_on"}).
			AddRow(5, 1, "excavator", "crawler", "2026-04-02", "2026-04-05", "North Yard", "", "AUCTION_ACTIVE", closeNow, nil, nil, nil, nil, nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE id = \\$1").
			WithArgs(int32(5)).
			WillReturnRows(rows)

		req, err := repo.GetByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), req.ID)
		assert.Equal(t, domain.RequestStatusAuctionActive, req.Status)
		assert.Nil(t, req.WinningBidID)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRequestRepository_CloseIfExpired(t *testing.T) {
	ctx := context.Background()

	bidColumns := []string{"id", "request_id", "owner_id", "equipment_id", "hourly_rate_cents", "daily_rate_cents", "total_price_cents", "comment", "status", "created_at"}

	t.Run("Winning close resolves winner and persists aggregates", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewRequestRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rental_requests SET status").
			WithArgs(domain.RequestStatusAuctionClosed, closeNow, int32(5), domain.RequestStatusAuctionActive, closeNow).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectQuery("SELECT (.+) FROM bids WHERE request_id = \\$1 AND status = \\$2").
			WithArgs(int32(5), domain.BidStatusPending).
			WillReturnRows(sqlmock.NewRows(bidColumns).
				AddRow(1, 5, 10, 100, 6000, 40000, 200000, "", "PENDING", closeNow.Add(-2*time.Hour)).
				AddRow(2, 5, 11, 200, 5000, 35000, 150000, "", "PENDING", closeNow.Add(-time.Hour)))

		// Bid 2 carries the lowest total price.
		mock.ExpectExec("UPDATE bids SET status").
			WithArgs(domain.BidStatusAccepted, int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE bids SET status").
			WithArgs(domain.BidStatusRejected, int32(5), domain.BidStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectExec("UPDATE rental_requests SET winning_bid_id").
			WithArgs(int32(2), int32(2), int32(150000), int32(200000), float64(175000), int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		closed, err := repo.CloseIfExpired(ctx, 5, closeNow)
		assert.NoError(t, err)
		assert.True(t, closed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Winning close with no bids records empty aggregates", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewRequestRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rental_requests SET status").
			WithArgs(domain.RequestStatusAuctionClosed, closeNow, int32(6), domain.RequestStatusAuctionActive, closeNow).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT (.+) FROM bids WHERE request_id = \\$1 AND status = \\$2").
			WithArgs(int32(6), domain.BidStatusPending).
			WillReturnRows(sqlmock.NewRows(bidColumns))
		mock.ExpectExec("UPDATE rental_requests SET winning_bid_id").
			WithArgs(nil, int32(0), nil, nil, nil, int32(6)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		closed, err := repo.CloseIfExpired(ctx, 6, closeNow)
		assert.NoError(t, err)
		assert.True(t, closed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Losing close leaves everything untouched", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewRequestRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rental_requests SET status").
			WithArgs(domain.RequestStatusAuctionClosed, closeNow, int32(7), domain.RequestStatusAuctionActive, closeNow).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		closed, err := repo.CloseIfExpired(ctx, 7, closeNow)
		assert.NoError(t, err)
		assert.False(t, closed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRequestRepository(db)
	ctx := context.Background()

	t.Run("Filter by manager", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "manager_id", "equipment_type", "equipment_subtype", "start_date", "end_date", "location", "description", "status", "auction_deadline", "winning_bid_id", "total_bids", "min_price_cents", "max_price_cents", "avg_price_cents", "created_on", "updated_on"}).
			AddRow(5, 1, "excavator", "crawler", "2026-04-02", "2026-04-05", "North Yard", "", "AUCTION_ACTIVE", closeNow, nil, nil, nil, nil, nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rental_requests r WHERE 1=1 AND r.manager_id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		requests, err := repo.List(ctx, repository.RequestFilter{ManagerID: 1})
		assert.NoError(t, err)
		assert.Len(t, requests, 1)
	})

	t.Run("Owner filter joins partnerships and equipment", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "manager_id", "equipment_type", "equipment_subtype", "start_date", "end_date", "location", "description", "status", "auction_deadline", "winning_bid_id", "total_bids", "min_price_cents", "max_price_cents", "avg_price_cents", "created_on", "updated_on"}).
			AddRow(5, 1, "excavator", "crawler", "2026-04-02", "2026-04-05", "North Yard", "", "AUCTION_ACTIVE", closeNow, nil, nil, nil, nil, nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rental_requests r JOIN users m (.+) JOIN partnerships p (.+) WHERE EXISTS").
			WithArgs(int32(10)).
			WillReturnRows(rows)

		requests, err := repo.List(ctx, repository.RequestFilter{OwnerID: 10})
		assert.NoError(t, err)
		assert.Len(t, requests, 1)
	})
}

func TestRequestRepository_ListExpiredActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRequestRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT id FROM rental_requests WHERE status = \\$1 AND auction_deadline <= \\$2").
		WithArgs(domain.RequestStatusAuctionActive, closeNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(8))

	ids, err := repo.ListExpiredActive(ctx, closeNow)
	assert.NoError(t, err)
	assert.Equal(t, []int32{3, 8}, ids)
}
