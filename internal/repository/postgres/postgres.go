package postgres

import (
	"database/sql"

	"equipbid-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RequestRepository
	repository.BidRepository
	repository.EquipmentRepository
	repository.PartnershipRepository
	repository.UserRepository
	repository.CompanyRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		RequestRepository:      NewRequestRepository(db),
		BidRepository:          NewBidRepository(db),
		EquipmentRepository:    NewEquipmentRepository(db),
		PartnershipRepository:  NewPartnershipRepository(db),
		UserRepository:         NewUserRepository(db),
		CompanyRepository:      NewCompanyRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
