package domain

import "time"

type BidStatus string

const (
	BidStatusPending  BidStatus = "PENDING"
	BidStatusAccepted BidStatus = "ACCEPTED"
	BidStatusRejected BidStatus = "REJECTED"
)

// Bid is an owner's priced offer of a specific equipment unit against a
// request. Bids are append-only: the only mutation is the status flip
// performed by the winning close transition.
type Bid struct {
	ID              int32     `json:"id"`
	RequestID       int32     `json:"request_id"`
	OwnerID         int32     `json:"owner_id"`
	EquipmentID     int32     `json:"equipment_id"`
	HourlyRateCents int32     `json:"hourly_rate_cents"`
	DailyRateCents  int32     `json:"daily_rate_cents"`
	TotalPriceCents int32     `json:"total_price_cents"`
	Comment         string    `json:"comment"`
	Status          BidStatus `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
