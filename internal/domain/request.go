package domain

import "time"

type RequestStatus string

const (
	RequestStatusAuctionActive RequestStatus = "AUCTION_ACTIVE"
	RequestStatusAuctionClosed RequestStatus = "AUCTION_CLOSED"
	RequestStatusCompleted     RequestStatus = "COMPLETED"
	RequestStatusCancelled     RequestStatus = "CANCELLED"
)

// RentalRequest is a manager's posted need for equipment of a given
// type/subtype over a date range. The auction deadline is fixed at creation
// and never recomputed; status and the winning bid reference are mutated only
// by the close transition.
type RentalRequest struct {
	ID               int32         `json:"id"`
	ManagerID        int32         `json:"manager_id"`
	EquipmentType    string        `json:"equipment_type"`
	EquipmentSubtype string        `json:"equipment_subtype"`
	StartDate        string        `json:"start_date"`
	EndDate          string        `json:"end_date"`
	Location         string        `json:"location"`
	Description      string        `json:"description"`
	Status           RequestStatus `json:"status"`
	AuctionDeadline  time.Time     `json:"auction_deadline"`
	WinningBidID     *int32        `json:"winning_bid_id,omitempty"`
	// Aggregates persisted once by the winning close transition.
	TotalBids     *int32   `json:"total_bids,omitempty"`
	MinPriceCents *int32   `json:"min_price_cents,omitempty"`
	MaxPriceCents *int32   `json:"max_price_cents,omitempty"`
	AvgPriceCents *float64 `json:"avg_price_cents,omitempty"`
	CreatedOn     string   `json:"created_on"`
	UpdatedOn     string   `json:"updated_on"`
}

// AuctionResult is what GetResults returns for a closed request.
type AuctionResult struct {
	Request *RentalRequest `json:"request"`
	Winner  *WinnerSummary `json:"winner,omitempty"`
	Stats   BidStatistics  `json:"stats"`
}

// WinnerSummary is the winner detail surfaced to the requesting manager.
type WinnerSummary struct {
	BidID           int32  `json:"bid_id"`
	OwnerName       string `json:"owner_name"`
	OwnerPhone      string `json:"owner_phone"`
	CompanyName     string `json:"company_name"`
	EquipmentName   string `json:"equipment_name"`
	TotalPriceCents int32  `json:"total_price_cents"`
	HourlyRateCents int32  `json:"hourly_rate_cents"`
	DailyRateCents  int32  `json:"daily_rate_cents"`
	Comment         string `json:"comment"`
}

// BidStatistics summarizes the pending bids that existed at closing time.
type BidStatistics struct {
	TotalBids     int32   `json:"total_bids"`
	MinPriceCents int32   `json:"min_price_cents,omitempty"`
	MaxPriceCents int32   `json:"max_price_cents,omitempty"`
	AvgPriceCents float64 `json:"avg_price_cents,omitempty"`
}
