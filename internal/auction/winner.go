package auction

import (
	"equipbid-backend/internal/domain"
)

// ResolveWinner picks the winning bid from the pending bids of a request:
// lowest total price wins, ties go to the earliest created bid, and equal
// timestamps fall back to the lowest bid id so the result is total.
// Returns nil for an empty set. The input order does not matter.
func ResolveWinner(bids []domain.Bid) *domain.Bid {
	var winner *domain.Bid
	for i := range bids {
		b := &bids[i]
		if winner == nil || beats(b, winner) {
			winner = b
		}
	}
	if winner == nil {
		return nil
	}
	w := *winner
	return &w
}

func beats(a, b *domain.Bid) bool {
	if a.TotalPriceCents != b.TotalPriceCents {
		return a.TotalPriceCents < b.TotalPriceCents
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
