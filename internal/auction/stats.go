package auction

import (
	"equipbid-backend/internal/domain"
)

// Summarize computes count and min/max/avg total price over the bid set that
// exists at closing time. For an empty set only TotalBids is meaningful; the
// price fields stay zero and are omitted from API responses.
func Summarize(bids []domain.Bid) domain.BidStatistics {
	stats := domain.BidStatistics{TotalBids: int32(len(bids))}
	if len(bids) == 0 {
		return stats
	}

	var sum int64
	stats.MinPriceCents = bids[0].TotalPriceCents
	stats.MaxPriceCents = bids[0].TotalPriceCents
	for _, b := range bids {
		if b.TotalPriceCents < stats.MinPriceCents {
			stats.MinPriceCents = b.TotalPriceCents
		}
		if b.TotalPriceCents > stats.MaxPriceCents {
			stats.MaxPriceCents = b.TotalPriceCents
		}
		sum += int64(b.TotalPriceCents)
	}
	stats.AvgPriceCents = float64(sum) / float64(len(bids))
	return stats
}
