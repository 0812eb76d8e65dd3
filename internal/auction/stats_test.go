package auction

import (
	"testing"
	"time"

	"equipbid-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Empty set", func(t *testing.T) {
		stats := Summarize(nil)
		assert.Equal(t, int32(0), stats.TotalBids)
		assert.Equal(t, int32(0), stats.MinPriceCents)
		assert.Equal(t, int32(0), stats.MaxPriceCents)
		assert.Equal(t, float64(0), stats.AvgPriceCents)
	})

	t.Run("Single bid", func(t *testing.T) {
		stats := Summarize([]domain.Bid{bid(1, 200000, base)})
		assert.Equal(t, int32(1), stats.TotalBids)
		assert.Equal(t, int32(200000), stats.MinPriceCents)
		assert.Equal(t, int32(200000), stats.MaxPriceCents)
		assert.Equal(t, float64(200000), stats.AvgPriceCents)
	})

	t.Run("Two bids", func(t *testing.T) {
		stats := Summarize([]domain.Bid{
			bid(1, 200000, base),
			bid(2, 150000, base.Add(time.Hour)),
		})
		assert.Equal(t, int32(2), stats.TotalBids)
		assert.Equal(t, int32(150000), stats.MinPriceCents)
		assert.Equal(t, int32(200000), stats.MaxPriceCents)
		assert.Equal(t, float64(175000), stats.AvgPriceCents)
	})

	t.Run("Average keeps fractional cents", func(t *testing.T) {
		stats := Summarize([]domain.Bid{
			bid(1, 100, base),
			bid(2, 101, base),
		})
		assert.InDelta(t, 100.5, stats.AvgPriceCents, 0.0001)
	})
}
