package jobs

import (
	"context"
	"time"

	"equipbid-backend/internal/logger"
)

// CloseExpiredAuctions sweeps past-deadline active requests and routes each
// through the same idempotent close operation the read path uses. Running it
// concurrently with reads is safe: whoever loses the conditional transition
// does nothing. The sweep only guarantees auctions close even when nobody is
// looking at them.
func (jr *JobRunner) CloseExpiredAuctions() {
	jr.runWithRecovery("CloseExpiredAuctions", func() {
		ctx := context.Background()

		ids, err := jr.store.RequestRepository.ListExpiredActive(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list expired auctions", "error", err)
			return
		}

		closed := 0
		for _, id := range ids {
			didClose, err := jr.services.Request.CloseIfExpired(ctx, id)
			if err != nil {
				logger.Error("Failed to close expired auction", "request_id", id, "error", err)
				continue
			}
			if didClose {
				closed++
				logger.Debug("Closed expired auction", "request_id", id)
			}
		}

		logger.Info("Closed expired auctions", "candidates", len(ids), "closed", closed)
	})
}
