package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/logger"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// writeError maps the domain error taxonomy to HTTP responses. Both
// eligibility failures collapse to one opaque body so a caller cannot tell
// whether the partnership or the equipment check rejected the bid.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation_error", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: "resource not found"})
	case errors.Is(err, domain.ErrAuctionClosed):
		writeJSON(w, http.StatusConflict, errorBody{Error: "auction_closed", Message: "the auction is no longer accepting bids"})
	case errors.Is(err, domain.ErrDuplicateBid):
		writeJSON(w, http.StatusConflict, errorBody{Error: "duplicate_bid", Message: "a bid for this equipment already exists"})
	case errors.Is(err, domain.ErrIneligibleEquipment), errors.Is(err, domain.ErrNotAuthorized):
		writeJSON(w, http.StatusForbidden, errorBody{Error: "not_eligible", Message: "not eligible to bid on this request"})
	case errors.Is(err, domain.ErrAuctionNotFinished):
		writeJSON(w, http.StatusConflict, errorBody{Error: "auction_not_finished", Message: "the auction has not finished yet, try again later"})
	default:
		logger.Error("Internal error handling request", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal_error", Message: "internal server error"})
	}
}
