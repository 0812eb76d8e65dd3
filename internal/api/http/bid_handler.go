package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/service"
)

// BidHandler exposes bid submission over HTTP
type BidHandler struct {
	bidSvc service.BidService
}

func NewBidHandler(bidSvc service.BidService) *BidHandler {
	return &BidHandler{bidSvc: bidSvc}
}

func (h *BidHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in service.SubmitBidInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	bid, err := h.bidSvc.SubmitBid(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bid)
}
