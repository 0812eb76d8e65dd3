package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"equipbid-backend/internal/domain"
	"equipbid-backend/internal/repository"
	"equipbid-backend/internal/service"

	"github.com/gorilla/mux"
)

// RequestHandler exposes the request lifecycle over HTTP
type RequestHandler struct {
	requestSvc service.RequestService
}

func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

type createRequestResponse struct {
	Request        *domain.RentalRequest `json:"request"`
	EligibleOwners int32                 `json:"eligible_owners"`
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateRequestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	req, eligibleOwners, err := h.requestSvc.CreateRequest(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createRequestResponse{Request: req, EligibleOwners: eligibleOwners})
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := h.requestSvc.GetRequest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.RequestFilter{
		Status: domain.RequestStatus(r.URL.Query().Get("status")),
	}
	if v := r.URL.Query().Get("manager_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			writeError(w, fmt.Errorf("%w: invalid manager_id", domain.ErrValidation))
			return
		}
		filter.ManagerID = int32(id)
	}
	if v := r.URL.Query().Get("owner_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			writeError(w, fmt.Errorf("%w: invalid owner_id", domain.ErrValidation))
			return
		}
		filter.OwnerID = int32(id)
	}

	requests, err := h.requestSvc.ListRequests(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"requests": requests})
}

func (h *RequestHandler) Results(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := h.requestSvc.GetResults(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *RequestHandler) Bids(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	bids, err := h.requestSvc.ListBids(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"bids": bids})
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", domain.ErrValidation, name)
	}
	return int32(id), nil
}
