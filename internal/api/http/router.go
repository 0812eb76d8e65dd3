package http

import (
	"equipbid-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all HTTP endpoints
func NewRouter(
	requestSvc service.RequestService,
	bidSvc service.BidService,
	eligibilitySvc service.EligibilityService,
	noteSvc service.NotificationService,
) *mux.Router {
	requestHandler := NewRequestHandler(requestSvc)
	bidHandler := NewBidHandler(bidSvc)
	equipmentHandler := NewEquipmentHandler(eligibilitySvc)
	notificationHandler := NewNotificationHandler(noteSvc)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/requests", requestHandler.Create).Methods("POST")
	api.HandleFunc("/requests", requestHandler.List).Methods("GET")
	api.HandleFunc("/requests/{id}", requestHandler.Get).Methods("GET")
	api.HandleFunc("/requests/{id}/results", requestHandler.Results).Methods("GET")
	api.HandleFunc("/requests/{id}/bids", requestHandler.Bids).Methods("GET")

	api.HandleFunc("/bids", bidHandler.Submit).Methods("POST")

	api.HandleFunc("/notifications", notificationHandler.List).Methods("GET")
	api.HandleFunc("/notifications/{id}/read", notificationHandler.MarkAsRead).Methods("POST")

	api.HandleFunc("/equipment/subtypes", equipmentHandler.SubtypeSummary).Methods("GET")

	return router
}
