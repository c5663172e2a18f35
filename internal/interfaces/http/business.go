package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bahikhata/internal/domain/business"
	"bahikhata/internal/shared/middleware"
)

type BusinessHandler struct {
	businessSvc *business.Service
}

func NewBusinessHandler(businessSvc *business.Service) *BusinessHandler {
	return &BusinessHandler{businessSvc: businessSvc}
}

type CreateBusinessRequest struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type BusinessListResponse struct {
	Businesses       []*business.Business `json:"businesses"`
	ActiveBusinessID string               `json:"activeBusinessId,omitempty"`
}

type SetActiveRequest struct {
	BusinessID string `json:"businessId"`
}

// HandleBusinesses routes requests to the appropriate handler based on method
func (h *BusinessHandler) HandleBusinesses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListBusinesses(w, r)
	case http.MethodPost:
		h.handleCreateBusiness(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleActiveBusiness reads or switches the owner's active business
func (h *BusinessHandler) HandleActiveBusiness(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetActive(w, r)
	case http.MethodPut:
		h.handleSetActive(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *BusinessHandler) handleListBusinesses(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	businesses, err := h.businessSvc.ListByOwner(r.Context(), ownerID)
	if err != nil {
		log.Printf("Error listing businesses for owner %d: %v", ownerID, err)
		http.Error(w, "Failed to list businesses", http.StatusInternalServerError)
		return
	}
	if businesses == nil {
		businesses = []*business.Business{}
	}

	resp := BusinessListResponse{Businesses: businesses}
	if active, ok := h.businessSvc.Active(ownerID); ok {
		resp.ActiveBusinessID = active.ID
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *BusinessHandler) handleCreateBusiness(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.businessSvc.Create(r.Context(), business.CreateParams{
		OwnerID: ownerID,
		Name:    req.Name,
		Type:    req.Type,
	})
	if errors.Is(err, business.ErrNameRequired) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("Error creating business for owner %d: %v", ownerID, err)
		http.Error(w, "Failed to create business", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(b)
}

func (h *BusinessHandler) handleGetActive(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	b, ok, err := h.businessSvc.ActiveOrDefault(r.Context(), ownerID)
	if err != nil {
		log.Printf("Error resolving active business for owner %d: %v", ownerID, err)
		http.Error(w, "Failed to resolve active business", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "No business found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(b)
}

func (h *BusinessHandler) handleSetActive(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.BusinessID == "" {
		http.Error(w, "businessId is required", http.StatusBadRequest)
		return
	}

	b, err := h.businessSvc.SetActive(r.Context(), req.BusinessID, ownerID)
	switch {
	case errors.Is(err, business.ErrBusinessNotFound):
		http.Error(w, "Business not found", http.StatusNotFound)
		return
	case errors.Is(err, business.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	case err != nil:
		log.Printf("Error setting active business for owner %d: %v", ownerID, err)
		http.Error(w, "Failed to set active business", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(b)
}
