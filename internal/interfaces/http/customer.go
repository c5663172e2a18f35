package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bahikhata/internal/domain/business"
	"bahikhata/internal/domain/customer"
	"bahikhata/internal/domain/ledger"
)

type CustomerHandler struct {
	customerSvc *customer.Service
	ledgerSvc   *ledger.Service
	businessSvc *business.Service
}

func NewCustomerHandler(customerSvc *customer.Service, ledgerSvc *ledger.Service, businessSvc *business.Service) *CustomerHandler {
	return &CustomerHandler{
		customerSvc: customerSvc,
		ledgerSvc:   ledgerSvc,
		businessSvc: businessSvc,
	}
}

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// HandleCustomers routes requests to the appropriate handler based on method
func (h *CustomerHandler) HandleCustomers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListCustomers(w, r)
	case http.MethodPost:
		h.handleCreateCustomer(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleListCustomers returns the active business's customers with balances
func (h *CustomerHandler) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	b, ok := h.activeBusiness(w, r)
	if !ok {
		return
	}

	customers, err := h.customerSvc.ListWithBalances(r.Context(), b.ID)
	if err != nil {
		log.Printf("Error listing customers for business %s: %v", b.ID, err)
		http.Error(w, "Failed to list customers", http.StatusInternalServerError)
		return
	}
	if customers == nil {
		customers = []*customer.CustomerWithBalance{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customers)
}

func (h *CustomerHandler) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	b, ok := h.activeBusiness(w, r)
	if !ok {
		return
	}

	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.customerSvc.Create(r.Context(), customer.CreateParams{
		BusinessID: b.ID,
		Name:       req.Name,
		Phone:      req.Phone,
	})
	if errors.Is(err, customer.ErrNameRequired) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("Error creating customer for business %s: %v", b.ID, err)
		http.Error(w, "Failed to create customer", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// HandleCustomerStatement returns one customer's entries and totals
func (h *CustomerHandler) HandleCustomerStatement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	b, ok := h.activeBusiness(w, r)
	if !ok {
		return
	}

	customerID := r.PathValue("id")
	c, err := h.customerSvc.Get(r.Context(), customerID, b.ID)
	switch {
	case errors.Is(err, customer.ErrCustomerNotFound):
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	case errors.Is(err, customer.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	case err != nil:
		log.Printf("Error getting customer %s: %v", customerID, err)
		http.Error(w, "Failed to get customer", http.StatusInternalServerError)
		return
	}

	statement, err := h.ledgerSvc.Statement(r.Context(), b.ID, c.ID)
	if err != nil {
		log.Printf("Error building statement for customer %s: %v", c.ID, err)
		http.Error(w, "Failed to build statement", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statement)
}

func (h *CustomerHandler) activeBusiness(w http.ResponseWriter, r *http.Request) (*business.Business, bool) {
	return resolveActiveBusiness(w, r, h.businessSvc)
}
