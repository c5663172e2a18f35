package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"bahikhata/internal/domain/business"
	"bahikhata/internal/domain/ledger"
)

type LedgerHandler struct {
	ledgerSvc   *ledger.Service
	businessSvc *business.Service
}

func NewLedgerHandler(ledgerSvc *ledger.Service, businessSvc *business.Service) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc, businessSvc: businessSvc}
}

type RecordEntryRequest struct {
	CustomerID      string          `json:"customerId"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	TransactionDate *time.Time      `json:"transactionDate,omitempty"`
}

// HandleTransactions routes requests to the appropriate handler based on method
func (h *LedgerHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListTransactions(w, r)
	case http.MethodPost:
		h.handleRecordEntry(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleListTransactions returns the active business's period-filtered report
func (h *LedgerHandler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	b, ok := resolveActiveBusiness(w, r, h.businessSvc)
	if !ok {
		return
	}

	period, err := ledger.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.ledgerSvc.Report(r.Context(), b.ID, period)
	if err != nil {
		log.Printf("Error building report for business %s: %v", b.ID, err)
		http.Error(w, "Failed to list transactions", http.StatusInternalServerError)
		return
	}
	if report.Transactions == nil {
		report.Transactions = []*ledger.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (h *LedgerHandler) handleRecordEntry(w http.ResponseWriter, r *http.Request) {
	b, ok := resolveActiveBusiness(w, r, h.businessSvc)
	if !ok {
		return
	}

	var req RecordEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := ledger.CreateParams{
		BusinessID:  b.ID,
		CustomerID:  req.CustomerID,
		Type:        ledger.EntryType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.TransactionDate != nil {
		params.TransactionDate = *req.TransactionDate
	}

	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.ledgerSvc.RecordEntry(r.Context(), params)
	switch {
	case errors.Is(err, ledger.ErrCustomerMismatch):
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	case err != nil:
		log.Printf("Error recording entry for business %s: %v", b.ID, err)
		http.Error(w, "Failed to record transaction", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tx)
}

// HandleDashboard returns the active business's overview aggregates
func (h *LedgerHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	b, ok := resolveActiveBusiness(w, r, h.businessSvc)
	if !ok {
		return
	}

	dashboard, err := h.ledgerSvc.Dashboard(r.Context(), b.ID)
	if err != nil {
		log.Printf("Error building dashboard for business %s: %v", b.ID, err)
		http.Error(w, "Failed to build dashboard", http.StatusInternalServerError)
		return
	}
	if dashboard.Recent == nil {
		dashboard.Recent = []*ledger.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboard)
}
