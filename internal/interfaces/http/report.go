package http

import (
	"fmt"
	"log"
	"net/http"

	"bahikhata/internal/domain/business"
	"bahikhata/internal/domain/ledger"
)

type ReportHandler struct {
	ledgerSvc   *ledger.Service
	businessSvc *business.Service
}

func NewReportHandler(ledgerSvc *ledger.Service, businessSvc *business.Service) *ReportHandler {
	return &ReportHandler{ledgerSvc: ledgerSvc, businessSvc: businessSvc}
}

// HandleExport streams the active business's period-filtered transactions
// as a CSV download.
func (h *ReportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	b, ok := resolveActiveBusiness(w, r, h.businessSvc)
	if !ok {
		return
	}

	period, err := ledger.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	csv, err := h.ledgerSvc.ExportReport(r.Context(), b.ID, period)
	if err != nil {
		log.Printf("Error exporting report for business %s: %v", b.ID, err)
		http.Error(w, "Failed to export report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ledger.ExportFilename(b.Name)))
	w.Write(csv)
}
