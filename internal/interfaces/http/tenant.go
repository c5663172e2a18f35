package http

import (
	"log"
	"net/http"

	"bahikhata/internal/domain/business"
	"bahikhata/internal/shared/middleware"
)

// resolveActiveBusiness resolves the caller's active business and writes the
// error response itself when there is none. Every tenant-scoped handler goes
// through this so no query can run without a selected business.
func resolveActiveBusiness(w http.ResponseWriter, r *http.Request, businessSvc *business.Service) (*business.Business, bool) {
	ownerID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	b, ok, err := businessSvc.ActiveOrDefault(r.Context(), ownerID)
	if err != nil {
		log.Printf("Error resolving active business for owner %d: %v", ownerID, err)
		http.Error(w, "Failed to resolve active business", http.StatusInternalServerError)
		return nil, false
	}
	if !ok {
		http.Error(w, "No business selected", http.StatusBadRequest)
		return nil, false
	}
	return b, true
}
