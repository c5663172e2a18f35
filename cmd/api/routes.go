package main

import (
	"log"
	"net/http"

	httphandlers "bahikhata/internal/interfaces/http"
	"bahikhata/internal/shared/config"
	"bahikhata/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Public auth routes
	mux.HandleFunc("/api/auth/register", deps.AuthHandler.HandleRegister)
	mux.HandleFunc("/api/auth/login", deps.AuthHandler.HandleLogin)
	mux.HandleFunc("/api/auth/logout", deps.AuthHandler.HandleLogout)

	// Protected routes
	authMiddleware := middleware.Auth(deps.JWT)

	mux.Handle("/api/businesses/", authMiddleware(http.HandlerFunc(deps.BusinessHandler.HandleBusinesses)))
	mux.Handle("/api/businesses/active", authMiddleware(http.HandlerFunc(deps.BusinessHandler.HandleActiveBusiness)))
	mux.Handle("/api/customers/", authMiddleware(http.HandlerFunc(deps.CustomerHandler.HandleCustomers)))
	mux.Handle("/api/customers/{id}/transactions", authMiddleware(http.HandlerFunc(deps.CustomerHandler.HandleCustomerStatement)))
	mux.Handle("/api/transactions/", authMiddleware(http.HandlerFunc(deps.LedgerHandler.HandleTransactions)))
	mux.Handle("/api/dashboard/", authMiddleware(http.HandlerFunc(deps.LedgerHandler.HandleDashboard)))
	mux.Handle("/api/reports/export", authMiddleware(http.HandlerFunc(deps.ReportHandler.HandleExport)))

	// Apply global middleware
	handler := middleware.Logging(middleware.Telemetry(middleware.Tracing(middleware.CORS(cfg.Server.AllowedHosts)(mux))))

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(middleware.SecureCookies(handler))
		log.Println("TLS security middleware enabled (HSTS + SecureCookies)")
	}

	return handler
}
