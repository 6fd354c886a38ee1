package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sqlx.DB, jwtSecret string, metricsEnabled bool) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	basesHandler := &BasesHandler{DB: db}
	purchasesHandler := &PurchasesHandler{DB: db}
	transfersHandler := &TransfersHandler{DB: db}
	assignmentsHandler := &AssignmentsHandler{DB: db}
	expendituresHandler := &ExpendituresHandler{DB: db}
	commanderHandler := &CommanderHandler{DB: db}
	dashboardHandler := &DashboardHandler{DB: db}
	reportsHandler := &ReportsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret)
	writers := RequireRole(model.RoleAdmin, model.RoleLogisticsOfficer)
	readers := RequireRole(model.RoleAdmin, model.RoleLogisticsOfficer, model.RoleBaseCommander)
	commanderOnly := RequireRole(model.RoleBaseCommander)

	// Public: signup and login.
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Bases (reference data, any authenticated user).
	mux.Handle("GET /api/bases", authMW(http.HandlerFunc(basesHandler.List)))
	mux.Handle("GET /api/bases/dropdown", authMW(http.HandlerFunc(basesHandler.Dropdown)))

	// Purchases: write (admin, logistics), read (all roles, scoped).
	mux.Handle("POST /api/purchases", authMW(writers(http.HandlerFunc(purchasesHandler.Create))))
	mux.Handle("GET /api/purchases", authMW(readers(http.HandlerFunc(purchasesHandler.List))))

	// Transfers: write (admin, logistics), read (all roles, scoped).
	mux.Handle("POST /api/transfers", authMW(writers(http.HandlerFunc(transfersHandler.Create))))
	mux.Handle("GET /api/transfers", authMW(readers(http.HandlerFunc(transfersHandler.List))))

	// Assignments: write (admin, logistics), read (all roles, unscoped).
	mux.Handle("POST /api/assignments", authMW(writers(http.HandlerFunc(assignmentsHandler.Create))))
	mux.Handle("GET /api/assignments", authMW(readers(http.HandlerFunc(assignmentsHandler.List))))

	// Expenditures (any authenticated user; the one editable record).
	mux.Handle("GET /api/expenditures", authMW(http.HandlerFunc(expendituresHandler.List)))
	mux.Handle("POST /api/expenditures", authMW(http.HandlerFunc(expendituresHandler.Create)))
	mux.Handle("PUT /api/expenditures/{id}", authMW(http.HandlerFunc(expendituresHandler.Update)))

	// Base commander asset views.
	mux.Handle("GET /api/base-commander/assets", authMW(commanderOnly(http.HandlerFunc(commanderHandler.Assets))))
	mux.Handle("GET /api/base-commander/assets/{baseId}", authMW(commanderOnly(http.HandlerFunc(commanderHandler.AssetsByBase))))

	// Dashboard.
	mux.Handle("GET /api/dashboard/stats", authMW(RequireRole(model.RoleAdmin, model.RoleBaseCommander)(http.HandlerFunc(dashboardHandler.Stats))))
	mux.Handle("GET /api/dashboard/logistics", authMW(RequireRole(model.RoleLogisticsOfficer)(http.HandlerFunc(dashboardHandler.Logistics))))
	mux.Handle("GET /api/dashboard/me", authMW(http.HandlerFunc(dashboardHandler.Me)))

	// Reports.
	mux.Handle("GET /api/reports/purchases.xlsx", authMW(writers(http.HandlerFunc(reportsHandler.PurchasesXLSX))))

	// Operational endpoints.
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if metricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	var handler http.Handler = mux
	handler = MetricsMiddleware(mux)(handler)
	handler = CORSMiddleware(handler)
	handler = LoggingMiddleware(handler)
	return handler
}
