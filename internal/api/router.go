package api

import (
	"database/sql"
	"net/http"

	"github.com/Lucas1201-cloud/New-Vinted/internal/alerts"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db}
	photosHandler := &PhotosHandler{DB: db}
	bulkHandler := &BulkHandler{DB: db}
	notificationsHandler := &NotificationsHandler{DB: db}
	targetsHandler := &TargetsHandler{DB: db}
	dashboardHandler := &DashboardHandler{DB: db}
	tasksHandler := &TasksHandler{Engine: alerts.NewEngine(db)}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Items. The literal import/export segments take precedence over {id}.
	mux.Handle("POST /api/items/import", authMW(http.HandlerFunc(bulkHandler.Import)))
	mux.Handle("GET /api/items/export", authMW(http.HandlerFunc(bulkHandler.Export)))
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))

	// Photos.
	mux.Handle("POST /api/items/{id}/photos", authMW(http.HandlerFunc(photosHandler.Upload)))
	mux.Handle("PUT /api/items/{id}/photos/reorder", authMW(http.HandlerFunc(photosHandler.Reorder)))
	mux.Handle("GET /api/items/{id}/photos/{index}", authMW(http.HandlerFunc(photosHandler.Serve)))
	mux.Handle("DELETE /api/items/{id}/photos/{index}", authMW(http.HandlerFunc(photosHandler.Remove)))
	mux.Handle("PUT /api/items/{id}/photos/{index}/main", authMW(http.HandlerFunc(photosHandler.SetMain)))

	// Notifications.
	mux.Handle("GET /api/notifications", authMW(http.HandlerFunc(notificationsHandler.List)))
	mux.Handle("PUT /api/notifications/{id}/read", authMW(http.HandlerFunc(notificationsHandler.MarkRead)))

	// ROI target.
	mux.Handle("GET /api/roi-target", authMW(http.HandlerFunc(targetsHandler.Get)))
	mux.Handle("PUT /api/roi-target", authMW(http.HandlerFunc(targetsHandler.Set)))

	// Dashboard and analytics.
	mux.Handle("GET /api/dashboard/stats", authMW(http.HandlerFunc(dashboardHandler.Stats)))
	mux.Handle("GET /api/analytics/performance/{id}", authMW(http.HandlerFunc(dashboardHandler.Performance)))
	mux.Handle("GET /api/analytics/trends", authMW(http.HandlerFunc(dashboardHandler.Trends)))

	// On-demand alert sweeps.
	mux.Handle("POST /api/tasks/check-renewals", authMW(http.HandlerFunc(tasksHandler.CheckRenewals)))
	mux.Handle("POST /api/tasks/check-roi-alerts", authMW(http.HandlerFunc(tasksHandler.CheckROIAlerts)))

	return mux
}
