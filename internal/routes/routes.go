package routes

import (
	"net/http"

	"github.com/focusquest/focusquest/internal/app"
	"github.com/focusquest/focusquest/internal/handler"
	"github.com/focusquest/focusquest/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.Engine, app.NotifyService)
	quest := handler.NewQuestHandler(app.Engine, app.NotifyService)
	store := handler.NewStoreHandler(app.Engine)
	sweep := handler.NewSweepHandler(app.Engine, app.NotifyService)
	stats := handler.NewStatsHandler(app.Engine)
	help := handler.NewHelpHandler(app.HelpService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	// Help content
	mux.HandleFunc("GET /api/help", help.List)
	mux.HandleFunc("GET /api/help/{page}", help.Page)

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	// Quests
	mux.HandleFunc("GET /api/quests", middleware.RequireAuth(quest.List))
	mux.HandleFunc("POST /api/quests", middleware.RequireAuth(quest.Create))
	mux.HandleFunc("PATCH /api/quests/{id}", middleware.RequireAuth(quest.Edit))
	mux.HandleFunc("DELETE /api/quests/{id}", middleware.RequireAuth(quest.Delete))
	mux.HandleFunc("POST /api/quests/{id}/check-in", middleware.RequireAuth(quest.CheckIn))
	mux.HandleFunc("POST /api/quests/{id}/fail", middleware.RequireAuth(quest.Fail))

	// Store
	mux.HandleFunc("GET /api/store", middleware.RequireAuth(store.Catalog))
	mux.HandleFunc("POST /api/store/purchase", middleware.RequireAuth(store.Purchase))
	mux.HandleFunc("GET /api/inventory", middleware.RequireAuth(store.Inventory))

	// Sweeps & damage reports
	mux.HandleFunc("POST /api/sweep", middleware.RequireAuth(sweep.Run))
	mux.HandleFunc("GET /api/damage-report", middleware.RequireAuth(sweep.DamageReport))
	mux.HandleFunc("DELETE /api/damage-report", middleware.RequireAuth(sweep.AcknowledgeDamageReport))
	mux.HandleFunc("POST /api/panic", middleware.RequireAuth(sweep.TogglePanic))

	// Stats & focus time
	mux.HandleFunc("GET /api/stats", middleware.RequireAuth(stats.Stats))
	mux.HandleFunc("POST /api/focus", middleware.RequireAuth(stats.AddFocusTime))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
	)

	return handler
}
