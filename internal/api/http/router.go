package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/firmdesk/practice-service/internal/api/http/handlers"
	"github.com/firmdesk/practice-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Approvals      *handlers.ApprovalsHandler
	Clients        *handlers.ClientsHandler
	Cases          *handlers.CasesHandler
	Documents      *handlers.DocumentsHandler
	Billing        *handlers.BillingHandler
	Calendar       *handlers.CalendarHandler
	TimeTracking   *handlers.TimeTrackingHandler
	Settings       *handlers.SettingsHandler
	Audit          *handlers.AuditHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/pending-flag", cfg.Auth.PendingFlag)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/accounts/pending", cfg.Approvals.ListPending)
	admin.Post("/accounts/:id/approve", cfg.Approvals.Approve)
	admin.Post("/accounts/:id/reject", cfg.Approvals.Reject)
	admin.Get("/audit", cfg.Audit.List)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())

	clients := protected.Group("/clients")
	clients.Post("", cfg.Clients.Create)
	clients.Get("", cfg.Clients.List)
	clients.Get("/:id", cfg.Clients.Get)
	clients.Put("/:id", cfg.Clients.Update)
	clients.Delete("/:id", cfg.Clients.Delete)

	cases := protected.Group("/cases")
	cases.Post("", cfg.Cases.Create)
	cases.Get("", cfg.Cases.List)
	cases.Get("/:id", cfg.Cases.Get)
	cases.Put("/:id", cfg.Cases.Update)
	cases.Delete("/:id", cfg.Cases.Delete)

	documents := protected.Group("/documents")
	documents.Post("", cfg.Documents.Create)
	documents.Get("", cfg.Documents.List)
	documents.Get("/:id", cfg.Documents.Get)
	documents.Put("/:id", cfg.Documents.Update)
	documents.Delete("/:id", cfg.Documents.Delete)
	documents.Post("/:id/verify", cfg.Documents.Verify)

	invoices := protected.Group("/invoices")
	invoices.Post("", cfg.Billing.Create)
	invoices.Get("", cfg.Billing.List)
	invoices.Get("/:id", cfg.Billing.Get)
	invoices.Post("/:id/send", cfg.Billing.Send)
	invoices.Post("/:id/pay", cfg.Billing.MarkPaid)
	invoices.Delete("/:id", cfg.Billing.Delete)

	calendar := protected.Group("/calendar/events")
	calendar.Post("", cfg.Calendar.Create)
	calendar.Get("", cfg.Calendar.List)
	calendar.Get("/:id", cfg.Calendar.Get)
	calendar.Put("/:id", cfg.Calendar.Update)
	calendar.Delete("/:id", cfg.Calendar.Delete)

	tracking := protected.Group("/time")
	tracking.Post("/entries", cfg.TimeTracking.CreateEntry)
	tracking.Get("/entries", cfg.TimeTracking.ListEntries)
	tracking.Put("/entries/:id", cfg.TimeTracking.UpdateEntry)
	tracking.Delete("/entries/:id", cfg.TimeTracking.DeleteEntry)
	tracking.Post("/timesheets/submit", cfg.TimeTracking.SubmitTimesheet)
	tracking.Get("/timesheets", cfg.TimeTracking.GetWeeklyTimesheet)
	tracking.Post("/timesheets/:id/approve", cfg.TimeTracking.ApproveTimesheet)
	tracking.Post("/timesheets/:id/reject", cfg.TimeTracking.RejectTimesheet)

	settings := protected.Group("/settings")
	settings.Get("", cfg.Settings.Get)
	settings.Put("", cfg.Settings.Update)
	settings.Get("/password-policy", cfg.Settings.GetPasswordPolicy)
	settings.Put("/password-policy", cfg.Settings.UpdatePasswordPolicy)
}
