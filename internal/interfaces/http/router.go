package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Cartera-api/internal/application/auth"
	"github.com/jhoicas/Cartera-api/internal/application/ledger"
	"github.com/jhoicas/Cartera-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger    *ledger.Service
	Reports   *report.UseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
	Gatherer  prometheus.Gatherer // nil = sin /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	customerHandler := NewCustomerHandler(deps.Ledger)
	transactionHandler := NewTransactionHandler(deps.Ledger)
	reminderHandler := NewReminderHandler(deps.Ledger)
	summaryHandler := NewSummaryHandler(deps.Ledger, deps.Reports)

	customers := protected.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Post("/:id/transactions", transactionHandler.Create)
	customers.Post("/:id/reminder", reminderHandler.Draft)
	customers.Get("/:id/statement.pdf", summaryHandler.Statement)

	summary := protected.Group("/summary")
	summary.Get("/", summaryHandler.Get)
	summary.Get("/pdf", summaryHandler.PDF)
}
