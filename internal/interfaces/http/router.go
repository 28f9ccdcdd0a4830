package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceView *InvoiceViewHandler
	StockView   *StockViewHandler
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Métricas (público, fuera del grupo autenticado)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Vistas protegidas (requieren Bearer Token del backend POS)
	api := app.Group("/api",
		AuthMiddleware(deps.JWTSecret),
		RequireRole("admin", "manager", "employee"),
	)

	views := api.Group("/views")
	views.Get("/invoice/:id", deps.InvoiceView.GetView)
	views.Get("/invoice/:id/print", deps.InvoiceView.Print)
	views.Get("/stock", deps.StockView.GetPage)
	views.Get("/stock/export", deps.StockView.Export)
}
