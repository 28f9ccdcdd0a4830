package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/invorya/pos-views/internal/application/stockview"
	infrapdf "github.com/invorya/pos-views/internal/infrastructure/pdf"
	"github.com/invorya/pos-views/internal/infrastructure/posapi"
	infraxlsx "github.com/invorya/pos-views/internal/infrastructure/xlsx"
	httpRouter "github.com/invorya/pos-views/internal/interfaces/http"
	"github.com/invorya/pos-views/pkg/config"
	"github.com/invorya/pos-views/pkg/format"
	"github.com/invorya/pos-views/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("posapi", cfg.POSAPI.BaseURL).
		Msg("iniciando aplicación")

	// Cliente del backend POS: única fuente de datos de las dos vistas.
	posClient := posapi.NewClient(posapi.Config{
		BaseURL: cfg.POSAPI.BaseURL,
		Token:   cfg.POSAPI.Token,
		Timeout: cfg.POSAPI.Timeout,
	}, log)

	fmtr := format.New(cfg.View.Locale)

	// Vista de factura imprimible
	invoicePrinter := infrapdf.NewMarotoInvoicePrinter()
	invoiceHandler := httpRouter.NewInvoiceViewHandler(httpRouter.InvoiceViewDeps{
		Sales:     posClient,
		Printer:   invoicePrinter,
		Formatter: fmtr,
		Log:       log,
		BackURL:   cfg.View.BackURL,
	})

	// Página de stock del taller
	stockExporter := infraxlsx.NewStockExporter()
	stockUC := stockview.New(posClient, stockExporter, log)
	stockHandler := httpRouter.NewStockViewHandler(stockUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Views API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceView: invoiceHandler,
		StockView:   stockHandler,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
