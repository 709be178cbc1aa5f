package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"converterservice/internal/api"
	"converterservice/internal/api/middleware"
	"converterservice/internal/service"
)

func (app *App) initHTTP(converter service.ConverterInterface) {
	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           app.router(converter),
		ReadHeaderTimeout: 5 * time.Second,
		// Outbound provider calls may take up to their own timeout.
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func (app *App) router(converter service.ConverterInterface) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/", api.HandleIndex(converter))
	r.Post("/api/convert", api.HandleConvert(converter))
	r.Get("/api/rates/{currency}", api.HandleRates(converter))
	r.Get("/api/currencies", api.HandleCurrencies(converter))
	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(app.rdb))

	if app.cfg.Server.ServeMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}
	return r
}
