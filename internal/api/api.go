// Package api assembles the domain systems, their HTTP handlers and the
// middleware stack into the service's root handler.
package api

import (
	"net/http"

	"github.com/JaimeStill/scholar/pkg/middleware"
	"github.com/JaimeStill/scholar/pkg/routes"
)

// NewHandler builds the domain from runtime and serves it under basePath.
// Health endpoints are served at the root.
func NewHandler(runtime *Runtime, basePath string) http.Handler {
	domain := NewDomain(runtime)

	r := routes.New(runtime.Logger)
	registerRoutes(r, basePath, runtime, domain)

	mw := middleware.New()
	mw.Use(middleware.TrimSlash())
	mw.Use(middleware.Logger(runtime.Logger))

	return mw.Apply(r.Build())
}
