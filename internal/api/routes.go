package api

import (
	"context"
	"net/http"
	"time"

	"github.com/JaimeStill/scholar/internal/authors"
	"github.com/JaimeStill/scholar/internal/publications"
	"github.com/JaimeStill/scholar/internal/universities"
	"github.com/JaimeStill/scholar/internal/users"
	"github.com/JaimeStill/scholar/pkg/handlers"
	"github.com/JaimeStill/scholar/pkg/routes"
)

const probeTimeout = 3 * time.Second

func registerRoutes(r routes.System, basePath string, runtime *Runtime, domain *Domain) {
	authorsHandler := authors.NewHandler(domain.Authors, runtime.Logger, runtime.Pagination, runtime.Limits)
	universitiesHandler := universities.NewHandler(domain.Universities, runtime.Logger, runtime.Pagination, runtime.Limits)
	publicationsHandler := publications.NewHandler(domain.Publications, runtime.Logger, runtime.Pagination, runtime.Limits)
	usersHandler := users.NewHandler(domain.Users, runtime.Logger, runtime.Pagination, runtime.Limits)

	r.RegisterGroup(routes.Group{
		Prefix:      basePath,
		Description: "Scholar administration API",
		Children: []routes.Group{
			authorsHandler.Routes(),
			universitiesHandler.Routes(),
			publicationsHandler.Routes(),
			usersHandler.Routes(),
		},
	})

	r.RegisterRoute(routes.Route{Method: "GET", Pattern: "/healthz", Handler: handleHealthCheck})
	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, req *http.Request) {
			handleReadinessCheck(w, req, runtime)
		},
	})
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReadinessCheck reports 503 until startup completes, then runs every store probe.
func handleReadinessCheck(w http.ResponseWriter, r *http.Request, runtime *Runtime) {
	if !runtime.Lifecycle.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(runtime.Probes))
	for _, p := range runtime.Probes {
		if err := p.Check(ctx); err != nil {
			runtime.Logger.Warn("readiness probe failed", "probe", p.Name, "error", err)
			checks[p.Name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[p.Name] = "ok"
	}

	handlers.RespondJSON(w, status, checks)
}
