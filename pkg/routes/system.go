package routes

import (
	"log/slog"
	"net/http"
)

// System collects routes and groups and builds the multiplexer serving them.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)
	Build() http.Handler
	Groups() []Group
	Routes() []Route
}

type system struct {
	routes []Route
	groups []Group
	logger *slog.Logger
}

// New creates a route system.
func New(logger *slog.Logger) System {
	return &system{logger: logger.With("system", "routes")}
}

func (s *system) Groups() []Group { return s.groups }
func (s *system) Routes() []Route { return s.routes }

func (s *system) RegisterRoute(route Route) {
	s.routes = append(s.routes, route)
}

func (s *system) RegisterGroup(group Group) {
	s.groups = append(s.groups, group)
}

// Build registers every route as "METHOD /prefix/pattern" on a new ServeMux.
func (s *system) Build() http.Handler {
	mux := http.NewServeMux()

	for _, route := range s.routes {
		s.handle(mux, route.Method, route.Pattern, route.Handler)
	}

	for _, group := range s.groups {
		s.registerGroup(mux, "", group)
	}

	return mux
}

func (s *system) registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		s.handle(mux, route.Method, prefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		s.registerGroup(mux, prefix, child)
	}
}

func (s *system) handle(mux *http.ServeMux, method, pattern string, h http.HandlerFunc) {
	s.logger.Debug("route registered", "method", method, "pattern", pattern)
	mux.HandleFunc(method+" "+pattern, h)
}
