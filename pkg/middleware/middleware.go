// Package middleware composes http.Handler wrappers.
package middleware

import "net/http"

// System is an ordered middleware stack. The first middleware added is outermost.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []func(http.Handler) http.Handler
}

// New creates an empty middleware stack.
func New() System {
	return &system{}
}

func (s *system) Use(mw func(http.Handler) http.Handler) {
	s.stack = append(s.stack, mw)
}

func (s *system) Apply(handler http.Handler) http.Handler {
	for i := len(s.stack) - 1; i >= 0; i-- {
		handler = s.stack[i](handler)
	}
	return handler
}
