package chi

import (
	"net/http"

	"github.com/aatuh/ulid-toolkit/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ChiRouter wraps chi.Router to implement our interface.
type ChiRouter struct {
	*chi.Mux
}

// New creates a new chi router that implements ports.HTTPRouter.
func New() ports.HTTPRouter {
	return &ChiRouter{Mux: chi.NewRouter()}
}

// Middleware provides common middleware functions.
type Middleware struct{}

// NewMiddleware creates a new middleware instance that implements ports.HTTPMiddleware.
func NewMiddleware() ports.HTTPMiddleware {
	return &Middleware{}
}

// RequestID returns the request ID middleware.
func (m *Middleware) RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID
}

// RealIP returns the real IP middleware.
func (m *Middleware) RealIP() func(http.Handler) http.Handler {
	return middleware.RealIP
}

// Recoverer returns the recoverer middleware.
func (m *Middleware) Recoverer() func(http.Handler) http.Handler {
	return middleware.Recoverer
}
