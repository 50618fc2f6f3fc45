package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterDeps bundles the handlers the funnel API mounts.
type RouterDeps struct {
	Catalog  *CatalogHandler
	Funnel   *FunnelHandler
	Analysis *AnalysisHandler
	Chat     *ChatHandler
	Payment  *PaymentHandler

	RequestTimeout time.Duration
}

// NewRouter builds the chi router with the full middleware stack and the
// /api/v1 surface.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(deps.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", deps.Catalog.List)
			r.Get("/{id}", deps.Catalog.Get)
		})

		r.Route("/funnel", func(r chi.Router) {
			r.Get("/state", deps.Funnel.GetState)
			r.Get("/waits", deps.Funnel.Waits)
			r.Get("/steps/{step}", deps.Funnel.GuardStep)
			r.Put("/selection", deps.Funnel.PutSelection)
			r.Put("/address", deps.Funnel.PutAddress)
			r.Put("/cpf", deps.Funnel.PutCPF)
			r.Put("/payment-method", deps.Funnel.PutPaymentMethod)
			r.Put("/phone", deps.Funnel.PutPhone)
		})

		r.Post("/analysis", deps.Analysis.Run)
		r.Get("/chat/handoff", deps.Chat.Handoff)

		r.Route("/payment", func(r chi.Router) {
			r.Post("/charge", deps.Payment.CreateCharge)
			r.Get("/status", deps.Payment.Status)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not_found", "route not found")
	})

	return r
}
