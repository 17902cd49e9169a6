package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/health", h.Health)
	r.Post("/assess", h.Assess)

	r.Post("/users/register", h.RegisterUser)
	r.Get("/users/{id}", h.GetUser)

	r.Get("/consultations/{id}", h.GetConsultation)
	r.Get("/consultations/{id}/report", h.ConsultationReport)

	r.Get("/sessions/{sessionID}/consultations", h.ListSessionConsultations)
	r.Get("/sessions/{sessionID}/context", h.SessionContext)
	r.Delete("/sessions/{sessionID}", h.ForgetSession)
}

// NewRouter mounts the API under /api with request ids, access logs,
// panic recovery and permissive CORS.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.Route("/api", func(r chi.Router) {
		RegisterRoutes(r, h)
	})
	return r
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
