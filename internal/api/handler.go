// Package api exposes the assessment service over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nens2012/life-aid-nexus/internal/consultation"
	"github.com/nens2012/life-aid-nexus/internal/handlers"
	"github.com/nens2012/life-aid-nexus/internal/memory"
	"github.com/nens2012/life-aid-nexus/internal/models"
	"github.com/nens2012/life-aid-nexus/internal/profile"
	"github.com/nens2012/life-aid-nexus/internal/report"
)

const maxBodyBytes = 64 << 10

type Handler struct {
	intents       *handlers.IntentHandler
	sessions      *memory.Manager
	profiles      *profile.Service
	consultations consultation.Repository
	reports       *report.Renderer
	listLimit     int
	timeout       time.Duration
	logger        *zap.Logger
}

type Options struct {
	Intents       *handlers.IntentHandler
	Sessions      *memory.Manager
	Profiles      *profile.Service
	Consultations consultation.Repository
	Reports       *report.Renderer
	ListLimit     int
	Timeout       time.Duration
	Logger        *zap.Logger
}

func NewHandler(o Options) *Handler {
	h := &Handler{
		intents:       o.Intents,
		sessions:      o.Sessions,
		profiles:      o.Profiles,
		consultations: o.Consultations,
		reports:       o.Reports,
		listLimit:     o.ListLimit,
		timeout:       o.Timeout,
		logger:        o.Logger,
	}
	if h.listLimit <= 0 {
		h.listLimit = 20
	}
	if h.timeout <= 0 {
		h.timeout = 10 * time.Second
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	return h
}

func (h *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	var req models.IntentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		resp := h.intents.CreateErrorResponse(req.SessionID, req.Language, models.ErrorParseError, "Invalid request format")
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp, err := h.intents.ProcessIntent(ctx, &req)
	if err != nil {
		h.logger.Warn("assessment aborted", zap.String("request_id", middleware.GetReqID(r.Context())), zap.Error(err))
		writeJSON(w, http.StatusGatewayTimeout, resp)
		return
	}
	if resp.Status == models.StatusError {
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var reg profile.Registration
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&reg); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	p, err := h.profiles.Register(r.Context(), reg)
	var verr *profile.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, verr)
		return
	case errors.Is(err, profile.ErrDuplicateEmail):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("failed to register user", zap.Error(err))
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, profile.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to load user", zap.Error(err))
		http.Error(w, "Failed to load user", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadConsultation(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) ListSessionConsultations(w http.ResponseWriter, r *http.Request) {
	limit := h.listLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, 100)
	}

	records, err := h.consultations.ListBySession(r.Context(), chi.URLParam(r, "sessionID"), limit)
	if err != nil {
		h.logger.Error("failed to list consultations", zap.Error(err))
		http.Error(w, "Failed to list consultations", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []*consultation.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) ConsultationReport(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadConsultation(w, r)
	if !ok {
		return
	}

	pdf, err := h.reports.Render(rec)
	if errors.Is(err, report.ErrNoFont) {
		h.logger.Error("report font unavailable", zap.Error(err))
		http.Error(w, "Report rendering unavailable", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		h.logger.Error("failed to render report", zap.Error(err))
		http.Error(w, "Failed to render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="consultation-`+rec.ID.String()+`.pdf"`)
	w.Write(pdf)
}

func (h *Handler) loadConsultation(w http.ResponseWriter, r *http.Request) (*consultation.Record, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid consultation ID", http.StatusBadRequest)
		return nil, false
	}
	rec, err := h.consultations.GetByID(r.Context(), id)
	if errors.Is(err, consultation.ErrNotFound) {
		http.Error(w, "Consultation not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		h.logger.Error("failed to load consultation", zap.Error(err))
		http.Error(w, "Failed to load consultation", http.StatusInternalServerError)
		return nil, false
	}
	return rec, true
}

type sessionContextResponse struct {
	Context    *memory.HealthContext `json:"context"`
	Transcript string                `json:"transcript"`
}

func (h *Handler) SessionContext(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	exists, err := h.sessions.Exists(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to check session", zap.Error(err))
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	hc, err := h.sessions.Load(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to load session", zap.Error(err))
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}
	transcript, err := h.sessions.Transcript(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to build transcript", zap.Error(err))
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sessionContextResponse{Context: hc, Transcript: transcript})
}

func (h *Handler) ForgetSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Forget(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.logger.Error("failed to forget session", zap.Error(err))
		http.Error(w, "Failed to clear session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
