package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nens2012/life-aid-nexus/internal/alert"
	"github.com/nens2012/life-aid-nexus/internal/consultation"
	"github.com/nens2012/life-aid-nexus/internal/extract"
	"github.com/nens2012/life-aid-nexus/internal/inference"
	"github.com/nens2012/life-aid-nexus/internal/memory"
	"github.com/nens2012/life-aid-nexus/internal/models"
	"github.com/nens2012/life-aid-nexus/internal/profile"
)

// ProfileSource supplies stored profile facts for a user.
type ProfileSource interface {
	HealthFacts(ctx context.Context, userID string) (profile.HealthFacts, error)
}

// Dependencies of an IntentHandler. Profiles and Consultations may be nil;
// a nil Alerts publishes nothing.
type Dependencies struct {
	Engine          *inference.Engine
	Sessions        *memory.Manager
	Profiles        ProfileSource
	Consultations   consultation.Repository
	Alerts          alert.Publisher
	Logger          *zap.Logger
	DefaultLanguage models.Language
}

type IntentHandler struct {
	engine        *inference.Engine
	sessions      *memory.Manager
	profiles      ProfileSource
	consultations consultation.Repository
	alerts        alert.Publisher
	logger        *zap.Logger
	defaultLang   models.Language
	now           func() time.Time
}

func NewIntentHandler(deps Dependencies) *IntentHandler {
	h := &IntentHandler{
		engine:        deps.Engine,
		sessions:      deps.Sessions,
		profiles:      deps.Profiles,
		consultations: deps.Consultations,
		alerts:        deps.Alerts,
		logger:        deps.Logger,
		defaultLang:   deps.DefaultLanguage,
		now:           time.Now,
	}
	if h.alerts == nil {
		h.alerts = alert.Nop{}
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if !h.defaultLang.Valid() {
		h.defaultLang = models.DefaultLanguage
	}
	return h
}

// ProcessIntent assesses one turn. Failures are reported inside the returned
// envelope; the error is reserved for a cancelled context.
func (h *IntentHandler) ProcessIntent(ctx context.Context, request *models.IntentRequest) (*models.IntentResponse, error) {
	requestID := uuid.NewString()
	lang := h.language(request.Language)
	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if err := h.validateRequest(request); err != nil {
		return h.createErrorResponse(sessionID, requestID, lang, models.ErrorInvalidRequest, err.Error()), nil
	}
	if err := ctx.Err(); err != nil {
		return h.createErrorResponse(sessionID, requestID, lang, models.ErrorTimeout, "request expired before processing"), err
	}

	log := h.logger.With(zap.String("session_id", sessionID), zap.String("request_id", requestID))

	result, err := h.assessInSession(ctx, sessionID, lang, request)
	if err != nil {
		log.Warn("session context unavailable, assessing without it", zap.Error(err))
	}
	if result == nil {
		r := h.engine.Assess(requestInput(request, lang))
		result = &r
	}

	h.record(ctx, log, sessionID, request.UserID, result)
	if result.Verdict.Urgent() {
		h.publishAlert(ctx, log, sessionID, request.UserID, requestID, result)
	}

	status := models.StatusOK
	if result.Verdict.Urgent() {
		status = models.StatusEmergency
	}

	log.Info("intent processed",
		zap.String("status", status),
		zap.String("intent", result.Response.Intent),
		zap.String("rule_id", result.RuleID),
		zap.Stringer("safety_level", result.Verdict.Level))

	return &models.IntentResponse{
		SessionID:   sessionID,
		RequestID:   requestID,
		Status:      status,
		Response:    result.Response,
		UserMessage: result.Response.Summary,
		GeneratedAt: h.now().UTC(),
	}, nil
}

// assessInSession runs the engine under the session lock and folds the turn
// into the stored context. A non-nil result with an error means the
// assessment succeeded but could not be saved.
func (h *IntentHandler) assessInSession(ctx context.Context, sessionID string, lang models.Language, request *models.IntentRequest) (*inference.Result, error) {
	if h.sessions == nil {
		return nil, errors.New("no session manager configured")
	}

	var result *inference.Result
	err := h.sessions.WithSession(ctx, sessionID, func(hc *memory.HealthContext) error {
		var profileHistory []string
		if request.UserID != "" {
			hc.UserID = request.UserID
			profileHistory = h.seedFromProfile(ctx, hc, request.UserID)
		}

		in := hc.RawInput(request.UserMessage, lang)
		if request.KnownAge != nil {
			age := *request.KnownAge
			in.KnownAge = &age
		}
		if g := models.ParseGender(request.KnownGender); g.Known() {
			in.KnownGender = g
		}
		in.MedicalHistory = append(in.MedicalHistory, profileHistory...)
		in.MedicalHistory = append(in.MedicalHistory, request.MedicalHistory...)

		r := h.engine.Assess(in)
		result = &r

		now := h.now().UTC()
		hc.Merge(r.Facts)
		hc.AddTurn(memory.RoleUser, request.UserMessage, now)
		hc.AddTurn(memory.RoleAssistant, r.Response.Summary, now)
		return nil
	})
	return result, err
}

// seedFromProfile copies profile age and gender into a context that lacks
// them, once per session. It returns the profile's history entries.
func (h *IntentHandler) seedFromProfile(ctx context.Context, hc *memory.HealthContext, userID string) []string {
	if h.profiles == nil || hc.ProfileSeeded {
		return nil
	}
	if hc.Age != nil && hc.Gender.Known() {
		return nil
	}

	facts, err := h.profiles.HealthFacts(ctx, userID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			h.logger.Warn("failed to load profile", zap.String("user_id", userID), zap.Error(err))
		}
		return nil
	}

	if hc.Age == nil && facts.Age != nil {
		age := *facts.Age
		hc.Age = &age
	}
	if !hc.Gender.Known() && facts.Gender.Known() {
		hc.Gender = facts.Gender
	}
	hc.ProfileSeeded = true
	return facts.MedicalHistory
}

func (h *IntentHandler) record(ctx context.Context, log *zap.Logger, sessionID, userID string, result *inference.Result) {
	if h.consultations == nil {
		return
	}
	rec := consultation.NewRecord(sessionID, userID, result.RuleID, result.Facts, result.Response, h.now())
	if err := h.consultations.Save(ctx, rec); err != nil {
		log.Error("failed to record consultation", zap.Error(err))
		return
	}
	log.Debug("consultation recorded", zap.String("consultation_id", rec.ID.String()))
}

func (h *IntentHandler) publishAlert(ctx context.Context, log *zap.Logger, sessionID, userID, requestID string, result *inference.Result) {
	event := alert.NewEvent(sessionID, userID, requestID, result.Response.Language,
		result.Verdict.Level, result.Verdict.Reasons, h.now())
	if err := h.alerts.PublishUrgent(ctx, event); err != nil {
		log.Error("failed to publish urgent alert", zap.Error(err))
		return
	}
	log.Info("urgent alert published", zap.Strings("reasons", result.Verdict.Reasons))
}

func (h *IntentHandler) validateRequest(request *models.IntentRequest) error {
	if strings.TrimSpace(request.UserMessage) == "" {
		return fmt.Errorf("user_message is required")
	}
	if len(request.UserMessage) > models.MaxMessageBytes {
		return fmt.Errorf("user_message exceeds %d bytes", models.MaxMessageBytes)
	}
	if request.KnownAge != nil && (*request.KnownAge < extract.MinAge || *request.KnownAge > extract.MaxAge) {
		return fmt.Errorf("known_age %d is out of range %d..%d", *request.KnownAge, extract.MinAge, extract.MaxAge)
	}
	return nil
}

func (h *IntentHandler) language(tag string) models.Language {
	if strings.TrimSpace(tag) == "" {
		return h.defaultLang
	}
	return models.ParseLanguage(tag)
}

// CreateErrorResponse builds the envelope returned for requests that could
// not be processed.
func (h *IntentHandler) CreateErrorResponse(sessionID, lang, errorCode, errorMessage string) *models.IntentResponse {
	return h.createErrorResponse(sessionID, uuid.NewString(), h.language(lang), errorCode, errorMessage)
}

func (h *IntentHandler) createErrorResponse(sessionID, requestID string, lang models.Language, errorCode, errorMessage string) *models.IntentResponse {
	return &models.IntentResponse{
		SessionID:    sessionID,
		RequestID:    requestID,
		Status:       models.StatusError,
		UserMessage:  h.engine.Phrases().ErrorMessage(lang),
		ErrorCode:    &errorCode,
		ErrorMessage: &errorMessage,
		GeneratedAt:  h.now().UTC(),
	}
}

// requestInput builds a context-free engine input from the request alone.
func requestInput(request *models.IntentRequest, lang models.Language) models.RawInput {
	in := models.RawInput{
		Text:           request.UserMessage,
		Language:       lang,
		KnownGender:    models.ParseGender(request.KnownGender),
		MedicalHistory: append([]string(nil), request.MedicalHistory...),
	}
	if request.KnownAge != nil {
		age := *request.KnownAge
		in.KnownAge = &age
	}
	return in
}
