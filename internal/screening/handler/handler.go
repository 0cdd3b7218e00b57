// Package handler exposes the screening service over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"watchgate/internal/platform/middleware"
	"watchgate/internal/screening"
	dErrors "watchgate/pkg/domain-errors"
	"watchgate/pkg/platform/httputil"
)

const requestTimeout = 60 * time.Second

// Service defines the interface for screening operations.
type Service interface {
	Screen(ctx context.Context, req screening.ScreenRequest) (*screening.ScreenResult, error)
}

// Handler handles screening endpoints.
type Handler struct {
	logger       *slog.Logger
	screening    Service
	jwtValidator middleware.JWTValidator
}

// New creates a new screening Handler. A nil jwtValidator leaves the
// endpoint open.
func New(screening Service, logger *slog.Logger, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		screening:    screening,
		jwtValidator: jwtValidator,
	}
}

// Register registers the screening routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	screenRouter := chi.NewRouter()
	screenRouter.Use(middleware.Recovery(h.logger))
	screenRouter.Use(middleware.RequestID)
	screenRouter.Use(middleware.RequestTime)
	screenRouter.Use(middleware.ClientMetadata)
	screenRouter.Use(middleware.Logger(h.logger))
	screenRouter.Use(middleware.Timeout(requestTimeout))
	screenRouter.Use(middleware.ContentTypeJSON)
	screenRouter.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
	screenRouter.Post("/screen", h.handleScreen)

	r.Mount("/", screenRouter)
}

func (h *Handler) handleScreen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req ScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid screen request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid screen request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.screening.Screen(ctx, req.toDomain())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			h.logger.WarnContext(ctx, "screening cancelled",
				"request_id", requestID,
				"error", err.Error(),
			)
			httputil.WriteError(w, dErrors.New(dErrors.CodeSourceUnavailable, "screening timed out"))
			return
		}
		h.logger.ErrorContext(ctx, "screening failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "screening failed"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toScreenResponse(result))
}
