package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/apperr"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/logx"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/service/matching"
)

// MatchHandler serves the matching endpoints.
type MatchHandler struct {
	uc     matchUsecase
	logger logx.Logger
}

// NewMatchHandler wires a matchUsecase into HTTP handlers.
func NewMatchHandler(uc matchUsecase, logger logx.Logger) *MatchHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &MatchHandler{uc: uc, logger: logger}
}

// FindMatches handles POST /matches.
func (h *MatchHandler) FindMatches(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	results, err := h.uc.MatchJob(ctx, req.UserID, req.Job, req.Hauliers)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, matchResponse{JobID: req.Job.JobID, Matches: results})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetPreferences handles GET /users/{id}/preferences.
func (h *MatchHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromURL(h.logger, w, r)
	if !ok {
		return
	}
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	p, err := h.uc.Preferences(ctx, userID)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, p)
}

// PutPreferences handles PUT /users/{id}/preferences.
func (h *MatchHandler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromURL(h.logger, w, r)
	if !ok {
		return
	}
	var p matching.Preferences
	if ok := decodeJSON(h.logger, w, r, &p); !ok {
		return
	}
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	err := h.uc.SavePreferences(ctx, userID, p)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetHistory handles GET /users/{id}/matches.
func (h *MatchHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromURL(h.logger, w, r)
	if !ok {
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, h.uc.History(userID))
}

func userIDFromURL(logger logx.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(chi.URLParam(r, "id"))
	if userID == "" {
		writeError(logger, w, r, http.StatusBadRequest, "invalid user id")
		return "", false
	}
	return userID, true
}
