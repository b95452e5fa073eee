package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/apperr"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/logx"
)

// HaulierHandler serves HTTP endpoints for haulier profiles.
type HaulierHandler struct {
	uc     haulierUsecase
	logger logx.Logger
}

// NewHaulierHandler wires a haulierUsecase into HTTP handlers.
func NewHaulierHandler(uc haulierUsecase, logger logx.Logger) *HaulierHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &HaulierHandler{uc: uc, logger: logger}
}

// GetByID handles GET /haulier/{id}.
func (h *HaulierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	profile, err := h.uc.Get(ctx, id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, profile)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /hauliers. With ?available=true only hauliers open for
// work are returned.
func (h *HaulierHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	q := r.URL.Query()
	if q.Get("available") == "true" {
		list, err := h.uc.GetAvailable(ctx)
		if err != nil {
			writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(h.logger, w, r, http.StatusOK, list)
		return
	}

	var limitPtr, offsetPtr *int
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		limitPtr = &v
	}
	if s := q.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid offset")
			return
		}
		offsetPtr = &v
	}

	list, err := h.uc.List(ctx, limitPtr, offsetPtr)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, list)
}

// Save handles POST /haulier: normalize and upsert a profile.
func (h *HaulierHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.HaulierProfile
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	ctx, cancel := withTimeout(r.Context())
	defer cancel()

	stored, err := h.uc.Save(ctx, &req)
	switch {
	case err == nil:
		w.Header().Set("Location", "/haulier/"+stored.ID)
		writeJSON(h.logger, w, r, http.StatusCreated, stored)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "conflict")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
