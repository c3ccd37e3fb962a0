// Package handler exposes the assessment HTTP surface. Routes address an
// assessment by its full composite path so the URL itself carries the key:
//
//	/projects/{projectId}/standards/{standardId}/professions/{professionId}/assessment
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"assure/internal/assessment/models"
	"assure/internal/assessment/service"
	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
	"assure/pkg/platform/httputil"
	"assure/pkg/requestcontext"
)

// Handler wires HTTP endpoints to the assessment service.
type Handler struct {
	service *service.Service
	logger  *slog.Logger
}

func NewHandler(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

const basePath = "/projects/{projectId}/standards/{standardId}/professions/{professionId}/assessment"

// Register mounts assessment routes. Archiving is destructive to the visible
// trail, so it goes through the admin guard.
func (h *Handler) Register(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Post(basePath, h.handleSubmit)
	r.Get(basePath, h.handleGet)
	r.Get(basePath+"/history", h.handleHistory)
	r.With(admin).Post(basePath+"/history/{historyId}/archive", h.handleArchive)
}

// parseKey reads the composite key from the route. Each segment is validated
// independently so the caller learns which one is malformed.
func parseKey(r *http.Request) (models.Key, error) {
	projectID, err := id.ParseProjectID(chi.URLParam(r, "projectId"))
	if err != nil {
		return models.Key{}, err
	}
	standardID, err := id.ParseStandardID(chi.URLParam(r, "standardId"))
	if err != nil {
		return models.Key{}, err
	}
	professionID, err := id.ParseProfessionID(chi.URLParam(r, "professionId"))
	if err != nil {
		return models.Key{}, err
	}
	return models.Key{ProjectID: projectID, StandardID: standardID, ProfessionID: professionID}, nil
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req models.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if _, err := h.service.Submit(r.Context(), key, req); err != nil {
		h.logError(r, "submit assessment", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	a, err := h.service.Get(r.Context(), key)
	if err != nil {
		h.logError(r, "get assessment", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	entries := h.service.History(r.Context(), key)
	httputil.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleArchive(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	historyID, err := id.ParseHistoryID(chi.URLParam(r, "historyId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	archived, err := h.service.ArchiveHistory(r.Context(), key, historyID)
	if err != nil {
		h.logError(r, "archive history entry", err)
		httputil.WriteError(w, err)
		return
	}
	if !archived {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "history entry not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"archived": true})
}

func (h *Handler) logError(r *http.Request, op string, err error) {
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(r.Context(), op+" failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err.Error(),
		)
	}
}
