package profession

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
	"assure/pkg/platform/httputil"
	"assure/pkg/requestcontext"
)

// Handler wires HTTP endpoints to the profession service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type createRequest struct {
	Name string `json:"name"`
}

// Register mounts profession routes. Mutating routes go through the admin guard.
func (h *Handler) Register(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Get("/professions", h.handleList)
	r.Get("/professions/{professionId}", h.handleGet)
	r.With(admin).Post("/professions", h.handleCreate)
	r.With(admin).Delete("/professions/{professionId}", h.handleDelete)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	p, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		h.logError(r, "create profession", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	professionID, err := id.ParseProfessionID(chi.URLParam(r, "professionId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.Get(r.Context(), professionID)
	if err != nil {
		h.logError(r, "get profession", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logError(r, "list professions", err)
		httputil.WriteError(w, err)
		return
	}
	if out == nil {
		out = []*Profession{}
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	professionID, err := id.ParseProfessionID(chi.URLParam(r, "professionId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), professionID); err != nil {
		h.logError(r, "delete profession", err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) logError(r *http.Request, op string, err error) {
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(r.Context(), op+" failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err.Error(),
		)
	}
}
