package standard

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

// Handler wires HTTP endpoints to the standard service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type createRequest struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Register mounts standard routes. Mutating routes go through the admin guard.
func (h *Handler) Register(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Get("/service-standards", h.handleList)
	r.Get("/service-standards/{standardId}", h.handleGet)
	r.With(admin).Post("/service-standards", h.handleCreate)
	r.With(admin).Delete("/service-standards/{standardId}", h.handleDelete)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	std, err := h.service.Create(r.Context(), req.Number, req.Name, req.Description)
	if err != nil {
		h.logError(r, "create standard", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, std)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	standardID, err := id.ParseStandardID(chi.URLParam(r, "standardId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	std, err := h.service.Get(r.Context(), standardID)
	if err != nil {
		h.logError(r, "get standard", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, std)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logError(r, "list standards", err)
		httputil.WriteError(w, err)
		return
	}
	if out == nil {
		out = []*ServiceStandard{}
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	standardID, err := id.ParseStandardID(chi.URLParam(r, "standardId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), standardID); err != nil {
		h.logError(r, "delete standard", err)
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
