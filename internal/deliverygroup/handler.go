package deliverygroup

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

// Handler wires HTTP endpoints to the delivery group service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts delivery group routes. Mutating routes go through the admin guard.
func (h *Handler) Register(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Get("/delivery-groups", h.handleList)
	r.Get("/delivery-groups/{groupId}", h.handleGet)
	r.With(admin).Post("/delivery-groups", h.handleCreate)
	r.With(admin).Delete("/delivery-groups/{groupId}", h.handleDelete)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	g, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		h.logError(r, "create delivery group", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, g)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	groupID, err := id.ParseDeliveryGroupID(chi.URLParam(r, "groupId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	g, err := h.service.Get(r.Context(), groupID)
	if err != nil {
		h.logError(r, "get delivery group", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, g)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logError(r, "list delivery groups", err)
		httputil.WriteError(w, err)
		return
	}
	if out == nil {
		out = []*DeliveryGroup{}
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	groupID, err := id.ParseDeliveryGroupID(chi.URLParam(r, "groupId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), groupID); err != nil {
		h.logError(r, "delete delivery group", err)
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
