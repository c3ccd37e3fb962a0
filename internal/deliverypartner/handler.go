package deliverypartner

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

// Handler wires HTTP endpoints to the delivery partner service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts delivery partner routes. Mutating routes go through the admin guard.
func (h *Handler) Register(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Get("/delivery-partners", h.handleList)
	r.Get("/delivery-partners/{partnerId}", h.handleGet)
	r.With(admin).Post("/delivery-partners", h.handleCreate)
	r.With(admin).Delete("/delivery-partners/{partnerId}", h.handleDelete)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	p, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		h.logError(r, "create delivery partner", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	partnerID, err := id.ParseDeliveryPartnerID(chi.URLParam(r, "partnerId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.Get(r.Context(), partnerID)
	if err != nil {
		h.logError(r, "get delivery partner", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logError(r, "list delivery partners", err)
		httputil.WriteError(w, err)
		return
	}
	if out == nil {
		out = []*DeliveryPartner{}
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	partnerID, err := id.ParseDeliveryPartnerID(chi.URLParam(r, "partnerId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), partnerID); err != nil {
		h.logError(r, "delete delivery partner", err)
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
