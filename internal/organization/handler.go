package organization

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/organization-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(dto CreateOrganizationDTO) (*Organization, error)
	GetByID(id int64) (*Organization, error)
	GetAll() ([]*Organization, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// CreateOrganization handles POST /organizations
func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var dto CreateOrganizationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	org, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("CreateOrganization: create failed", "name", dto.Name, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, org)
}

// ListOrganizations handles GET /organizations
func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.Service.GetAll()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	responses := make([]OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, org.ToResponse())
	}

	h.WriteJSON(w, http.StatusOK, OrganizationsResponse{Organizations: responses})
}

// GetOrganization handles GET /organizations/{id}
func (h *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid organization id")
		return
	}

	org, svcErr := h.Service.GetByID(id)
	if svcErr != nil {
		h.WriteAppError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, org)
}
