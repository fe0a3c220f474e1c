package permission

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/organization-management/internal/transport"
)

type ServiceAPI interface {
	Create(dto CreatePermissionDTO) (*Permission, error)
	GetByCode(code string) (*Permission, error)
	GetAll() ([]*Permission, error)
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

// CreatePermission handles POST /permissions
func (h *Handler) CreatePermission(w http.ResponseWriter, r *http.Request) {
	var dto CreatePermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	perm, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("CreatePermission: create failed", "code", dto.Code, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, perm)
}

// ListPermissions handles GET /permissions
func (h *Handler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.Service.GetAll()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, PermissionsResponse{Permissions: perms})
}
