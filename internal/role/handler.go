package role

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/organization-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateRole(dto CreateRoleDTO) (*Role, error)
	AttachPermissions(roleID int64, dto AttachPermissionsDTO) (*Role, error)
	Permissions(roleID int64) ([]string, error)
	RolesForOrganization(orgID int64) ([]*Role, error)
	CreateDesignation(dto CreateDesignationDTO) (*Designation, error)
	AttachDesignationPermissions(designationID int64, dto AttachPermissionsDTO) (*Designation, error)
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

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

// CreateRole handles POST /organizations/{id}/roles
func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	orgID, ok := pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid organization id")
		return
	}

	var dto CreateRoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dto.OrganizationID = orgID

	role, err := h.Service.CreateRole(dto)
	if err != nil {
		h.Logger.Error("CreateRole: create failed", "organization_id", orgID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, role)
}

// ListRoles handles GET /organizations/{id}/roles
func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	orgID, ok := pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid organization id")
		return
	}

	roles, err := h.Service.RolesForOrganization(orgID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"roles": roles})
}

// AttachRolePermissions handles POST /roles/{id}/permissions
func (h *Handler) AttachRolePermissions(w http.ResponseWriter, r *http.Request) {
	roleID, ok := pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	var dto AttachPermissionsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role, err := h.Service.AttachPermissions(roleID, dto)
	if err != nil {
		h.Logger.Error("AttachRolePermissions: attach failed", "role_id", roleID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, role)
}

// GetRolePermissions handles GET /roles/{id}/permissions
func (h *Handler) GetRolePermissions(w http.ResponseWriter, r *http.Request) {
	roleID, ok := pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	codes, err := h.Service.Permissions(roleID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, RolePermissionsResponse{RoleID: roleID, Permissions: codes})
}

// CreateDesignation handles POST /organizations/{id}/designations
func (h *Handler) CreateDesignation(w http.ResponseWriter, r *http.Request) {
	orgID, ok := pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid organization id")
		return
	}

	var dto CreateDesignationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dto.OrganizationID = orgID

	designation, err := h.Service.CreateDesignation(dto)
	if err != nil {
		h.Logger.Error("CreateDesignation: create failed", "organization_id", orgID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, designation)
}

// AttachDesignationPermissions handles POST /designations/{id}/permissions
func (h *Handler) AttachDesignationPermissions(w http.ResponseWriter, r *http.Request) {
	designationID, ok := pathID(r, "id")
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid designation id")
		return
	}

	var dto AttachPermissionsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	designation, err := h.Service.AttachDesignationPermissions(designationID, dto)
	if err != nil {
		h.Logger.Error("AttachDesignationPermissions: attach failed", "designation_id", designationID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, designation)
}
