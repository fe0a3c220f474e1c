package invitation

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/organization-management/internal/auth"
	"github.com/frahmantamala/organization-management/internal/transport"
	"github.com/frahmantamala/organization-management/internal/user"
	"github.com/frahmantamala/organization-management/pkg/logger"
)

type ServiceAPI interface {
	Invite(dto user.RegisterDTO, inviterID int64) (*Invitation, error)
	Accept(currentUserID int64) (*AcceptResult, error)
	Approve(userID, approverID int64) (*ApproveResult, error)
	GetAll() ([]*Invitation, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// Invite handles POST /invitations
func (h *Handler) Invite(w http.ResponseWriter, r *http.Request) {
	current, ok := auth.UserFromContext(r.Context())
	if !ok || current == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto user.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.Service.Invite(dto, current.ID)
	if err != nil {
		h.Logger.Error("Invite: invitation failed", "username", dto.Username, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToResponse(inv))
}

// ListInvitations handles GET /invitations
func (h *Handler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	invs, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("ListInvitations: listing failed", "error", err)
		h.WriteAppError(w, err)
		return
	}

	resp := InvitationsResponse{
		Invitations: make([]InvitationResponse, 0, len(invs)),
		Total:       len(invs),
	}
	for _, inv := range invs {
		resp.Invitations = append(resp.Invitations, ToResponse(inv))
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

// Accept handles POST /invitations/accept for the authenticated user.
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	current, ok := auth.UserFromContext(r.Context())
	if !ok || current == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.Service.Accept(current.ID)
	if err != nil {
		h.Logger.Error("Accept: accept failed", "user_id", current.ID, "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

// Approve handles POST /users/{id}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	current, ok := auth.UserFromContext(r.Context())
	if !ok || current == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	result, svcErr := h.Service.Approve(userID, current.ID)
	if svcErr != nil {
		h.Logger.Error("Approve: approval failed", "user_id", userID, "approver_id", current.ID, "error", svcErr)
		h.WriteAppError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}
