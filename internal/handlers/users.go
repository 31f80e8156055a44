package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserManager defines the user operations exposed over HTTP.
type UserManager interface {
	List(ctx context.Context, actor *models.UserDB) ([]models.UserDB, error)
	Me(ctx context.Context, actor *models.UserDB) (*models.UserDB, error)
	Get(ctx context.Context, actor *models.UserDB, id uuid.UUID) (*models.UserDB, error)
	Delete(ctx context.Context, actor *models.UserDB, id uuid.UUID) error
	UpdateMe(ctx context.Context, actor *models.UserDB, email, password *string) (*models.UserDB, error)
	UpdateRole(ctx context.Context, actor *models.UserDB, id uuid.UUID, role models.Role) (*models.UserDB, error)
}

// UpdateMeRequest changes the caller's email and/or password
// swagger:model UpdateMeRequest
type UpdateMeRequest struct {
	// New email
	// default: john.new@example.com
	Email *string `json:"email,omitempty"`

	// New password
	// default: n3w-secret
	Password *string `json:"password,omitempty"`
}

// UpdateRoleRequest assigns a role to a user
// swagger:model UpdateRoleRequest
type UpdateRoleRequest struct {
	// Role: user, admin or moderator
	// required: true
	// default: moderator
	Role models.Role `json:"role"`
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Description Admin only. Inactive users are included.
// @Tags users
// @Produce json
// @Success 200 {array} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentUser(w, r)
		if !ok {
			return
		}

		users, err := svc.List(r.Context(), actor)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, newUserResponse(&users[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGetMeHandler returns an HTTP handler for the caller's own record.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewGetMeHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := svc.Me(r.Context(), actor)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}

// NewUpdateMeHandler returns an HTTP handler updating the caller's email and/or password.
// @Summary Update current user
// @Tags users
// @Accept json
// @Produce json
// @Param updateMeRequest body handlers.UpdateMeRequest true "Fields to change"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /users/me [put]
// @Security BearerAuth
func NewUpdateMeHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req UpdateMeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		if req.Email != nil && !validEmail(*req.Email) {
			writeBadRequest(w, "invalid email")
			return
		}

		user, err := svc.UpdateMe(r.Context(), actor, req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}

// NewGetUserHandler returns an HTTP handler reading any user by id.
// @Summary Get user
// @Description Admin only.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := idParam(w, r)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), actor, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}

// NewUpdateUserRoleHandler returns an HTTP handler changing a user's role.
// @Summary Update user role
// @Description Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param updateRoleRequest body handlers.UpdateRoleRequest true "New role"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [put]
// @Security BearerAuth
func NewUpdateUserRoleHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := idParam(w, r)
		if !ok {
			return
		}

		var req UpdateRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		user, err := svc.UpdateRole(r.Context(), actor, id, req.Role)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user. Their blogs are kept.
// @Summary Delete user
// @Description Admin only.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.MessageResponse "User deleted successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := idParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), actor, id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
	}
}
