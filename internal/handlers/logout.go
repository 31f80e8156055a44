package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-blog/internal/models"
)

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, actor *models.UserDB) error
}

// NewLogoutHandler returns an HTTP handler that marks the caller inactive.
// The token itself stays valid until it expires.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logout successful"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := svc.Logout(r.Context(), user); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logout successful"})
	}
}
