package handlers

import "net/http"

// NewHomeHandler returns the welcome handler.
// @Summary Welcome message
// @Tags home
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router / [get]
func NewHomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Welcome to the blog API"})
	}
}
