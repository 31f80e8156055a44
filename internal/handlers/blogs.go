package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

//go:generate mockgen -source=blogs.go -destination=blogs_mock.go -package=handlers

// BlogManager defines the blog operations exposed over HTTP.
type BlogManager interface {
	ListAll(ctx context.Context, actor *models.UserDB) ([]models.BlogDB, error)
	ListOwn(ctx context.Context, actor *models.UserDB) ([]models.BlogDB, error)
	Get(ctx context.Context, actor *models.UserDB, id uuid.UUID) (*models.BlogDB, error)
	Create(ctx context.Context, actor *models.UserDB, title, body string) (*models.BlogDB, error)
	Update(ctx context.Context, actor *models.UserDB, id uuid.UUID, title, body string) (*models.BlogDB, error)
	Delete(ctx context.Context, actor *models.UserDB, id uuid.UUID) error
}

// BlogRequest is the body for creating or updating a blog
// swagger:model BlogRequest
type BlogRequest struct {
	// Title
	// required: true
	// default: Hello
	Title string `json:"title"`

	// Body
	// default: My first post
	Body string `json:"body"`
}

func writeBlogs(w http.ResponseWriter, blogs []models.BlogDB) {
	resp := make([]BlogResponse, 0, len(blogs))
	for i := range blogs {
		resp = append(resp, newBlogResponse(&blogs[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// NewListAllBlogsHandler returns an HTTP handler listing every blog.
// @Summary List all blogs
// @Description Admins and moderators only.
// @Tags blogs
// @Produce json
// @Success 200 {array} handlers.BlogResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /allblogs [get]
// @Security BearerAuth
func NewListAllBlogsHandler(svc BlogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentUser(w, r)
		if !ok {
			return
		}

		blogs, err := svc.ListAll(r.Context(), actor)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeBlogs(w, blogs)
	}
}

// NewListOwnBlogsHandler returns an HTTP handler listing the caller's blogs.
// @Summary List own blogs
// @Tags blogs
// @Produce json
// @Success 200 {array} handlers.BlogResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /yourblogs [get]
// @Security BearerAuth
func NewListOwnBlogsHandler(svc BlogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentUser(w, r)
		if !ok {
			return
		}

		blogs, err := svc.ListOwn(r.Context(), actor)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeBlogs(w, blogs)
	}
}

// NewGetBlogHandler returns an HTTP handler reading a blog by id.
// @Summary Get blog
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} handlers.BlogResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Blog not found"
// @Router /blog/{id} [get]
// @Security BearerAuth
func NewGetBlogHandler(svc BlogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := idParam(w, r)
		if !ok {
			return
		}

		blog, err := svc.Get(r.Context(), actor, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newBlogResponse(blog))
	}
}

// NewCreateBlogHandler returns an HTTP handler creating a blog owned by the caller.
// @Summary Create blog
// @Tags blogs
// @Accept json
// @Produce json
// @Param blogRequest body handlers.BlogRequest true "Blog"
// @Success 201 {object} handlers.BlogResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /blog [post]
// @Security BearerAuth
func NewCreateBlogHandler(svc BlogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req BlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		blog, err := svc.Create(r.Context(), actor, req.Title, req.Body)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, newBlogResponse(blog))
	}
}

// NewUpdateBlogHandler returns an HTTP handler updating a blog.
// @Summary Update blog
// @Description Owner, admins and moderators only.
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param blogRequest body handlers.BlogRequest true "Blog"
// @Success 200 {object} handlers.BlogResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Blog not found"
// @Router /blog/{id} [put]
// @Security BearerAuth
func NewUpdateBlogHandler(svc BlogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := idParam(w, r)
		if !ok {
			return
		}

		var req BlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		blog, err := svc.Update(r.Context(), actor, id, req.Title, req.Body)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newBlogResponse(blog))
	}
}

// NewDeleteBlogHandler returns an HTTP handler deleting a blog.
// @Summary Delete blog
// @Description Owner, admins and moderators only.
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} handlers.MessageResponse "Blog deleted successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Blog not found"
// @Router /blog/{id} [delete]
// @Security BearerAuth
func NewDeleteBlogHandler(svc BlogManager) http.HandlerFunc {
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
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Blog deleted successfully"})
	}
}
