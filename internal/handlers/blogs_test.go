package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/policy"
	"github.com/sbilibin2017/gw-blog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBlogsHandlers(t *testing.T) {
	actor := &models.UserDB{ID: uuid.New(), Role: models.RoleModerator}
	blogs := []models.BlogDB{{ID: uuid.New(), Title: "one", UserID: uuid.New(), CreatedAt: time.Now()}}

	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := NewMockBlogManager(ctrl)
		m.EXPECT().ListAll(gomock.Any(), actor).Return(blogs, nil)

		rr := httptest.NewRecorder()
		NewListAllBlogsHandler(m).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/allblogs", nil), actor))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[[]BlogResponse](t, rr)
		require.Len(t, resp, 1)
		assert.Equal(t, "one", resp[0].Title)
	})

	t.Run("all forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := NewMockBlogManager(ctrl)
		m.EXPECT().ListAll(gomock.Any(), actor).Return(nil, policy.ErrForbidden)

		rr := httptest.NewRecorder()
		NewListAllBlogsHandler(m).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/allblogs", nil), actor))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("own", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := NewMockBlogManager(ctrl)
		m.EXPECT().ListOwn(gomock.Any(), actor).Return([]models.BlogDB{}, nil)

		rr := httptest.NewRecorder()
		NewListOwnBlogsHandler(m).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/yourblogs", nil), actor))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := NewMockBlogManager(ctrl)

		rr := httptest.NewRecorder()
		NewListOwnBlogsHandler(m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/yourblogs", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	})
}

func TestGetBlogHandler(t *testing.T) {
	actor := &models.UserDB{ID: uuid.New(), Role: models.RoleUser}
	blog := &models.BlogDB{ID: uuid.New(), Title: "t", Body: "b", UserID: uuid.New()}

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockBlogManager)
		expectedCode int
	}{
		{
			name: "found",
			id:   blog.ID.String(),
			mockSetup: func(m *MockBlogManager) {
				m.EXPECT().Get(gomock.Any(), actor, blog.ID).Return(blog, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   blog.ID.String(),
			mockSetup: func(m *MockBlogManager) {
				m.EXPECT().Get(gomock.Any(), actor, blog.ID).Return(nil, services.ErrBlogNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid id",
			id:           "1",
			mockSetup:    func(m *MockBlogManager) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockBlogManager(ctrl)
			tt.mockSetup(m)

			rr := httptest.NewRecorder()
			NewGetBlogHandler(m).ServeHTTP(rr, withID(withUser(httptest.NewRequest(http.MethodGet, "/", nil), actor), tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, blog.UserID, decodeBody[BlogResponse](t, rr).UserID)
			}
		})
	}
}

func TestCreateBlogHandler(t *testing.T) {
	actor := &models.UserDB{ID: uuid.New(), Role: models.RoleUser}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockBlogManager)
		expectedCode int
	}{
		{
			name: "created",
			body: `{"title":"Hello","body":"World"}`,
			mockSetup: func(m *MockBlogManager) {
				m.EXPECT().Create(gomock.Any(), actor, "Hello", "World").
					Return(&models.BlogDB{ID: uuid.New(), Title: "Hello", Body: "World", UserID: actor.ID}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "blank title",
			body: `{"title":"","body":"World"}`,
			mockSetup: func(m *MockBlogManager) {
				m.EXPECT().Create(gomock.Any(), actor, "", "World").Return(nil, services.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store error",
			body: `{"title":"Hello","body":"World"}`,
			mockSetup: func(m *MockBlogManager) {
				m.EXPECT().Create(gomock.Any(), actor, "Hello", "World").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "invalid json",
			body:         `nope`,
			mockSetup:    func(m *MockBlogManager) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockBlogManager(ctrl)
			tt.mockSetup(m)

			req := withUser(httptest.NewRequest(http.MethodPost, "/blog", bytes.NewBufferString(tt.body)), actor)
			rr := httptest.NewRecorder()
			NewCreateBlogHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				assert.Equal(t, actor.ID, decodeBody[BlogResponse](t, rr).UserID)
			}
		})
	}
}

func TestUpdateBlogHandler(t *testing.T) {
	actor := &models.UserDB{ID: uuid.New(), Role: models.RoleUser}
	id := uuid.New()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "updated", expectedCode: http.StatusOK},
		{name: "not owner", err: policy.Decision{Reason: policy.ReasonNotOwner}.Err(), expectedCode: http.StatusForbidden},
		{name: "missing", err: services.ErrBlogNotFound, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockBlogManager(ctrl)

			var blog *models.BlogDB
			if tt.err == nil {
				blog = &models.BlogDB{ID: id, Title: "new", Body: "text", UserID: actor.ID}
			}
			m.EXPECT().Update(gomock.Any(), actor, id, "new", "text").Return(blog, tt.err)

			req := httptest.NewRequest(http.MethodPut, "/blog/"+id.String(), bytes.NewBufferString(`{"title":"new","body":"text"}`))
			rr := httptest.NewRecorder()
			NewUpdateBlogHandler(m).ServeHTTP(rr, withID(withUser(req, actor), id.String()))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteBlogHandler(t *testing.T) {
	actor := &models.UserDB{ID: uuid.New(), Role: models.RoleAdmin}
	id := uuid.New()

	ctrl := gomock.NewController(t)
	m := NewMockBlogManager(ctrl)
	m.EXPECT().Delete(gomock.Any(), actor, id).Return(nil)

	rr := httptest.NewRecorder()
	NewDeleteBlogHandler(m).ServeHTTP(rr, withID(withUser(httptest.NewRequest(http.MethodDelete, "/", nil), actor), id.String()))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Blog deleted successfully", decodeBody[MessageResponse](t, rr).Message)

	m.EXPECT().Delete(gomock.Any(), actor, id).Return(policy.Decision{Reason: policy.ReasonNotOwner}.Err())
	rr = httptest.NewRecorder()
	NewDeleteBlogHandler(m).ServeHTTP(rr, withID(withUser(httptest.NewRequest(http.MethodDelete, "/", nil), actor), id.String()))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
