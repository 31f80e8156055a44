package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/policy"
	"github.com/sbilibin2017/gw-blog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersHandler(t *testing.T) {
	admin := &models.UserDB{ID: uuid.New(), Role: models.RoleAdmin}
	users := []models.UserDB{
		{ID: uuid.New(), Email: "a@example.com", PasswordHash: "$2a$10$hash-a-never-exposed", Role: models.RoleUser, IsActive: false},
		{ID: uuid.New(), Email: "b@example.com", PasswordHash: "$2a$10$hash-b-never-exposed", Role: models.RoleModerator, IsActive: true},
	}

	t.Run("admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := NewMockUserManager(ctrl)
		m.EXPECT().List(gomock.Any(), admin).Return(users, nil)

		rr := httptest.NewRecorder()
		NewListUsersHandler(m).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/users", nil), admin))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[[]UserResponse](t, rr)
		require.Len(t, resp, 2)
		assert.False(t, resp[0].IsActive)
		assert.NotContains(t, rr.Body.String(), "hash-a-never-exposed")
		assert.NotContains(t, rr.Body.String(), "hash-b-never-exposed")
	})

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := NewMockUserManager(ctrl)
		user := &models.UserDB{ID: uuid.New(), Role: models.RoleUser}
		m.EXPECT().List(gomock.Any(), user).Return(nil, policy.Decision{Reason: policy.ReasonForbiddenRole}.Err())

		rr := httptest.NewRecorder()
		NewListUsersHandler(m).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/users", nil), user))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := NewMockUserManager(ctrl)
		m.EXPECT().List(gomock.Any(), admin).Return(nil, nil)

		rr := httptest.NewRecorder()
		NewListUsersHandler(m).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/users", nil), admin))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestGetMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockUserManager(ctrl)
	user := &models.UserDB{ID: uuid.New(), Email: "me@example.com", Role: models.RoleUser}
	m.EXPECT().Me(gomock.Any(), user).Return(user, nil)

	rr := httptest.NewRecorder()
	NewGetMeHandler(m).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/users/me", nil), user))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "me@example.com", decodeBody[UserResponse](t, rr).Email)
}

func TestUpdateMeHandler(t *testing.T) {
	user := &models.UserDB{ID: uuid.New(), Email: "me@example.com", Role: models.RoleUser}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserManager)
		expectedCode int
	}{
		{
			name: "email and password",
			body: `{"email":"new@example.com","password":"n3w"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().UpdateMe(gomock.Any(), user, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, _ *models.UserDB, email, password *string) (*models.UserDB, error) {
						require.NotNil(t, email)
						require.NotNil(t, password)
						assert.Equal(t, "new@example.com", *email)
						assert.Equal(t, "n3w", *password)
						updated := *user
						updated.Email = *email
						return &updated, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "password only",
			body: `{"password":"n3w"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().UpdateMe(gomock.Any(), user, nil, gomock.Any()).Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "email taken",
			body: `{"email":"taken@example.com"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().UpdateMe(gomock.Any(), user, gomock.Any(), nil).Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "invalid email",
			body:         `{"email":"nope"}`,
			mockSetup:    func(m *MockUserManager) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `[`,
			mockSetup:    func(m *MockUserManager) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockUserManager(ctrl)
			tt.mockSetup(m)

			req := withUser(httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewBufferString(tt.body)), user)
			rr := httptest.NewRecorder()
			NewUpdateMeHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	admin := &models.UserDB{ID: uuid.New(), Role: models.RoleAdmin}
	target := &models.UserDB{ID: uuid.New(), Email: "t@example.com", Role: models.RoleUser}

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockUserManager)
		expectedCode int
	}{
		{
			name: "found",
			id:   target.ID.String(),
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Get(gomock.Any(), admin, target.ID).Return(target, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   target.ID.String(),
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Get(gomock.Any(), admin, target.ID).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid id",
			id:           "not-a-uuid",
			mockSetup:    func(m *MockUserManager) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockUserManager(ctrl)
			tt.mockSetup(m)

			req := withID(withUser(httptest.NewRequest(http.MethodGet, "/users/"+tt.id, nil), admin), tt.id)
			rr := httptest.NewRecorder()
			NewGetUserHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateUserRoleHandler(t *testing.T) {
	admin := &models.UserDB{ID: uuid.New(), Role: models.RoleAdmin}
	target := &models.UserDB{ID: uuid.New(), Email: "t@example.com", Role: models.RoleModerator}

	ctrl := gomock.NewController(t)
	m := NewMockUserManager(ctrl)
	m.EXPECT().UpdateRole(gomock.Any(), admin, target.ID, models.RoleModerator).Return(target, nil)

	req := httptest.NewRequest(http.MethodPut, "/users/"+target.ID.String(), bytes.NewBufferString(`{"role":"moderator"}`))
	req = withID(withUser(req, admin), target.ID.String())
	rr := httptest.NewRecorder()
	NewUpdateUserRoleHandler(m).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.RoleModerator, decodeBody[UserResponse](t, rr).Role)

	m.EXPECT().UpdateRole(gomock.Any(), admin, target.ID, models.Role("root")).Return(nil, services.ErrInvalidInput)
	req = httptest.NewRequest(http.MethodPut, "/users/"+target.ID.String(), bytes.NewBufferString(`{"role":"root"}`))
	req = withID(withUser(req, admin), target.ID.String())
	rr = httptest.NewRecorder()
	NewUpdateUserRoleHandler(m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteUserHandler(t *testing.T) {
	admin := &models.UserDB{ID: uuid.New(), Role: models.RoleAdmin}
	id := uuid.New()

	ctrl := gomock.NewController(t)
	m := NewMockUserManager(ctrl)
	m.EXPECT().Delete(gomock.Any(), admin, id).Return(nil)

	rr := httptest.NewRecorder()
	NewDeleteUserHandler(m).ServeHTTP(rr, withID(withUser(httptest.NewRequest(http.MethodDelete, "/", nil), admin), id.String()))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "User deleted successfully", decodeBody[MessageResponse](t, rr).Message)

	m.EXPECT().Delete(gomock.Any(), admin, id).Return(services.ErrUserNotFound)
	rr = httptest.NewRecorder()
	NewDeleteUserHandler(m).ServeHTTP(rr, withID(withUser(httptest.NewRequest(http.MethodDelete, "/", nil), admin), id.String()))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
