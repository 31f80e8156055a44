package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-blog/internal/config"
	"github.com/sbilibin2017/gw-blog/internal/handlers"
	"github.com/sbilibin2017/gw-blog/internal/jwt"
	"github.com/sbilibin2017/gw-blog/internal/middlewares"
	"github.com/sbilibin2017/gw-blog/internal/password"
	"github.com/sbilibin2017/gw-blog/internal/repositories"
	"github.com/sbilibin2017/gw-blog/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

var userRowColumns = []string{"id", "email", "hashed_password", "role", "is_active", "created_at", "updated_at"}

type testApp struct {
	router http.Handler
	mock   sqlmock.Sqlmock
	tokens *jwt.JWT
	hasher *password.Hasher
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db := sqlx.NewDb(sqlDB, "pgx")

	cfg := &config.Config{CORSAllowedOrigins: []string{"http://localhost:3000"}}
	tokens := jwt.New(jwt.WithSecretKey(strings.Repeat("k", config.MinSecretKeyLength)))
	hasher := password.NewHasher(4)

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	blogReadRepo := repositories.NewBlogReadRepository(db)
	blogWriteRepo := repositories.NewBlogWriteRepository(db, middlewares.GetTxFromContext)

	authService := services.NewAuthService(userReadRepo, userWriteRepo, hasher, tokens)
	userService := services.NewUserService(userReadRepo, userWriteRepo, hasher)
	blogService := services.NewBlogService(blogReadRepo, blogWriteRepo, nil, nil)

	return &testApp{
		router: newRouter(cfg, db, tokens, authService, userService, blogService),
		mock:   mock,
		tokens: tokens,
		hasher: hasher,
	}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_PublicRoutes(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = app.do(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "gw-blog API")
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/users", "/users/me", "/allblogs", "/yourblogs", "/blog/" + uuid.NewString()} {
		rr := app.do(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, target)
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"), target)
	}

	rr := app.do(httptest.NewRequest(http.MethodPost, "/blog", strings.NewReader(`{"title":"t"}`)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestRouter_CORSPreflight(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/blog", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rr := app.do(req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Register(t *testing.T) {
	app := newTestApp(t)
	now := time.Now()

	app.mock.ExpectBegin()
	app.mock.ExpectQuery("FROM users").
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))
	app.mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	app.mock.ExpectCommit()

	body := `{"email":"john@example.com","password":"s3cret","role":"moderator"}`
	rr := app.do(httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var resp handlers.UserResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "john@example.com", resp.Email)
	assert.False(t, resp.IsActive)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestRouter_RegisterRollsBackOnConflict(t *testing.T) {
	app := newTestApp(t)
	now := time.Now()

	app.mock.ExpectBegin()
	app.mock.ExpectQuery("FROM users").
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(uuid.NewString(), "john@example.com", "digest", "user", false, now, now))
	app.mock.ExpectRollback()

	body := `{"email":"john@example.com","password":"s3cret"}`
	rr := app.do(httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestRouter_LoginThenMe(t *testing.T) {
	app := newTestApp(t)
	now := time.Now()
	id := uuid.New()
	digest, err := app.hasher.Hash("s3cret")
	require.NoError(t, err)

	userRow := func(active bool) *sqlmock.Rows {
		return sqlmock.NewRows(userRowColumns).
			AddRow(id.String(), "john@example.com", digest, "user", active, now, now)
	}

	// login with the OAuth2 password form
	app.mock.ExpectBegin()
	app.mock.ExpectQuery("FROM users").WithArgs("john@example.com").WillReturnRows(userRow(false))
	app.mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 1))
	app.mock.ExpectCommit()

	form := url.Values{"username": {"john@example.com"}, "password": {"s3cret"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := app.do(req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var token handlers.TokenResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&token))
	assert.Equal(t, "bearer", token.TokenType)

	// the token resolves back to the user
	app.mock.ExpectQuery("FROM users").WithArgs("john@example.com").WillReturnRows(userRow(true))

	req = httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	rr = app.do(req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var me handlers.UserResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&me))
	assert.Equal(t, id, me.ID)
	assert.True(t, me.IsActive)
	assert.NotContains(t, rr.Body.String(), digest)

	// a plain user may not list everyone
	app.mock.ExpectQuery("FROM users").WithArgs("john@example.com").WillReturnRows(userRow(true))

	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	rr = app.do(req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	now := time.Now()
	digest, err := app.hasher.Hash("s3cret")
	require.NoError(t, err)

	app.mock.ExpectBegin()
	app.mock.ExpectQuery("FROM users").WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(uuid.NewString(), "john@example.com", digest, "user", false, now, now))
	app.mock.ExpectRollback()

	rr := app.do(httptest.NewRequest(http.MethodPost, "/token",
		strings.NewReader(`{"email":"john@example.com","password":"wrong"}`)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}
