package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vactrack/clinic-gateway/internal/middleware"
	"github.com/vactrack/clinic-gateway/internal/model"
	"github.com/vactrack/clinic-gateway/internal/session"
	"github.com/vactrack/clinic-gateway/pkg/logger"
)

const testCookie = "vactrack_sid"

type fakeAPI struct {
	auth    *model.AuthResponse
	authErr error
}

func (f *fakeAPI) Login(context.Context, string, string) (*model.AuthResponse, error) {
	return f.auth, f.authErr
}

func (f *fakeAPI) Register(context.Context, string, string, string) (*model.AuthResponse, error) {
	return f.auth, f.authErr
}

func (f *fakeAPI) ExchangeOAuthCode(context.Context, string, string, string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeAPI) GetUser(context.Context, string) (*model.User, error) {
	return nil, errors.New("not used")
}

func newTestRouter(api *fakeAPI) (*gin.Engine, *session.Manager) {
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(api, session.NewMemoryStore(time.Hour), logger.NewLogger(nil))
	authMW := middleware.NewAuthMiddleware(sessions, testCookie)

	engine := gin.New()
	NewHandler(sessions, authMW, testCookie).RegisterRoutes(engine.Group("/api/v1"))
	return engine, sessions
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestLoginSetsCookieAndRedirectsHome(t *testing.T) {
	engine, _ := newTestRouter(&fakeAPI{auth: &model.AuthResponse{
		Token: "tok-1",
		User:  &model.User{ID: "u1", Name: "A", Email: "a@example.com", Role: "USER"},
	}})

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@example.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "/", data["redirect_to"])

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestLoginAdminRedirectsToBackOffice(t *testing.T) {
	engine, _ := newTestRouter(&fakeAPI{auth: &model.AuthResponse{
		Token: "tok-1",
		User:  &model.User{ID: "u1", Name: "A", Email: "a@example.com", Role: "ADMIN"},
	}})

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@example.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/admin-vactrack", decodeData(t, w)["redirect_to"])
}

func TestLoginHonorsRequestedPath(t *testing.T) {
	engine, _ := newTestRouter(&fakeAPI{auth: &model.AuthResponse{
		Token: "tok-1",
		User:  &model.User{ID: "u1", Name: "A", Email: "a@example.com", Role: "USER"},
	}})

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@example.com","password":"secret","redirect":"/booking"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/booking", decodeData(t, w)["redirect_to"])
}

func TestLoginRejectedCredentials(t *testing.T) {
	engine, _ := newTestRouter(&fakeAPI{authErr: errors.New("bad credentials")})

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies(), "no session cookie on failed login")
}

func TestLoginMalformedBody(t *testing.T) {
	engine, _ := newTestRouter(&fakeAPI{})

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterCreatesSession(t *testing.T) {
	engine, _ := newTestRouter(&fakeAPI{auth: &model.AuthResponse{
		Token: "tok-1",
		User:  &model.User{ID: "u1", Name: "A", Email: "a@example.com", Role: "USER"},
	}})

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Nguyễn Văn A","email":"a@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestLogoutClearsSessionAndCookie(t *testing.T) {
	engine, sessions := newTestRouter(&fakeAPI{auth: &model.AuthResponse{
		Token: "tok-1",
		User:  &model.User{ID: "u1", Name: "A", Email: "a@example.com", Role: "USER"},
	}})

	login := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, login.Code)
	sid := login.Result().Cookies()[0].Value

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: sid})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	_, err := sessions.Restore(context.Background(), sid)
	assert.ErrorIs(t, err, session.ErrNoSession)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Less(t, cookies[0].MaxAge, 0, "cookie must be expired")
}

func TestMeRequiresSession(t *testing.T) {
	engine, _ := newTestRouter(&fakeAPI{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsRestoredSession(t *testing.T) {
	engine, _ := newTestRouter(&fakeAPI{auth: &model.AuthResponse{
		Token: "tok-1",
		User:  &model.User{ID: "u1", Name: "A", Email: "a@example.com", Role: "ADMIN"},
	}})

	login := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@example.com","password":"secret"}`)
	sid := login.Result().Cookies()[0].Value

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("X-Session-ID", sid)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["is_admin"])
}
