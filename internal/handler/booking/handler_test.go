package booking

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

	bookingsvc "github.com/vactrack/clinic-gateway/internal/booking"
	"github.com/vactrack/clinic-gateway/internal/catalog"
	"github.com/vactrack/clinic-gateway/internal/email"
	"github.com/vactrack/clinic-gateway/internal/middleware"
	"github.com/vactrack/clinic-gateway/internal/model"
	"github.com/vactrack/clinic-gateway/internal/session"
	"github.com/vactrack/clinic-gateway/pkg/logger"
)

type fakeSessionAPI struct{}

func (fakeSessionAPI) Login(context.Context, string, string) (*model.AuthResponse, error) {
	return nil, errors.New("not used")
}

func (fakeSessionAPI) Register(context.Context, string, string, string) (*model.AuthResponse, error) {
	return nil, errors.New("not used")
}

func (fakeSessionAPI) ExchangeOAuthCode(context.Context, string, string, string) (string, error) {
	return "", errors.New("not used")
}

func (fakeSessionAPI) GetUser(context.Context, string) (*model.User, error) {
	return nil, errors.New("not used")
}

type fakeBookingAPI struct{}

func (fakeBookingAPI) CreateBooking(_ context.Context, _ string, b *model.Booking) (*model.Booking, error) {
	return b, nil
}

func (fakeBookingAPI) AvailableSlots(context.Context, string, string, string) ([]model.BookingSlot, error) {
	return nil, errors.New("not used")
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger(nil)
	cat := catalog.New()
	service := bookingsvc.NewService(fakeBookingAPI{}, cat, email.Noop{}, log)
	sessions := session.NewManager(fakeSessionAPI{}, session.NewMemoryStore(time.Hour), log)
	authMW := middleware.NewAuthMiddleware(sessions, "vactrack_sid")

	engine := gin.New()
	NewHandler(service, cat, authMW).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeDraft(t *testing.T, w *httptest.ResponseRecorder) model.BookingDraft {
	t.Helper()
	var resp struct {
		Success bool               `json:"success"`
		Data    model.BookingDraft `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestApplyServiceClearsForeignPackage(t *testing.T) {
	engine := newTestRouter()

	w := postJSON(engine, "/api/v1/booking/draft/service",
		`{"service":"tiem-chung-ca-the-hoa","draft":{"package_type":"co-ban"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	draft := decodeDraft(t, w)
	assert.Equal(t, "tiem-chung-ca-the-hoa", draft.ServiceType)
	assert.Empty(t, draft.PackageType, "package from another service must be cleared")
}

func TestApplyServiceKeepsMatchingPackage(t *testing.T) {
	engine := newTestRouter()

	w := postJSON(engine, "/api/v1/booking/draft/service",
		`{"service":"goi-tiem-chung-tron-goi","draft":{"package_type":"co-ban"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	draft := decodeDraft(t, w)
	assert.Equal(t, "co-ban", draft.PackageType)
}

func TestApplyServiceRequiresService(t *testing.T) {
	engine := newTestRouter()

	w := postJSON(engine, "/api/v1/booking/draft/service", `{"draft":{"package_type":"co-ban"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
