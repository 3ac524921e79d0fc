package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amjooky/carwash-plus-sub001/internal/database"
	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	"github.com/amjooky/carwash-plus-sub001/internal/middleware"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/activity"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/analytics"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/auth"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/customer"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/notification"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/payment"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/settings"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/staff"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/user"
	jwtsvc "github.com/amjooky/carwash-plus-sub001/internal/pkg/jwt"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.AutoMigrate(repository.Models()...), "Failed to migrate")

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	j := jwtsvc.New("e2e-secret", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j, "e2e-pepper", 24*time.Hour))
	userHandler := user.NewHandler(user.NewService(userRepo))
	customerHandler := customer.NewHandler(customer.NewService(customerRepo))
	staffHandler := staff.NewHandler(staff.NewService(staffRepo))
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, bookingRepo, nil))
	notificationHandler := notification.NewHandler(notification.NewService(notificationRepo, nil))
	settingsHandler := settings.NewHandler(settings.NewService(settingRepo))
	activityHandler := activity.NewHandler(activity.NewService(activityRepo))
	analyticsHandler := analytics.NewHandler(analytics.NewService(userRepo, customerRepo, bookingRepo, paymentRepo, activityRepo))

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		settingsHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterRoutes(protected)
			customerHandler.RegisterRoutes(protected)
			staffHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)
			activityHandler.RegisterRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)
		}
	}

	suite := &E2ETestSuite{router: r, db: db}
	suite.seedUsers(t)
	return suite
}

func (s *E2ETestSuite) seedUsers(t *testing.T) {
	t.Helper()

	for _, u := range []struct {
		email string
		role  domain.UserRole
	}{
		{"super@test.io", domain.RoleSuperAdmin},
		{"admin@test.io", domain.RoleAdmin},
		{"user@test.io", domain.RoleUser},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
		require.NoError(t, err)
		require.NoError(t, repository.NewUserRepository(s.db).Create(t.Context(), &domain.User{
			Email:        u.email,
			Username:     u.email,
			PasswordHash: string(hash),
			FirstName:    "Test",
			LastName:     "Account",
			Role:         u.role,
			Status:       domain.UserActive,
		}))
	}
}

func (s *E2ETestSuite) do(method, path string, body any, token string) (*httptest.ResponseRecorder, TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (s *E2ETestSuite) login(t *testing.T, email string) string {
	t.Helper()

	w, resp := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	token, _ := resp.Data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAuthFlow(t *testing.T) {
	s := setupTestSuite(t)

	// Register a fresh account.
	w, resp := s.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":      "fresh@test.io",
		"username":   "fresh",
		"password":   "password123",
		"first_name": "Fresh",
		"last_name":  "Account",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	u := resp.Data["user"].(map[string]interface{})
	assert.Equal(t, "USER", u["role"])
	assert.Equal(t, "ACTIVE", u["status"])

	// Duplicate registration conflicts.
	w, resp = s.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":      "fresh@test.io",
		"username":   "fresh2",
		"password":   "password123",
		"first_name": "Fresh",
		"last_name":  "Again",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EMAIL_EXISTS", resp.Error.Code)

	// Login and hit the profile endpoint.
	token := s.login(t, "fresh@test.io")
	w, resp = s.do(http.MethodGet, "/api/v1/auth/profile", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	profile := resp.Data["user"].(map[string]interface{})
	assert.Equal(t, "fresh@test.io", profile["email"])
}

func TestRefreshRotation(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "user@test.io",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	refresh := resp.Data["refresh_token"].(string)

	// First rotation succeeds.
	w, resp = s.do(http.MethodPost, "/api/v1/auth/refresh", map[string]string{"refresh_token": refresh}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rotated := resp.Data["refresh_token"].(string)
	assert.NotEqual(t, refresh, rotated)

	// Replaying the consumed token is rejected and kills the family.
	w, _ = s.do(http.MethodPost, "/api/v1/auth/refresh", map[string]string{"refresh_token": refresh}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodPost, "/api/v1/auth/refresh", map[string]string{"refresh_token": rotated}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorizationPipeline(t *testing.T) {
	s := setupTestSuite(t)

	adminToken := s.login(t, "admin@test.io")
	superToken := s.login(t, "super@test.io")
	userToken := s.login(t, "user@test.io")

	// No credentials at all: 401 before any handler runs.
	w, resp := s.do(http.MethodGet, "/api/v1/analytics/dashboard", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)

	// Admin can view the dashboard.
	w, resp = s.do(http.MethodGet, "/api/v1/analytics/dashboard", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotNil(t, resp.Data["dashboard"])

	// Regular user is role-blocked with 403.
	w, resp = s.do(http.MethodGet, "/api/v1/analytics/dashboard", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	// Cross-user activity feed: admins hold the role but not the
	// permission, only the super admin passes both guards.
	w, _ = s.do(http.MethodGet, "/api/v1/analytics/activity", nil, adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/analytics/activity", nil, superToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/analytics/activity", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserManagementElevation(t *testing.T) {
	s := setupTestSuite(t)

	adminToken := s.login(t, "admin@test.io")
	superToken := s.login(t, "super@test.io")

	// An admin cannot mint another admin.
	w, resp := s.do(http.MethodPost, "/api/v1/users", map[string]string{
		"email":      "second@test.io",
		"username":   "second",
		"password":   "password123",
		"first_name": "Second",
		"last_name":  "Admin",
		"role":       "ADMIN",
	}, adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, resp.Error)

	// The super admin can.
	w, resp = s.do(http.MethodPost, "/api/v1/users", map[string]string{
		"email":      "second@test.io",
		"username":   "second",
		"password":   "password123",
		"first_name": "Second",
		"last_name":  "Admin",
		"role":       "ADMIN",
	}, superToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := resp.Data["user"].(map[string]interface{})
	assert.Equal(t, "ADMIN", created["role"])
}

func TestPaymentDefaultsAndShaping(t *testing.T) {
	s := setupTestSuite(t)

	adminToken := s.login(t, "admin@test.io")

	// Seed a customer + booking directly, payments hang off bookings.
	c := &domain.Customer{FirstName: "Pay", LastName: "Er", Email: "payer@test.io"}
	require.NoError(t, repository.NewCustomerRepository(s.db).Create(t.Context(), c))
	b := &domain.Booking{CustomerID: c.ID, ServiceName: "Express Wash", ScheduledAt: time.Now(), Status: domain.BookingScheduled}
	require.NoError(t, repository.NewBookingRepository(s.db).Create(t.Context(), b))

	// Minimal request: currency, method and status all default.
	w, resp := s.do(http.MethodPost, "/api/v1/payments", map[string]any{
		"booking_id": b.ID,
		"amount":     25.0,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	p := resp.Data["payment"].(map[string]interface{})
	assert.Equal(t, "USD", p["currency"])
	assert.Equal(t, "CARD", p["payment_method"])
	assert.Equal(t, "PENDING", p["status"])
	assert.Equal(t, "", p["transaction_id"])

	// Unknown booking is a 404.
	w, resp = s.do(http.MethodPost, "/api/v1/payments", map[string]any{
		"booking_id": int64(9999),
		"amount":     10.0,
	}, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "BOOKING_NOT_FOUND", resp.Error.Code)

	// Non-positive amount never reaches the service.
	w, _ = s.do(http.MethodPost, "/api/v1/payments", map[string]any{
		"booking_id": b.ID,
		"amount":     -5.0,
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Binding failures name the offending field.
	w, resp = s.do(http.MethodPost, "/api/v1/payments", map[string]any{
		"amount": 10.0,
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "BookingID")

	// Processor reports completion with a transaction id.
	paymentID := int64(p["id"].(float64))
	w, resp = s.do(http.MethodPatch, fmt.Sprintf("/api/v1/payments/%d/status", paymentID), map[string]any{
		"status":         "COMPLETED",
		"transaction_id": "txn_e2e_1",
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := resp.Data["payment"].(map[string]interface{})
	assert.Equal(t, "COMPLETED", updated["status"])
	assert.Equal(t, "txn_e2e_1", updated["transaction_id"])
}

func TestSettingsLifecycle(t *testing.T) {
	s := setupTestSuite(t)

	adminToken := s.login(t, "admin@test.io")

	// Patching a key that was never created is NotFound, not an upsert.
	value := "dark"
	w, resp := s.do(http.MethodPatch, "/api/v1/settings/theme", map[string]any{"value": value}, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)

	// Create, then patch.
	w, _ = s.do(http.MethodPost, "/api/v1/settings", map[string]any{
		"key":       "theme",
		"value":     "light",
		"category":  "ui",
		"is_public": true,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate key conflicts.
	w, resp = s.do(http.MethodPost, "/api/v1/settings", map[string]any{
		"key":   "theme",
		"value": "dark",
	}, adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "KEY_EXISTS", resp.Error.Code)

	w, resp = s.do(http.MethodPatch, "/api/v1/settings/theme", map[string]any{"value": "dark"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	setting := resp.Data["setting"].(map[string]interface{})
	assert.Equal(t, "dark", setting["value"])

	// The public listing needs no credentials.
	w, resp = s.do(http.MethodGet, "/api/v1/settings/public", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	list := resp.Data["settings"].([]interface{})
	assert.Len(t, list, 1)
}

func TestNotificationsOwnInbox(t *testing.T) {
	s := setupTestSuite(t)

	adminToken := s.login(t, "admin@test.io")
	userToken := s.login(t, "user@test.io")

	// Find the regular user's id for targeting.
	var target domain.User
	require.NoError(t, s.db.Raw(`SELECT id FROM users WHERE email = ?`, "user@test.io").Scan(&target).Error)

	w, _ := s.do(http.MethodPost, "/api/v1/notifications", map[string]any{
		"user_id": target.ID,
		"type":    "system",
		"title":   "Welcome",
		"message": "Thanks for joining",
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The user sees it, unread.
	w, resp := s.do(http.MethodGet, "/api/v1/notifications", nil, userToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp.Data["unread_count"])

	list := resp.Data["notifications"].([]interface{})
	require.Len(t, list, 1)
	notifID := int64(list[0].(map[string]interface{})["id"].(float64))

	// Mark read, unread drops to zero.
	w, _ = s.do(http.MethodPatch, fmt.Sprintf("/api/v1/notifications/%d/read", notifID), nil, userToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, resp = s.do(http.MethodGet, "/api/v1/notifications", nil, userToken)
	assert.Equal(t, float64(0), resp.Data["unread_count"])

	// A regular user cannot broadcast.
	w, _ = s.do(http.MethodPost, "/api/v1/notifications/broadcast", map[string]any{
		"title":   "Spam",
		"message": "From a non-admin",
	}, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// An admin can; every active user gets a copy.
	w, resp = s.do(http.MethodPost, "/api/v1/notifications/broadcast", map[string]any{
		"title":   "Maintenance",
		"message": "Down at midnight",
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(3), resp.Data["recipients"])
}

func TestCustomerCRUD(t *testing.T) {
	s := setupTestSuite(t)

	adminToken := s.login(t, "admin@test.io")

	w, resp := s.do(http.MethodPost, "/api/v1/customers", map[string]any{
		"first_name": "Alice",
		"last_name":  "Romero",
		"email":      "alice@test.io",
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := resp.Data["customer"].(map[string]interface{})
	id := int64(created["id"].(float64))

	// No contact at all is rejected.
	w, resp = s.do(http.MethodPost, "/api/v1/customers", map[string]any{
		"first_name": "No",
		"last_name":  "Contact",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_CONTACT", resp.Error.Code)

	w, resp = s.do(http.MethodGet, fmt.Sprintf("/api/v1/customers/%d", id), nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/customers/%d", id), nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = s.do(http.MethodGet, fmt.Sprintf("/api/v1/customers/%d", id), nil, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestActivityLogRetention(t *testing.T) {
	s := setupTestSuite(t)

	adminToken := s.login(t, "admin@test.io")
	superToken := s.login(t, "super@test.io")

	repo := repository.NewActivityRepository(s.db)
	require.NoError(t, repo.Create(t.Context(), &domain.ActivityLog{
		Level: domain.LevelInfo, Action: "user.login", Module: "auth",
	}))

	// Admins can read the log.
	w, resp := s.do(http.MethodGet, "/api/v1/logs", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(1), resp.Data["total"])

	// Pruning is super-admin only.
	w, _ = s.do(http.MethodDelete, "/api/v1/logs/old?days=30", nil, adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodDelete, "/api/v1/logs/old?days=30", nil, superToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// Fresh entries survive a 30 day cutoff.
	w, resp = s.do(http.MethodGet, "/api/v1/logs", nil, adminToken)
	assert.Equal(t, float64(1), resp.Data["total"])
}
