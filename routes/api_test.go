package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"grooming-service-server/config"
	"grooming-service-server/database"
	ws "grooming-service-server/websocket"
)

// newTestRouter wires a fully routed gin engine against an isolated
// in-memory database.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.Load()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	hub := ws.NewHub()
	go hub.Run()

	router := gin.New()
	RegisterRoutes(router, hub)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	response := map[string]interface{}{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	}
	return recorder, response
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	recorder, response := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", gin.H{
		"username": "admin",
		"password": "admin123",
	}, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	token, _ := response["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createTestBooking(t *testing.T, router *gin.Engine) string {
	t.Helper()

	recorder, response := doJSON(t, router, http.MethodPost, "/api/v1/bookings", gin.H{
		"name":    "Rina W.",
		"phone":   "081234567890",
		"address": "Jl. Melati No. 5, Bandung",
		"service": "mandi-kutu",
		"date":    "2026-09-01",
		"time":    "10:00",
	}, "")
	require.Equal(t, http.StatusCreated, recorder.Code)

	booking := response["booking"].(map[string]interface{})
	return booking["id"].(string)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder, response := doJSON(t, router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", response["status"])
}

func TestBookingAPIFlow(t *testing.T) {
	router := newTestRouter(t)

	id := createTestBooking(t, router)

	// creation response carries the catalog snapshot
	recorder, response := doJSON(t, router, http.MethodGet, "/api/v1/bookings/"+id, nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	booking := response["booking"].(map[string]interface{})
	assert.Equal(t, "pending", booking["status"])
	assert.Equal(t, float64(75000), booking["total_price"])

	// a search matching a single booking exposes the singular key
	recorder, response = doJSON(t, router, http.MethodGet, "/api/v1/bookings?search=81234567", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, response, "booking")
	assert.Equal(t, float64(1), response["count"])

	recorder, _ = doJSON(t, router, http.MethodGet, "/api/v1/bookings?status=nope", nil, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder, _ = doJSON(t, router, http.MethodGet, "/api/v1/bookings/missing-id", nil, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBookingCreationValidation(t *testing.T) {
	router := newTestRouter(t)

	recorder, _ := doJSON(t, router, http.MethodPost, "/api/v1/bookings", gin.H{
		"name": "Rina W.",
	}, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder, _ = doJSON(t, router, http.MethodPost, "/api/v1/bookings", gin.H{
		"name":    "Rina W.",
		"phone":   "081234567890",
		"address": "Jl. Melati No. 5",
		"service": "mandi-salju",
		"date":    "2026-09-01",
		"time":    "10:00",
	}, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCancelBookingAPI(t *testing.T) {
	router := newTestRouter(t)

	id := createTestBooking(t, router)

	recorder, response := doJSON(t, router, http.MethodPost, "/api/v1/bookings/"+id+"/cancel", gin.H{
		"cancel_reason": "Jadwal bentrok",
	}, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	booking := response["booking"].(map[string]interface{})
	assert.Equal(t, "cancelled", booking["status"])
	assert.Equal(t, "Jadwal bentrok", booking["cancel_reason"])

	// already cancelled
	recorder, _ = doJSON(t, router, http.MethodPost, "/api/v1/bookings/"+id+"/cancel", nil, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServiceCatalogEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder, response := doJSON(t, router, http.MethodGet, "/api/v1/services", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	services := response["services"].([]interface{})
	assert.Len(t, services, 3)
}

func TestAdminAuth(t *testing.T) {
	router := newTestRouter(t)

	recorder, _ := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", gin.H{
		"username": "admin",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder, _ = doJSON(t, router, http.MethodGet, "/api/v1/admin/bookings", nil, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	token := adminToken(t, router)
	recorder, response := doJSON(t, router, http.MethodGet, "/api/v1/admin/auth/me", nil, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "admin", response["username"])
}

func TestAdminBookingLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	id := createTestBooking(t, router)

	// invalid transition is rejected
	recorder, _ := doJSON(t, router, http.MethodPatch, "/api/v1/admin/bookings/"+id+"/status",
		gin.H{"status": "completed"}, token)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	for _, status := range []string{"confirmed", "in-progress", "completed"} {
		recorder, response := doJSON(t, router, http.MethodPatch, "/api/v1/admin/bookings/"+id+"/status",
			gin.H{"status": status}, token)
		require.Equal(t, http.StatusOK, recorder.Code)
		booking := response["booking"].(map[string]interface{})
		assert.Equal(t, status, booking["status"])
	}

	recorder, response := doJSON(t, router, http.MethodGet, "/api/v1/admin/dashboard/stats", nil, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	stats := response["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total_bookings"])
}

func TestRatingModerationAPIFlow(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	id := createTestBooking(t, router)

	recorder, response := doJSON(t, router, http.MethodPost, "/api/v1/ratings", gin.H{
		"booking_id":    id,
		"customer_name": "Rina W.",
		"rating":        5,
		"comment":       "Pelayanan sangat memuaskan, kucing saya wangi!",
	}, "")
	require.Equal(t, http.StatusCreated, recorder.Code)
	ratingID := response["rating"].(map[string]interface{})["id"].(string)

	// duplicate is rejected
	recorder, _ = doJSON(t, router, http.MethodPost, "/api/v1/ratings", gin.H{
		"booking_id":    id,
		"customer_name": "Rina W.",
		"rating":        4,
		"comment":       "Mencoba memberi rating lagi untuk booking yang sama",
	}, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// hidden until approved
	recorder, response = doJSON(t, router, http.MethodGet, "/api/v1/ratings", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(0), response["count"])

	recorder, _ = doJSON(t, router, http.MethodPost, "/api/v1/admin/ratings/"+ratingID+"/moderate",
		gin.H{"action": "approve"}, token)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder, response = doJSON(t, router, http.MethodGet, "/api/v1/ratings", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(1), response["count"])

	// admin notifications were persisted along the way
	recorder, response = doJSON(t, router, http.MethodGet, "/api/v1/admin/notifications?unread_only=true", nil, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	notifications := response["notifications"].([]interface{})
	require.NotEmpty(t, notifications)

	first := notifications[0].(map[string]interface{})
	recorder, _ = doJSON(t, router, http.MethodPatch, "/api/v1/admin/notifications/read",
		gin.H{"notification_id": first["id"]}, token)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPromoAPI(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	recorder, response := doJSON(t, router, http.MethodPost, "/api/v1/admin/promos", gin.H{
		"title":          "Promo Kemerdekaan",
		"description":    "Diskon grooming lengkap",
		"start_date":     "2020-01-01",
		"end_date":       "2099-12-31",
		"is_active":      true,
		"original_price": 99000,
	}, token)
	require.Equal(t, http.StatusCreated, recorder.Code)
	promoID := response["promo"].(map[string]interface{})["id"].(string)

	recorder, response = doJSON(t, router, http.MethodGet, "/api/v1/promos", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(1), response["count"])

	recorder, _ = doJSON(t, router, http.MethodDelete, "/api/v1/admin/promos/"+promoID, nil, token)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder, response = doJSON(t, router, http.MethodGet, "/api/v1/promos", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(0), response["count"])
}
