package http

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/galaevents/seating-service/internal/config"
	"github.com/galaevents/seating-service/internal/directory"
	"github.com/galaevents/seating-service/internal/logger"
	"github.com/galaevents/seating-service/internal/mailer"
	"github.com/galaevents/seating-service/internal/service"
)

func newTestRouter(t *testing.T, eventDate string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.NewLogger(false)
	assert.NoError(t, err)

	cfg := &config.Config{
		Event: config.EventConfig{
			Date:       eventDate,
			SendTime:   "21:00",
			Timezone:   "UTC",
			CronSecret: "test-secret",
		},
		Catalog:   config.CatalogConfig{Attendees: 40, Tables: 4, Capacity: 10, Columns: 2, Rows: 2},
		RateLimit: config.RateLimitConfig{RPS: 1000, Burst: 1000},
	}
	store := directory.New(cfg.Catalog, rand.New(rand.NewSource(1)))
	svc := service.NewSeatingService(store, mailer.NewSimulator(log), "test <t@t>", time.Millisecond, log)
	return NewRouter(svc, cfg, log)
}

func doJSON(r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.1:1234"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchEndpoint(t *testing.T) {
	r := newTestRouter(t, "2099-01-01")

	// missing fields
	w := doJSON(r, http.MethodPost, "/api/search", gin.H{"name": "María"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown attendee
	w = doJSON(r, http.MethodPost, "/api/search", gin.H{"name": "x", "email": "nobody@email.com"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// found; draw ran lazily on first search
	w = doJSON(r, http.MethodPost, "/api/search", gin.H{"name": "jose", "email": "maria.rodriguez2@email.com"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "email for a different attendee must not match")

	w = doJSON(r, http.MethodPost, "/api/search", gin.H{"name": "maría", "email": "maria.garcia1@email.com"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Attendee struct {
			ID      int  `json:"id"`
			TableID *int `json:"tableId"`
			Seat    *int `json:"seat"`
		} `json:"attendee"`
		Tablemates []json.RawMessage `json:"tablemates"`
		AllTables  []json.RawMessage `json:"allTables"`
		EmailSent  bool              `json:"emailSent"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Attendee.ID)
	assert.NotNil(t, resp.Attendee.TableID)
	assert.NotNil(t, resp.Attendee.Seat)
	assert.Len(t, resp.Tablemates, 9)
	assert.Len(t, resp.AllTables, 4)
	assert.True(t, resp.EmailSent)
}

func TestDrawEndpoint(t *testing.T) {
	r := newTestRouter(t, "2099-01-01")
	w := doJSON(r, http.MethodPost, "/api/draw", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success  bool `json:"success"`
		Assigned int  `json:"assigned"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 40, resp.Assigned)
}

func TestStatusEndpoint(t *testing.T) {
	r := newTestRouter(t, "2099-01-01")
	w := doJSON(r, http.MethodGet, "/api/status", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2099-01-01")
}

func TestNotifyAllAuth(t *testing.T) {
	r := newTestRouter(t, "2099-01-01")

	w := doJSON(r, http.MethodPost, "/api/notify-all", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/notify-all", nil, map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotifyAllWrongDay(t *testing.T) {
	r := newTestRouter(t, "2099-01-01")
	w := doJSON(r, http.MethodPost, "/api/notify-all", nil, map[string]string{"Authorization": "Bearer test-secret"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "2099-01-01")
}

func TestNotifyAllOnEventDay(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")
	r := newTestRouter(t, today)

	// draw first so every attendee has a seat
	w := doJSON(r, http.MethodPost, "/api/draw", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/notify-all", nil, map[string]string{"Authorization": "Bearer test-secret"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Report  struct {
			Sent  int `json:"sent"`
			Total int `json:"total"`
		} `json:"report"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 40, resp.Report.Total)
	assert.Equal(t, 40, resp.Report.Sent)
}
