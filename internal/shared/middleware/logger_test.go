package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func loggedLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func loggerRouter(status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/posts/:id", func(c *gin.Context) {
		c.Status(status)
	})
	return r
}

func TestLogger_RecordsRouteAndStatus(t *testing.T) {
	buf := captureLogs(t)
	r := loggerRouter(http.StatusOK)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/123", nil)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)

	line := loggedLine(t, buf)
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/posts/123", line["path"])
	assert.Equal(t, "/posts/:id", line["route"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
	assert.Equal(t, "req-42", line["request_id"])
}

func TestLogger_LevelFollowsStatusClass(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "info"},
		{http.StatusBadRequest, "warn"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		buf := captureLogs(t)
		r := loggerRouter(tt.status)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/1", nil))

		line := loggedLine(t, buf)
		assert.Equal(t, tt.level, line["level"], "status %d", tt.status)
	}
}
