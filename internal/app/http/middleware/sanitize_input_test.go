package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitizedRouter(captured *map[string]interface{}) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeAndCleanInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		buf, _ := io.ReadAll(c.Request.Body)
		if len(buf) > 0 {
			_ = json.Unmarshal(buf, captured)
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestSanitizeStripsMarkup(t *testing.T) {
	var captured map[string]interface{}
	r := sanitizedRouter(&captured)

	body := []byte(`{"title": "<script>alert(1)</script>Hook study", "views": 12}`)
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hook study", captured["title"])
	assert.EqualValues(t, 12, captured["views"])
}

func TestSanitizeEmptyBodyPassesThrough(t *testing.T) {
	var captured map[string]interface{}
	r := sanitizedRouter(&captured)

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSanitizeMalformedJSON(t *testing.T) {
	var captured map[string]interface{}
	r := sanitizedRouter(&captured)

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader([]byte(`{"title": `)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeSkipsReads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeAndCleanInputMiddleware())
	r.GET("/echo", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
