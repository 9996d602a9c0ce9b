package apikey

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(p Policy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Middleware(p))

	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	engine.GET("/x", ok)
	engine.POST("/x", ok)
	engine.PUT("/x", ok)
	engine.DELETE("/x", ok)
	return engine
}

func doRequest(router *gin.Engine, method, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/x", nil)
	if key != "" {
		req.Header.Set(HeaderName, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMiddlewareFull(t *testing.T) {
	router := newTestRouter(New("abc", "xyz"))

	t.Run("GET with read-only key forwarded", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "xyz")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("POST with read-only key rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "xyz")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Invalid api-key", w.Body.String())
	})

	t.Run("POST with master key forwarded", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "abc")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no key rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Invalid api-key", w.Body.String())
	})

	t.Run("rejections are uniform", func(t *testing.T) {
		missing := doRequest(router, http.MethodPost, "")
		wrong := doRequest(router, http.MethodPost, "bad")
		wrongMethod := doRequest(router, http.MethodPost, "xyz")

		for _, w := range []*httptest.ResponseRecorder{missing, wrong, wrongMethod} {
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Equal(t, "Invalid api-key", w.Body.String())
			assert.Empty(t, w.Header().Get("WWW-Authenticate"))
		}
	})
}

func TestMiddlewareReadOnly(t *testing.T) {
	router := newTestRouter(New("", "xyz"))

	t.Run("PUT with read-only key rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, "xyz")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Invalid api-key", w.Body.String())
	})

	t.Run("GET with read-only key forwarded", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "xyz")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMiddlewarePhantom(t *testing.T) {
	router := newTestRouter(New("", ""))

	w := doRequest(router, http.MethodDelete, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
