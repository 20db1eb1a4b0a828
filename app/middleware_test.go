package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAllower struct {
	seen map[string]bool
	err  error
}

func (f *fakeAllower) Allow(_ context.Context, scope, client string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	k := scope + "|" + client
	if f.seen[k] {
		return false, nil
	}
	f.seen[k] = true
	return true, nil
}

func throttledRouter(l Allower) *gin.Engine {
	r := gin.New()
	r.POST("/report", ThrottleReports(l, "report"), func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func post(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = "10.1.2.3:5555"
	r.ServeHTTP(w, req)
	return w
}

func TestThrottleReports(t *testing.T) {
	r := throttledRouter(&fakeAllower{seen: map[string]bool{}})

	assert.Equal(t, http.StatusOK, post(r, "/report").Code)
	w := post(r, "/report")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many reports, slow down", w.Body.String())
}

func TestThrottleReports_FailOpen(t *testing.T) {
	r := throttledRouter(&fakeAllower{err: errors.New("redis down")})
	assert.Equal(t, http.StatusOK, post(r, "/report").Code)
	assert.Equal(t, http.StatusOK, post(r, "/report").Code)

	assert.Equal(t, http.StatusOK, post(throttledRouter(nil), "/report").Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestID")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
