package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/app"
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

type memAudit struct {
	logs []models.ReportLog
	err  error
}

func (m *memAudit) LogReport(_ context.Context, l *models.ReportLog) error {
	if m.err != nil {
		return m.err
	}
	m.logs = append(m.logs, *l)
	return nil
}

func (m *memAudit) RecentReports(_ context.Context, limit int) ([]models.ReportLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.ReportLog{}
	for i := len(m.logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.logs[i])
	}
	return out, nil
}

func newRouter(s *Srv) *gin.Engine {
	r := gin.New()
	rc := NewReportController(s)
	sc := NewSearchController(s)
	r.POST("/report", rc.Report)
	r.POST("/test_report", rc.TestReport)
	r.GET("/api/reports/recent", sc.RecentReports)
	return r
}

func serve(r http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.RemoteAddr = "192.0.2.10:4000"
	r.ServeHTTP(w, req)
	return w
}

func TestReport_WritesAuditLog(t *testing.T) {
	audit := &memAudit{}
	s := &Srv{Tracker: app.NewTracker(10), Audit: audit}
	r := newRouter(s)

	w := serve(r, http.MethodPost, "/report", "application/json",
		`{"id":5,"description":"black umbrella","location":"Gate 9","date":"2025-02-02","isLost":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	w2 := serve(r, http.MethodPost, "/test_report", "application/x-www-form-urlencoded", "id=6&description=hat&isLost=true")
	require.Equal(t, http.StatusOK, w2.Code)

	require.Len(t, audit.logs, 2)
	first := audit.logs[0]
	assert.Equal(t, w.Header().Get(ReceiptHeader), first.ID)
	assert.Equal(t, 5, first.ItemID)
	assert.Equal(t, "black umbrella", first.Description)
	assert.False(t, first.IsLost)
	assert.Equal(t, models.SourceJSON, first.Source)
	assert.Equal(t, "192.0.2.10", first.ClientIP)
	assert.Equal(t, models.SourceForm, audit.logs[1].Source)
	assert.True(t, audit.logs[1].IsLost)

	w = serve(r, http.MethodGet, "/api/reports/recent?limit=1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Items []models.ReportLog `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, 6, out.Items[0].ItemID)
}

func TestReport_AuditFailureDoesNotFailReport(t *testing.T) {
	s := &Srv{Tracker: app.NewTracker(10), Audit: &memAudit{err: errors.New("db down")}}
	r := newRouter(s)

	w := serve(r, http.MethodPost, "/report", "application/json",
		`{"id":1,"description":"scarf","location":"L","date":"D","isLost":true}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.Tracker.FindByID(1), 1)

	w = serve(r, http.MethodGet, "/api/reports/recent", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func staticRouter(t *testing.T, files map[string]string, allow ...string) *gin.Engine {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	sc := NewStaticController(root, allow)
	r := gin.New()
	r.GET("/", sc.Index)
	r.GET("/favicon.ico", sc.Favicon)
	r.NoRoute(sc.Fallback)
	return r
}

func TestStatic_ContentTypes(t *testing.T) {
	r := staticRouter(t, map[string]string{
		"index.html":     "<html>tracker</html>",
		"style.css":      "body{}",
		"favicon.ico":    "\x00\x00\x01\x00",
		"app.js":         "console.log(1)",
		"assets/map.png": "\x89PNG\r\n\x1a\n",
		"notes.zzz":      "%PDF-1.4 hello",
	}, "*.html", "*.css", "*.ico", "*.js", "assets/**", "*.zzz")

	cases := []struct {
		path, ctype string
	}{
		{"/", "text/html"},
		{"/index.html", "text/html"},
		{"/style.css", "text/css"},
		{"/favicon.ico", "image/x-icon"},
		{"/app.js", "javascript"},
		{"/assets/map.png", "image/png"},
		{"/notes.zzz", "application/pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := serve(r, http.MethodGet, tc.path, "", "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), tc.ctype)
		})
	}

	w := serve(r, http.MethodGet, "/", "", "")
	assert.Equal(t, "<html>tracker</html>", w.Body.String())
}

func TestStatic_NotServed(t *testing.T) {
	r := staticRouter(t, map[string]string{
		"index.html": "ok",
		"secret.env": "TOKEN=1",
		".hidden":    "x",
	}, "*.html", "*")

	for _, p := range []string{"/missing.html", "/.hidden", "/../index.html", "/a/../index.html"} {
		assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, p, "", "").Code, p)
	}
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodPost, "/index.html", "", "").Code)

	r = staticRouter(t, map[string]string{"secret.env": "TOKEN=1"}, "*.html")
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/secret.env", "", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/", "", "").Code)
}

func TestStatic_ETag(t *testing.T) {
	r := staticRouter(t, map[string]string{"index.html": "<h1>Lost & Found</h1>"}, "*.html")

	w := serve(r, http.MethodGet, "/index.html", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestContentType_Fallbacks(t *testing.T) {
	assert.Equal(t, "text/html", contentType("a/INDEX.HTML", nil))
	assert.Equal(t, "text/plain; charset=utf-8", contentType("README", []byte("plain words")))
}
