// controllers/static_controller.go
package controllers

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// StaticController 前端页面与资源，只读本地文件，和索引无关
type StaticController struct {
	root  string
	allow []string // doublestar 模式，相对 root
}

func NewStaticController(root string, allow []string) *StaticController {
	return &StaticController{root: root, allow: allow}
}

// GET /
func (sc *StaticController) Index(c *gin.Context) { sc.serve(c, "index.html") }

// GET /favicon.ico
func (sc *StaticController) Favicon(c *gin.Context) { sc.serve(c, "favicon.ico") }

// NoRoute 兜底：GET/HEAD 按路径找文件，其余维持 404
func (sc *StaticController) Fallback(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		return
	}
	sc.serve(c, strings.TrimPrefix(c.Request.URL.Path, "/"))
}

func (sc *StaticController) serve(c *gin.Context, name string) {
	if !sc.allowed(name) {
		c.Status(http.StatusNotFound)
		return
	}
	b, err := os.ReadFile(filepath.Join(sc.root, filepath.FromSlash(name)))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(b))
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, contentType(name, b), b)
}

func (sc *StaticController) allowed(name string) bool {
	if name == "" || strings.Contains(name, "\\") || path.IsAbs(name) || path.Clean(name) != name {
		return false
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == ".." || strings.HasPrefix(seg, ".") {
			return false
		}
	}
	for _, p := range sc.allow {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

func contentType(name string, b []byte) string {
	ext := strings.ToLower(path.Ext(name))
	switch ext {
	case ".html":
		return "text/html"
	case ".css":
		return "text/css"
	case ".ico":
		return "image/x-icon"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return mimetype.Detect(b).String()
}
