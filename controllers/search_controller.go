// controllers/search_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/app"
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/models"

	"github.com/gin-gonic/gin"
)

type SearchController struct{ *Srv }

func NewSearchController(s *Srv) *SearchController { return &SearchController{Srv: s} }

type searchRequest struct {
	ID          *int    `json:"id"`
	Description *string `json:"description"`
}

// POST /search  id 优先，其次 description（空串匹配全部）
func (sc *SearchController) Search(c *gin.Context) {
	var in searchRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.String(http.StatusBadRequest, "Invalid JSON")
		return
	}

	var results []models.Item
	switch {
	case in.ID != nil:
		results = sc.Tracker.FindByID(*in.ID)
	case in.Description != nil:
		results = sc.Tracker.FindByDescription(*in.Description)
	default:
		c.String(http.StatusBadRequest, "Missing search parameters")
		return
	}
	c.JSON(http.StatusOK, app.H{"results": results})
}

// GET /api/items  全部记录，按桶序 + 插入序
func (sc *SearchController) ListItems(c *gin.Context) {
	all := sc.Tracker.All()
	c.JSON(http.StatusOK, app.H{"results": all, "count": len(all)})
}

// GET /api/reports/recent?limit=
func (sc *SearchController) RecentReports(c *gin.Context) {
	if sc.Audit == nil {
		c.JSON(http.StatusNotFound, app.H{"error": "report log disabled"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	ls, err := sc.Audit.RecentReports(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"items": ls})
}

// GET /healthz
func (sc *SearchController) Health(c *app.Ctx) {
	c.JSON(http.StatusOK, app.H{
		"ok":        true,
		"items":     sc.Tracker.Len(),
		"tableSize": sc.Tracker.Size(),
		"auditLog":  sc.Audit != nil,
	})
}
