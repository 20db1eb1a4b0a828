// controllers/report_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ReportController struct{ *Srv }

func NewReportController(s *Srv) *ReportController { return &ReportController{Srv: s} }

// 指针字段区分“没传”和零值（isLost=false、id=0 都是合法输入）
type reportRequest struct {
	ID          *int    `json:"id" binding:"required"`
	Description *string `json:"description" binding:"required"`
	Location    *string `json:"location" binding:"required"`
	Date        *string `json:"date" binding:"required"`
	IsLost      *bool   `json:"isLost" binding:"required"`
	ReportedBy  string  `json:"reportedBy"`
	ContactInfo string  `json:"contactInfo"`
	Tags        string  `json:"tags"`
	Notes       string  `json:"notes"`
}

func (r reportRequest) item() models.Item {
	return models.Item{
		ID:          *r.ID,
		Description: *r.Description,
		Location:    *r.Location,
		Date:        *r.Date,
		IsLost:      *r.IsLost,
		ReportedBy:  r.ReportedBy,
		ContactInfo: r.ContactInfo,
		Tags:        r.Tags,
		Notes:       r.Notes,
	}
}

// POST /report  JSON
func (rc *ReportController) Report(c *gin.Context) {
	var in reportRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.String(http.StatusBadRequest, "Missing required fields")
			return
		}
		c.String(http.StatusBadRequest, "Invalid JSON")
		return
	}
	rc.record(c, in.item(), models.SourceJSON)
	c.String(http.StatusOK, "Item reported successfully")
}

// POST /test_report  x-www-form-urlencoded。缺省字段取空值，id 缺省为 0
func (rc *ReportController) TestReport(c *gin.Context) {
	id := 0
	if v, ok := c.GetPostForm("id"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid id")
			return
		}
		id = n
	}
	it := models.Item{
		ID:          id,
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		Date:        c.PostForm("date"),
		IsLost:      c.PostForm("isLost") == "true",
		ReportedBy:  c.PostForm("reportedBy"),
		ContactInfo: c.PostForm("contactInfo"),
		Tags:        c.PostForm("tags"),
		Notes:       c.PostForm("notes"),
	}
	rc.record(c, it, models.SourceForm)
	c.String(http.StatusOK, "Test item reported successfully")
}
