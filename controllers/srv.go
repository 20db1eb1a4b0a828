// controllers/srv.go
package controllers

import (
	"context"
	"log"

	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/app"
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/db"
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ReceiptHeader = "X-Receipt-ID"

// AuditLog 登记审计（db.Repo 实现）；为 nil 时不记录
type AuditLog interface {
	LogReport(ctx context.Context, l *models.ReportLog) error
	RecentReports(ctx context.Context, limit int) ([]models.ReportLog, error)
}

type Srv struct {
	Tracker *app.Tracker
	Audit   AuditLog
}

func GetSrv(a *app.App) *Srv {
	s := &Srv{Tracker: a.Tracker}
	if a.DB != nil {
		s.Audit = db.NewRepo(a.DB)
	}
	return s
}

// --- helpers ---

// 入索引 + 审计 + 回执头。审计失败只记日志，不影响登记
func (s *Srv) record(c *gin.Context, it models.Item, source string) string {
	s.Tracker.Insert(it)

	receipt := uuid.NewString()
	if s.Audit != nil {
		l := &models.ReportLog{
			ID:          receipt,
			ItemID:      it.ID,
			Description: it.Description,
			IsLost:      it.IsLost,
			Source:      source,
			ClientIP:    c.ClientIP(),
		}
		if err := s.Audit.LogReport(c.Request.Context(), l); err != nil {
			log.Printf("audit report id=%d: %v", it.ID, err)
		}
	}
	c.Header(ReceiptHeader, receipt)
	return receipt
}
