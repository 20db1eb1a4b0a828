package db

import (
	"context"
	"fmt"

	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/models"

	"gorm.io/gorm"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

// LogReport 写一条登记审计
func (r *Repo) LogReport(ctx context.Context, l *models.ReportLog) error {
	if err := r.DB.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("insert report log: %w", err)
	}
	return nil
}

// RecentReports 最近的登记，新的在前
func (r *Repo) RecentReports(ctx context.Context, limit int) ([]models.ReportLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var ls []models.ReportLog
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&ls).Error; err != nil {
		return nil, err
	}
	return ls, nil
}
