package models

import "time"

const ReportLogTable = "laf_report_log"

// 登记来源
const (
	SourceJSON    = "json"
	SourceForm    = "form"
	SourceConsole = "console"
)

// ReportLog 每次登记的审计记录。只写不读回索引。
type ReportLog struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID      int       `gorm:"index;not null" json:"itemId"`
	Description string    `gorm:"type:text" json:"description"`
	IsLost      bool      `gorm:"not null" json:"isLost"`
	Source      string    `gorm:"size:16;not null" json:"source"`
	ClientIP    string    `gorm:"size:45" json:"clientIp,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

func (ReportLog) TableName() string { return ReportLogTable }
