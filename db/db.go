package db

import (
	"fmt"
	"log"
	"os"

	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSNFromEnv 由 DB_* 变量拼 DSN；DB_HOST 为空时返回 ""（不启用审计）
func DSNFromEnv() string {
	if os.Getenv("DB_HOST") == "" {
		return ""
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		port,
	)
}

func Connect(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Println("Database connected")
	return conn, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ReportLog{}); err != nil {
		return err
	}

	// 按时间倒序翻最近登记
	return db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_created_at_desc
	  ON %s (created_at DESC);
	`, models.ReportLogTable, models.ReportLogTable)).Error
}
