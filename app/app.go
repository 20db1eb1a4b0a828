package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/db"
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/limiter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// 简化别名，便于 handlers 调用
type Ctx = gin.Context
type H = gin.H

// App 聚合各依赖。DB / RDB 可为 nil（未配置时不启用审计 / 限流）
type App struct {
	Router  *gin.Engine
	DB      *gorm.DB
	RDB     *redis.Client
	Tracker *Tracker
	Config  Config

	throttle *limiter.Store
}

// Config 从环境变量读取
type Config struct {
	Port           string
	TableSize      int
	StaticDir      string
	StaticAllow    []string
	WebOrigin      string
	DatabaseURL    string
	RedisAddr      string
	RedisPwd       string
	ReportThrottle time.Duration
}

var defaultStaticAllow = []string{"*.html", "*.css", "*.js", "*.ico", "*.png", "*.svg", "*.jpg"}

func (a *App) Throttle() *limiter.Store { return a.throttle }

// New 按配置装配依赖；Postgres 与 Redis 都是可选的
func New(cfg Config) (*App, error) {
	a := &App{Config: cfg, Tracker: NewTracker(cfg.TableSize)}

	// --- DB: Postgres（审计日志）---
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db: %w", err)
		}
		a.DB = conn
	}

	// --- Redis（登记限流）---
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			a.Close()
			_ = rdb.Close()
			return nil, fmt.Errorf("redis: %w", err)
		}
		a.RDB = rdb
		a.throttle = limiter.NewStore(rdb, cfg.ReportThrottle)
	}

	// --- Gin ---
	r := gin.Default()
	r.Use(RequestID())
	useCORS(r, cfg.WebOrigin)
	a.Router = r
	return a, nil
}

func (a *App) Close() {
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// LoadConfig 读取环境变量，未设置时使用默认值
func LoadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	size, err := strconv.Atoi(get("TABLE_SIZE", "10"))
	if err != nil || size <= 0 {
		log.Printf("invalid TABLE_SIZE %q, using 10", os.Getenv("TABLE_SIZE"))
		size = 10
	}
	var throttle time.Duration
	if v := os.Getenv("REPORT_THROTTLE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			throttle = d
		} else {
			log.Printf("invalid REPORT_THROTTLE %q, throttle disabled", v)
		}
	}
	allow := defaultStaticAllow
	if csv := os.Getenv("STATIC_ALLOW"); csv != "" {
		allow = nil
		for _, p := range strings.Split(csv, ",") {
			if s := strings.TrimSpace(p); s != "" {
				allow = append(allow, s)
			}
		}
	}
	return Config{
		Port:           get("PORT", "18080"),
		TableSize:      size,
		StaticDir:      get("STATIC_DIR", "."),
		StaticAllow:    allow,
		WebOrigin:      get("WEB_ORIGIN", "http://localhost:18080"),
		DatabaseURL:    get("DATABASE_URL", db.DSNFromEnv()),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPwd:       os.Getenv("REDIS_PASSWORD"),
		ReportThrottle: throttle,
	}
}
