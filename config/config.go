// config/config.go
// 在 app.LoadConfig 读取环境变量之前准备环境：先 .env，再用 TOML 文件补齐未设置的变量
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// File 配置文件结构，字段与环境变量一一对应
type File struct {
	Port           int      `toml:"port"`
	TableSize      int      `toml:"table_size"`
	StaticDir      string   `toml:"static_dir"`
	StaticAllow    []string `toml:"static_allow"`
	WebOrigin      string   `toml:"web_origin"`
	DatabaseURL    string   `toml:"database_url"`
	RedisAddr      string   `toml:"redis_addr"`
	RedisPassword  string   `toml:"redis_password"`
	ReportThrottle string   `toml:"report_throttle"`
}

// LoadEnv 读取 .env（不存在时忽略）
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}
}

// LoadFile 读取 TOML，只导出环境里还没有的变量；文件不存在不算错误
func LoadFile(path string) error {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	var f File
	if err := toml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if f.ReportThrottle != "" {
		if _, err := time.ParseDuration(f.ReportThrottle); err != nil {
			return fmt.Errorf("report_throttle: %w", err)
		}
	}
	for k, v := range f.env() {
		if _, ok := os.LookupEnv(k); ok || v == "" {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("setenv %s: %w", k, err)
		}
	}
	return nil
}

func (f File) env() map[string]string {
	num := func(n int) string {
		if n == 0 {
			return ""
		}
		return strconv.Itoa(n)
	}
	return map[string]string{
		"PORT":            num(f.Port),
		"TABLE_SIZE":      num(f.TableSize),
		"STATIC_DIR":      f.StaticDir,
		"STATIC_ALLOW":    strings.Join(f.StaticAllow, ","),
		"WEB_ORIGIN":      f.WebOrigin,
		"DATABASE_URL":    f.DatabaseURL,
		"REDIS_ADDR":      f.RedisAddr,
		"REDIS_PASSWORD":  f.RedisPassword,
		"REPORT_THROTTLE": f.ReportThrottle,
	}
}
