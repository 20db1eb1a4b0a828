package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID 透传或生成请求 ID，写回响应头并放进 Context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Allower 限流存储（limiter.Store 实现）
type Allower interface {
	Allow(ctx context.Context, scope, client string) (bool, error)
}

// ThrottleReports 同一 IP 在窗口期内只允许登记一次。Redis 出错时放行
func ThrottleReports(l Allower, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		ok, err := l.Allow(c.Request.Context(), scope, c.ClientIP())
		if err != nil {
			log.Printf("throttle %s: %v", scope, err) // 不阻塞请求
			c.Next()
			return
		}
		if !ok {
			c.String(http.StatusTooManyRequests, "Too many reports, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
