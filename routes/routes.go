package routes

import (
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/app"
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// 控制器与依赖
	s := controllers.GetSrv(a)
	reportCtl := controllers.NewReportController(s)
	searchCtl := controllers.NewSearchController(s)
	staticCtl := controllers.NewStaticController(a.Config.StaticDir, a.Config.StaticAllow)

	// 登记限流（未配置 Redis 时直接放行）
	throttleMW := app.ThrottleReports(a.Throttle(), "report")

	r.GET("/healthz", searchCtl.Health)

	// ------------------------------
	// 登记 / 查询
	// ------------------------------
	r.POST("/report", throttleMW, reportCtl.Report)
	r.POST("/test_report", throttleMW, reportCtl.TestReport)
	r.POST("/search", searchCtl.Search)

	api := r.Group("/api")
	{
		api.GET("/items", searchCtl.ListItems)
		api.GET("/reports/recent", searchCtl.RecentReports) // ?limit=
	}

	// ------------------------------
	// 静态页面
	// ------------------------------
	r.GET("/", staticCtl.Index)
	r.GET("/favicon.ico", staticCtl.Favicon)
	r.NoRoute(staticCtl.Fallback)
}
