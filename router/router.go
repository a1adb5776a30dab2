package router

import (
	"path/filepath"

	"github.com/labstack/echo/v4"

	"cropcare/pkg/middleware"
)

type Options struct {
	StaticDir     string
	AuthRateLimit float64
}

func New(
	e *echo.Echo,
	opts Options,
	sessions *middleware.Sessions,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		Logout(echo.Context) error
		Dashboard(echo.Context) error
		AdminLogin(echo.Context) error
		AdminLogout(echo.Context) error
	},
	recCtrl interface {
		Recommend(echo.Context) error
		Options(echo.Context) error
	},
	fbCtrl interface {
		Submit(echo.Context) error
		List(echo.Context) error
	},
	cropCtrl interface {
		Add(echo.Context) error
		Import(echo.Context) error
		List(echo.Context) error
	},
	adminCtrl interface {
		Dashboard(echo.Context) error
		Users(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(sessions.Load())

	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", middleware.MetricsHandler())

	if opts.StaticDir != "" {
		e.Static("/static", opts.StaticDir)
		e.File("/", filepath.Join(opts.StaticDir, "index.html"))
	}

	limited := middleware.RateLimit(opts.AuthRateLimit)
	e.POST("/register", authCtrl.Register, limited)
	e.POST("/login", authCtrl.Login, limited)
	e.POST("/logout", authCtrl.Logout)

	user := middleware.RequireUser()
	e.GET("/dashboard", authCtrl.Dashboard, user)
	e.POST("/recommend", recCtrl.Recommend, user)
	e.GET("/recommend/options", recCtrl.Options, user)
	e.POST("/feedback", fbCtrl.Submit, user)

	e.POST("/admin/login", authCtrl.AdminLogin, limited)
	e.POST("/admin/logout", authCtrl.AdminLogout)

	admin := e.Group("/admin", middleware.RequireAdmin())
	admin.GET("/dashboard", adminCtrl.Dashboard)
	admin.GET("/users", adminCtrl.Users)
	admin.GET("/feedback", fbCtrl.List)
	admin.GET("/crops", cropCtrl.List)
	admin.POST("/crops", cropCtrl.Add)
	admin.POST("/crops/import", cropCtrl.Import)
	return e
}
