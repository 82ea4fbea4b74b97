package router

import (
	"log/slog"
	"net/http"

	"restaurant-pos/internal/config"
	"restaurant-pos/internal/handler"
	"restaurant-pos/internal/middleware"
	"restaurant-pos/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// resource is the CRUD surface every entity exposes.
type resource interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Patch(c *gin.Context)
	Delete(c *gin.Context)
}

func register(g *gin.RouterGroup, path string, h resource) {
	r := g.Group(path)
	r.GET("", h.List)
	r.POST("", h.Create)
	r.GET("/:id", h.Get)
	r.PUT("/:id", h.Update)
	r.PATCH("/:id", h.Patch)
	r.DELETE("/:id", h.Delete)
}

// SetupRouter configures the Gin engine and the API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, log *slog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s := store.New(db)
	pageSize := cfg.App.PageSize

	// ====== API ======
	api := r.Group("/api")

	register(api, "/user-tables", handler.NewUserTableHandler(s, pageSize))
	register(api, "/day-books", handler.NewDayBookHandler(s, pageSize))
	register(api, "/main-courses", handler.NewMainCourseHandler(s, pageSize))
	register(api, "/menu-items", handler.NewMenuItemHandler(s, pageSize))
	register(api, "/final-orders", handler.NewFinalOrderHandler(s, pageSize))

	exportHandler := handler.NewExportHandler(s)
	api.GET("/export/day-books/csv", exportHandler.ExportCSV)
	api.GET("/export/day-books/xlsx", exportHandler.ExportXLSX)

	return r
}
