package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/orderdesk-backend/internal/handlers"
	"github.com/yungbote/orderdesk-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName         string
	CORSOrigins         string
	OrderHandler        *handlers.OrderHandler
	CompanyHandler      *handlers.CompanyHandler
	StatsHandler        *handlers.StatsHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(cfg.RequestIDMiddleware.AssignRequestID())

	// Cors
	origins := []string{"http://localhost:3000"}
	if cfg.CORSOrigins != "" {
		origins = strings.Split(cfg.CORSOrigins, ",")
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	// Orders
	router.POST("/order", cfg.OrderHandler.Create)
	router.GET("/orders", cfg.OrderHandler.List)
	router.DELETE("/order", cfg.OrderHandler.Delete)

	// Stats
	router.GET("/stats", cfg.StatsHandler.OrderFrequency)
	router.GET("/company/orders", cfg.StatsHandler.OrdersByCompany)
	router.GET("/order/companies", cfg.StatsHandler.CompaniesByOrderItem)

	// Companies
	router.GET("/company", cfg.CompanyHandler.Get)
	router.PUT("/company", cfg.CompanyHandler.Update)
	router.DELETE("/company", cfg.CompanyHandler.Delete)
	router.GET("/company/paid", cfg.CompanyHandler.Paid)

	return router
}
