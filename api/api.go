package api

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fincontrol/internal/app"
	"fincontrol/internal/logger"
	"fincontrol/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                *sql.DB
	SimulationHandler app.SimulationHandler
	PriceService      service.PriceService
}

func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fincontrol"})
	})
	router.POST("/simulate", m.simulate)
	router.POST("/tickerHints", m.tickerHints)
	router.POST("/profile", m.profile)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := logger.New()
	requestCtx := context.WithValue(ctx.Request.Context(), logger.ContextKey, log)
	ctx.Request = ctx.Request.WithContext(requestCtx)

	start := time.Now().UTC()
	ctx.Next()
	log.Infow("request handled",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
