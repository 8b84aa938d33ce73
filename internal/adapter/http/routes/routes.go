package routes

import (
	_ "measure_service/docs" // generated by swag init
	"measure_service/internal/adapter/http/handlers"
	"measure_service/pkg"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine. Measure routes are served at the root and
// under /v1.
func NewRouter(logger *zap.Logger, measureHandler *handlers.MeasureHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addMeasureRoutes(&router.RouterGroup, measureHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMeasureRoutes(v1, measureHandler)

	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	access := logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			access.Error("request", fields...)
		case status >= http.StatusBadRequest:
			access.Warn("request", fields...)
		default:
			access.Info("request", fields...)
		}
	}
}
