package v1

import (
	"net/http"

	"go-jobboard-portal/internal/delivery/http/middleware"
	"go-jobboard-portal/internal/delivery/http/response"
	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/internal/usecase"
	"go-jobboard-portal/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	RecordUC       domain.RecordUsecase
	HealthUC       usecase.HealthUsecase
	Metrics        *metrics.HTTP
	AllowedOrigins []string
}

// NewRouter builds the record store API. Each configured collection gets its
// own explicit routes so names never clash with /health or /swagger.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORS(deps.AllowedOrigins))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	r.Use(middleware.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		if deps.HealthUC == nil {
			response.Health(c, nil, true)
			return
		}
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		response.Health(c, status, healthy)
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler := NewRecordHandler(deps.RecordUC)
	for _, name := range deps.RecordUC.Collections() {
		handler.Register(r.Group("/"+name), name)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", nil)
	})

	return r
}
