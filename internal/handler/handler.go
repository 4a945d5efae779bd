package handler

import (
	"net/http"

	"github.com/CreatorKit/api-service/internal/metrics"
	"github.com/CreatorKit/api-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	services        *service.Service
	logger          *zap.Logger
	metrics         metrics.HTTPMetrics
	metricsEndpoint http.Handler
}

func New(services *service.Service, logger *zap.Logger, prom *metrics.Prom) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
		metrics:  metrics.Noop{},
	}
	if prom != nil {
		h.metrics = prom
		h.metricsEndpoint = prom.Handler()
	}

	return h
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(h.handlePanic))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Workspace-Id"},
	}))
	router.Use(h.mwMetrics)

	if h.metricsEndpoint != nil {
		router.GET("/metrics", gin.WrapH(h.metricsEndpoint))
	}

	api := router.Group("/api/v1", h.mwAuth)
	{
		user := api.Group("/user")
		{
			auth := user.Group("/auth")
			{
				auth.POST("/email/send-otp", h.userSendOTP)
				auth.POST("/email/verify-otp", h.userVerifyOTP)
				auth.POST("/google/verify", h.userGoogleVerify)
			}

			user.GET("/profile", h.userProfile)
		}

		workspace := api.Group("/workspace")
		{
			workspace.GET("", h.workspaceCheckAuth)
			workspace.GET("/home", h.workspaceHome)
		}

		aiTools := api.Group("/ai-tools")
		{
			aiTools.POST("/generators/images", h.generateImages)
			aiTools.GET("/generators/images/history", h.imagesHistory)
		}

		public := api.Group("/public")
		{
			public.GET("", h.healthCheck)
			public.POST("/upload/image", h.uploadImage)
		}
	}

	return router
}

func (h *Handler) handlePanic(c *gin.Context, recovered interface{}) {
	h.logger.Sugar().Errorf("panic handling %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	respondError(c, http.StatusInternalServerError, "Something went wrong! Please contact your admin")
	c.Abort()
}
