package handlers

import (
	"context"
	"net/http"
	"time"

	"clinic_queue/internal/auth"
	"clinic_queue/internal/config"
	"clinic_queue/internal/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterConfig struct {
	AppEnv     config.AppEnv
	Engine     *queue.Engine
	Directory  nameDirectory
	Gatherer   prometheus.Gatherer
	AuthSecret []byte
	Logger     *logrus.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.AppEnv == config.ProductionEnv {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(cfg.Logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	queueHandler := NewQueueHandler(cfg.Engine, cfg.Directory, cfg.Logger)
	queues := r.Group("/api/queue")
	{
		queues.POST("", queueHandler.Enqueue)
		queues.GET("", queueHandler.ListAll)
		queues.GET("/estimate", queueHandler.Estimate)
		queues.GET("/:id", queueHandler.Get)
		queues.PATCH("/:id/status", queueHandler.UpdateStatus)
		queues.DELETE("/:id", queueHandler.Remove)
		queues.GET("/doctor/:doctorId", queueHandler.ListByDoctor)
		queues.GET("/doctor/:doctorId/active", queueHandler.ListActiveByDoctor)
		queues.POST("/doctor/:doctorId/next", queueHandler.Next)
		queues.GET("/patient/:patientId", queueHandler.ListByPatient)
		queues.POST("/complete/:id", queueHandler.Complete)
		queues.POST("/skip/:id", queueHandler.Skip)
	}

	adminHandler := NewAdminHandler(cfg.Engine, cfg.Directory, cfg.Logger)
	admin := r.Group("/api/admin")
	admin.Use(auth.AuthMiddleware(cfg.AuthSecret))
	{
		admin.POST("/emergency/reset-queue/:doctorId", adminHandler.ResetQueue)
		admin.DELETE("/cleanup/completed-queues", adminHandler.CleanupCompleted)
		admin.GET("/dashboard/stats", adminHandler.DashboardStats)
		admin.GET("/dashboard/recent-activities", adminHandler.RecentActivity)
		admin.GET("/reports/queue", adminHandler.QueueReport)
		admin.GET("/reports/doctor-utilization", adminHandler.DoctorUtilization)
	}

	return r
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("request served")
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down.
func Serve(ctx context.Context, address string, handler http.Handler, logger *logrus.Logger) error {
	srv := &http.Server{
		Addr:    address,
		Handler: handler,
	}

	logger.Infof("rest server starting at: %s", address)
	srvError := make(chan error, 1)
	go func() {
		srvError <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("rest server is shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-srvError:
		return err
	}
}
