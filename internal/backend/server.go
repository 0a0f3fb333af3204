package backend

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Artem-be/HRTest/internal/domain"
)

// Server держит зависимости обработчиков /usercontrol/.
type Server struct {
	leads    domain.LeadRepository
	activity domain.ActivityRepository
	log      *slog.Logger
	now      func() time.Time
}

// NewRouter собирает роутер: /healthz и три обработчика /usercontrol/.
// Аутентификации нет, наружу такой бэкенд выставлять нельзя.
func NewRouter(leads domain.LeadRepository, activity domain.ActivityRepository, log *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{leads: leads, activity: activity, log: log, now: time.Now}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.accessLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	uc := r.Group("/usercontrol")
	uc.POST("/create_or_update/", s.createOrUpdate)
	uc.POST("/log_activity/", s.logActivity)
	uc.GET("/daily_stats/", s.dailyStats)

	return r
}

// accessLog пишет одну строку на запрос с request id.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := uuid.New().String()
		c.Set("request_id", reqID)
		start := time.Now()

		c.Next()

		s.log.Info("request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
