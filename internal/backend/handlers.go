package backend

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Artem-be/HRTest/internal/domain"
)

type leadRequest struct {
	TgID        int64  `json:"tg_id"`
	Name        string `json:"name"`
	NumberPhone string `json:"number_phone"`
	Service     string `json:"service"`
}

type leadData struct {
	TgID        int64  `json:"tg_id"`
	Name        string `json:"name"`
	NumberPhone string `json:"number_phone"`
	Service     string `json:"service"`
}

type activityRequest struct {
	UserID int64  `json:"user_id"`
	Action string `json:"action"`
}

// createOrUpdate создает заявку. Несмотря на имя, строка всегда новая:
// повторная отправка с тем же tg_id создает вторую заявку.
func (s *Server) createOrUpdate(c *gin.Context) {
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Все поля обязательны"})
		return
	}
	if req.TgID == 0 || req.Name == "" || req.NumberPhone == "" || req.Service == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Все поля обязательны"})
		return
	}

	lead, err := s.leads.Create(c.Request.Context(), domain.Lead{
		TgID:    req.TgID,
		Name:    req.Name,
		Phone:   req.NumberPhone,
		Service: req.Service,
	})
	if err != nil {
		s.log.Error("lead insert failed", "tg_id", req.TgID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сервера"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": leadData{
			TgID:        lead.TgID,
			Name:        lead.Name,
			NumberPhone: lead.Phone,
			Service:     lead.Service,
		},
	})
}

func (s *Server) logActivity(c *gin.Context) {
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id и action обязательны"})
		return
	}
	if req.UserID == 0 || req.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id и action обязательны"})
		return
	}

	if err := s.activity.Append(c.Request.Context(), req.UserID, req.Action); err != nil {
		s.log.Error("activity insert failed", "user_id", req.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сервера"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// dailyStats — уникальные user_id за последние 24 часа (timestamp >= now-24h).
func (s *Server) dailyStats(c *gin.Context) {
	since := s.now().UTC().Add(-24 * time.Hour)

	n, err := s.activity.DistinctUsersSince(c.Request.Context(), since)
	if err != nil {
		s.log.Error("daily stats query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сервера"})
		return
	}

	c.JSON(http.StatusOK, domain.DailyStats{
		UniqueUsers24h: n,
		Period:         "last_24_hours",
	})
}
