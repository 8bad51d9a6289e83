package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robinjoseph08/golib/logger"
	"github.com/snnyvrz/bookcatalog/internal/dto"
	"gorm.io/gorm"
)

const (
	statusOK    = "ok"
	statusReady = "ready"
	statusDown  = "down"
)

// HealthStatus is the body of /health and /ready. Store is only set by /ready.
type HealthStatus struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime"`
	Store         string `json:"store,omitempty"`
	Error         string `json:"error,omitempty"`
}

type HealthHandler struct {
	db        *gorm.DB
	startTime time.Time
	version   string
}

func NewHealthHandler(db *gorm.DB, startTime time.Time, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: startTime,
		version:   version,
	}
}

func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
}

func (h *HealthHandler) status(s string) HealthStatus {
	return HealthStatus{
		Status:        s,
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  handler.HealthStatus
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, dto.ContentTypeJSONUTF8, h.status(statusOK))
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Pings the book store
// @Tags         health
// @Produce      json
// @Success      200  {object}  handler.HealthStatus
// @Failure      503  {object}  handler.HealthStatus
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}

	if err != nil {
		logger.FromContext(ctx).Warn("store ping failed", logger.Data{"error": err.Error()})

		body := h.status(statusDown)
		body.Store = statusDown
		body.Error = err.Error()
		writeJSON(c, http.StatusServiceUnavailable, dto.ContentTypeJSONUTF8, body)
		return
	}

	body := h.status(statusReady)
	body.Store = "up"
	writeJSON(c, http.StatusOK, dto.ContentTypeJSONUTF8, body)
}
