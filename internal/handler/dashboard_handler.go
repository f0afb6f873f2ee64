package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/middleware"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/review"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/stats"
	"github.com/MTrazona/aurum-platform-admin-sub000/pkg/response"
)

// DashboardHandler serves the combined landing-page metrics: one stats
// snapshot per reviewable domain in a single response.
type DashboardHandler struct {
	engines   map[model.Domain]review.Reviewer
	jwtSecret []byte
}

func NewDashboardHandler(engines *review.Engines, jwtSecret []byte) *DashboardHandler {
	return &DashboardHandler{engines: engines.ByDomain, jwtSecret: jwtSecret}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/dashboard/stats", middleware.RequireRole(h.jwtSecret, "admin", "supervisor", "reviewer"), h.Stats)
}

// Stats recomputes every domain's snapshot against the same "now" so
// the cards on one dashboard render are mutually consistent.
func (h *DashboardHandler) Stats(c *gin.Context) {
	now := time.Now()
	out := make(map[string]stats.Snapshot, len(h.engines))
	for domain, eng := range h.engines {
		out[string(domain)] = eng.Stats(c.Request.Context(), now)
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, out))
}
