package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/middleware"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/repository"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/service"
	"github.com/MTrazona/aurum-platform-admin-sub000/pkg/pagination"
	"github.com/MTrazona/aurum-platform-admin-sub000/pkg/response"
)

type AuditHandler struct {
	auditService service.AuditService
	jwtSecret    []byte
}

func NewAuditHandler(auditService service.AuditService, jwtSecret []byte) *AuditHandler {
	return &AuditHandler{auditService: auditService, jwtSecret: jwtSecret}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/audit-logs", middleware.RequireRole(h.jwtSecret, "admin", "supervisor"), h.ListAuditLogs)
}

// ListAuditLogs returns the review action trail, newest first.
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	params := pagination.Parse(c)
	filter := repository.AuditFilter{
		Domain: c.Query("domain"),
		Action: c.Query("action"),
		Page:   params.Page,
		Limit:  params.Limit,
	}

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"logs": logs,
		"meta": params.MetaFor(total),
	}))
}
