package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/middleware"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/service"
	"github.com/MTrazona/aurum-platform-admin-sub000/pkg/response"
)

type CharityHandler struct {
	charityService service.CharityService
	jwtSecret      []byte
}

func NewCharityHandler(charityService service.CharityService, jwtSecret []byte) *CharityHandler {
	return &CharityHandler{charityService: charityService, jwtSecret: jwtSecret}
}

func (h *CharityHandler) RegisterRoutes(router *gin.RouterGroup) {
	charities := router.Group("/api/charities")
	{
		charities.GET("", middleware.RequireRole(h.jwtSecret, "admin", "supervisor", "reviewer"), h.List)
		charities.DELETE("/:id", middleware.RequireRole(h.jwtSecret, "admin", "supervisor"), h.Delete)
	}
}

// List returns the donation campaigns.
func (h *CharityHandler) List(c *gin.Context) {
	charities := h.charityService.List(c.Request.Context(), filtersFrom(c))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, charities))
}

// Delete removes a campaign on the platform and locally.
func (h *CharityHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid charity id"))
		return
	}

	if err := h.charityService.Delete(c.Request.Context(), actorID(c), id); err != nil {
		code := statusFor(err)
		c.JSON(code, response.ClassifiedError(code, err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}
