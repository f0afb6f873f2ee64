package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/middleware"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/platform"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/review"
	"github.com/MTrazona/aurum-platform-admin-sub000/pkg/apperr"
	"github.com/MTrazona/aurum-platform-admin-sub000/pkg/response"
)

// ReviewHandler serves every reviewable domain through one set of
// routes, dispatching on the :domain path segment.
type ReviewHandler struct {
	engines   map[model.Domain]review.Reviewer
	jwtSecret []byte
}

func NewReviewHandler(engines *review.Engines, jwtSecret []byte) *ReviewHandler {
	return &ReviewHandler{engines: engines.ByDomain, jwtSecret: jwtSecret}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/api/reviews/:domain", middleware.RequireRole(h.jwtSecret, "admin", "supervisor", "reviewer"))
	{
		reviews.GET("", h.List)
		reviews.GET("/stats", h.Stats)
		reviews.GET("/selected", h.Selected)
		reviews.POST("/:id/select", h.Select)
		reviews.DELETE("/selected", h.Deselect)
		reviews.PUT("/approve", h.Approve)
		reviews.PUT("/reject", h.Reject)
		reviews.PATCH("/remarks", h.UpdateRemarks)
		reviews.PUT("/release", h.Release)
	}
}

func (h *ReviewHandler) engine(c *gin.Context) (review.Reviewer, bool) {
	domain := model.Domain(c.Param("domain"))
	eng, ok := h.engines[domain]
	if !ok {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "unknown review domain: "+c.Param("domain")))
		return nil, false
	}
	return eng, true
}

func actorID(c *gin.Context) string {
	v, _ := c.Get("userID")
	s, _ := v.(string)
	return s
}

// statusFor maps the error taxonomy onto HTTP statuses for the admin UI.
func statusFor(err error) int {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		return http.StatusBadRequest
	}
	switch appErr.Kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindPermission:
		return http.StatusForbidden
	case apperr.KindTimeout:
		return http.StatusGatewayTimeout
	case apperr.KindNetwork, apperr.KindServer:
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

func filtersFrom(c *gin.Context) platform.ListFilters {
	return platform.ListFilters{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Country:  c.Query("country"),
	}
}

// List returns the domain's current collection, refetching when stale
// or when server-side filters are requested.
func (h *ReviewHandler) List(c *gin.Context) {
	eng, ok := h.engine(c)
	if !ok {
		return
	}
	records := eng.ListRecords(c.Request.Context(), filtersFrom(c))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, records))
}

// Stats returns the derived dashboard snapshot for the domain.
func (h *ReviewHandler) Stats(c *gin.Context) {
	eng, ok := h.engine(c)
	if !ok {
		return
	}
	snap := eng.Stats(c.Request.Context(), time.Now())
	c.JSON(http.StatusOK, response.Success(http.StatusOK, snap))
}

// Select opens a record in the detail view.
func (h *ReviewHandler) Select(c *gin.Context) {
	eng, ok := h.engine(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid record id"))
		return
	}
	if err := eng.Select(id); err != nil {
		c.JSON(http.StatusNotFound, response.ClassifiedError(http.StatusNotFound, err))
		return
	}
	rec, _ := eng.SelectedRecord()
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rec))
}

// Selected returns the record currently open in the detail view.
func (h *ReviewHandler) Selected(c *gin.Context) {
	eng, ok := h.engine(c)
	if !ok {
		return
	}
	rec, found := eng.SelectedRecord()
	if !found {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "no record selected"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rec))
}

// Deselect closes the detail view without actioning the record.
func (h *ReviewHandler) Deselect(c *gin.Context) {
	eng, ok := h.engine(c)
	if !ok {
		return
	}
	eng.Deselect()
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}

// Approve transitions the selected record to the domain's success status.
func (h *ReviewHandler) Approve(c *gin.Context) {
	eng, ok := h.engine(c)
	if !ok {
		return
	}
	rec, err := eng.ApproveSelected(c.Request.Context(), actorID(c))
	if err != nil {
		code := statusFor(err)
		c.JSON(code, response.ClassifiedError(code, err))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rec))
}

type rejectRequest struct {
	Reason      string `json:"reason" binding:"required"`
	OtherReason string `json:"other_reason"`
}

// Reject transitions the selected record to Rejected. The reason
// precondition is enforced in the engine before any platform call.
func (h *ReviewHandler) Reject(c *gin.Context) {
	eng, ok := h.engine(c)
	if !ok {
		return
	}
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "a rejection reason is required"))
		return
	}
	rec, err := eng.RejectSelected(c.Request.Context(), actorID(c), req.Reason, req.OtherReason)
	if err != nil {
		code := statusFor(err)
		c.JSON(code, response.ClassifiedError(code, err))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rec))
}

type remarksRequest struct {
	Remarks string   `json:"remarks"`
	Tags    []string `json:"tags"`
}

// UpdateRemarks annotates the selected record; the detail view stays open.
func (h *ReviewHandler) UpdateRemarks(c *gin.Context) {
	eng, ok := h.engine(c)
	if !ok {
		return
	}
	var req remarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	rec, err := eng.RemarkSelected(c.Request.Context(), actorID(c), req.Remarks, req.Tags)
	if err != nil {
		code := statusFor(err)
		c.JSON(code, response.ClassifiedError(code, err))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rec))
}

// Release finalizes a post-approval disbursement. Multipart form with
// a release_date field and a proof file.
func (h *ReviewHandler) Release(c *gin.Context) {
	eng, ok := h.engine(c)
	if !ok {
		return
	}
	if !eng.SupportsRelease() {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "release is not supported for this domain"))
		return
	}

	releaseDate := c.PostForm("release_date")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "a proof document is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "failed to read uploaded file"))
		return
	}
	defer file.Close()

	rec, err := eng.ReleaseSelected(c.Request.Context(), actorID(c), releaseDate, fileHeader.Filename, file)
	if err != nil {
		code := statusFor(err)
		c.JSON(code, response.ClassifiedError(code, err))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rec))
}
