package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vactrack/clinic-gateway/internal/middleware"
	"github.com/vactrack/clinic-gateway/internal/model"
	apperrors "github.com/vactrack/clinic-gateway/pkg/errors"
	"github.com/vactrack/clinic-gateway/pkg/httputil"
)

// APIClient is the slice of the upstream client the admin console proxies.
type APIClient interface {
	AdminDashboard(ctx context.Context, token string) (*model.DashboardStats, error)
	AdminAppointments(ctx context.Context, token string, page, size int, status string) (*model.Page, error)
	AdminUpdateAppointmentStatus(ctx context.Context, token, id, status string) error
	AdminVaccines(ctx context.Context, token string, page, size int) (*model.Page, error)
	AdminCreateVaccine(ctx context.Context, token string, v *model.Vaccine) (*model.Vaccine, error)
	AdminUpdateVaccine(ctx context.Context, token, id string, v *model.Vaccine) (*model.Vaccine, error)
	AdminDeleteVaccine(ctx context.Context, token, id string) error
	AdminStatistics(ctx context.Context, token, period string) (map[string]interface{}, error)
	AdminSettings(ctx context.Context, token string) (map[string]interface{}, error)
	AdminUpdateSettings(ctx context.Context, token string, settings map[string]interface{}) error
	AdminFeedback(ctx context.Context, token string, page, size int) (*model.Page, error)
	AdminPublishFeedback(ctx context.Context, token, id string, published bool) error
	AdminContacts(ctx context.Context, token string, page, size int) (*model.Page, error)
	AdminUpdateContactStatus(ctx context.Context, token, id, status string) error
}

type Handler struct {
	api  APIClient
	auth *middleware.AuthMiddleware
}

func NewHandler(api APIClient, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{api: api, auth: auth}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/admin", h.auth.Authenticate(), h.auth.RequireAdmin())
	{
		grp.GET("/dashboard", h.Dashboard)
		grp.GET("/statistics", h.Statistics)

		grp.GET("/appointments", h.ListAppointments)
		grp.PUT("/appointments/:id/status", h.UpdateAppointmentStatus)

		grp.GET("/vaccines", h.ListVaccines)
		grp.POST("/vaccines", h.CreateVaccine)
		grp.PUT("/vaccines/:id", h.UpdateVaccine)
		grp.DELETE("/vaccines/:id", h.DeleteVaccine)

		grp.GET("/settings", h.Settings)
		grp.PUT("/settings", h.UpdateSettings)

		grp.GET("/feedback", h.ListFeedback)
		grp.PUT("/feedback/:id/publish", h.PublishFeedback)

		grp.GET("/contact", h.ListContacts)
		grp.PUT("/contact/:id/status", h.UpdateContactStatus)
	}
}

func (h *Handler) Dashboard(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	stats, err := h.api.AdminDashboard(c.Request.Context(), sess.Token)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, stats)
}

func (h *Handler) Statistics(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	stats, err := h.api.AdminStatistics(c.Request.Context(), sess.Token, c.Query("period"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, stats)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	page, size := pageParams(c)

	result, err := h.api.AdminAppointments(c.Request.Context(), sess.Token, page, size, c.Query("status"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	respondPage(c, result)
}

func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	if err := h.api.AdminUpdateAppointmentStatus(c.Request.Context(), sess.Token, c.Param("id"), req.Status); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"updated": true})
}

func (h *Handler) ListVaccines(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	page, size := pageParams(c)

	result, err := h.api.AdminVaccines(c.Request.Context(), sess.Token, page, size)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	respondPage(c, result)
}

func (h *Handler) CreateVaccine(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var v model.Vaccine
	if err := c.ShouldBindJSON(&v); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	created, err := h.api.AdminCreateVaccine(c.Request.Context(), sess.Token, &v)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httputil.Response{Success: true, Data: created})
}

func (h *Handler) UpdateVaccine(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var v model.Vaccine
	if err := c.ShouldBindJSON(&v); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	updated, err := h.api.AdminUpdateVaccine(c.Request.Context(), sess.Token, c.Param("id"), &v)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, updated)
}

func (h *Handler) DeleteVaccine(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	if err := h.api.AdminDeleteVaccine(c.Request.Context(), sess.Token, c.Param("id")); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"deleted": true})
}

func (h *Handler) Settings(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	settings, err := h.api.AdminSettings(c.Request.Context(), sess.Token)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, settings)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var settings map[string]interface{}
	if err := c.ShouldBindJSON(&settings); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	if err := h.api.AdminUpdateSettings(c.Request.Context(), sess.Token, settings); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"updated": true})
}

func (h *Handler) ListFeedback(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	page, size := pageParams(c)

	result, err := h.api.AdminFeedback(c.Request.Context(), sess.Token, page, size)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	respondPage(c, result)
}

func (h *Handler) PublishFeedback(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req struct {
		Published *bool `json:"published" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	if err := h.api.AdminPublishFeedback(c.Request.Context(), sess.Token, c.Param("id"), *req.Published); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"updated": true})
}

func (h *Handler) ListContacts(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	page, size := pageParams(c)

	result, err := h.api.AdminContacts(c.Request.Context(), sess.Token, page, size)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	respondPage(c, result)
}

func (h *Handler) UpdateContactStatus(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	if err := h.api.AdminUpdateContactStatus(c.Request.Context(), sess.Token, c.Param("id"), req.Status); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"updated": true})
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 || size > 100 {
		size = 10
	}
	return page, size
}

// respondPage re-wraps the upstream page envelope in the gateway's
// pagination shape so clients see one format.
func respondPage(c *gin.Context, p *model.Page) {
	size := p.Size
	if size < 1 {
		size = 10
	}
	httputil.RespondWithPagination(c, p.Content, p.Page, size, p.TotalItems)
}
