package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bookingsvc "github.com/vactrack/clinic-gateway/internal/booking"
	"github.com/vactrack/clinic-gateway/internal/catalog"
	"github.com/vactrack/clinic-gateway/internal/middleware"
	"github.com/vactrack/clinic-gateway/internal/model"
	apperrors "github.com/vactrack/clinic-gateway/pkg/errors"
	"github.com/vactrack/clinic-gateway/pkg/httputil"
)

type Handler struct {
	service *bookingsvc.Service
	catalog *catalog.Catalog
	auth    *middleware.AuthMiddleware
}

func NewHandler(service *bookingsvc.Service, cat *catalog.Catalog, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{service: service, catalog: cat, auth: auth}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/booking")
	{
		grp.GET("/services", h.ListServices)
		grp.GET("/packages", h.ListPackages)
		grp.GET("/facilities", h.ListFacilities)
		grp.POST("/draft/service", h.ApplyService)

		authed := grp.Group("", h.auth.Authenticate())
		{
			authed.GET("/slots", h.ListSlots)
			authed.POST("", h.Submit)
		}
	}
}

func (h *Handler) ListServices(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.catalog.Services())
}

// ListPackages narrows the package list to the selected service when the
// service query parameter is present.
func (h *Handler) ListPackages(c *gin.Context) {
	serviceID := c.Query("service")
	if serviceID == "" {
		httputil.RespondWithSuccess(c, h.catalog.Packages())
		return
	}
	httputil.RespondWithSuccess(c, h.catalog.PackagesForService(serviceID))
}

func (h *Handler) ListFacilities(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.catalog.Facilities())
}

type draftServiceRequest struct {
	Service string             `json:"service" binding:"required"`
	Draft   model.BookingDraft `json:"draft"`
}

// ApplyService applies a service choice to an in-progress draft and returns
// the adjusted draft. A previously selected package that does not belong to
// the new service comes back cleared.
func (h *Handler) ApplyService(c *gin.Context) {
	var req draftServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	h.service.SelectService(&req.Draft, req.Service)
	httputil.RespondWithSuccess(c, req.Draft)
}

func (h *Handler) ListSlots(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	slots, err := h.service.Slots(c.Request.Context(), sess.Token, c.Query("date"), c.Query("facility"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, slots)
}

// Submit creates a booking from a complete draft. Validation failures return
// the per-field messages and never reach the upstream.
func (h *Handler) Submit(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var draft model.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	conf, err := h.service.Submit(c.Request.Context(), sess, &draft)
	if err != nil {
		var valErr *bookingsvc.ValidationError
		if errors.As(err, &valErr) {
			c.JSON(http.StatusBadRequest, httputil.Response{
				Success: false,
				Error: &httputil.Error{
					Code:    http.StatusBadRequest,
					Message: "thông tin đặt lịch chưa hợp lệ",
				},
				Data: gin.H{"fields": valErr.Fields},
			})
			return
		}
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httputil.Response{Success: true, Data: conf})
}
