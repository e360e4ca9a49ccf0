package children

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vactrack/clinic-gateway/internal/middleware"
	"github.com/vactrack/clinic-gateway/internal/model"
	apperrors "github.com/vactrack/clinic-gateway/pkg/errors"
	"github.com/vactrack/clinic-gateway/pkg/httputil"
)

// APIClient is the slice of the upstream client the child-profile proxy
// needs.
type APIClient interface {
	ListChildren(ctx context.Context, token string) ([]model.Child, error)
	GetChild(ctx context.Context, token, id string) (*model.Child, error)
	CreateChild(ctx context.Context, token string, child *model.Child) (*model.Child, error)
	UpdateChild(ctx context.Context, token, id string, child *model.Child) (*model.Child, error)
	DeleteChild(ctx context.Context, token, id string) error
}

type Handler struct {
	api  APIClient
	auth *middleware.AuthMiddleware
}

func NewHandler(api APIClient, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{api: api, auth: auth}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/children", h.auth.Authenticate())
	{
		grp.GET("", h.List)
		grp.GET("/:id", h.Get)
		grp.POST("", h.Create)
		grp.PUT("/:id", h.Update)
		grp.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	children, err := h.api.ListChildren(c.Request.Context(), sess.Token)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, children)
}

func (h *Handler) Get(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	child, err := h.api.GetChild(c.Request.Context(), sess.Token, c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, child)
}

func (h *Handler) Create(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var child model.Child
	if err := c.ShouldBindJSON(&child); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	created, err := h.api.CreateChild(c.Request.Context(), sess.Token, &child)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httputil.Response{Success: true, Data: created})
}

func (h *Handler) Update(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var child model.Child
	if err := c.ShouldBindJSON(&child); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	updated, err := h.api.UpdateChild(c.Request.Context(), sess.Token, c.Param("id"), &child)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	if err := h.api.DeleteChild(c.Request.Context(), sess.Token, c.Param("id")); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"deleted": true})
}
