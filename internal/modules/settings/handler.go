package settings

import (
	"errors"
	"net/http"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	"github.com/amjooky/carwash-plus-sub001/internal/middleware"
	"github.com/amjooky/carwash-plus-sub001/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the public subset without authentication.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/settings/public", h.ListPublic)
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/settings")
	g.Use(
		middleware.RequireRole(string(domain.RoleAdmin), string(domain.RoleSuperAdmin)),
		middleware.RequirePermission(domain.PermSettingsManage),
	)
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.GET("/category/:category", h.ListByCategory)
		g.GET("/:key", h.GetByKey)
		g.PATCH("/:key", h.Update)
		g.DELETE("/:key", h.Delete)
	}
}

func (h *Handler) ListPublic(c *gin.Context) {
	list, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": list})
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": list})
}

func (h *Handler) ListByCategory(c *gin.Context) {
	list, err := h.service.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": list})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	setting, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrKeyExists):
			response.Error(c, http.StatusConflict, "KEY_EXISTS", "Settings key already exists")
		case errors.Is(err, ErrInvalidKey):
			response.Error(c, http.StatusBadRequest, "INVALID_KEY", "Invalid settings key")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create setting")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"setting": setting})
}

func (h *Handler) GetByKey(c *gin.Context) {
	setting, err := h.service.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Setting not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get setting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"setting": setting})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	setting, err := h.service.Update(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Setting not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update setting")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"setting": setting})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("key")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Setting not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete setting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Setting deleted"})
}
