package activity

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/logs")
	g.Use(middleware.RequireRole(string(domain.RoleAdmin), string(domain.RoleSuperAdmin)))
	{
		viewPerm := middleware.RequirePermission(domain.PermLogsView)
		g.GET("", viewPerm, h.List)
		g.GET("/stats", viewPerm, h.Stats)

		// Retention pruning destroys data; super admin only.
		g.DELETE("/old",
			middleware.RequireRole(string(domain.RoleSuperAdmin)),
			middleware.RequirePermission(domain.PermLogsManage),
			h.DeleteOld,
		)

		g.GET("/:id", viewPerm, h.GetByID)
	}
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	logs, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list logs")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"logs":  logs,
		"total": total,
	})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to compute log stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid log ID")
		return
	}

	entry, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Log entry not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get log entry")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"log": entry})
}

func (h *Handler) DeleteOld(c *gin.Context) {
	days := 90
	if s := c.Query("days"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "days must be a positive integer")
			return
		}
		days = v
	}

	deleted, err := h.service.PruneOlderThan(c.Request.Context(), days)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to prune logs")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": deleted})
}
