package analytics

import (
	"net/http"
	"strconv"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	"github.com/amjooky/carwash-plus-sub001/internal/middleware"
	"github.com/amjooky/carwash-plus-sub001/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/analytics")
	{
		adminView := middleware.RequireRole(string(domain.RoleAdmin), string(domain.RoleSuperAdmin))
		g.GET("/dashboard", adminView, middleware.RequirePermission(domain.PermAnalyticsView), h.Dashboard)
		g.GET("/users", adminView, middleware.RequirePermission(domain.PermAnalyticsView), h.Users)

		// Cross-user activity is the widest view; super admin only.
		g.GET("/activity",
			middleware.RequireRole(string(domain.RoleSuperAdmin)),
			middleware.RequirePermission(domain.PermAnalyticsViewAll),
			h.Activity,
		)
	}
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to compute dashboard stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dashboard": stats})
}

func (h *Handler) Users(c *gin.Context) {
	stats, err := h.service.Users(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to compute user stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": stats})
}

func (h *Handler) Activity(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	entries, err := h.service.Activity(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get activity")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"activity": entries})
}
