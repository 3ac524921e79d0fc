package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	"github.com/amjooky/carwash-plus-sub001/internal/middleware"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/auth"
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

// RegisterRoutes expects the group to already carry JWTAuth; role and
// permission guards are layered here.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/users")
	g.Use(
		middleware.RequireRole(string(domain.RoleAdmin), string(domain.RoleSuperAdmin)),
		middleware.RequirePermission(domain.PermUsersManage),
	)
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.GET("/:id", h.GetByID)
		g.PATCH("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	users, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list users")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, auth.ToUserResponse(&users[i]))
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": out,
		"total": total,
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	actorRole := domain.UserRole(c.GetString(middleware.CtxRole))
	u, err := h.service.Create(c.Request.Context(), actorRole, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Unknown role")
		case errors.Is(err, ErrElevationDenied):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only a super admin may manage admin accounts")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": auth.ToUserResponse(u)})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get user")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": auth.ToUserResponse(u)})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	actorRole := domain.UserRole(c.GetString(middleware.CtxRole))
	u, err := h.service.Update(c.Request.Context(), actorRole, id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Unknown role")
		case errors.Is(err, ErrElevationDenied):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only a super admin may manage admin accounts")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": auth.ToUserResponse(u)})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	actorRole := domain.UserRole(c.GetString(middleware.CtxRole))
	u, err := h.service.UpdateStatus(c.Request.Context(), actorRole, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown status")
		case errors.Is(err, ErrElevationDenied):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only a super admin may manage admin accounts")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": auth.ToUserResponse(u)})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	actorRole := domain.UserRole(c.GetString(middleware.CtxRole))
	if err := h.service.Delete(c.Request.Context(), actorRole, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, ErrElevationDenied):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only a super admin may manage admin accounts")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return 0, false
	}
	return id, true
}
