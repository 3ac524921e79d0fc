package payment

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
	g := protected.Group("/payments")
	{
		// Any authenticated caller may record a payment for a booking.
		g.POST("", h.Create)

		adminView := middleware.RequireRole(string(domain.RoleAdmin), string(domain.RoleSuperAdmin))
		g.GET("", adminView, middleware.RequirePermission(domain.PermPaymentsView), h.List)
		g.GET("/:id", adminView, middleware.RequirePermission(domain.PermPaymentsView), h.GetByID)
		g.GET("/booking/:id", adminView, middleware.RequirePermission(domain.PermPaymentsView), h.GetByBooking)
		g.PATCH("/:id/status", adminView, middleware.RequirePermission(domain.PermPaymentsManage), h.UpdateStatus)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking does not exist")
		case errors.Is(err, ErrInvalidMethod):
			response.Error(c, http.StatusBadRequest, "INVALID_METHOD", "Unknown payment method")
		case errors.Is(err, ErrInvalidAmount):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount must be positive")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payment": ToPaymentResponse(p)})
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	payments, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list payments")
		return
	}

	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, ToPaymentResponse(&payments[i]))
	}

	response.Success(c, http.StatusOK, gin.H{
		"payments": out,
		"total":    total,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get payment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": ToPaymentResponse(p)})
}

func (h *Handler) GetByBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payments, err := h.service.GetByBookingID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get payments")
		return
	}

	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, ToPaymentResponse(&payments[i]))
	}

	response.Success(c, http.StatusOK, gin.H{"payments": out})
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

	p, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown payment status")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": ToPaymentResponse(p)})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment ID")
		return 0, false
	}
	return id, true
}
