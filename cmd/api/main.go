package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amjooky/carwash-plus-sub001/internal/config"
	"github.com/amjooky/carwash-plus-sub001/internal/database"
	"github.com/amjooky/carwash-plus-sub001/internal/middleware"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/activity"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/analytics"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/auth"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/customer"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/notification"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/payment"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/settings"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/staff"
	"github.com/amjooky/carwash-plus-sub001/internal/modules/user"
	jwtsvc "github.com/amjooky/carwash-plus-sub001/internal/pkg/jwt"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j, cfg.RefreshTokenPepper, cfg.RefreshTTL)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	customerService := customer.NewService(customerRepo)
	customerHandler := customer.NewHandler(customerService)

	staffService := staff.NewService(staffRepo)
	staffHandler := staff.NewHandler(staffService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, nil)
	paymentHandler := payment.NewHandler(paymentService)

	hub := notification.NewHub()
	defer hub.Close()
	notificationService := notification.NewService(notificationRepo, hub)
	notificationHandler := notification.NewHandler(notificationService)
	notificationWS := notification.NewWSHandler(hub, j)

	settingsService := settings.NewService(settingRepo)
	settingsHandler := settings.NewHandler(settingsService)

	activityService := activity.NewService(activityRepo)
	activityHandler := activity.NewHandler(activityService)

	analyticsService := analytics.NewService(userRepo, customerRepo, bookingRepo, paymentRepo, activityRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.ErrorLogger(), middleware.CORS(), middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		settingsHandler.RegisterPublicRoutes(v1)
		notificationWS.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterRoutes(protected)
			customerHandler.RegisterRoutes(protected)
			staffHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)
			activityHandler.RegisterRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("level=info msg=server starting addr=%s env=%s", cfg.Addr, cfg.AppEnv)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
