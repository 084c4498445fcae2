package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tourbook/db/migrations"
	"tourbook/internal/config"
	"tourbook/internal/database"
	"tourbook/internal/domain"
	"tourbook/internal/middleware"
	"tourbook/internal/modules/admin"
	"tourbook/internal/modules/auth"
	"tourbook/internal/modules/booking"
	"tourbook/internal/modules/catalog"
	"tourbook/internal/modules/changerequest"
	"tourbook/internal/modules/itinerary"
	"tourbook/internal/modules/location"
	"tourbook/internal/modules/payment"
	"tourbook/internal/modules/rating"
	jwtsvc "tourbook/internal/pkg/jwt"
	"tourbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if database.IsPostgres(db) {
		if err := migrations.Run(cfg.DatabaseURL); err != nil {
			log.Fatal(err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	tourRepo := repository.NewTourRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	itineraryRepo := repository.NewItineraryRepository(db)
	changeReqRepo := repository.NewChangeRequestRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	locationHub := location.NewHub()
	defer locationHub.Close()

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	adminHandler := admin.NewHandler(admin.NewService(userRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(tourRepo, vehicleRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo))
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, bookingRepo, notifRepo))
	itineraryHandler := itinerary.NewHandler(itinerary.NewService(itineraryRepo, bookingRepo))
	changeReqHandler := changerequest.NewHandler(changerequest.NewService(changeReqRepo, bookingRepo, userRepo))
	ratingHandler := rating.NewHandler(rating.NewService(ratingRepo, bookingRepo))
	locationService := location.NewService(locationRepo, bookingRepo, locationHub)
	locationHandler := location.NewHandler(locationService, locationHub, j)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS(cfg.CORSOrigins))

	api := r.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterRoutes(api)
		itineraryHandler.RegisterPublicRoutes(api)
		locationHandler.RegisterWSRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			itineraryHandler.RegisterProtectedRoutes(protected)
			changeReqHandler.RegisterRoutes(protected)
			ratingHandler.RegisterRoutes(protected)
			locationHandler.RegisterRoutes(protected)

			staff := protected.Group("/")
			staff.Use(middleware.StaffOnly())
			{
				changeReqHandler.RegisterStaffRoutes(staff)
			}

			backOffice := protected.Group("/")
			backOffice.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleEmployee))
			{
				paymentHandler.RegisterStaffRoutes(backOffice)
			}

			adminGroup := protected.Group("/")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
