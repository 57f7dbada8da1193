package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/winnyfit/booking-api/internal/audit"
	"github.com/winnyfit/booking-api/internal/config"
	"github.com/winnyfit/booking-api/internal/handlers"
	infraRepo "github.com/winnyfit/booking-api/internal/infra/repository"
	"github.com/winnyfit/booking-api/internal/middleware"
	ucBooking "github.com/winnyfit/booking-api/internal/usecase/booking"
	ucRegistration "github.com/winnyfit/booking-api/internal/usecase/registration"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	registerTrainerUC := ucRegistration.NewRegisterTrainer(
		accountRepo,
		auditDispatcher,
	)

	registerCustomerUC := ucRegistration.NewRegisterCustomer(
		accountRepo,
		auditDispatcher,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		accountRepo,
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	listSessionsUC := ucBooking.NewListSessions(
		accountRepo,
		bookingRepo,
		cfg.Timezone,
	)

	startSessionUC := ucBooking.NewStartSession(
		accountRepo,
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	trainerHandler := handlers.NewTrainerHandler(accountRepo)

	registrationHandler := handlers.NewRegistrationHandler(
		registerTrainerUC,
		registerCustomerUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listSessionsUC,
		startSessionUC,
	)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.POST("/trainers/register", registrationHandler.RegisterTrainer)
	r.POST("/customers/register", registrationHandler.RegisterCustomer)
	r.POST("/signin", authHandler.SignIn)
	// Sign-out is deliberately outside the auth group: revoking an
	// already-revoked token must succeed, not 401.
	r.POST("/signout", authHandler.SignOut)
	r.GET("/trainers", trainerHandler.List)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(db, cfg))
	{
		secured.GET("/me", meHandler.GetMe)

		secured.POST("/bookings/create", bookingHandler.Create)
		secured.GET("/bookings/upcoming", bookingHandler.Upcoming)
		secured.GET("/bookings/past", bookingHandler.Past)
		secured.GET("/bookings/trainer/upcoming", bookingHandler.TrainerUpcoming)
		secured.GET("/bookings/trainer/past", bookingHandler.TrainerPast)
		secured.POST("/bookings/:id/start", bookingHandler.Start)
	}
}
