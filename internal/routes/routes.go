package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/TerraRicaResort/resort-booking/internal/audit"
	"github.com/TerraRicaResort/resort-booking/internal/config"
	"github.com/TerraRicaResort/resort-booking/internal/handlers"
	infraRepo "github.com/TerraRicaResort/resort-booking/internal/infra/repository"
	"github.com/TerraRicaResort/resort-booking/internal/middleware"
	"github.com/TerraRicaResort/resort-booking/internal/notify"
	"github.com/TerraRicaResort/resort-booking/internal/sequence"
	"github.com/TerraRicaResort/resort-booking/internal/timezone"
	ucReservation "github.com/TerraRicaResort/resort-booking/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	formalIDs := sequence.NewGenerator(
		sequence.NewRedisCounter(rdb),
		reservationRepo,
		loc,
	)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifier := notify.NewDispatcher(notify.LogSender{})

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	checkAvailabilityUC := ucReservation.NewCheckAvailability(reservationRepo)

	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		formalIDs,
		checkAvailabilityUC,
		auditDispatcher,
		loc,
	)

	createGroupUC := ucReservation.NewCreateReservationGroup(
		createReservationUC,
		auditDispatcher,
	)

	groupActionUC := ucReservation.NewApplyGroupAction(
		reservationRepo,
		auditDispatcher,
		notifier,
	)

	submitReceiptUC := ucReservation.NewSubmitReceipt(
		reservationRepo,
		auditDispatcher,
	)

	checkInUC := ucReservation.NewCheckInReservation(reservationRepo, auditDispatcher)
	checkOutUC := ucReservation.NewCheckOutReservation(reservationRepo, auditDispatcher)

	requestRescheduleUC := ucReservation.NewRequestReschedule(
		reservationRepo,
		auditDispatcher,
		loc,
		cfg.RescheduleLeadDays,
	)

	resolveRescheduleUC := ucReservation.NewResolveReschedule(
		reservationRepo,
		auditDispatcher,
		notifier,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	availabilityHandler := handlers.NewAvailabilityHandler(checkAvailabilityUC, loc)

	reservationHandler := handlers.NewReservationHandler(
		db,
		createReservationUC,
		createGroupUC,
		submitReceiptUC,
		requestRescheduleUC,
		groupActionUC,
	)

	staffReservationHandler := handlers.NewStaffReservationHandler(
		db,
		groupActionUC,
		checkInUC,
		checkOutUC,
		resolveRescheduleUC,
		reservationRepo,
		loc,
	)

	blockedRangeHandler := handlers.NewBlockedRangeHandler(db, auditDispatcher, loc)
	serviceHandler := handlers.NewServiceHandler(db)
	promoHandler := handlers.NewPromoHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		api.GET("/blocked-ranges", blockedRangeHandler.List)

		api.POST("/availability/check", availabilityHandler.Check)

		api.POST("/reservations", reservationHandler.Create)
		api.POST("/reservations/multi", reservationHandler.CreateMulti)

		api.GET("/reservations/hash/:hash", reservationHandler.GetByHash)
		api.PUT("/reservations/hash/:hash/receipt", reservationHandler.SubmitReceipt)
		api.PUT("/reservations/hash/:hash/cancel", reservationHandler.CancelByHash)
		api.PUT("/reservations/hash/:hash/reschedule-request", reservationHandler.RequestReschedule)

		api.POST("/promos/validate", promoHandler.Validate)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// STAFF
		// ------------------------------
		staff := api.Group("/")
		staff.Use(middleware.AuthMiddleware(cfg))
		{
			staff.GET("/me", authHandler.GetMe)

			staff.GET("/staff/reservations", staffReservationHandler.List)
			staff.PATCH("/staff/reservations/:id/approve", staffReservationHandler.Approve)
			staff.PATCH("/staff/reservations/:id/reject", staffReservationHandler.Reject)
			staff.PATCH("/staff/reservations/:id/cancel", staffReservationHandler.Cancel)
			staff.PATCH("/staff/reservations/:id/check-in", staffReservationHandler.CheckIn)
			staff.PATCH("/staff/reservations/:id/check-out", staffReservationHandler.CheckOut)
			staff.PUT("/staff/reservations/:id/approve-reschedule", staffReservationHandler.ApproveReschedule)
			staff.PUT("/staff/reservations/:id/reject-reschedule", staffReservationHandler.RejectReschedule)

			staff.POST("/staff/blocked-ranges", blockedRangeHandler.Create)
			staff.DELETE("/staff/blocked-ranges/:id", blockedRangeHandler.Delete)

			staff.POST("/staff/services", serviceHandler.Create)
			staff.PATCH("/staff/services/:id", serviceHandler.Update)
			staff.DELETE("/staff/services/:id", serviceHandler.Delete)

			staff.GET("/staff/promos", promoHandler.List)
			staff.POST("/staff/promos", promoHandler.Create)
			staff.PATCH("/staff/promos/:id/deactivate", promoHandler.Deactivate)

			staff.GET("/staff/audit-logs", auditLogsHandler.List)
		}
	}
}
