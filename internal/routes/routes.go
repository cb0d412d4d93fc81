package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Lex0104/Saphir/internal/cache"
	"github.com/Lex0104/Saphir/internal/config"
	"github.com/Lex0104/Saphir/internal/handlers"
	infraRepo "github.com/Lex0104/Saphir/internal/infra/repository"
	"github.com/Lex0104/Saphir/internal/middleware"
	"github.com/Lex0104/Saphir/internal/notify"
	ucReservation "github.com/Lex0104/Saphir/internal/usecase/reservation"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	queue notify.Queue,
	rdb *redis.Client,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)
	dispatcher := notify.NewDispatcher(queue, cfg.MailAdmin)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(reservationRepo, dispatcher)
	updateReservationUC := ucReservation.NewUpdateReservation(reservationRepo, dispatcher)
	deleteReservationUC := ucReservation.NewDeleteReservation(reservationRepo, dispatcher)
	listReservationsUC := ucReservation.NewListReservations(reservationRepo)
	listOwnReservationsUC := ucReservation.NewListOwnReservations(reservationRepo)
	getReservationUC := ucReservation.NewGetReservation(reservationRepo)
	freeSlotsUC := ucReservation.NewGetFreeSlots(reservationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	tableHandler := handlers.NewTableHandler(db, cfg, freeSlotsUC)
	workerHandler := handlers.NewWorkerHandler(db)
	feedbackHandler := handlers.NewFeedbackHandler(cfg, queue)

	reservationHandler := handlers.NewReservationHandler(
		cfg,
		createReservationUC,
		updateReservationUC,
		deleteReservationUC,
		listReservationsUC,
		listOwnReservationsUC,
		getReservationUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/tables", tableHandler.List)
		api.GET("/tables/:id", cache.PageCache(rdb, 5*time.Minute), tableHandler.Detail)
		api.GET("/workers", cache.PageCache(rdb, 15*time.Minute), workerHandler.List)
		api.POST("/feedback", feedbackHandler.Send)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, db))
		{
			// RESERVATIONS
			secured.POST("/reservations", reservationHandler.Create)
			secured.GET("/reservations", reservationHandler.List)
			secured.GET("/reservations/:id", reservationHandler.Get)
			secured.PATCH("/reservations/:id", reservationHandler.Update)
			secured.DELETE("/reservations/:id", reservationHandler.Delete)

			secured.GET("/me/reservations", reservationHandler.ListMine)

			// TABLES / STAFF (Manager)
			secured.POST("/tables", tableHandler.Create)
			secured.PATCH("/tables/:id", tableHandler.Update)
			secured.DELETE("/tables/:id", tableHandler.Delete)

			secured.POST("/workers", workerHandler.Create)
		}
	}
}
