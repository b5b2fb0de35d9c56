package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yurymalaver/salon-crm/internal/ai"
	"github.com/yurymalaver/salon-crm/internal/audit"
	"github.com/yurymalaver/salon-crm/internal/availability"
	"github.com/yurymalaver/salon-crm/internal/config"
	"github.com/yurymalaver/salon-crm/internal/handlers"
	infraRepo "github.com/yurymalaver/salon-crm/internal/infra/repository"
	"github.com/yurymalaver/salon-crm/internal/media"
	"github.com/yurymalaver/salon-crm/internal/middleware"
	"github.com/yurymalaver/salon-crm/internal/store"
	"github.com/yurymalaver/salon-crm/internal/sync"
	ucReservation "github.com/yurymalaver/salon-crm/internal/usecase/reservation"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *logrus.Logger,
	feed *sync.Feed,
	bus sync.Bus,
	localStore *store.Store,
	gen ai.Generator,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	uploader := media.NewUploader(media.NewS3Storage(cfg))

	marketing := ai.NewMarketing(gen, log)
	mirror := ai.NewMirror(gen, log)

	// ======================================================
	// 🧠 USE CASES — RESERVAS
	// ======================================================
	intakeUC := ucReservation.NewIntake(
		reservationRepo,
		bus,
		auditDispatcher,
		log,
	)

	updateStatusUC := ucReservation.NewUpdateStatus(
		reservationRepo,
		bus,
		auditDispatcher,
		log,
	)

	registerClientUC := ucReservation.NewRegisterClient(
		reservationRepo,
		bus,
		auditDispatcher,
		log,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(
		intakeUC,
		availability.StaticChecker{},
		localStore,
	)

	feedHandler := handlers.NewFeedHandler(feed)
	agendaHandler := handlers.NewAgendaHandler(feed, updateStatusUC)
	dashboardHandler := handlers.NewDashboardHandler(feed)
	clientHandler := handlers.NewClientHandler(feed, registerClientUC, localStore)

	inventoryHandler := handlers.NewInventoryHandler(db)
	promotionHandler := handlers.NewPromotionHandler(localStore, uploader)
	marketingHandler := handlers.NewMarketingHandler(marketing, localStore)
	mirrorHandler := handlers.NewMirrorHandler(mirror)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/promotions", publicHandler.ListPromotions)
			publicAPI.GET("/availability", publicHandler.CheckAvailability)
			publicAPI.POST("/reservations", publicHandler.CreateReservation)

			publicAPI.POST("/mirror/analyze", mirrorHandler.Analyze)

			// Camino de demo (store local)
			publicAPI.POST("/demo/reservations", publicHandler.CreateDemoReservation)
			publicAPI.GET("/demo/reservations", publicHandler.ListDemoReservations)
			publicAPI.PATCH("/demo/reservations/:id/status", publicHandler.UpdateDemoReservationStatus)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/feed", feedHandler.Status)
			secured.POST("/me/feed/retry", feedHandler.Retry)

			secured.GET("/me/dashboard", dashboardHandler.Summary)

			secured.GET("/me/agenda", agendaHandler.List)
			secured.PATCH("/me/agenda/:id/status", agendaHandler.UpdateStatus)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Register)
			secured.GET("/me/clients/local", clientHandler.ListLocal)
			secured.PATCH("/me/clients/local/:id/type", clientHandler.UpdateType)

			secured.GET("/me/products", inventoryHandler.List)
			secured.POST("/me/products", inventoryHandler.Create)
			secured.PATCH("/me/products/:id/restock", inventoryHandler.Restock)

			secured.GET("/me/promotions", promotionHandler.List)
			secured.POST("/me/promotions", promotionHandler.Create)
			secured.DELETE("/me/promotions/:id", promotionHandler.Delete)

			secured.POST("/me/marketing/campaigns", marketingHandler.GenerateCampaign)
			secured.POST("/me/marketing/campaigns/publish", marketingHandler.PublishCampaign)
			secured.GET("/me/marketing/vip-clients", marketingHandler.ListVIPClients)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
