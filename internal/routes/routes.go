package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberiapro/booking-api/internal/ai"
	"github.com/barberiapro/booking-api/internal/audit"
	"github.com/barberiapro/booking-api/internal/config"
	"github.com/barberiapro/booking-api/internal/handlers"
	infraRepo "github.com/barberiapro/booking-api/internal/infra/repository"
	ucAppointment "github.com/barberiapro/booking-api/internal/usecase/appointment"
	ucChat "github.com/barberiapro/booking-api/internal/usecase/chat"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	chatStore := infraRepo.NewChatLogRedisStore(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	completer := ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.ChatMaxTokens)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.Timezone,
	)

	sendMessageUC := ucChat.NewSendMessage(
		appointmentRepo,
		chatStore,
		completer,
		cfg.ChatTimeout,
		auditDispatcher,
		log,
	)

	historyUC := ucChat.NewGetHistory(chatStore)

	// ======================================================
	// HANDLERS
	// ======================================================
	catalogHandler := handlers.NewCatalogHandler(appointmentRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		availabilityUC,
	)

	chatHandler := handlers.NewChatHandler(sendMessageUC, historyUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/barbers", catalogHandler.ListBarbers)
		api.GET("/barbers/:id", catalogHandler.GetBarber)

		api.GET("/services", catalogHandler.ListServices)
		api.GET("/services/:id", catalogHandler.GetService)

		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/availability", appointmentHandler.Availability)

		api.POST("/chat", chatHandler.Send)
		api.GET("/chat/:sessionId", chatHandler.History)
	}
}
