package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/WilianUno/gestor-autonomo/internal/config"
	"github.com/WilianUno/gestor-autonomo/internal/handlers"
	"github.com/WilianUno/gestor-autonomo/internal/httperr"
	infraRepo "github.com/WilianUno/gestor-autonomo/internal/infra/repository"
	"github.com/WilianUno/gestor-autonomo/internal/middleware"
	ucAppointment "github.com/WilianUno/gestor-autonomo/internal/usecase/appointment"
	ucCatalog "github.com/WilianUno/gestor-autonomo/internal/usecase/catalog"
	ucClient "github.com/WilianUno/gestor-autonomo/internal/usecase/client"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger zerolog.Logger) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandler(logger, cfg.IsDevelopment()))

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("REDIS_URL inválida, rate limit desligado")
		} else {
			rdb := redis.NewClient(opts)
			r.Use(middleware.RateLimit(rdb, cfg.RateLimitPerMin, time.Minute, logger))
		}
	}

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	clientService := ucClient.NewService(clientRepo)
	catalogService := ucCatalog.NewService(serviceRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, cfg.Timezone)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	listByClientUC := ucAppointment.NewListAppointmentsByClient(appointmentRepo)
	listByStatusUC := ucAppointment.NewListAppointmentsByStatus(appointmentRepo)
	listByPeriodUC := ucAppointment.NewListAppointmentsByPeriod(appointmentRepo, cfg.Timezone)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, cfg.Timezone)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo)
	appointmentStatsUC := ucAppointment.NewAppointmentStatistics(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(clientService)
	serviceHandler := handlers.NewServiceHandler(catalogService)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		listByClientUC,
		listByStatusUC,
		listByPeriodUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		deleteAppointmentUC,
		appointmentStatsUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTES
		// ------------------------------
		clientes := api.Group("/clientes")
		{
			clientes.GET("/estatisticas", clientHandler.Statistics)
			clientes.GET("/search", clientHandler.Search)
			clientes.POST("", clientHandler.Create)
			clientes.GET("", clientHandler.List)
			clientes.GET("/:id", clientHandler.GetByID)
			clientes.PUT("/:id", clientHandler.Update)
			clientes.DELETE("/:id", clientHandler.Delete)
		}

		// ------------------------------
		// SERVIÇOS
		// ------------------------------
		servicos := api.Group("/servicos")
		{
			servicos.GET("/estatisticas", serviceHandler.Statistics)
			servicos.GET("/search", serviceHandler.Search)
			servicos.POST("", serviceHandler.Create)
			servicos.GET("", serviceHandler.List)
			servicos.GET("/:id", serviceHandler.GetByID)
			servicos.PUT("/:id", serviceHandler.Update)
			servicos.DELETE("/:id", serviceHandler.Delete)
		}

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		agendamentos := api.Group("/agendamentos")
		{
			agendamentos.GET("/estatisticas", appointmentHandler.Statistics)
			agendamentos.GET("/periodo", appointmentHandler.ListByPeriod)
			agendamentos.GET("/cliente/:clienteId", appointmentHandler.ListByClient)
			agendamentos.GET("/status/:status", appointmentHandler.ListByStatus)
			agendamentos.POST("", appointmentHandler.Create)
			agendamentos.GET("", appointmentHandler.List)
			agendamentos.GET("/:id", appointmentHandler.GetByID)
			agendamentos.PUT("/:id", appointmentHandler.Update)
			agendamentos.PATCH("/:id/cancelar", appointmentHandler.Cancel)
			agendamentos.DELETE("/:id", appointmentHandler.Delete)
		}
	}

	// Rotas desconhecidas devolvem o caminho pedido
	r.NoRoute(func(c *gin.Context) {
		httperr.NotFoundRoute(c)
	})
}
