package main

import (
	"context"
	"os"

	_ "traveldesk-backend/api/swagger" // swagger docs
	"traveldesk-backend/internal/assist"
	"traveldesk-backend/internal/database"
	"traveldesk-backend/internal/handler"
	"traveldesk-backend/internal/logger"
	"traveldesk-backend/internal/middleware"
	"traveldesk-backend/internal/repository"
	"traveldesk-backend/internal/service"
	"traveldesk-backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           TravelDesk API
// @version         1.0
// @description     Invoicing and quotation backend for a travel agency: documents with line items, customer records, layout rendering and AI-assisted drafting.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Setup()
	log := logger.WithComponent("main")

	if err := godotenv.Load("configs/.env"); err != nil {
		log.Info().Msg("no configs/.env file found, using environment")
	}

	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	dbUser := envOr("DB_USER", "postgres")
	dbPassword := envOr("DB_PASSWORD", "postgres")
	dbName := envOr("DB_NAME", "traveldesk")
	dbSslMode := envOr("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("database seeding failed")
	}
	log.Info().Msg("connected to PostgreSQL")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// AI collaborator; without GEMINI_API_KEY it degrades to fixed fallbacks
	assistClient := assist.New(context.Background(), os.Getenv("GEMINI_API_KEY"))

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	txManager := repository.NewTransactionManager(db)

	userService := service.NewUserService(userRepo)
	customerService := service.NewCustomerService(customerRepo, wsHub)
	settingsService := service.NewSettingsService(settingsRepo)
	documentService := service.NewDocumentService(documentRepo, customerRepo, settingsRepo, txManager, assistClient, wsHub)
	statisticsService := service.NewStatisticsService(documentRepo)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(userService)
	customerHandler := handler.NewCustomerHandler(customerService)
	documentHandler := handler.NewDocumentHandler(documentService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)
	assistHandler := handler.NewAssistHandler(assistClient)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Login/logout stay open; everything else sits behind the session gate
	authHandler.RegisterRoutes(router.Group(""))

	authorized := router.Group("", middleware.RequireAuth())
	customerHandler.RegisterRoutes(authorized)
	documentHandler.RegisterRoutes(authorized)
	settingsHandler.RegisterRoutes(authorized)
	statisticsHandler.RegisterRoutes(authorized)
	assistHandler.RegisterRoutes(authorized)

	port := envOr("PORT", "8080")
	log.Info().Str("port", port).Msg("server listening")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
