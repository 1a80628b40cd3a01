package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/config"
	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/database"
	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/handlers"
	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/store"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if config.AppConfig.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Logger = log.With().Str("service", "fashion-store-api").Logger()

	// Connect to database
	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Initialize tables
	if err := db.InitializeTables(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tables")
	}

	if config.AppConfig.SeedOnStart {
		if err := db.SeedProducts(); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed products")
		}
	}

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handlers.RequestID())
	router.Use(handlers.RequestLogger())

	// Add CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	router.Use(func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Fashion Store API is running",
		})
	})

	// Wire stores and handlers over the explicit database handle
	userHandler := handlers.NewUserHandler(store.NewUsers(db.DB))
	productHandler := handlers.NewProductHandler(store.NewProducts(db.DB))
	orderHandler := handlers.NewOrderHandler(store.NewOrders(db.DB))
	cartHandler := handlers.NewCartHandler(store.NewCart(db.DB))

	userHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)

	// Start server
	port := config.AppConfig.ServerPort
	log.Info().Str("port", port).Msg("Starting Fashion Store API")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
