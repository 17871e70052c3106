package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"hostel_manager/internal/config"
	"hostel_manager/internal/handler"
	"hostel_manager/internal/middleware"
	"hostel_manager/internal/repository"
	"hostel_manager/internal/service"
	"hostel_manager/internal/session"
	"hostel_manager/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found or error loading, relying on environment variables")
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logrus.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		logrus.Fatal("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS")
	jwtExpHours, err := strconv.ParseInt(jwtExpHoursStr, 10, 64)
	if err != nil {
		logrus.Infof("Invalid JWT_EXPIRATION_HOURS, defaulting to 168: %v", err)
		jwtExpHours = 168 // Token lifetime; the session store expires idle sessions much sooner
	}

	sessionTTLStr := os.Getenv("SESSION_TTL_MINUTES")
	sessionTTL, err := strconv.ParseInt(sessionTTLStr, 10, 64)
	if err != nil || sessionTTL <= 0 {
		sessionTTL = 60
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		logrus.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)
	sessionStore := session.NewStore(time.Duration(sessionTTL) * time.Minute)
	defer sessionStore.Close()

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	rentRepo := repository.NewRentRepository(dbPool)
	menuRepo := repository.NewMenuRepository(dbPool)
	noteRepo := repository.NewNotificationRepository(dbPool)
	settingsRepo := repository.NewSettingsRepository(dbPool)

	// --- Seed ---
	bootstrap := service.NewBootstrap(userRepo, rentRepo, menuRepo, noteRepo, settingsRepo)
	if err := bootstrap.Seed(context.Background()); err != nil {
		logrus.Fatalf("Failed to seed database: %v", err)
	}

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, sessionStore, jwtUtil)
	studentService := service.NewStudentService(userRepo)
	rentService := service.NewRentService(rentRepo, userRepo)
	menuService := service.NewMenuService(menuRepo)
	notificationService := service.NewNotificationService(noteRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	rentHandler := handler.NewRentHandler(rentService)
	menuHandler := handler.NewMenuHandler(menuService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PATCH, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	authMW := middleware.SessionAuthMiddleware(jwtUtil, sessionStore)
	adminMW := middleware.AdminMiddleware()

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterRoutes(apiGroup, authMW)
	studentHandler.RegisterRoutes(apiGroup, authMW, adminMW)
	rentHandler.RegisterRoutes(apiGroup, authMW, adminMW)
	menuHandler.RegisterRoutes(apiGroup, authMW, adminMW)
	notificationHandler.RegisterRoutes(apiGroup, authMW, adminMW)
	settingsHandler.RegisterRoutes(apiGroup, authMW, adminMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		logrus.Infof("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exiting")
}
