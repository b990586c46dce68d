package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/mizuhara/showcase-api/internal/config"
	"github.com/mizuhara/showcase-api/internal/constants"
	"github.com/mizuhara/showcase-api/internal/database"
	"github.com/mizuhara/showcase-api/internal/handlers"
	"github.com/mizuhara/showcase-api/internal/middleware"
	"github.com/mizuhara/showcase-api/internal/repository"
	"github.com/mizuhara/showcase-api/internal/services"
	"github.com/mizuhara/showcase-api/internal/storage"
)

func main() {
	reconcileVotes := flag.Bool("reconcile-votes", false, "recompute every work's vote_count from vote rows, then exit")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Set up object storage
	store, err := storage.New(storage.Config{
		Type:      cfg.StorageType,
		BasePath:  cfg.StoragePath,
		BaseURL:   cfg.StorageBaseURL,
		Bucket:    cfg.StorageBucket,
		Region:    cfg.StorageRegion,
		Endpoint:  cfg.StorageEndpoint,
		AccessKey: cfg.StorageAccess,
		SecretKey: cfg.StorageSecret,
	})
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	profileRepo := repository.NewProfileRepository(db)
	workRepo := repository.NewWorkRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Initialize services
	profileService := services.NewProfileService(profileRepo)
	workService := services.NewWorkService(workRepo, store)
	voteService := services.NewVoteService(voteRepo, workRepo)
	commentService := services.NewCommentService(commentRepo, workRepo, profileRepo)

	// Operator maintenance mode: repair counter drift and exit.
	if *reconcileVotes {
		if err := voteService.ReconcileVoteCounts(); err != nil {
			log.Fatalf("Failed to reconcile vote counts: %v", err)
		}
		log.Println("Vote counts reconciled")
		return
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(profileService)
	workHandler := handlers.NewWorkHandler(workService)
	voteHandler := handlers.NewVoteHandler(voteService)
	commentHandler := handlers.NewCommentHandler(commentService)
	uploadHandler := handlers.NewUploadHandler(store)

	// Initialize Gin router
	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	// Setup cookie session middleware
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// Locally stored files are served by this process
	if cfg.StorageType == "local" {
		r.Static("/files", cfg.StoragePath)
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Showcase API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
			auth.PATCH("/me/avatar", middleware.RequireAuth(), authHandler.UpdateAvatar)
		}

		// Gallery routes (public reads)
		works := api.Group("/works")
		{
			works.GET("", workHandler.ListWorks)
			works.GET("/mine", middleware.RequireAuth(), workHandler.ListMyWorks)
			works.GET("/:id", workHandler.GetWork)
			works.GET("/:id/comments", commentHandler.ListComments)

			// Writes require a session
			works.POST("", middleware.RequireAuth(), workHandler.CreateWork)
			works.PATCH("/:id", middleware.RequireAuth(), workHandler.UpdateWork)
			works.DELETE("/:id", middleware.RequireAuth(), workHandler.DeleteWork)
			works.POST("/:id/votes", middleware.RequireAuth(), voteHandler.CastVote)
			works.POST("/:id/comments", middleware.RequireAuth(), commentHandler.CreateComment)
		}

		// Vote routes
		votes := api.Group("/votes")
		votes.Use(middleware.RequireAuth())
		{
			votes.GET("/mine", voteHandler.ListMyVotes)
		}

		// Upload routes
		uploads := api.Group("/uploads")
		uploads.Use(middleware.RequireAuth())
		{
			uploads.POST("", uploadHandler.Upload)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
