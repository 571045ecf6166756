package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/log-ai-n/manassistant/internal/allergen"
	"github.com/log-ai-n/manassistant/internal/auth"
	"github.com/log-ai-n/manassistant/internal/db"
	"github.com/log-ai-n/manassistant/internal/importer"
	"github.com/log-ai-n/manassistant/internal/memory"
	"github.com/log-ai-n/manassistant/internal/menu"
	"github.com/log-ai-n/manassistant/internal/middleware"
	"github.com/log-ai-n/manassistant/internal/realtime"
	"github.com/log-ai-n/manassistant/internal/restaurant"
	"github.com/log-ai-n/manassistant/internal/storage"
	"github.com/log-ai-n/manassistant/internal/team"
	"github.com/log-ai-n/manassistant/internal/toggles"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"REDIS_ADDR",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── REDIS ─────────────────────────
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("❌ Redis connection failed:", err)
	}
	log.Println("✅ Connected to Redis")

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo, auth.NewLockout(rdb))
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	allergenRepo := allergen.NewPostgresRepository(pgDB)
	teamRepo := team.NewPostgresRepository(pgDB)
	memoryRepo := memory.NewPostgresRepository(pgDB)
	toggleRepo := toggles.NewPostgresRepository(pgDB)
	importRepo := importer.NewPostgresRepository(pgDB)

	// ───────────────────────── REALTIME ─────────────────────────
	hub := realtime.NewHub()
	realtimeHandler := realtime.NewHandler(hub)

	// ───────────────────────── SERVICES ─────────────────────────
	restaurantService := restaurant.NewService(restaurantRepo)
	menuService := menu.NewService(menuRepo)
	teamService := team.NewService(teamRepo)
	memoryService := memory.NewService(memoryRepo, memory.NewGeminiClient())
	toggleService := toggles.NewService(toggleRepo)

	importService := importer.NewService(
		importRepo,
		r2Client,
		menuRepo,
		allergenRepo,
		hub,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	restaurantHandler := restaurant.NewHandler(restaurantService)
	menuHandler := menu.NewHandler(menuService)
	allergenHandler := allergen.NewHandler(allergenRepo)
	teamHandler := team.NewHandler(teamService)
	memoryHandler := memory.NewHandler(memoryService)
	toggleHandler := toggles.NewHandler(toggleService)
	importHandler := importer.NewHandler(importService)

	// requireOwner guards every restaurant-scoped route
	requireOwner := func(c *gin.Context) {
		userIDVal, exists := c.Get("userID")
		userID, ok := userIDVal.(string)
		if !exists || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		isOwner, err := restaurantService.IsOwner(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "ownership check failed"})
			return
		}
		if !isOwner {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.Next()
	}

	// ───────────────────────── RESTAURANT ROUTES ─────────────────────────
	restaurants := r.Group("/restaurants")
	restaurants.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("OWNER"),
	)
	{
		restaurants.POST("", restaurantHandler.CreateRestaurant)
		restaurants.GET("/me", restaurantHandler.ListMyRestaurants)

		scoped := restaurants.Group("/:id", requireOwner)
		{
			scoped.GET("", restaurantHandler.GetRestaurant)
			scoped.PUT("/settings", restaurantHandler.UpdateSettings)

			// Menu
			scoped.POST("/menu-items", menuHandler.CreateItem)
			scoped.GET("/menu-items", menuHandler.ListItems)

			// Menu import pipeline
			scoped.POST("/imports", importHandler.Start)
			scoped.GET("/imports/:import_id", importHandler.Preview)
			scoped.POST("/imports/:import_id/commit", importHandler.Commit)

			// Team
			scoped.POST("/team", teamHandler.Invite)
			scoped.GET("/team", teamHandler.ListMembers)
			scoped.PATCH("/team/:member_id", teamHandler.ChangeRole)
			scoped.DELETE("/team/:member_id", teamHandler.Remove)

			// Guest memories
			scoped.POST("/memories", memoryHandler.Record)
			scoped.GET("/memories", memoryHandler.List)
			scoped.DELETE("/memories/:memory_id", memoryHandler.Delete)

			// Feature toggles
			scoped.GET("/toggles", toggleHandler.ListToggles)
			scoped.PUT("/toggles/:feature", toggleHandler.SetToggle)

			// Live import progress
			scoped.GET("/events", realtimeHandler.Serve)
		}
	}

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/allergens", allergenHandler.ListCatalog)
	r.GET("/imports/template", importHandler.DownloadTemplate)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
