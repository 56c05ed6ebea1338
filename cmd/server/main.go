package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/sdamera/agriadvisor-backend/internal/classifier"
	"github.com/sdamera/agriadvisor-backend/internal/config"
	"github.com/sdamera/agriadvisor-backend/internal/database"
	"github.com/sdamera/agriadvisor-backend/internal/handlers"
	"github.com/sdamera/agriadvisor-backend/internal/middleware"
	"github.com/sdamera/agriadvisor-backend/internal/routes"
	"github.com/sdamera/agriadvisor-backend/internal/services"
)

func main() {
	// Load env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Log connection attempt (without showing password)
	log.Printf("Connecting to MongoDB...")
	if cfg.MongoURI != "" {
		// Mask password in log for security
		maskedURI := cfg.MongoURI
		if strings.Contains(maskedURI, "@") {
			parts := strings.Split(maskedURI, "@")
			if len(parts) > 0 && strings.Contains(parts[0], ":") {
				userPass := strings.Split(parts[0], ":")
				if len(userPass) >= 3 {
					maskedURI = strings.Replace(maskedURI, userPass[2], "***", 1)
				}
			}
		}
		log.Printf("MongoDB URI: %s", maskedURI)
	}

	// Connect to MongoDB. Failure is not fatal: the service keeps running on
	// the in-memory fallback stores so recommendations and auth stay up.
	if err := database.Connect(cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Printf("❌ MongoDB connection failed: %v", err)
		log.Println("⚠️  Running without persistence: users and contacts are kept in memory, content listings will be empty")
	} else {
		defer database.Disconnect()
		if err := services.EnsureUserIndexes(context.Background()); err != nil {
			log.Printf("⚠️  WARNING: failed to ensure user indexes: %v", err)
		} else {
			log.Println("✅ MongoDB user indexes ensured")
		}
	}

	// Connect to Redis (rate limiting only; skipped when unavailable)
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Printf("⚠️  WARNING: Redis connection failed: %v", err)
		log.Println("   Redis-based rate limiting is disabled")
	} else {
		defer database.DisconnectRedis()
	}

	// Initialize Cloudinary service
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		if err := handlers.InitCloudinaryService(cfg); err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("File uploads will not be available")
		} else {
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. File uploads will not be available")
	}

	// Load the fertilizer model bundle. Absence degrades to the default
	// label instead of failing startup.
	model, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		log.Printf("⚠️  WARNING: model bundle not loaded (%v); recommendations fall back to %q", err, services.DefaultFertilizer)
	} else {
		log.Printf("✅ Model loaded: %d trees, %d classes", len(model.Forest), len(model.Classes))
	}

	// Build services
	userCache := services.NewUserCache()
	userService := services.NewUserService(userCache)
	tokenService := services.NewTokenService(cfg.JWTSecret)
	recommendService := services.NewRecommendService(model)

	handlers.InitAuthHandlers(userService, tokenService)
	handlers.InitRecommendHandlers(recommendService)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Production: SecurityHeaders → GlobalRateLimit → AuthRateLimit
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity() {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP + auth rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no rate limit)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r, tokenService, userService)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /")
	log.Println("  GET  /health")
	log.Println("  POST /api/auth/register")
	log.Println("  POST /api/auth/login")
	log.Println("  GET  /api/me")
	log.Println("  GET  /api/secure-test")
	log.Println("  POST /api/recommend/")
	log.Println("  POST /api/contact")
	log.Println("  GET  /api/articles")
	log.Println("  GET  /api/articles/{id}")
	log.Println("  POST /api/articles")
	log.Println("  GET  /api/techniques")
	log.Println("  GET  /api/techniques/{id}")
	log.Println("  POST /api/techniques")
	log.Println("  POST /api/upload")

	log.Printf("🚀 AgriAdvisor backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
