package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/Hop-Syder/nexus-connect-t4/internal/config"
	"github.com/Hop-Syder/nexus-connect-t4/internal/database"
	"github.com/Hop-Syder/nexus-connect-t4/internal/handlers"
	"github.com/Hop-Syder/nexus-connect-t4/internal/middleware"
	"github.com/Hop-Syder/nexus-connect-t4/internal/routes"
	"github.com/Hop-Syder/nexus-connect-t4/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	services.InitTokenService(cfg.JWTSecret)
	if cfg.JWTSecret == "nexus-connect-secret-key-change-in-production" {
		log.Println("⚠️  WARNING: SECRET_KEY not set, using the default development secret")
	}

	// Connect to MongoDB (users + entrepreneurs)
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI, cfg.MongoDBName); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	if err := database.EnsureIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure MongoDB indexes: %v", err)
	} else {
		log.Println("✅ MongoDB indexes ensured")
	}

	// Connect to PostgreSQL (contact messages + reveal audit)
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis (rate limiting, stats cache, view counters)
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Initialize Firebase Admin for the provider token exchange
	if err := services.InitFirebase(context.Background(), cfg); err != nil {
		log.Printf("Warning: Failed to initialize Firebase: %v", err)
		log.Println("Provider sign-in will not be available")
	} else {
		log.Println("✅ Firebase Admin initialized")
	}

	// Initialize Cloudinary service
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		if err := handlers.InitCloudinaryService(cfg); err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("Logo uploads will not be available")
		} else {
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. Logo uploads will not be available")
	}

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/auth/register")
	log.Println("  POST /api/auth/login")
	log.Println("  POST /api/auth/firebase")
	log.Println("  GET  /api/auth/me")
	log.Println("  GET  /api/entrepreneurs")
	log.Println("  POST /api/entrepreneurs")
	log.Println("  GET  /api/entrepreneurs/{id}")
	log.Println("  GET  /api/entrepreneurs/{id}/contact")
	log.Println("  GET  /api/entrepreneurs/user/me")
	log.Println("  PUT  /api/entrepreneurs/{id}")
	log.Println("  POST /api/upload")
	log.Println("  POST /api/contact")
	log.Println("  GET  /api/stats")

	log.Printf("🚀 Nexus Connect backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
