// @title         yourfit auth API
// @version       1.0
// @description   Minimal authentication backend: registration and login with bcrypt password hashing and stateless JWT sessions.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Authorization token in the form "Bearer <JWT>".
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	_ "github.com/yourfit/backend/docs"

	// internal imports
	"github.com/yourfit/backend/api/http"
	"github.com/yourfit/backend/api/http/handlers"
	"github.com/yourfit/backend/pkg/auth"
	"github.com/yourfit/backend/pkg/config"
	"github.com/yourfit/backend/pkg/health"
	healthpg "github.com/yourfit/backend/pkg/health/checkers"
	pgrepo "github.com/yourfit/backend/pkg/repository/postgres"
	jwtsec "github.com/yourfit/backend/pkg/security/jwt"
	"github.com/yourfit/backend/pkg/security/password"
	"github.com/yourfit/backend/pkg/storage/postgres"
)

func main() {
	// Load configuration from env/.env; missing DATABASE_URL or JWT_SECRET
	// must stop the process here.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())

	// Connect to PostgreSQL
	pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()

	// Wire dependencies (Clean Architecture)
	userRepo, err := pgrepo.NewUserRepository(pool)
	if err != nil {
		log.Fatalf("init user repo: %v", err)
	}

	hasher := password.NewHasher(cfg.BcryptCost)
	tokens := jwtsec.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	authUC := auth.NewAuthService(userRepo, hasher, tokens)
	authHandler := handlers.NewAuthHandler(authUC)

	// Health service: compose checkers
	readiness := health.NewService(healthpg.NewPostgresChecker(pool))
	healthHandler := handlers.NewHealthHandler(readiness)

	// JWT auth middleware for protected routes
	authMW := jwtsec.NewAuthMiddleware(tokens)

	// Register routes
	http.Register(app, authHandler, healthHandler, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	log.Printf("HTTP server listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
