package server

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trainloop/fitplan/internal/config"
	"github.com/trainloop/fitplan/internal/domain"
	"github.com/trainloop/fitplan/internal/handler"
	"github.com/trainloop/fitplan/internal/middleware"
	"github.com/trainloop/fitplan/internal/repository"
	"github.com/trainloop/fitplan/internal/service"
	"github.com/trainloop/fitplan/internal/telemetry"
)

const idempotencyTTL = 10 * time.Minute

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	// Initialize repositories
	userRepo := repository.NewMongoUserRepository(deps.MongoDB)
	refreshTokenRepo := repository.NewMongoRefreshTokenRepository(deps.MongoDB)
	profileRepo := repository.NewMongoProfileRepository(deps.MongoDB)
	trackingRepo := repository.NewMongoTrackingRepository(deps.MongoDB)
	workoutPlanRepo := repository.NewMongoWorkoutPlanRepository(deps.MongoDB)
	mealPlanRepo := repository.NewMongoMealPlanRepository(deps.MongoDB)
	exerciseRepo := repository.NewMongoExerciseRepository(deps.MongoDB)
	achievementRepo := repository.NewMongoAchievementRepository(deps.MongoDB)
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)

	// The catalog comes from the upstream API when configured, otherwise
	// from the seeded library collection.
	var catalog domain.ExerciseCatalog
	if deps.Config.Catalog.URL != "" {
		catalog = service.NewHTTPCatalog(deps.Config.Catalog.URL, deps.Config.Catalog.RequestTimeout)
	} else {
		catalog = service.NewLibraryCatalog(exerciseRepo)
	}

	// Initialize services
	calculator := service.NewBiometricCalculator()
	tokenService := service.NewTokenService(deps.Config.JWT, refreshTokenRepo, userRepo)
	authService := service.NewAuthService(userRepo, tokenService)
	profileService := service.NewProfileService(profileRepo, cacheRepo, calculator)

	planGenerator := service.NewPlanGenerator(catalog, nil)
	preferenceScheduler := service.NewPreferenceScheduler(catalog, nil)
	mealScheduler := service.NewMealScheduler()
	mealGenerator := service.NewMealPlanGenerator(mealScheduler)
	adapter := service.NewPlanAdapter(calculator)

	planService := service.NewPlanService(
		profileService,
		workoutPlanRepo,
		mealPlanRepo,
		cacheRepo,
		planGenerator,
		preferenceScheduler,
		mealGenerator,
		adapter,
	)

	analyzer := service.NewProgressAnalyzer()
	gamificationService := service.NewGamificationService(achievementRepo, trackingRepo)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := gamificationService.SeedLibrary(seedCtx); err != nil {
		log.Printf("Warning: failed to seed achievement library: %v", err)
	}
	trackingService := service.NewTrackingService(
		trackingRepo,
		profileService,
		cacheRepo,
		analyzer,
		adapter,
		gamificationService,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, tokenService)
	profileHandler := handler.NewProfileHandler(profileService)
	planHandler := handler.NewPlanHandler(planService, trackingService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	progressHandler := handler.NewProgressHandler(trackingService)
	gamificationHandler := handler.NewGamificationHandler(gamificationService)
	exerciseHandler := handler.NewExerciseHandler(catalog)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Fitplan API",
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	if deps.Config.Telemetry.Enabled {
		app.Use(telemetry.FiberMiddleware())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "fitplan",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// Auth endpoints (public)
	auth := v1.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)

	// Public catalog read
	v1.Get("/exercises", exerciseHandler.List)

	// Authenticated user API
	me := v1.Group("/me")
	me.Use(middleware.VerifyFitplanToken(deps.Config.JWT.Secret))
	me.Use(middleware.IdempotencyMiddleware(deps.RedisClient, idempotencyTTL))

	me.Get("/profile", profileHandler.Get)
	me.Put("/profile", profileHandler.Upsert)
	me.Get("/targets", profileHandler.Targets)

	mePlan := me.Group("/plan")
	mePlan.Post("/generate", planHandler.Generate)
	mePlan.Get("/", planHandler.Get)
	mePlan.Get("/workouts", planHandler.Workouts)
	mePlan.Get("/meals", planHandler.Meals)
	mePlan.Get("/shopping-list", planHandler.ShoppingList)
	mePlan.Post("/adjustments/apply", planHandler.ApplyAdjustments)

	me.Post("/checkins", trackingHandler.CheckIn)
	me.Get("/checkins", trackingHandler.List)

	meProgress := me.Group("/progress")
	meProgress.Get("/", progressHandler.Get)
	meProgress.Get("/insights", progressHandler.Insights)
	meProgress.Get("/adjustments", progressHandler.Adjustments)

	me.Get("/achievements", gamificationHandler.Achievements)
	me.Get("/streak", gamificationHandler.Streak)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
