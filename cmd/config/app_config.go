package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"diet-diary/internal/api/handlers"
	"diet-diary/internal/api/presenters"
	"diet-diary/internal/api/routes"
	"diet-diary/internal/middleware"
	"diet-diary/internal/utils"
	"diet-diary/pkg/activity"
	"diet-diary/pkg/diary"
	"diet-diary/pkg/meal"
	"diet-diary/pkg/product"
	"diet-diary/pkg/user"
	"diet-diary/pkg/weight"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, log *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes:     utils.GetConfig("APP_PRINT_ROUTES") == "true",
		DisableStartupMessage: true,
		ErrorHandler:          presenters.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware(log, middleware.NewMetrics())
	validator := utils.Validate

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middlewares.RequestLogger())
	app.Use(recover.New())

	// access log and limiter
	if path := utils.GetConfig("ACCESS_LOG_FILE"); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return nil, fmt.Errorf("create access log directory: %w", err)
		}
		file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("open access log: %w", err)
		}
		app.Use(logger.New(logger.Config{
			Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
			Output:     file,
		}))
	}

	if limit := utils.GetConfigInt("RATE_LIMIT_MAX", 0); limit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        limit,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	weightRepository := weight.NewWeightRepository(db)
	diaryRepository := diary.NewDiaryRepository(db)
	productRepository := product.NewProductRepository(db)
	disciplineRepository := activity.NewDisciplineRepository(db)
	activityRepository := activity.NewActivityRepository(db)
	mealRepository := meal.NewMealRepository(db)
	ingredientRepository := meal.NewIngredientRepository(db)

	// Service
	userService := user.NewUserService(userRepository, utils.GetConfigInt("BCRYPT_COST", bcrypt.DefaultCost))
	weightService := weight.NewWeightService(weightRepository, userRepository)
	diaryService := diary.NewDiaryService(diaryRepository, userRepository)
	productService := product.NewProductService(productRepository)
	disciplineService := activity.NewDisciplineService(disciplineRepository)
	activityService := activity.NewActivityService(activityRepository, disciplineRepository, diaryRepository)
	mealService := meal.NewMealService(mealRepository, ingredientRepository, diaryRepository)
	ingredientService := meal.NewIngredientService(ingredientRepository, mealRepository, productRepository)

	// Handler
	diaryHandler := handlers.NewDiaryHandler(diaryService, validator)
	activityHandler := handlers.NewActivityHandler(activityService, disciplineService, validator)
	productHandler := handlers.NewProductHandler(productService, ingredientService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)
	weightHandler := handlers.NewWeightHandler(weightService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		DiaryHandler:    diaryHandler,
		ActivityHandler: activityHandler,
		ProductHandler:  productHandler,
		MealHandler:     mealHandler,
		UserHandler:     userHandler,
		WeightHandler:   weightHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
