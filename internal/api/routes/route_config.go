package routes

import (
	"diet-diary/internal/api/handlers"
	"diet-diary/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	DiaryHandler    handlers.DiaryHandler
	ActivityHandler handlers.ActivityHandler
	ProductHandler  handlers.ProductHandler
	MealHandler     handlers.MealHandler
	UserHandler     handlers.UserHandler
	WeightHandler   handlers.WeightHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.Metrics())
	c.GuestRoute()
	c.Diary()
	c.Activity()
	c.Product()
	c.Meal()
	c.User()
	c.Weight()
}

func (c *Config) GuestRoute() {
	c.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", c.Middleware.MetricsHandler())
}

func (c *Config) Diary() {
	c.App.Get("/diary", c.DiaryHandler.GetDiary)
	c.App.Post("/diary", c.DiaryHandler.CreateDiary)
}

func (c *Config) Activity() {
	c.App.Get("/discipline", c.ActivityHandler.GetDiscipline)
	c.App.Get("/disciplines", c.ActivityHandler.SearchDisciplines)

	c.App.Get("/activity", c.ActivityHandler.GetActivity)
	c.App.Post("/activity", c.ActivityHandler.CreateActivity)
	c.App.Delete("/activity", c.ActivityHandler.DeleteActivity)
	c.App.Get("/activities", c.ActivityHandler.GetActivities)
}

func (c *Config) Product() {
	c.App.Get("/product", c.ProductHandler.GetProduct)
	c.App.Post("/product", c.ProductHandler.CreateProduct)
	c.App.Get("/products", c.ProductHandler.SearchProducts)

	c.App.Post("/ingredient", c.ProductHandler.CreateIngredient)
	c.App.Delete("/ingredient", c.ProductHandler.DeleteIngredient)
}

func (c *Config) Meal() {
	c.App.Get("/meal", c.MealHandler.GetMeal)
	c.App.Post("/meal", c.MealHandler.CreateMeal)
	c.App.Put("/meal", c.MealHandler.UpdateMeal)
	c.App.Delete("/meal", c.MealHandler.DeleteMeal)

	c.App.Get("/meal-type", c.MealHandler.GetMealType)
	c.App.Post("/meal-type", c.MealHandler.CreateMealType)
	c.App.Delete("/meal-type", c.MealHandler.DeleteMealType)
	c.App.Get("/meal-types", c.MealHandler.GetMealTypes)
}

func (c *Config) User() {
	c.App.Post("/user", c.UserHandler.Register)
	c.App.Put("/user", c.UserHandler.UpdateUser)
	c.App.Delete("/user", c.UserHandler.DeleteUser)
	c.App.Post("/profile", c.UserHandler.Profile)
	c.App.Post("/login", c.UserHandler.Login)
}

func (c *Config) Weight() {
	c.App.Get("/weight", c.WeightHandler.GetWeight)
	c.App.Post("/weight", c.WeightHandler.CreateWeight)
	c.App.Delete("/weight", c.WeightHandler.DeleteWeight)
	c.App.Get("/weights", c.WeightHandler.GetWeights)
}
