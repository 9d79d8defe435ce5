package config

import (
	"os"
	"time"

	"Bomb-Kitchen-Backend/internal/api/handlers"
	"Bomb-Kitchen-Backend/internal/api/routes"
	"Bomb-Kitchen-Backend/internal/middleware"
	"Bomb-Kitchen-Backend/internal/utils"
	"Bomb-Kitchen-Backend/pkg/menu"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	menuRepository := menu.NewMenuRepository(db)

	// Service
	menuService := menu.NewMenuService(menuRepository)

	// Handler
	menuHandler := handlers.NewMenuHandler(menuService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		MenuHandler: menuHandler,
		Middleware:  middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
