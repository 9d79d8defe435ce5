package routes

import (
	"Bomb-Kitchen-Backend/internal/api/handlers"
	"Bomb-Kitchen-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	MenuHandler handlers.MenuHandler
	Middleware  middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Menu()
	c.GuestRoute()
}

func (c *Config) Menu() {
	api := c.App.Group("/api")
	// menu routes, read-only
	{
		api.Get("/items", c.MenuHandler.GetItems)
		api.Get("/items/:id", c.MenuHandler.GetItemDetails)
		api.Get("/categories", c.MenuHandler.GetCategories)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
