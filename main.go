package main

import (
	"context"
	"log"

	"Bomb-Kitchen-Backend/cmd/config"
	migration "Bomb-Kitchen-Backend/cmd/database/migrate"
	"Bomb-Kitchen-Backend/internal/utils"
	"Bomb-Kitchen-Backend/pkg/menu"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Seed before the listener comes up so the first request never sees a
	// half-populated menu.
	seeder := menu.NewMenuSeeder(menu.NewMenuRepository(db))
	if err := seeder.Seed(context.Background()); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "5000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
