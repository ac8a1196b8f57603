package main

import (
	"log"

	"jewelmart/config"
	"jewelmart/db"
	"jewelmart/routes"
	"jewelmart/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db.InitDatabase(cfg.DatabasePath)

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New())

	routes.SetupRoutes(app, store.New(db.DB), cfg)

	log.Fatal(app.Listen(":" + cfg.Port))
}
