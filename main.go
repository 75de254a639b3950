package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"hackhub/admin-api/config"
	"hackhub/admin-api/handlers"
	"hackhub/admin-api/internal/storage"
	"hackhub/admin-api/internal/store"
	"hackhub/admin-api/middleware"
)

func main() {
	config.LoadEnv()
	config.InitLogger()

	if err := config.InitSupabase(); err != nil {
		log.Fatalf("Failed to initialize Supabase: %v", err)
	}

	supabaseClient := config.GetSupabaseClient()
	gateway := store.NewSupabase(supabaseClient)
	images := storage.NewSupabase(supabaseClient.Storage)

	h := handlers.NewApplicationHandler(config.Log, gateway, images)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnvOrDefault("CORS_ALLOW_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(config.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Hackathon admin API is healthy",
		})
	})

	apiV1 := app.Group("/api/v1")

	apiV1.Get("/hackathons", h.ListHackathons)
	apiV1.Post("/hackathons", h.CreateHackathon)
	apiV1.Get("/hackathons/:id", h.GetHackathon)
	apiV1.Patch("/hackathons/:id", h.UpdateHackathon)
	apiV1.Delete("/hackathons/:id", h.DeleteHackathon)

	apiV1.Get("/dashboard/stats", h.GetDashboardStats)

	port := config.GetEnvOrDefault("PORT", "8080")
	config.Log.WithField("port", port).Info("Starting hackathon admin API")
	log.Fatal(app.Listen(":" + port))
}
