package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"inventario/internal/handlers"
	"inventario/internal/repositories"
	"inventario/internal/services"
	"inventario/pkg/logger"
	"inventario/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATA_FILE", "data/products.json")
	viper.SetDefault("VIEWS_DIR", "views")
	viper.SetDefault("PUBLIC_DIR", "public")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.AutomaticEnv()

	log := logger.New(logger.Config{
		Env:   viper.GetString("APP_ENV"),
		Level: viper.GetString("LOG_LEVEL"),
	})

	// --- Persistence Store ---
	dataFile := viper.GetString("DATA_FILE")
	store, err := repositories.NewFileStore(dataFile, log)
	if err != nil {
		log.Fatal().Err(err).Str("file", dataFile).Msg("no se pudo inicializar el almacén de productos")
	}

	// --- Optional RabbitMQ client for product change events ---
	var events services.EventPublisher
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo conectar a RabbitMQ")
		}
		defer mqClient.Close()
		events = mqClient

		if err := mqClient.ConsumeProductEvents(func(msg amqp.Delivery) error {
			log.Info().Str("body", string(msg.Body)).Msg("evento de producto recibido")
			return nil
		}); err != nil {
			log.Warn().Err(err).Msg("no se pudo iniciar el consumidor de eventos")
		}
	}

	// --- Services and Handlers ---
	productService := services.NewProductService(store, events, log)
	productHandler := handlers.NewProductHandler(productService, log)
	uiHandler := handlers.NewUIHandler(productService, log)
	pageHandler := handlers.NewPageHandler(viper.GetString("VIEWS_DIR"), log)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{
		AppName:      "Sistema de Gestión de Inventario",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// --- Routes ---
	app.Get("/", pageHandler.HandleIndex)
	app.Static("/", viper.GetString("PUBLIC_DIR"))

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)
	uiHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	addr := ":" + viper.GetString("PORT")
	log.Info().Str("addr", addr).Str("file", dataFile).Msg("iniciando servidor")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("el servidor no pudo iniciar")
		}
	}()

	<-quit
	log.Info().Msg("apagando servidor")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error durante el apagado")
	}
	log.Info().Msg("servidor detenido")
}
