package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"glamgirl/internal/api"
	"glamgirl/internal/handlers"
	"glamgirl/internal/middleware"
	"glamgirl/internal/repositories"
	"glamgirl/internal/services"
	"glamgirl/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("BACKEND_URL", "http://127.0.0.1:8000/api")
	viper.SetDefault("BACKEND_TIMEOUT", "15s")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables order events
	viper.SetDefault("WISHLIST_DB_DRIVER", "sqlite")
	viper.SetDefault("WISHLIST_DB_DSN", "glamgirl_wishlist.db")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Backend API client ---
	// One client = one backend session = one cart.
	client, err := api.NewHTTPClient(api.Config{
		BaseURL: viper.GetString("BACKEND_URL"),
		Timeout: viper.GetDuration("BACKEND_TIMEOUT"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize backend client: %v", err)
	}

	// --- Wishlist storage ---
	wishlistRepo := newWishlistRepository()

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, order events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Services ---
	catalogService := services.NewCatalogService(client)
	cartService := services.NewCartService(client)
	wishlistService, err := services.NewWishlistService(wishlistRepo)
	if err != nil {
		log.Fatalf("Failed to load wishlist: %v", err)
	}
	var publisher services.OrderEventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	orderService := services.NewOrderService(client, cartService, publisher)

	// Warm the cart mirror. Failure is non-fatal; the first /cart request
	// retries and an unreachable backend should not block startup.
	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := cartService.Refresh(startupCtx); err != nil {
		log.Printf("Warning: initial cart fetch failed: %v", err)
	}
	cancel()

	// --- Handlers ---
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")

	// Cart and wishlist responses are session-specific.
	apiV1.Use("/cart", middleware.NoStore())
	apiV1.Use("/wishlist", middleware.NoStore())

	catalogHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	wishlistHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order event consumer ---
	// Logs confirmed orders; the hook where confirmation mail or fulfilment
	// would attach.
	if mqClient != nil {
		go func() {
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start order event consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server ---
	log.Printf("Starting storefront on %s (backend %s)", appPort, viper.GetString("BACKEND_URL"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down storefront...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Storefront stopped")
}

// newWishlistRepository opens the configured wishlist storage. When the
// database cannot be opened the wishlist degrades to in-memory so the shop
// still works; favorites then just don't survive a restart.
func newWishlistRepository() repositories.WishlistRepository {
	driver := viper.GetString("WISHLIST_DB_DRIVER")
	dsn := viper.GetString("WISHLIST_DB_DSN")

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		log.Printf("Warning: unknown wishlist driver %q, using in-memory wishlist", driver)
		return repositories.NewMockWishlistRepository()
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Printf("Warning: wishlist storage unavailable (%v), using in-memory wishlist", err)
		return repositories.NewMockWishlistRepository()
	}

	repo, err := repositories.NewGORMWishlistRepository(db)
	if err != nil {
		log.Printf("Warning: wishlist migration failed (%v), using in-memory wishlist", err)
		return repositories.NewMockWishlistRepository()
	}
	return repo
}
