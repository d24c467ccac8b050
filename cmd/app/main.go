package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/M-o-m-e-n/restaurant-ordering-system/cmd"
	httpadapter "github.com/M-o-m-e-n/restaurant-ordering-system/internal/adapters/in/http"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/adapters/out/postgres/cartrepo"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/adapters/out/postgres/deliveryrepo"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/adapters/out/postgres/driverrepo"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/adapters/out/postgres/menurepo"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/adapters/out/postgres/orderrepo"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/adapters/out/postgres/restaurantrepo"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	app := cmd.NewCompositionRoot(gormDB, redisClient, logger)

	jobManager := jobs.NewJobManager(
		app.CreateProcessOrderQueueCommandHandler(),
		configs.QueueSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:      os.Getenv("HTTP_PORT"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     os.Getenv("DB_SSLMODE"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		QueueSchedule: os.Getenv("QUEUE_SCHEDULE"),
	}
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&cartrepo.CartDTO{}, &cartrepo.CartItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&driverrepo.DriverDTO{},
		&menurepo.MenuItemDTO{},
		&restaurantrepo.RestaurantDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateSyncOrdersCommandHandler(),
		app.CreateEnqueueOrderCommandHandler(),
		app.CreateUpsertCartItemCommandHandler(),
		app.CreateRemoveCartItemCommandHandler(),
		app.CreateClearCartCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateUpdateDriverLocationCommandHandler(),
		app.CreateUpdateDriverAvailabilityCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAvailableDriversQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
