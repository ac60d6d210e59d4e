package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"deliveryescrow/cmd"
	"deliveryescrow/internal/adapters/out/postgres/contactrepo"
	"deliveryescrow/internal/adapters/out/postgres/deliveryrepo"
	"deliveryescrow/internal/adapters/out/postgres/ledgerrepo"
	"deliveryescrow/internal/adapters/out/postgres/policyrepo"
	"deliveryescrow/internal/adapters/out/redispub"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	redisClient := mustConnectRedis(configs)
	publisher := redispub.NewPublisher(redisClient, logger)
	defer publisher.Close()

	app, err := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:      goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:  goDotEnvVariable("REDIS_PASSWORD"),
		OwnerAccount:   goDotEnvVariable("OWNER_ACCOUNT"),
		CustodyAccount: goDotEnvVariable("CUSTODY_ACCOUNT"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&contactrepo.ContactDTO{},
		&ledgerrepo.BalanceDTO{},
		&policyrepo.PolicyDTO{},
	)
	if err != nil {
		log.Fatalf("migrate database: %v", err)
	}
}

func mustConnectRedis(configs cmd.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	return client
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
