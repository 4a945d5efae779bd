package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CreatorKit/api-service/internal/analytics"
	"github.com/CreatorKit/api-service/internal/config"
	"github.com/CreatorKit/api-service/internal/handler"
	"github.com/CreatorKit/api-service/internal/mailer"
	"github.com/CreatorKit/api-service/internal/metrics"
	"github.com/CreatorKit/api-service/internal/mq"
	"github.com/CreatorKit/api-service/internal/provider"
	"github.com/CreatorKit/api-service/internal/repository"
	"github.com/CreatorKit/api-service/internal/repository/postgres"
	"github.com/CreatorKit/api-service/internal/server"
	"github.com/CreatorKit/api-service/internal/service"
	"github.com/CreatorKit/api-service/internal/storage"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()

	if err := initConfig(); err != nil {
		logger.Sugar().Fatalf("error initializing config: %s", err.Error())
	}

	if err := initEnv(); err != nil {
		logger.Sugar().Fatalf("error initializing env: %s", err.Error())
	}

	dbConfig := &config.DBConfig{
		Username: os.Getenv("DB_USERNAME"),
		Password: os.Getenv("DB_PASSWORD"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		DBName:   os.Getenv("DB_NAME"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}
	db, err := postgres.NewPgPool(context.Background(), dbConfig)
	if err != nil {
		logger.Sugar().Fatalf("error connecting to postgresql: %s", err.Error())
	}
	defer func() {
		db.Close()
	}()

	rdb := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Sugar().Fatalf("error occured on redis db connection close: %s", err.Error())
		}
	}()

	rabbit, err := mq.New(os.Getenv("RABBITMQ_URI"))
	if err != nil {
		logger.Sugar().Fatalf("error connecting to rabbitmq: %s", err.Error())
	}
	defer func() {
		if err := rabbit.Close(); err != nil {
			logger.Sugar().Fatalf("error occured on rabbitmq connection close: %s", err.Error())
		}
	}()

	store, err := storage.NewS3Storage(
		context.Background(),
		viper.GetString("aws.region"),
		viper.GetString("aws.bucket"),
		os.Getenv("AWS_ACCESS_KEY_ID"),
		os.Getenv("AWS_SECRET_ACCESS_KEY"),
	)
	if err != nil {
		logger.Sugar().Fatalf("error creating s3 storage: %s", err.Error())
	}

	generator, err := provider.NewReplicateGenerator(os.Getenv("REPLICATE_API_TOKEN"), viper.GetString("replicate.model"))
	if err != nil {
		logger.Sugar().Fatalf("error creating replicate generator: %s", err.Error())
	}

	mail := mailer.NewSMTPMailer(
		viper.GetString("smtp.host"),
		viper.GetInt("smtp.port"),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
		viper.GetString("smtp.from"),
	)

	tracker := analytics.NewMixpanelTracker(os.Getenv("MIXPANEL_TOKEN"))
	analytics.StartConsumer(rabbit, tracker)

	events := analytics.NewMQPublisher(rabbit, logger)

	repo := repository.New(db, rdb)
	services := service.New(logger, repo, store, generator, mail, events)

	prom := metrics.NewProm("api_service")
	handlers := handler.New(services, logger, prom)

	srv := server.New()
	serverConfig := &config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 30,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil {
			logger.Sugar().Fatalf("error running server: %s", err.Error())
		}
	}()

	logger.Info("API Server Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("API Server Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Sugar().Fatalf("error shutting down server: %s", err.Error())
	}
}

func initConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

func initEnv() error {
	return godotenv.Load()
}
