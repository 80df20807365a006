package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/internal/app"
	"github.com/Humayun167/green-nest/internal/infrastructure/cache"
	"github.com/Humayun167/green-nest/internal/infrastructure/database/mongodb"
	"github.com/Humayun167/green-nest/internal/infrastructure/mailer"
	"github.com/Humayun167/green-nest/internal/infrastructure/message-queue/kafka"
	paymentgateway "github.com/Humayun167/green-nest/internal/infrastructure/payment-gateway"
	"github.com/Humayun167/green-nest/internal/infrastructure/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = logger

	if config.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := mongodb.ConnectToMongoDB(ctx, config.MongoDBConfig.URI, config.MongoDBConfig.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}
	defer db.Client().Disconnect(context.Background())

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	bucket, err := storage.OpenBucket(ctx, config.StorageConfig.BucketURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open the image bucket")
	}
	defer bucket.Close()

	server := app.App{
		Config: config,
		DB:     db,
		Bucket: bucket,
	}

	if config.RedisConfig.Address != "" {
		redisClient, err := cache.CreateRedisClient(ctx, config)
		if err != nil {
			log.Error().Err(err).Msg("Redis unavailable, product cache disabled")
		} else {
			defer redisClient.Close()
			server.Redis = redisClient
		}
	}

	if config.KafkaConfig.BrokerAddress != "" {
		producer := kafka.CreateProducer(kafka.CreateKafkaWriter(config))
		defer producer.Close()
		server.Producer = producer

		reader := kafka.CreateKafkaReader(config)
		defer reader.Close()
		server.Reader = reader
	} else {
		log.Warn().Msg("BROKER_ADDRESS not set, events are dropped")
		server.Producer = kafka.NoopProducer{}
	}

	if config.MidtransConfig.ServerKey != "" {
		server.Gateway = paymentgateway.CreateMidtransGateway(paymentgateway.CreateMidtransClient(config))
	}

	if config.SMTPConfig.Server != "" {
		server.Mailer = mailer.CreateSMTPMailer(config.SMTPConfig)
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		if err := server.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop the server")
		}
	}()

	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}

	<-stopped
}
