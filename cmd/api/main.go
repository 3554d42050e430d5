package main

import (
	"context"
	"log"
	"time"

	"mangosense/config"
	"mangosense/internal/classifier"
	"mangosense/internal/domain/prediction"
	"mangosense/internal/handler"
	"mangosense/internal/redis"
	"mangosense/internal/repository"
	"mangosense/internal/server"
	"mangosense/internal/services"
	"mangosense/internal/storage"
	"mangosense/pkg/database"
	"mangosense/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	defer l.Sync()

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, cfg); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redisClient, err := redis.NewClient(ctx, redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	sessions := redis.NewSessionStore(redisClient, time.Duration(cfg.SessionExpiryMin)*time.Minute)
	limiter := redis.NewRateLimiter(redisClient, redis.DefaultRateLimitConfig())

	// The classifier is loaded once here and shared read-only by every
	// request. A load failure is not fatal: /predict degrades to an error
	// response and /test-model reports the state.
	var model *classifier.Handle
	onnxModel, err := classifier.LoadONNX(classifier.ONNXConfig{
		ModelPath:      cfg.ModelPath,
		OrtLibraryPath: cfg.OrtLibraryPath,
		InputName:      cfg.ModelInputName,
		OutputName:     cfg.ModelOutputName,
		InputHeight:    services.ImgSize,
		InputWidth:     services.ImgSize,
		NumClasses:     len(prediction.ClassNames),
	})
	if err != nil {
		l.Errorf("Error loading model: %s", err)
		model = classifier.NewUnloadedHandle(cfg.ModelPath, err)
	} else {
		defer onnxModel.Close()
		model = classifier.NewHandle(onnxModel, cfg.ModelPath)
	}

	var archiver *storage.Archiver
	if cfg.ArchiveBucket != "" {
		archiver, err = storage.NewArchiver(ctx, storage.ArchiveConfig{
			Region:    cfg.ArchiveRegion,
			Bucket:    cfg.ArchiveBucket,
			AccessKey: cfg.ArchiveAccessKey,
			SecretKey: cfg.ArchiveSecretKey,
			Endpoint:  cfg.ArchiveEndpoint,
		})
		if err != nil {
			l.Warnf("Image archiving disabled: %s", err)
			archiver = nil
		}
	}

	userRepo := repository.NewUserRepository(pool)
	accountService := services.NewAccountService(userRepo, sessions)
	adminAuthService := services.NewAdminAuthService(userRepo, cfg)
	inferenceService := services.NewInferenceService(model, archiver, l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Account:   handler.NewAccountHandler(accountService),
		AdminAuth: handler.NewAdminAuthHandler(adminAuthService),
		Inference: handler.NewInferenceHandler(inferenceService),
	}, pool, redisClient, limiter)

	if err := srv.Start(); err != nil {
		l.Errorf("Server exited with error: %s", err)
	}
}
