package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/farmflow/backend/api/handler"
	"github.com/farmflow/backend/internal/config"
	"github.com/farmflow/backend/internal/infrastructure/kvstore"
	"github.com/farmflow/backend/internal/infrastructure/monitor"
	pgInfra "github.com/farmflow/backend/internal/infrastructure/postgres"
	redisInfra "github.com/farmflow/backend/internal/infrastructure/redis"
	weatherInfra "github.com/farmflow/backend/internal/infrastructure/weather"
	"github.com/farmflow/backend/internal/middleware"
	"github.com/farmflow/backend/internal/platform/push"
	"github.com/farmflow/backend/internal/router"
	"github.com/farmflow/backend/internal/services"
	"github.com/farmflow/backend/internal/services/lifecycle"
	"github.com/farmflow/backend/pkg/httpcontext"
	"github.com/farmflow/backend/pkg/logger"
	"github.com/farmflow/backend/repository/postgres"
	redisRepo "github.com/farmflow/backend/repository/redis"
	cropUC "github.com/farmflow/backend/usecase/crop"
	equipmentUC "github.com/farmflow/backend/usecase/equipment"
	farmUC "github.com/farmflow/backend/usecase/farm"
	financeUC "github.com/farmflow/backend/usecase/finance"
	"github.com/farmflow/backend/usecase/notify"
	taskUC "github.com/farmflow/backend/usecase/task"
	weatherUC "github.com/farmflow/backend/usecase/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	kvStore, err := kvstore.Open(cfg.KVStore.Path, cfg.KVStore.Bucket)
	if err != nil {
		zapLogger.Fatal("failed to open kv store", zap.Error(err))
	}
	manager.Register("kvstore", func(ctx context.Context) error {
		return kvStore.Close()
	})

	mon := monitor.New(pool, redisClient, kvStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	farmRepo := postgres.NewFarmRepository(pool)
	cropRepo := postgres.NewCropRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	weatherCache := redisRepo.NewWeatherCache(redisClient, cfg.Weather.CacheTTL)

	pushPlatform := push.NewPublisher(redisClient, cfg.Notifications.Channel, zapLogger)
	scheduler := notify.New(kvStore, pushPlatform, zapLogger)

	farmUseCase := farmUC.New(farmRepo, zapLogger)
	cropUseCase := cropUC.New(cropRepo, zapLogger)
	taskUseCase := taskUC.New(taskRepo, zapLogger)
	financeUseCase := financeUC.New(transactionRepo, zapLogger)
	equipmentUseCase := equipmentUC.New(equipmentRepo, zapLogger)
	weatherUseCase := weatherUC.New(weatherInfra.NewStaticProvider(), weatherCache, zapLogger)

	reminder := services.NewReminder(taskRepo, scheduler, zapLogger, services.ReminderConfig{
		Interval: cfg.Notifications.CheckInterval,
	})
	reminder.Start()
	manager.Register("reminder", func(ctx context.Context) error {
		reminder.Stop(ctx)
		return nil
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Farm:         apiHandler.NewFarmHandler(farmUseCase, ctxAdapter, zapLogger),
		Crop:         apiHandler.NewCropHandler(cropUseCase, ctxAdapter, zapLogger),
		Task:         apiHandler.NewTaskHandler(taskUseCase, scheduler, ctxAdapter, zapLogger),
		Transaction:  apiHandler.NewTransactionHandler(financeUseCase, ctxAdapter, zapLogger),
		Equipment:    apiHandler.NewEquipmentHandler(equipmentUseCase, ctxAdapter, zapLogger),
		Weather:      apiHandler.NewWeatherHandler(weatherUseCase, ctxAdapter, zapLogger),
		Notification: apiHandler.NewNotificationHandler(scheduler, ctxAdapter, zapLogger),
		Health:       apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)
	httpHandler := middleware.Chain(r.Handler,
		middleware.AccessLog(zapLogger),
		middleware.Recover(zapLogger),
	)

	server := &fasthttp.Server{
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
