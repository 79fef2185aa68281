package main

import (
	"context"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kayumanis/furniture-order-service/config"
	"github.com/kayumanis/furniture-order-service/internal/order"
	"github.com/kayumanis/furniture-order-service/internal/report"
	"github.com/kayumanis/furniture-order-service/internal/server"
	"github.com/kayumanis/furniture-order-service/internal/storage"
	"github.com/kayumanis/furniture-order-service/pkg/broker"
	"github.com/kayumanis/furniture-order-service/pkg/cache"
	"github.com/kayumanis/furniture-order-service/pkg/database/mysql"
	"github.com/kayumanis/furniture-order-service/pkg/logger"

	buyerH "github.com/kayumanis/furniture-order-service/internal/buyer/handler"
	buyerRepoPkg "github.com/kayumanis/furniture-order-service/internal/buyer/repository"
	buyerUCPkg "github.com/kayumanis/furniture-order-service/internal/buyer/usecase"

	folderH "github.com/kayumanis/furniture-order-service/internal/folder/handler"
	folderRepoPkg "github.com/kayumanis/furniture-order-service/internal/folder/repository"
	folderUCPkg "github.com/kayumanis/furniture-order-service/internal/folder/usecase"

	orderH "github.com/kayumanis/furniture-order-service/internal/order/handler"
	orderRepoPkg "github.com/kayumanis/furniture-order-service/internal/order/repository"
	orderUCPkg "github.com/kayumanis/furniture-order-service/internal/order/usecase"

	prodH "github.com/kayumanis/furniture-order-service/internal/product/handler"
	prodRepoPkg "github.com/kayumanis/furniture-order-service/internal/product/repository"
	prodUCPkg "github.com/kayumanis/furniture-order-service/internal/product/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := mysql.NewMySQL(&mysql.Config{
		Host:            cfg.MySQL.Host,
		Port:            cfg.MySQL.Port,
		User:            cfg.MySQL.User,
		Password:        cfg.MySQL.Password,
		DBName:          cfg.MySQL.DBName,
		MaxOpenConns:    cfg.MySQL.MaxOpenConns,
		MaxIdleConns:    cfg.MySQL.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.MySQL.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.MySQL.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	appLogger.Info("Connected to MySQL database", zap.String("db_name", cfg.MySQL.DBName))

	// 4. Initialize Repositories
	prodRepo := prodRepoPkg.NewMySQLRepository(db)
	folderRepo := folderRepoPkg.NewMySQLRepository(db)
	buyerRepo := buyerRepoPkg.NewMySQLRepository(db)
	orderRepo := orderRepoPkg.NewMySQLRepository(db)

	// 5. Initialize Redis
	var redisClient *cache.RedisClient
	if cfg.Redis.Addr != "" {
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis (product list cache disabled)", zap.Error(err))
			redisClient = nil
		} else {
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 5.5 Initialize Kafka Producer
	var kafkaProducer *broker.KafkaProducer
	var publisher order.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer = broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		publisher = kafkaProducer
		appLogger.Info("Connected to Kafka Producer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	// 5.8 Initialize Upload Storage
	store, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.URLPrefix, cfg.Upload.MaxBytes)
	if err != nil {
		appLogger.Fatal("Could not prepare upload directory", zap.String("dir", cfg.Upload.Dir), zap.Error(err))
	}

	// 6. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, store, redisClient, appLogger)
	folderUC := folderUCPkg.NewFolderUseCase(folderRepo, redisClient, appLogger)
	buyerUC := buyerUCPkg.NewBuyerUseCase(buyerRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, prodRepo, publisher, appLogger)

	exporter := report.NewExporter(report.Options{
		CompanyName:    cfg.Report.CompanyName,
		CompanyTagline: cfg.Report.CompanyTagline,
		CompanyAddress: cfg.Report.CompanyAddress,
		CompanyPhone:   cfg.Report.CompanyPhone,
		CompanyEmail:   cfg.Report.CompanyEmail,
		CompanyWebsite: cfg.Report.CompanyWebsite,
		LogoPath:       cfg.Report.LogoPath,
		ImageBaseURL:   cfg.Report.ImageBaseURL,
		Workers:        cfg.Report.FetchWorkers,
	}, report.NewHTTPFetcher(time.Duration(cfg.Report.FetchTimeout)*time.Second), appLogger)

	// 7. Initialize Handlers
	srv := server.New(cfg, appLogger, server.Handlers{
		Products: prodH.NewProductHandler(prodUC, appLogger),
		Folders:  folderH.NewFolderHandler(folderUC, appLogger),
		Buyers:   buyerH.NewBuyerHandler(buyerUC, appLogger),
		Orders:   orderH.NewOrderHandler(orderUC, exporter, appLogger),
	})

	// 8. Start HTTP Server
	go func() {
		if err := srv.Listen(); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	operations := map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			appLogger.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
		"mysql": func(ctx context.Context) error {
			return db.Close()
		},
	}
	if redisClient != nil {
		operations["redis"] = func(ctx context.Context) error {
			return redisClient.Close()
		}
	}
	if kafkaProducer != nil {
		operations["kafka"] = func(ctx context.Context) error {
			return kafkaProducer.Close()
		}
	}

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		operations,
	)
	exitCode := <-wait
	appLogger.Info("Server stopped", zap.Int("exit_code", exitCode))
	_ = appLogger.Sync()
	os.Exit(exitCode)
}
