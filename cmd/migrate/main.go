package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kayumanis/furniture-order-service/config"
	"github.com/kayumanis/furniture-order-service/pkg/database/mysql"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment: cfg.Server.AppEnv == "development",
		Encoding:      cfg.Logger.Encoding,
		Level:         cfg.Logger.Level,
	})
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := mysql.NewMySQL(&mysql.Config{
		Host:         cfg.MySQL.Host,
		Port:         cfg.MySQL.Port,
		User:         cfg.MySQL.User,
		Password:     cfg.MySQL.Password,
		DBName:       cfg.MySQL.DBName,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()

	// 4. Apply Schema
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := mysql.Migrate(ctx, db); err != nil {
		appLogger.Fatal("Migration failed", zap.Error(err))
	}
	appLogger.Info("Schema is up to date",
		zap.String("db_name", cfg.MySQL.DBName),
		zap.Int("statements", len(mysql.Statements())),
	)
}
