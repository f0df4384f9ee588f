package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/LiamCoop/upload-prints/internal/adapters/events/nats"
	"github.com/LiamCoop/upload-prints/internal/adapters/handlers/http/chi"
	file2 "github.com/LiamCoop/upload-prints/internal/adapters/handlers/http/chi/v1/file"
	order2 "github.com/LiamCoop/upload-prints/internal/adapters/handlers/http/chi/v1/order"
	"github.com/LiamCoop/upload-prints/internal/adapters/repository/postgres"
	"github.com/LiamCoop/upload-prints/internal/adapters/storage/minio"
	"github.com/LiamCoop/upload-prints/internal/auth"
	"github.com/LiamCoop/upload-prints/internal/config"
	"github.com/LiamCoop/upload-prints/internal/core/service/download"
	"github.com/LiamCoop/upload-prints/internal/core/service/order"
	"github.com/LiamCoop/upload-prints/internal/core/service/upload"
	_ "github.com/lib/pq"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to init storage", "error", err)
		os.Exit(1)
	}

	//events
	publisher, err := nats.NewPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)

	orderService := order.NewOrderService(unitOfWork, publisher, cfg.Upload, logger)
	uploadService := upload.NewUploadService(unitOfWork, minioAdapter, publisher, cfg.Upload, logger)
	downloadService := download.NewDownloadService(unitOfWork, minioAdapter, cfg.Upload, logger)

	//http
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)
	orderHandler := order2.NewOrderHandlerV1(orderService, logger)
	fileHandler := file2.NewFileHandlerV1(uploadService, downloadService, logger)

	router := chi.NewRouter(logger, verifier, orderHandler, fileHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}
