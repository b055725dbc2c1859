package main

import (
	"FinanceTracker/internal/config"
	"FinanceTracker/pkg/log"
	"FinanceTracker/pkg/redis"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	envErr := godotenv.Load()

	logger := log.NewLogger()
	if envErr != nil {
		logger.Warnf("No .env file loaded, using process environment: %v", envErr)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New(logger)

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithMiddleware(),
		config.WithBcryptUtils(),
		config.WithUtils(),
		config.WithSpreadsheet(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Run()
	}()

	logger.Info("Server started successfully")

	select {
	case <-sigChan:
		logger.Info("Shutting down server...")
	case err := <-serverErr:
		if err != nil {
			logger.Errorf("Error starting server: %v", err)
		}
	}

	if err := server.Shutdown(shutdownTimeout); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
