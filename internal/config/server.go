package config

import (
	"FinanceTracker/database"
	authHandler "FinanceTracker/internal/api/auth/handler"
	authRepository "FinanceTracker/internal/api/auth/repository"
	authService "FinanceTracker/internal/api/auth/service"
	budgetHandler "FinanceTracker/internal/api/budget/handler"
	budgetRepository "FinanceTracker/internal/api/budget/repository"
	budgetService "FinanceTracker/internal/api/budget/service"
	transactionHandler "FinanceTracker/internal/api/transaction/handler"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"
	"FinanceTracker/pkg/bcrypt"
	"FinanceTracker/pkg/phone"
	"FinanceTracker/pkg/redis"
	"FinanceTracker/pkg/spreadsheet"
	"FinanceTracker/pkg/utils"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	phoneParser phone.IPhone
	spreadsheet spreadsheet.ISpreadsheet
	redisServer redis.IRedis
	handlers    []handler
	mountOnce   sync.Once
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log, server.redisServer)
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.bcryptUtils == nil {
		server.bcryptUtils = bcrypt.New()
	}
	if server.phoneParser == nil {
		server.phoneParser = phone.New()
	}
	if server.spreadsheet == nil {
		server.spreadsheet = spreadsheet.New()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects using the DB_* environment and migrates the schema.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before database")
		}
		db, err := database.New(s.log)
		if err != nil {
			s.log.Errorf("Failed to connect to database: %v", err)
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

// WithDB uses an already opened and migrated database.
func WithDB(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.redisServer)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func WithPhoneParser(parser phone.IPhone) ServerOption {
	return func(s *Server) error {
		s.phoneParser = parser
		return nil
	}
}

func WithSpreadsheet() ServerOption {
	return func(s *Server) error {
		s.spreadsheet = spreadsheet.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.redisServer, s.bcryptUtils, s.phoneParser, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Ledger
	transactionRepo := transactionRepository.New(s.db, s.log)
	aggregator := transactionService.NewAggregator(s.log, transactionRepo)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, aggregator, s.utils, s.spreadsheet)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices, aggregator)

	// Budgets
	budgetRepo := budgetRepository.New(s.db, s.log)
	budgetServices := budgetService.NewBudgetService(s.log, budgetRepo, s.utils)
	analytics := budgetService.NewAnalyticsEngine(s.log, budgetRepo, transactionRepo, aggregator)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices, analytics, aggregator)

	s.handlers = append(s.handlers, authHandlers, transactionHandlers, budgetHandlers)
}

// App mounts middleware, the health check and every registered handler
// under /api/v1, once, and returns the fiber app.
func (s *Server) App() *fiber.App {
	s.mountOnce.Do(func() {
		s.engine.Use(s.middleware.NewRequestIDMiddleware())
		s.engine.Use(s.middleware.NewLoggingMiddleware)
		s.engine.Use(s.middleware.NewRateLimiter)

		s.setupHealthCheck()

		router := s.engine.Group("/api/v1")
		for _, h := range s.handlers {
			h.Start(router)
		}
	})
	return s.engine
}

func (s *Server) Run() error {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.App().Listen(fmt.Sprintf(":%s", port))
}

// Shutdown drains in-flight requests, then closes the database and redis.
func (s *Server) Shutdown(timeout time.Duration) error {
	var errs []error

	if err := s.engine.ShutdownWithTimeout(timeout); err != nil {
		errs = append(errs, fmt.Errorf("fiber shutdown: %w", err))
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("database close: %w", err))
	}
	if s.redisServer != nil {
		if err := s.redisServer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/health", func(ctx *fiber.Ctx) error {
		c, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(c); err != nil {
			s.log.WithField("error", err.Error()).Error("Health check failed")
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"message":  "Database unavailable",
				"database": "down",
			})
		}

		return ctx.JSON(fiber.Map{
			"message":  "Server is Healthy!",
			"database": "up",
		})
	})
}
