package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nimasrn/bank-records/internal/config"
	"github.com/nimasrn/bank-records/internal/handlers"
	"github.com/nimasrn/bank-records/internal/repository"
	"github.com/nimasrn/bank-records/internal/services"
	xhttp "github.com/nimasrn/bank-records/pkg/http"
	"github.com/nimasrn/bank-records/pkg/logger"
	"github.com/nimasrn/bank-records/pkg/pg"
	"github.com/nimasrn/bank-records/pkg/prom"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	s := xhttp.NewServer(xhttp.DefaultServerOption)
	s.Server.ReadBufferSize = 1024 * 16
	s.Server.WriteBufferSize = 1024 * 16
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 5))
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.RequestIDMiddleware)
	s.Use(prom.Middleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Router = xhttp.CreateDefaultRouter()

	readConf := pg.Config{
		User:     config.Get().PostgresReadUser,
		Host:     config.Get().PostgresReadHost,
		Port:     config.Get().PostgresReadPort,
		Password: config.Get().PostgresReadPassword,
		Database: config.Get().PostgresReadDatabase,
	}
	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	pgDebug := false
	if config.Get().AppEnv == "dev" {
		pgDebug = true
	}
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	host, _ := os.Hostname()
	if err := prom.Create(host, config.Get().AppEnv, config.Get().PromNamespace); err != nil {
		logger.Error("failed registering metrics", "error", err)
		return
	}

	customerRepo := repository.NewCustomerRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	customerLogRepo := repository.NewCustomerLogRepository(db)

	// services
	customerService := services.NewCustomerService(customerRepo, customerLogRepo)
	transactionService := services.NewTransactionService(transactionRepo, customerRepo)
	customerLogService := services.NewCustomerLogService(customerLogRepo)
	healthService := services.NewHealthService(db)

	// v1 handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	customerLogHandler := handlers.NewCustomerLogHandler(customerLogService)
	healthHandler := handlers.NewHealthHandler(healthService)

	g := s.Router.Group("/api/v1")
	handlers.RegisterCustomerRoutes(g, customerHandler)
	handlers.RegisterTransactionRoutes(g, transactionHandler)
	handlers.RegisterCustomerLogRoutes(g, customerLogHandler)
	handlers.RegisterHealthRoutes(g, healthHandler)
	s.Router.GET("/metrics", prom.Handler())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		var err = s.ListenAndServe(config.Get().HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	<-c
	s.Shutdown()
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
