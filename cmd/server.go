package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"tonwatch/internal/config"
	"tonwatch/internal/core"
	"tonwatch/internal/db"
	"tonwatch/internal/http/handler"
	"tonwatch/internal/http/handler/middleware"
	"tonwatch/internal/http/payload"
	"tonwatch/internal/http/server"
	"tonwatch/internal/notifier"
	"tonwatch/internal/observability"
	"tonwatch/internal/repository"
	"tonwatch/internal/tonindex"
	"tonwatch/pkg/jwt"
	"tonwatch/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("tonwatch", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewLedgerRepository(dbConn)

	err = repo.MigrateAndSeed(context.Background())
	if err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// indexer client
	indexClient := tonindex.NewClient(logger, config.TonAPIURL)

	// transfer service
	transfers := core.NewTransferService(
		logger,
		repo,
		jwtService,
		indexClient,
		config.MonitoredWallet,
		config.MinAmountTon)

	// deposit monitor
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	monitor := notifier.New(logger, transfers, metrics, notifier.Config{
		MonitoredWallet: config.MonitoredWallet,
		CheckInterval:   config.PollInterval,
		DefaultUserKey:  config.DefaultUserKey,
		MinAmountTon:    config.MinAmountTon,
	})
	monitor.RegisterCallback(func(event notifier.DepositEvent) {
		logger.Infow("deposit received",
			"wallet", event.WalletAddress,
			"amount_ton", event.Amount,
			"hash", event.Hash,
			"timestamp", event.Timestamp)
	})
	monitor.Start()

	// handler
	monitorHlr := handler.NewMonitorHandler(
		logger,
		payload.Decoder{},
		transfers,
		monitor)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, monitorHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetTransactions, monitorHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetWalletBalance, monitorHlr.HandleGetWalletBalance)
	mux.HandleFunc(handler.GetStats, monitorHlr.HandleGetStats)
	mux.HandleFunc(handler.SyncTransactions, monitorHlr.HandleSync)
	mux.HandleFunc(handler.MarkProcessed, monitorHlr.HandleMarkProcessed)
	mux.HandleFunc(handler.MonitorStatus, monitorHlr.HandleMonitorStatus)
	mux.HandleFunc(handler.MonitorStart, monitorHlr.HandleMonitorStart)
	mux.HandleFunc(handler.MonitorStop, monitorHlr.HandleMonitorStop)
	mux.HandleFunc(handler.NextDeposit, monitorHlr.HandleNextDeposit)
	mux.HandleFunc(handler.LatestDeposits, monitorHlr.HandleLatestDeposits)
	mux.HandleFunc(handler.StreamDeposits, monitorHlr.HandleStreamDeposits)
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv, monitor)
}

func run(server *server.HTTPServer, monitor *notifier.Notifier) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	monitor.Stop()

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
