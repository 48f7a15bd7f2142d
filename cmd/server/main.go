package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/triagekit/triage/internal/config"
	"github.com/triagekit/triage/internal/domain/ticket"
	"github.com/triagekit/triage/internal/envelope"
	"github.com/triagekit/triage/internal/jsonstore"
	"github.com/triagekit/triage/internal/transport"
	"github.com/triagekit/triage/internal/triage"
)

// demoInputs seed an empty store with a few showcase tickets.
var demoInputs = []string{
	"Create ticket for database connection timeout, high priority",
	"Create ticket: Update documentation for new API endpoints",
	"Create ticket for server deployment automation, medium priority",
	"Update T001 to in progress, investigating connection pool",
}

func main() {
	var (
		dataPath = pflag.String("data", "", "path to the ticket store (overrides config)")
		seed     = pflag.Bool("seed", false, "seed demo tickets when the store is empty")
	)
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *dataPath != "" {
		cfg.Store.Path = *dataPath
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	store, err := jsonstore.New(cfg.Store.Path)
	if err != nil {
		logger.Error("failed to open ticket store", "error", err)
		os.Exit(1)
	}

	tickets := ticket.NewService(store, logger)
	processor := triage.NewProcessor(tickets, logger)

	if *seed {
		seedDemo(processor, logger)
	}

	router := transport.NewRouter(processor, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "store", cfg.Store.Path)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func seedDemo(processor *triage.Processor, logger *slog.Logger) {
	ctx := context.Background()

	existing, err := processor.Tickets(ctx)
	if err != nil || len(existing) > 0 {
		return
	}

	for _, input := range demoInputs {
		resp := processor.Process(ctx, input)
		if resp.Status != envelope.StatusOK {
			logger.Warn("demo seed input rejected", "input", input, "msg", resp.Msg)
		}
	}
	logger.Info("seeded demo tickets", "count", len(demoInputs))
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
