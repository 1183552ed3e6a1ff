package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mwhitmore/cbt-agent-mcp/internal/config"
	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/cbt"
	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/session"
	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/thinking"
	"github.com/mwhitmore/cbt-agent-mcp/internal/mcp"
	"github.com/mwhitmore/cbt-agent-mcp/internal/sqlite"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Server.Mode == config.ModeStdio {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	registryOpts := []session.Option{}
	if cfg.Archive.Path != "" {
		if err := ensureDBDir(cfg.Archive.Path); err != nil {
			logger.Error("failed to prepare archive path", "error", err)
			os.Exit(1)
		}
		db, err := sqlite.New(cfg.Archive.Path)
		if err != nil {
			logger.Error("failed to open archive database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.InitSchema(); err != nil {
			logger.Error("failed to initialize archive schema", "error", err)
			os.Exit(1)
		}
		registryOpts = append(registryOpts, session.WithArchiver(sqlite.NewArchiveStore(db)))
		logger.Info("session archive enabled", "path", cfg.Archive.Path)
	}

	registry := session.NewRegistry(logger, registryOpts...)

	server := mcp.NewServer(mcp.Config{
		Name:        cfg.Server.Name,
		Version:     version,
		SweepMaxAge: time.Duration(cfg.Session.SweepMaxAgeHours) * time.Hour,
		Registry:    registry,
		CBT:         cbt.NewService(logger),
		Thinking:    thinking.NewService(logger),
		Logger:      logger,
	})

	if cfg.Server.Mode == config.ModeStdio {
		runStdioMode(logger, server)
	} else {
		runHTTPMode(logger, server, cfg.Server.Host, cfg.Server.Port)
	}
}

func runStdioMode(logger *slog.Logger, server *mcp.Server) {
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or the context is canceled.
	if err := server.Run(ctx); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, server *mcp.Server, host string, port int) {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Handle("/mcp", server.HTTPHandler())
	router.Handle("/mcp/*", server.HTTPHandler())
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
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

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
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
