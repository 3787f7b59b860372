package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/scrng/scoreboard-web/internal/gateway"
	"github.com/scrng/scoreboard-web/internal/session"
	"github.com/scrng/scoreboard-web/internal/view"
	"github.com/scrng/scoreboard-web/internal/web"
)

// config is the server's environment configuration. The API origin differs
// per deployment context (local development vs. deployed) and is the one
// required value.
type config struct {
	APIURL    string `env:"SCOREBOARD_API,required"`
	Host      string `env:"HOST" envDefault:""`
	Port      int    `env:"PORT" envDefault:"8080"`
	StaticDir string `env:"STATIC_DIR" envDefault:"internal/web/static"`
}

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Local development reads a .env file; absence is fine
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client := gateway.NewClient(cfg.APIURL)
	sessions := session.New()
	views := view.NewRegistry(client, logger)

	router := web.NewRouter(web.RouterConfig{
		Logger:    logger,
		Client:    client,
		Sessions:  sessions,
		Views:     views,
		StaticDir: findStaticDir(cfg.StaticDir),
	})

	serverConfig := web.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := web.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("api", cfg.APIURL),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// findStaticDir returns the static directory if it exists, empty otherwise
func findStaticDir(dir string) string {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return ""
}
