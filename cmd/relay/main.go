package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/paystack-go/relay"
)

// Exit codes for configuration failures, so supervisors can tell them apart
// from a normal shutdown.
const (
	exitNoForwardURL   = 2
	exitNoProxyClients = 3
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	cfg := relay.FromEnv()
	addr := flag.String("addr", cfg.Addr, "address to listen on")
	mode := flag.String("mode", string(cfg.Mode), "forward or proxy")
	forwardURL := flag.String("forward", cfg.ForwardURL, "listener URL for forward mode")
	clients := flag.String("clients", strings.Join(cfg.ProxyClients, ","), "comma-separated listener URLs for proxy mode")
	logPayloads := flag.Bool("log-payloads", cfg.LogPayloads, "log received webhook bodies")
	flag.Parse()

	cfg.Addr = *addr
	cfg.Mode = relay.Mode(*mode)
	cfg.ForwardURL = *forwardURL
	cfg.ProxyClients = splitClients(*clients)
	cfg.LogPayloads = *logPayloads

	gin.SetMode(gin.ReleaseMode)

	rly, err := relay.New(cfg, log.Logger)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		switch {
		case errors.Is(err, relay.ErrNoForwardURL):
			os.Exit(exitNoForwardURL)
		case errors.Is(err, relay.ErrNoProxyClients):
			os.Exit(exitNoProxyClients)
		default:
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      rly.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("mode", string(cfg.Mode)).Msg("starting relay")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("relay failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down relay")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("relay forced to shutdown")
	}
	rly.Wait()

	log.Info().Msg("relay exited")
}

func splitClients(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
