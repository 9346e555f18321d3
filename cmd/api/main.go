package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mcpdictapi/internal/config"
	apphttp "mcpdictapi/internal/http"
	"mcpdictapi/internal/httpx"
	"mcpdictapi/internal/logging"
	"mcpdictapi/internal/store"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	dict, err := store.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("open database", zap.String("path", cfg.Database.Path), zap.Error(err))
	}
	defer dict.Close()

	// The version marker is stamped at build time and fixed for the
	// process lifetime. A database without one was never stamped;
	// refuse to serve it.
	startCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	version, err := dict.Version(startCtx)
	cancel()
	if err != nil {
		logger.Fatal("load build version", zap.Error(err))
	}
	logger.Info("database ready",
		zap.String("path", cfg.Database.Path),
		zap.String("version", version),
	)

	dictHandler := apphttp.NewDictHandler(dict, version, cfg.Query.MaxChars)

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := dict.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	router.Handle("/list-langs/", rateLimit.Middleware(http.HandlerFunc(dictHandler.ListLangs)))
	router.Handle("/chars/", rateLimit.Middleware(http.HandlerFunc(dictHandler.Chars)))

	var handler http.Handler = router
	handler = httpx.CORSMiddleware(cfg.CORS.AllowedOrigins)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(logger)(handler)
	handler = httpx.AccessLogMiddleware(logger)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Server.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Fatal("server error", zap.Error(err))
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
