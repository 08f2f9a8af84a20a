package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bomapay-gateway/application"
	"bomapay-gateway/infrastructure/metrics"
	"bomapay-gateway/infrastructure/service/bank_service"
	"bomapay-gateway/presenters"
	"bomapay-gateway/utils/configs"
	logger2 "bomapay-gateway/utils/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	lg, err := logger2.NewLogger(config.ENV)
	if err != nil {
		panic(err)
	}
	defer lg.Sync()

	handler, err := newHandler(config, lg, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	if err != nil {
		lg.With(zap.Error(err)).Fatal("cannot create gateway client")
	}

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		lg.Warn("shutting down http server...")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			lg.With(zap.Error(err)).Error("shutdown")
		}
	}()

	lg.With(zap.Field{
		Key:    "port",
		Type:   zapcore.StringType,
		String: config.Port,
	}).Info("starting http server...")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}

func newHandler(config *configs.AppConfig, lg *zap.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) (http.Handler, error) {
	client, err := application.NewClient(config.Gateway, lg, bank_service.WithMetrics(metrics.NewMetrics(reg)))
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(presenters.WrapperLogging(lg))
	router.Use(middleware.Recoverer)
	presenters.NewPaymentAPI(client, lg).AppendRoutes(router)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return router, nil
}
