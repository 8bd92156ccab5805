package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/auth"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/config"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/handler"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/repository"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/service"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/migrations"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/pkg/logger"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/pkg/shutdown"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/currency"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "shop-api",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	if err := run(cfg, log); err != nil {
		log.Error("fatal", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := repository.Migrate(cfg.DatabaseURL, migrations.FS); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", cfg.Currency, err)
	}

	tokens, err := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	productRepo := repository.NewProduct(pool)
	h := handler.New(
		service.NewOrder(repository.NewOrder(pool), domain.DefaultPricingPolicy(unit)),
		service.NewCart(repository.NewCart(pool), productRepo),
		service.NewCatalog(productRepo),
		service.NewUser(repository.NewUser(pool)),
		tokens,
		log,
	)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.API(h),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
	return nil
}
