// Seeds the product catalog. Safe to run repeatedly: it does nothing once
// any product exists.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/config"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/repository"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/migrations"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/pkg/logger"
	"golang.org/x/text/currency"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "shop-seed",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	if err := run(cfg, log); err != nil {
		log.Error("fatal", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx := context.Background()

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

	repo := repository.NewProduct(pool)

	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info("catalog already seeded", slog.Int64("products", n))
		return nil
	}

	for _, p := range seedProducts(unit) {
		created, err := repo.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("seed %q: %w", p.Name, err)
		}
		log.Info("seeded product",
			slog.String("id", created.ID.String()),
			slog.String("name", created.Name),
		)
	}

	return nil
}
