// Command catalogctl inspects and maintains the persisted product catalog
// using the same storage configuration as the service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"catalog_service/config"
	"catalog_service/internal/container"
	"catalog_service/internal/seed"
	"catalog_service/internal/usecase"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.WarnLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCommand(openConfiguredStore(logger), os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// storeOpener returns the product store and a function releasing its backend.
type storeOpener func(ctx context.Context) (*usecase.ProductStore, func() error, error)

func openConfiguredStore(logger *logrus.Logger) storeOpener {
	return func(ctx context.Context) (*usecase.ProductStore, func() error, error) {
		cfg, err := config.Load(logger)
		if err != nil {
			return nil, nil, err
		}
		slot, closeSlot, err := container.NewSlot(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return usecase.NewProductStore(ctx, slot, seed.MustProducts(), cfg.CatalogKey, logger), closeSlot, nil
	}
}

func withStore(ctx context.Context, open storeOpener, out io.Writer, fn func(*usecase.ProductStore) error) error {
	store, closeStore, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if report := store.Report(); report.Diagnostic != "" {
		fmt.Fprintf(out, "# persisted catalog was discarded: %s\n", report.Diagnostic)
	}
	return fn(store)
}
