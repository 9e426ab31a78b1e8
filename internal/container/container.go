package container

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	grpcdelivery "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/domain"
	"catalog_service/internal/i18n"
	"catalog_service/internal/repository"
	"catalog_service/internal/seed"
	"catalog_service/internal/usecase"
	"catalog_service/pkg/db"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

// SQLiteFileName is the database file created under STORAGE_PATH by the sqlite driver.
const SQLiteFileName = "catalog.db"

// Container holds all initialized components
type Container struct {
	Config *config.Config

	Slot       domain.Slot
	Store      *usecase.ProductStore
	Catalog    usecase.CatalogUseCase
	Admin      usecase.AdminUseCase
	Auth       usecase.AuthUseCase
	Lookbook   usecase.LookbookUseCase
	Translator *i18n.Translator

	HTTPServer *http.Server
	GRPCServer *grpc.Server

	log     *logrus.Logger
	closers []func() error
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{Config: cfg, log: logger}

	slot, closeSlot, err := NewSlot(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	c.Slot = slot
	c.closers = append(c.closers, closeSlot)

	tr, err := i18n.NewTranslator(cfg.DefaultLanguage)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Translator = tr

	policy, err := usecase.NewBcryptPolicy(cfg.AdminEmail, cfg.AdminPassword, bcrypt.DefaultCost)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Store = usecase.NewProductStore(ctx, slot, seed.MustProducts(), cfg.CatalogKey, logger)
	c.Catalog = usecase.NewCatalogUseCase(c.Store, logger)
	c.Admin = usecase.NewAdminUseCase(c.Store, logger)
	c.Auth = usecase.NewAuthUseCase(policy, slot, cfg.SessionKey, logger)
	c.Lookbook = usecase.NewLookbookUseCase(seed.MustCollections(), logger)
	logger.Info("Use cases initialized.")

	router := delivery.NewRouter(logger, tr,
		delivery.NewHealthHandler(c.Store),
		delivery.NewCatalogHandler(c.Catalog, tr, logger),
		delivery.NewLookbookHandler(c.Lookbook, tr, logger),
		delivery.NewAuthHandler(c.Auth, tr, logger),
		delivery.NewAdminHandler(c.Admin, c.Auth, tr, logger),
	)
	c.HTTPServer = &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	c.GRPCServer = grpcdelivery.NewServer(grpcdelivery.NewCatalogHandler(c.Catalog, logger), logger)
	logger.Info("Handlers initialized.")

	return c, nil
}

// NewSlot opens the persistence backend selected by STORAGE_DRIVER. The
// returned close function releases its connections.
func NewSlot(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (domain.Slot, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.DriverMemory:
		logger.Warn("Using in-memory storage; the catalog will not survive a restart")
		return repository.NewMemorySlot(), noop, nil

	case config.DriverFile:
		slot, err := repository.NewFileSlot(afero.NewOsFs(), cfg.StoragePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return slot, noop, nil

	case config.DriverSQLite:
		if err := afero.NewOsFs().MkdirAll(cfg.StoragePath, 0o755); err != nil {
			return nil, nil, fmt.Errorf("could not create storage directory %s: %w", cfg.StoragePath, err)
		}
		database, err := db.OpenSQLite(ctx, filepath.Join(cfg.StoragePath, SQLiteFileName))
		if err != nil {
			return nil, nil, err
		}
		slot, err := repository.NewSQLiteSlot(ctx, database, logger)
		if err != nil {
			_ = database.Close()
			return nil, nil, err
		}
		logger.Info("SQLite storage ready.")
		return slot, database.Close, nil

	case config.DriverPostgres:
		database, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		slot, err := repository.NewPostgresSlot(ctx, database, logger)
		if err != nil {
			_ = database.Close()
			return nil, nil, err
		}
		logger.Info("Database connection established.")
		return slot, database.Close, nil

	case config.DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Info("Connected to Redis successfully")
		return repository.NewRedisSlot(rdb, cfg.RedisPrefix, logger), rdb.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// Run serves HTTP and gRPC until ctx is cancelled or either server fails,
// then shuts both down gracefully.
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.log.Infof("Starting HTTP server on %s", c.HTTPServer.Addr)
		if err := c.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		lis, err := net.Listen("tcp", c.Config.GrpcPort)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", c.Config.GrpcPort, err)
		}
		c.log.Infof("gRPC server listening on %s", c.Config.GrpcPort)
		if err := c.GRPCServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		c.log.Warn("Shutdown signal received...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		c.GRPCServer.GracefulStop()
		c.log.Info("gRPC server gracefully stopped.")
		if err := c.HTTPServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		c.log.Info("HTTP server gracefully stopped.")
		return nil
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	c.log.Info("Shutting down container...")
	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	c.log.Info("Container shut down successfully")
	return errors.Join(errs...)
}
