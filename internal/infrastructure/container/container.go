// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	application "github.com/alchemorsel/pantry/internal/application/pantry"
	"github.com/alchemorsel/pantry/internal/domain/matching"
	"github.com/alchemorsel/pantry/internal/domain/measure"
	"github.com/alchemorsel/pantry/internal/infrastructure/cache"
	"github.com/alchemorsel/pantry/internal/infrastructure/config"
	"github.com/alchemorsel/pantry/internal/infrastructure/http/apiserver"
	gormRepo "github.com/alchemorsel/pantry/internal/infrastructure/persistence/gorm"
	"github.com/alchemorsel/pantry/internal/infrastructure/persistence/memory"
	"github.com/alchemorsel/pantry/internal/infrastructure/persistence/postgres"
	"github.com/alchemorsel/pantry/internal/infrastructure/persistence/sqlite"
	"github.com/alchemorsel/pantry/internal/ports/inbound"
	"github.com/alchemorsel/pantry/internal/ports/outbound"
	"github.com/alchemorsel/pantry/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	MatchingModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection per configured driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		if cfg.Database.Driver == "postgres" {
			db, err := postgres.Connect(&cfg.Database, logLevel)
			if err != nil {
				return nil, err
			}
			log.Info("Connected to PostgreSQL database",
				zap.String("host", cfg.Database.Host),
				zap.String("database", cfg.Database.Database),
			)
			return db, nil
		}

		dbPath := ":memory:"
		if cfg.Database.Database != "" {
			dbPath = cfg.Database.Database + ".db"
		}
		db, err := sqlite.SetupDatabase(dbPath, logLevel)
		if err != nil {
			return nil, err
		}
		if cfg.Database.SeedDemoData {
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}
		log.Info("Connected to SQLite database",
			zap.String("path", dbPath),
			zap.Bool("in_memory", dbPath == ":memory:"),
		)
		return db, nil
	},
)

// CacheModule provides caching, Redis when enabled, in-memory otherwise
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			return cache.NewRedisCache(&cfg.Redis, log)
		}
		log.Info("Using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// MatchingModule provides the matching and measurement engines
var MatchingModule = fx.Provide(
	func(cfg *config.Config) *matching.Normalizer {
		stopWords := cfg.Matching.StopWords
		if len(stopWords) == 0 {
			stopWords = matching.DefaultStopWords()
		}
		return matching.NewNormalizer(stopWords)
	},
	matching.NewMatcher,
	func(cfg *config.Config) *measure.Canonicalizer {
		mCfg := measure.DefaultConfig()
		if len(cfg.Matching.WholeCountUnits) > 0 {
			mCfg.WholeCountUnits = cfg.Matching.WholeCountUnits
		}
		if len(cfg.Matching.WholeCountItems) > 0 {
			mCfg.WholeCountItems = cfg.Matching.WholeCountItems
		}
		return measure.NewCanonicalizer(mCfg)
	},
	measure.NewConverter,
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewPantryRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		lots outbound.PantryRepository,
		cacheRepo outbound.CacheRepository,
		matcher *matching.Matcher,
		units *measure.Canonicalizer,
		converter *measure.Converter,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.PantryService {
		return application.NewPantryService(lots, cacheRepo, matcher, units, converter, cfg.Matching.CacheTTL, log)
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.NewServer,
)

// LifecycleModule registers application lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting pantry application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down pantry application")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}
			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}
			_ = log.Sync()
			return nil
		},
	})
}
