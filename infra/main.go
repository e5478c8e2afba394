package infra

import (
	"fmt"

	"github.com/herocatalog/superhero-catalog/config"
)

// Infra bundles the process-wide clients. It is constructed once at startup
// and passed down explicitly; there is no lazily-initialized singleton.
type Infra struct {
	Postgres *PostgresClient
	Cache    *CacheClient
	Logger   *LoggerClient
	Storage  Storage
}

func InitInfra(cfg *config.Config) (*Infra, error) {
	logger, err := InitLoggerClient(cfg.EnvConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	postgres, err := InitPostgresClient(cfg.EnvConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Postgres client: %w", err)
	}

	storage, err := InitStorage(cfg.EnvConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Cache is optional: nil when Redis is not configured or unreachable.
	cache := InitCacheClient(cfg.EnvConfig, logger)

	return &Infra{
		Postgres: postgres,
		Cache:    cache,
		Logger:   logger,
		Storage:  storage,
	}, nil
}

// Close releases every client in reverse initialization order.
func (i *Infra) Close() {
	if i.Cache != nil {
		if err := i.Cache.Close(); err != nil {
			i.Logger.Warningf("[Infra] Failed to close Redis client: %v", err)
		}
	}
	if i.Postgres != nil {
		if err := i.Postgres.Close(); err != nil {
			i.Logger.Warningf("[Infra] Failed to close Postgres client: %v", err)
		}
	}
	if i.Logger != nil {
		i.Logger.Sync()
	}
}
