package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CaseAssign_Go/internal/config"
	"github.com/osse101/CaseAssign_Go/internal/database"
	"github.com/osse101/CaseAssign_Go/internal/repository"
	"github.com/osse101/CaseAssign_Go/internal/repository/memory"
	"github.com/osse101/CaseAssign_Go/internal/database/postgres"
)

// Repositories holds the storage used by the application. DBPool is nil when
// no database is configured.
type Repositories struct {
	Results repository.Results
	DBPool  *pgxpool.Pool
}

// InitializeRepositories picks the results store. Without DATABASE_URL results
// live in memory for the lifetime of the process; otherwise the database is
// connected and migrated before the postgres store is returned.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if cfg.DatabaseURL == "" {
		slog.Info(LogMsgUsingMemoryResults)
		return &Repositories{Results: memory.NewResultsRepository()}, nil
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgUsingPostgresResults, "max_conns", cfg.DBMaxConns)
	return &Repositories{
		Results: postgres.NewResultsRepository(pool),
		DBPool:  pool,
	}, nil
}

// Close releases the database pool, if any
func (r *Repositories) Close() {
	if r.DBPool != nil {
		r.DBPool.Close()
	}
}

// readinessPool returns the pool as a readiness dependency. A nil pointer
// would become a non-nil interface, so it is mapped to an untyped nil.
func (r *Repositories) readinessPool() database.Pool {
	if r.DBPool == nil {
		return nil
	}
	return r.DBPool
}
