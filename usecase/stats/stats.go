package stats

import (
	"context"

	"go.uber.org/zap"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
)

// UseCase serves the dashboard aggregates, preferring the TTL cache and
// falling back to a fresh Postgres snapshot.
type UseCase struct {
	repo   repository.StatsRepository
	cache  repository.StatsCache
	logger *zap.Logger
}

func New(repo repository.StatsRepository, cache repository.StatsCache, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (uc *UseCase) Resumen(ctx context.Context) (*domain.Estadisticas, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err == nil {
			return cached, nil
		}
		if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			uc.logger.Warn("stats cache read failed", zap.Error(err))
		}
	}

	stats, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, stats); err != nil {
			uc.logger.Warn("stats cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}
