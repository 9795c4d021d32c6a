package repository

import (
	"context"

	"github.com/oicpanel/backend/domain"
)

// StatsRepository computes the aggregate snapshot from primary storage.
type StatsRepository interface {
	Snapshot(ctx context.Context) (*domain.Estadisticas, error)
}

// StatsCache holds a TTL'd copy of the snapshot so the dashboard home
// does not hit Postgres on every render.
type StatsCache interface {
	Get(ctx context.Context) (*domain.Estadisticas, error)
	Set(ctx context.Context, stats *domain.Estadisticas) error
}
