package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
)

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository computes dashboard aggregates straight from Postgres.
func NewStatsRepository(pool *pgxpool.Pool) repository.StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) Snapshot(ctx context.Context) (*domain.Estadisticas, error) {
	stats := &domain.Estadisticas{
		EntesPorAmbito:    make(map[string]int),
		AcuerdosPorEstado: make(map[string]int),
		GeneratedAt:       time.Now().UTC(),
	}

	const totals = `
		SELECT
			(SELECT COUNT(*) FROM entes),
			(SELECT COUNT(*) FROM oics),
			(SELECT COUNT(*) FROM acuerdos),
			(SELECT COUNT(*) FROM users)
	`
	if err := r.pool.QueryRow(ctx, totals).Scan(
		&stats.TotalEntes,
		&stats.TotalOICs,
		&stats.TotalAcuerdos,
		&stats.TotalUsuarios,
	); err != nil {
		return nil, err
	}

	if err := r.countBy(ctx, `SELECT ambito, COUNT(*) FROM entes GROUP BY ambito`, stats.EntesPorAmbito); err != nil {
		return nil, err
	}
	if err := r.countBy(ctx, `SELECT estado, COUNT(*) FROM acuerdos GROUP BY estado`, stats.AcuerdosPorEstado); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *statsRepository) countBy(ctx context.Context, query string, into map[string]int) error {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		into[key] = count
	}
	return rows.Err()
}
