package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
)

type enteRepository struct {
	pool *pgxpool.Pool
}

// NewEnteRepository instantiates a Postgres-backed ente repository.
func NewEnteRepository(pool *pgxpool.Pool) repository.EnteRepository {
	return &enteRepository{pool: pool}
}

const enteColumns = `id, nombre, siglas, ambito, poder, titular_nombre, titular_cargo, activo, created_at, updated_at`

func (r *enteRepository) GetByID(ctx context.Context, id string) (*domain.Ente, error) {
	const query = `SELECT ` + enteColumns + ` FROM entes WHERE id = $1`

	var ente domain.Ente
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ente.ID,
		&ente.Nombre,
		&ente.Siglas,
		&ente.Ambito,
		&ente.Poder,
		&ente.TitularNombre,
		&ente.TitularCargo,
		&ente.Activo,
		&ente.CreatedAt,
		&ente.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEnteNotFound
		}
		return nil, err
	}
	return &ente, nil
}

func (r *enteRepository) List(ctx context.Context, filter repository.EnteFilter) ([]domain.Ente, error) {
	const query = `
		SELECT ` + enteColumns + `
		FROM entes
		WHERE ($1 = '' OR ambito = $1)
		  AND ($2 = '' OR poder = $2)
		  AND (NOT $3 OR activo)
		ORDER BY nombre
		LIMIT $4 OFFSET $5
	`
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, query, filter.Ambito, filter.Poder, filter.ActiveOnly, limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entes []domain.Ente
	for rows.Next() {
		var ente domain.Ente
		if err := rows.Scan(
			&ente.ID,
			&ente.Nombre,
			&ente.Siglas,
			&ente.Ambito,
			&ente.Poder,
			&ente.TitularNombre,
			&ente.TitularCargo,
			&ente.Activo,
			&ente.CreatedAt,
			&ente.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entes = append(entes, ente)
	}
	return entes, rows.Err()
}

func (r *enteRepository) Create(ctx context.Context, ente *domain.Ente) error {
	if ente == nil || ente.ID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
		INSERT INTO entes (id, nombre, siglas, ambito, poder, titular_nombre, titular_cargo, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		ente.ID,
		ente.Nombre,
		ente.Siglas,
		ente.Ambito,
		ente.Poder,
		ente.TitularNombre,
		ente.TitularCargo,
		ente.Activo,
	).Scan(&ente.CreatedAt, &ente.UpdatedAt)
}

func (r *enteRepository) Update(ctx context.Context, ente *domain.Ente) error {
	if ente == nil || ente.ID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
		UPDATE entes
		SET nombre = $2, siglas = $3, ambito = $4, poder = $5,
			titular_nombre = $6, titular_cargo = $7, activo = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		ente.ID,
		ente.Nombre,
		ente.Siglas,
		ente.Ambito,
		ente.Poder,
		ente.TitularNombre,
		ente.TitularCargo,
		ente.Activo,
	).Scan(&ente.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrEnteNotFound
	}
	return err
}

func (r *enteRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM entes WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEnteNotFound
	}
	return nil
}
