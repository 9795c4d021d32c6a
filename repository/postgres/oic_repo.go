package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
)

type oicRepository struct {
	pool *pgxpool.Pool
}

// NewOICRepository instantiates a Postgres-backed OIC directory.
func NewOICRepository(pool *pgxpool.Pool) repository.OICRepository {
	return &oicRepository{pool: pool}
}

const oicColumns = `id, ente_id, nombre, titular_nombre, puesto, email, telefono, activo, created_at, updated_at`

func (r *oicRepository) GetByID(ctx context.Context, id string) (*domain.OIC, error) {
	const query = `SELECT ` + oicColumns + ` FROM oics WHERE id = $1`

	var oic domain.OIC
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&oic.ID,
		&oic.EnteID,
		&oic.Nombre,
		&oic.TitularNombre,
		&oic.Puesto,
		&oic.Email,
		&oic.Telefono,
		&oic.Activo,
		&oic.CreatedAt,
		&oic.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOICNotFound
		}
		return nil, err
	}
	return &oic, nil
}

func (r *oicRepository) List(ctx context.Context, filter repository.OICFilter) ([]domain.OIC, error) {
	const query = `
		SELECT ` + oicColumns + `
		FROM oics
		WHERE ($1 = '' OR ente_id = $1)
		  AND (NOT $2 OR activo)
		ORDER BY nombre
		LIMIT $3 OFFSET $4
	`
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, query, filter.EnteID, filter.ActiveOnly, limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var oics []domain.OIC
	for rows.Next() {
		var oic domain.OIC
		if err := rows.Scan(
			&oic.ID,
			&oic.EnteID,
			&oic.Nombre,
			&oic.TitularNombre,
			&oic.Puesto,
			&oic.Email,
			&oic.Telefono,
			&oic.Activo,
			&oic.CreatedAt,
			&oic.UpdatedAt,
		); err != nil {
			return nil, err
		}
		oics = append(oics, oic)
	}
	return oics, rows.Err()
}

func (r *oicRepository) Create(ctx context.Context, oic *domain.OIC) error {
	if oic == nil || oic.ID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
		INSERT INTO oics (id, ente_id, nombre, titular_nombre, puesto, email, telefono, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		oic.ID,
		oic.EnteID,
		oic.Nombre,
		oic.TitularNombre,
		oic.Puesto,
		oic.Email,
		oic.Telefono,
		oic.Activo,
	).Scan(&oic.CreatedAt, &oic.UpdatedAt)
}

func (r *oicRepository) Update(ctx context.Context, oic *domain.OIC) error {
	if oic == nil || oic.ID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
		UPDATE oics
		SET ente_id = $2, nombre = $3, titular_nombre = $4, puesto = $5,
			email = $6, telefono = $7, activo = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		oic.ID,
		oic.EnteID,
		oic.Nombre,
		oic.TitularNombre,
		oic.Puesto,
		oic.Email,
		oic.Telefono,
		oic.Activo,
	).Scan(&oic.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrOICNotFound
	}
	return err
}

func (r *oicRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM oics WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOICNotFound
	}
	return nil
}
