package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
)

type acuerdoRepository struct {
	pool *pgxpool.Pool
}

// NewAcuerdoRepository instantiates a Postgres-backed acuerdo repository.
func NewAcuerdoRepository(pool *pgxpool.Pool) repository.AcuerdoRepository {
	return &acuerdoRepository{pool: pool}
}

const acuerdoColumns = `id, ente_id, descripcion, fecha_compromiso, estado, created_at, updated_at`

func (r *acuerdoRepository) GetByID(ctx context.Context, id string) (*domain.Acuerdo, error) {
	const query = `SELECT ` + acuerdoColumns + ` FROM acuerdos WHERE id = $1`

	var acuerdo domain.Acuerdo
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&acuerdo.ID,
		&acuerdo.EnteID,
		&acuerdo.Descripcion,
		&acuerdo.FechaCompromiso,
		&acuerdo.Estado,
		&acuerdo.CreatedAt,
		&acuerdo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAcuerdoNotFound
		}
		return nil, err
	}
	return &acuerdo, nil
}

func (r *acuerdoRepository) List(ctx context.Context, filter repository.AcuerdoFilter) ([]domain.Acuerdo, error) {
	const query = `
		SELECT ` + acuerdoColumns + `
		FROM acuerdos
		WHERE ($1 = '' OR ente_id = $1)
		  AND ($2 = '' OR estado = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, query, filter.EnteID, filter.Estado, limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var acuerdos []domain.Acuerdo
	for rows.Next() {
		var acuerdo domain.Acuerdo
		if err := rows.Scan(
			&acuerdo.ID,
			&acuerdo.EnteID,
			&acuerdo.Descripcion,
			&acuerdo.FechaCompromiso,
			&acuerdo.Estado,
			&acuerdo.CreatedAt,
			&acuerdo.UpdatedAt,
		); err != nil {
			return nil, err
		}
		acuerdos = append(acuerdos, acuerdo)
	}
	return acuerdos, rows.Err()
}

func (r *acuerdoRepository) Create(ctx context.Context, acuerdo *domain.Acuerdo) error {
	if acuerdo == nil || acuerdo.ID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
		INSERT INTO acuerdos (id, ente_id, descripcion, fecha_compromiso, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		acuerdo.ID,
		acuerdo.EnteID,
		acuerdo.Descripcion,
		acuerdo.FechaCompromiso,
		acuerdo.Estado,
	).Scan(&acuerdo.CreatedAt, &acuerdo.UpdatedAt)
}

func (r *acuerdoRepository) Update(ctx context.Context, acuerdo *domain.Acuerdo) error {
	if acuerdo == nil || acuerdo.ID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
		UPDATE acuerdos
		SET descripcion = $2, fecha_compromiso = $3, estado = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		acuerdo.ID,
		acuerdo.Descripcion,
		acuerdo.FechaCompromiso,
		acuerdo.Estado,
	).Scan(&acuerdo.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrAcuerdoNotFound
	}
	return err
}

func (r *acuerdoRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM acuerdos WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAcuerdoNotFound
	}
	return nil
}

func (r *acuerdoRepository) AddSeguimiento(ctx context.Context, seguimiento *domain.Seguimiento) error {
	if seguimiento == nil || seguimiento.ID == "" || seguimiento.AcuerdoID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
		INSERT INTO seguimientos (id, acuerdo_id, autor_id, comentario, fecha)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		RETURNING fecha
	`
	return r.pool.QueryRow(ctx, query,
		seguimiento.ID,
		seguimiento.AcuerdoID,
		seguimiento.AutorID,
		seguimiento.Comentario,
		nullTime(seguimiento.Fecha),
	).Scan(&seguimiento.Fecha)
}

func (r *acuerdoRepository) ListSeguimientos(ctx context.Context, acuerdoID string) ([]domain.Seguimiento, error) {
	const query = `
		SELECT id, acuerdo_id, autor_id, comentario, fecha
		FROM seguimientos
		WHERE acuerdo_id = $1
		ORDER BY fecha DESC
	`
	rows, err := r.pool.Query(ctx, query, acuerdoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seguimientos []domain.Seguimiento
	for rows.Next() {
		var seguimiento domain.Seguimiento
		if err := rows.Scan(
			&seguimiento.ID,
			&seguimiento.AcuerdoID,
			&seguimiento.AutorID,
			&seguimiento.Comentario,
			&seguimiento.Fecha,
		); err != nil {
			return nil, err
		}
		seguimientos = append(seguimientos, seguimiento)
	}
	return seguimientos, rows.Err()
}
