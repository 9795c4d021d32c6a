package acuerdo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
	acuerdoUC "github.com/oicpanel/backend/usecase/acuerdo"
)

type fakeAcuerdoRepo struct {
	acuerdos     map[string]*domain.Acuerdo
	seguimientos map[string][]domain.Seguimiento
	writeErr     error
}

func newFakeAcuerdoRepo(acuerdos ...*domain.Acuerdo) *fakeAcuerdoRepo {
	repo := &fakeAcuerdoRepo{
		acuerdos:     make(map[string]*domain.Acuerdo),
		seguimientos: make(map[string][]domain.Seguimiento),
	}
	for _, a := range acuerdos {
		repo.acuerdos[a.ID] = a
	}
	return repo
}

func (r *fakeAcuerdoRepo) GetByID(_ context.Context, id string) (*domain.Acuerdo, error) {
	a, ok := r.acuerdos[id]
	if !ok {
		return nil, domain.ErrAcuerdoNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAcuerdoRepo) List(context.Context, repository.AcuerdoFilter) ([]domain.Acuerdo, error) {
	return nil, nil
}

func (r *fakeAcuerdoRepo) Create(_ context.Context, a *domain.Acuerdo) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.acuerdos[a.ID] = a
	return nil
}

func (r *fakeAcuerdoRepo) Update(_ context.Context, a *domain.Acuerdo) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	if _, ok := r.acuerdos[a.ID]; !ok {
		return domain.ErrAcuerdoNotFound
	}
	r.acuerdos[a.ID] = a
	return nil
}

func (r *fakeAcuerdoRepo) Delete(_ context.Context, id string) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	if _, ok := r.acuerdos[id]; !ok {
		return domain.ErrAcuerdoNotFound
	}
	delete(r.acuerdos, id)
	return nil
}

func (r *fakeAcuerdoRepo) AddSeguimiento(_ context.Context, s *domain.Seguimiento) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.seguimientos[s.AcuerdoID] = append(r.seguimientos[s.AcuerdoID], *s)
	return nil
}

func (r *fakeAcuerdoRepo) ListSeguimientos(_ context.Context, acuerdoID string) ([]domain.Seguimiento, error) {
	return r.seguimientos[acuerdoID], nil
}

type fakeBuffer struct {
	acuerdoOps     []string
	seguimientoOps []string
	err            error
}

func (b *fakeBuffer) BufferAcuerdo(_ context.Context, operation string, _ *domain.Acuerdo) error {
	if b.err != nil {
		return b.err
	}
	b.acuerdoOps = append(b.acuerdoOps, operation)
	return nil
}

func (b *fakeBuffer) BufferSeguimiento(_ context.Context, operation string, _ *domain.Seguimiento) error {
	if b.err != nil {
		return b.err
	}
	b.seguimientoOps = append(b.seguimientoOps, operation)
	return nil
}

func openAcuerdo(id string) *domain.Acuerdo {
	return &domain.Acuerdo{
		ID:          id,
		EnteID:      "ente-1",
		Descripcion: "Observación de auditoría",
		Estado:      domain.AcuerdoPendiente,
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := acuerdoUC.New(newFakeAcuerdoRepo(), nil, nil)

	cases := map[string]*domain.Acuerdo{
		"nil":                 nil,
		"missing descripcion": {EnteID: "ente-1"},
		"missing ente":        {Descripcion: "algo"},
		"bad estado":          {EnteID: "ente-1", Descripcion: "algo", Estado: "WAT"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrInvalidPayload)
		})
	}
}

func TestCreate_DefaultsAndID(t *testing.T) {
	repo := newFakeAcuerdoRepo()
	uc := acuerdoUC.New(repo, nil, nil)

	created, err := uc.Create(context.Background(), &domain.Acuerdo{
		EnteID:      "ente-1",
		Descripcion: "Observación de auditoría",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.AcuerdoPendiente, created.Estado)
}

func TestCreate_BuffersOnRepositoryFailure(t *testing.T) {
	repo := newFakeAcuerdoRepo()
	repo.writeErr = errors.New("connection refused")
	buf := &fakeBuffer{}
	uc := acuerdoUC.New(repo, buf, nil)

	created, err := uc.Create(context.Background(), openAcuerdo("a-1"))
	require.NoError(t, err, "buffered writes succeed from the caller's view")
	assert.Equal(t, "a-1", created.ID)
	assert.Equal(t, []string{"create"}, buf.acuerdoOps)
}

func TestCreate_FailsWhenBufferAlsoFails(t *testing.T) {
	repo := newFakeAcuerdoRepo()
	repo.writeErr = errors.New("connection refused")
	uc := acuerdoUC.New(repo, &fakeBuffer{err: errors.New("disk full")}, nil)

	_, err := uc.Create(context.Background(), openAcuerdo("a-1"))
	assert.Error(t, err)
}

func TestDelete_NotFoundIsNeverBuffered(t *testing.T) {
	buf := &fakeBuffer{}
	uc := acuerdoUC.New(newFakeAcuerdoRepo(), buf, nil)

	err := uc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrAcuerdoNotFound)
	assert.Empty(t, buf.acuerdoOps)
}

func TestAddSeguimiento(t *testing.T) {
	t.Run("appends to an open acuerdo", func(t *testing.T) {
		repo := newFakeAcuerdoRepo(openAcuerdo("a-1"))
		uc := acuerdoUC.New(repo, nil, nil)

		s, err := uc.AddSeguimiento(context.Background(), &domain.Seguimiento{
			AcuerdoID:  "a-1",
			AutorID:    "user-1",
			Comentario: "Se solicitó evidencia",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, s.ID)
		assert.False(t, s.Fecha.IsZero())

		listed, err := uc.ListSeguimientos(context.Background(), "a-1")
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("rejected on closed acuerdo", func(t *testing.T) {
		closed := openAcuerdo("a-2")
		closed.Estado = domain.AcuerdoCumplido
		uc := acuerdoUC.New(newFakeAcuerdoRepo(closed), nil, nil)

		_, err := uc.AddSeguimiento(context.Background(), &domain.Seguimiento{
			AcuerdoID:  "a-2",
			AutorID:    "user-1",
			Comentario: "tarde",
		})
		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
	})

	t.Run("unknown acuerdo", func(t *testing.T) {
		uc := acuerdoUC.New(newFakeAcuerdoRepo(), nil, nil)
		_, err := uc.AddSeguimiento(context.Background(), &domain.Seguimiento{
			AcuerdoID:  "missing",
			AutorID:    "user-1",
			Comentario: "algo",
		})
		assert.ErrorIs(t, err, domain.ErrAcuerdoNotFound)
	})

	t.Run("buffers when the insert fails", func(t *testing.T) {
		repo := newFakeAcuerdoRepo(openAcuerdo("a-3"))
		buf := &fakeBuffer{}
		uc := acuerdoUC.New(repo, buf, nil)

		repo.writeErr = errors.New("connection refused")
		s, err := uc.AddSeguimiento(context.Background(), &domain.Seguimiento{
			AcuerdoID:  "a-3",
			AutorID:    "user-1",
			Comentario: "Se solicitó evidencia",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, []string{"create"}, buf.seguimientoOps)
	})
}
