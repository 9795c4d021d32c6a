package oic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
	oicUC "github.com/oicpanel/backend/usecase/oic"
)

type fakeOICRepo struct {
	oics map[string]*domain.OIC
}

func (r *fakeOICRepo) GetByID(_ context.Context, id string) (*domain.OIC, error) {
	o, ok := r.oics[id]
	if !ok {
		return nil, domain.ErrOICNotFound
	}
	return o, nil
}

func (r *fakeOICRepo) List(context.Context, repository.OICFilter) ([]domain.OIC, error) {
	return nil, nil
}

func (r *fakeOICRepo) Create(_ context.Context, o *domain.OIC) error {
	r.oics[o.ID] = o
	return nil
}

func (r *fakeOICRepo) Update(_ context.Context, o *domain.OIC) error {
	if _, ok := r.oics[o.ID]; !ok {
		return domain.ErrOICNotFound
	}
	r.oics[o.ID] = o
	return nil
}

func (r *fakeOICRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.oics[id]; !ok {
		return domain.ErrOICNotFound
	}
	delete(r.oics, id)
	return nil
}

type fakeEnteRepo struct {
	entes map[string]*domain.Ente
}

func (r *fakeEnteRepo) GetByID(_ context.Context, id string) (*domain.Ente, error) {
	e, ok := r.entes[id]
	if !ok {
		return nil, domain.ErrEnteNotFound
	}
	return e, nil
}

func (r *fakeEnteRepo) List(context.Context, repository.EnteFilter) ([]domain.Ente, error) {
	return nil, nil
}
func (r *fakeEnteRepo) Create(context.Context, *domain.Ente) error { return nil }
func (r *fakeEnteRepo) Update(context.Context, *domain.Ente) error { return nil }
func (r *fakeEnteRepo) Delete(context.Context, string) error       { return nil }

func newUseCase() (*oicUC.UseCase, *fakeOICRepo) {
	oics := &fakeOICRepo{oics: make(map[string]*domain.OIC)}
	entes := &fakeEnteRepo{entes: map[string]*domain.Ente{
		"ente-1": {ID: "ente-1", Nombre: "Secretaría de Salud"},
	}}
	return oicUC.New(oics, entes, nil), oics
}

func TestCreate(t *testing.T) {
	t.Run("links the directory entry to a registered ente", func(t *testing.T) {
		uc, repo := newUseCase()

		created, err := uc.Create(context.Background(), &domain.OIC{
			EnteID: "ente-1",
			Nombre: "OIC Secretaría de Salud",
			Activo: true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Contains(t, repo.oics, created.ID)
	})

	t.Run("rejected for an unknown ente", func(t *testing.T) {
		uc, repo := newUseCase()

		_, err := uc.Create(context.Background(), &domain.OIC{
			EnteID: "missing",
			Nombre: "OIC huérfano",
		})
		assert.ErrorIs(t, err, domain.ErrEnteNotFound)
		assert.Empty(t, repo.oics)
	})

	t.Run("rejected without nombre or ente", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Create(context.Background(), &domain.OIC{EnteID: "ente-1"})
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)

		_, err = uc.Create(context.Background(), &domain.OIC{Nombre: "OIC"})
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})
}

func TestUpdate_UnknownOIC(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Update(context.Background(), &domain.OIC{
		ID:     "missing",
		EnteID: "ente-1",
		Nombre: "OIC",
	})
	assert.ErrorIs(t, err, domain.ErrOICNotFound)
}
