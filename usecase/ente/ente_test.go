package ente_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
	enteUC "github.com/oicpanel/backend/usecase/ente"
)

type memEnteRepo struct {
	entes map[string]*domain.Ente
}

func newMemEnteRepo() *memEnteRepo {
	return &memEnteRepo{entes: make(map[string]*domain.Ente)}
}

func (r *memEnteRepo) GetByID(_ context.Context, id string) (*domain.Ente, error) {
	e, ok := r.entes[id]
	if !ok {
		return nil, domain.ErrEnteNotFound
	}
	return e, nil
}

func (r *memEnteRepo) List(context.Context, repository.EnteFilter) ([]domain.Ente, error) {
	return nil, nil
}

func (r *memEnteRepo) Create(_ context.Context, e *domain.Ente) error {
	r.entes[e.ID] = e
	return nil
}

func (r *memEnteRepo) Update(_ context.Context, e *domain.Ente) error {
	if _, ok := r.entes[e.ID]; !ok {
		return domain.ErrEnteNotFound
	}
	r.entes[e.ID] = e
	return nil
}

func (r *memEnteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.entes[id]; !ok {
		return domain.ErrEnteNotFound
	}
	delete(r.entes, id)
	return nil
}

func validEnte() *domain.Ente {
	return &domain.Ente{
		Nombre: "Secretaría de Finanzas",
		Siglas: "SF",
		Ambito: domain.AmbitoEstatal,
		Poder:  domain.PoderEjecutivo,
		Activo: true,
	}
}

func TestCreate(t *testing.T) {
	repo := newMemEnteRepo()
	uc := enteUC.New(repo, nil)

	created, err := uc.Create(context.Background(), validEnte())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Contains(t, repo.entes, created.ID)
}

func TestCreate_Validation(t *testing.T) {
	uc := enteUC.New(newMemEnteRepo(), nil)

	t.Run("nil ente", func(t *testing.T) {
		_, err := uc.Create(context.Background(), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})

	t.Run("missing nombre", func(t *testing.T) {
		e := validEnte()
		e.Nombre = ""
		_, err := uc.Create(context.Background(), e)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})

	t.Run("unknown ambito", func(t *testing.T) {
		e := validEnte()
		e.Ambito = "GALACTICO"
		_, err := uc.Create(context.Background(), e)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})

	t.Run("unknown poder", func(t *testing.T) {
		e := validEnte()
		e.Poder = "IMPERIAL"
		_, err := uc.Create(context.Background(), e)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})
}

func TestUpdate_UnknownEnte(t *testing.T) {
	uc := enteUC.New(newMemEnteRepo(), nil)

	e := validEnte()
	e.ID = "missing"
	_, err := uc.Update(context.Background(), e)
	assert.ErrorIs(t, err, domain.ErrEnteNotFound)
}

func TestDelete(t *testing.T) {
	repo := newMemEnteRepo()
	uc := enteUC.New(repo, nil)

	created, err := uc.Create(context.Background(), validEnte())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, uc.Delete(context.Background(), created.ID), domain.ErrEnteNotFound)
}
