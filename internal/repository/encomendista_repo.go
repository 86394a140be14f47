package repository

import (
	"context"
	"errors"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EncomendistaRepository interface {
	Crear(ctx context.Context, e *model.Encomendista) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Encomendista, error)
	Listar(ctx context.Context) ([]model.Encomendista, error)
	Actualizar(ctx context.Context, e *model.Encomendista) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type encomendistaRepo struct{ db *gorm.DB }

func NewEncomendistaRepository(db *gorm.DB) EncomendistaRepository {
	return &encomendistaRepo{db: db}
}

func (r *encomendistaRepo) Crear(ctx context.Context, e *model.Encomendista) error {
	// Nested destinos/horarios are created in the same insert.
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *encomendistaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Encomendista, error) {
	var e model.Encomendista
	err := r.db.WithContext(ctx).
		Preload("Destinos.Horarios").
		First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *encomendistaRepo) Listar(ctx context.Context) ([]model.Encomendista, error) {
	var encomendistas []model.Encomendista
	err := r.db.WithContext(ctx).
		Preload("Destinos.Horarios").
		Where("activo = true").Order("nombre ASC").
		Find(&encomendistas).Error
	return encomendistas, err
}

func (r *encomendistaRepo) Actualizar(ctx context.Context, e *model.Encomendista) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *encomendistaRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Encomendista{}).
		Where("id = ?", id).Update("activo", false).Error
}
