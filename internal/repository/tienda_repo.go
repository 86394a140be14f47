package repository

import (
	"context"
	"errors"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TiendaRepository interface {
	Crear(ctx context.Context, t *model.Tienda) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Tienda, error)
	ObtenerPorPrefijo(ctx context.Context, prefijo string) (*model.Tienda, error)
	Listar(ctx context.Context) ([]model.Tienda, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type tiendaRepo struct{ db *gorm.DB }

func NewTiendaRepository(db *gorm.DB) TiendaRepository { return &tiendaRepo{db: db} }

func (r *tiendaRepo) Crear(ctx context.Context, t *model.Tienda) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tiendaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Tienda, error) {
	var t model.Tienda
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tiendaRepo) ObtenerPorPrefijo(ctx context.Context, prefijo string) (*model.Tienda, error) {
	var t model.Tienda
	err := r.db.WithContext(ctx).Where("prefijo = ?", prefijo).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tiendaRepo) Listar(ctx context.Context) ([]model.Tienda, error) {
	var tiendas []model.Tienda
	err := r.db.WithContext(ctx).Where("activo = true").Order("nombre ASC").Find(&tiendas).Error
	return tiendas, err
}

func (r *tiendaRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Tienda{}).
		Where("id = ?", id).Update("activo", false).Error
}
