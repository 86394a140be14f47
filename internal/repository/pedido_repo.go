package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PedidoRepository persists orders. Lookups return (nil, nil) on a miss so
// callers can tell "no match" apart from a transient failure.
type PedidoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Pedido, error)
	ListByEstados(ctx context.Context, estados []model.Estado, limite int) ([]model.Pedido, error)
	ListSinFinalizar(ctx context.Context) ([]model.Pedido, error)
	Update(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	// NextSecuenciaCodigo counts existing codes sharing the day prefix, inside
	// the creation transaction, and returns the next sequence number.
	NextSecuenciaCodigo(ctx context.Context, tx *gorm.DB, prefijoDia string) (int, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Encomendista").Preload("Destino").
		Preload("Tienda").Preload("Productos").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Encomendista").Preload("Destino").
		Preload("Tienda").Preload("Productos").
		Where("codigo_pedido = ?", codigo).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) ListByEstados(ctx context.Context, estados []model.Estado, limite int) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	q := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Encomendista").Preload("Tienda")
	if len(estados) > 0 {
		q = q.Where("estado IN ?", estados)
	}
	if limite > 0 {
		q = q.Limit(limite)
	}
	err := q.Order("fecha_entrega_programada ASC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListSinFinalizar(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Encomendista").Preload("Tienda").
		Where("estado NOT IN ?", []model.Estado{
			model.EstadoNoRetirado, model.EstadoCancelado, model.EstadoRetiradoLocal,
		}).
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) Update(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Save(p).Error
}

func (r *pedidoRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Delete(&model.Pedido{}, "id = ?", id).Error
}

func (r *pedidoRepo) NextSecuenciaCodigo(ctx context.Context, tx *gorm.DB, prefijoDia string) (int, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&model.Pedido{}).
		Where("codigo_pedido LIKE ?", fmt.Sprintf("%s%%", prefijoDia)).
		Count(&count).Error
	return int(count) + 1, err
}
