package repository

import (
	"context"
	"errors"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Producto, error)
	ListByPedido(ctx context.Context, pedidoID uuid.UUID) ([]model.Producto, error)
	List(ctx context.Context, album string, reservado *bool) ([]model.Producto, error)
	// ReservarTx assigns every product to the pedido inside the caller's
	// transaction. Fails if any is already reserved.
	ReservarTx(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, pedidoID uuid.UUID) error
	// LiberarTx clears the reservation of every product held by the pedido.
	// fechaLiberado is stamped only on liberation, not on deletion.
	LiberarTx(ctx context.Context, tx *gorm.DB, pedidoID uuid.UUID, fechaLiberado *string) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListByPedido(ctx context.Context, pedidoID uuid.UUID) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Where("pedido_id = ?", pedidoID).Order("codigo ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) List(ctx context.Context, album string, reservado *bool) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx)
	if album != "" {
		q = q.Where("album = ?", album)
	}
	if reservado != nil {
		q = q.Where("reservado = ?", *reservado)
	}
	err := q.Order("codigo ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ReservarTx(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, pedidoID uuid.UUID) error {
	res := tx.WithContext(ctx).Model(&model.Producto{}).
		Where("id IN ? AND reservado = false", ids).
		Updates(map[string]interface{}{
			"reservado": true,
			"pedido_id": pedidoID,
		})
	if res.Error != nil {
		return res.Error
	}
	// Fewer rows than requested means at least one product was already taken;
	// the surrounding transaction rolls everything back.
	if res.RowsAffected != int64(len(ids)) {
		return gorm.ErrInvalidData
	}
	return nil
}

func (r *productoRepo) LiberarTx(ctx context.Context, tx *gorm.DB, pedidoID uuid.UUID, fechaLiberado *string) error {
	return tx.WithContext(ctx).Model(&model.Producto{}).
		Where("pedido_id = ?", pedidoID).
		Updates(map[string]interface{}{
			"reservado":      false,
			"pedido_id":      nil,
			"fecha_liberado": fechaLiberado,
		}).Error
}
