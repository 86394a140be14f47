package repository

import (
	"context"
	"errors"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RemuneracionRepository interface {
	// FindForToggleTx locks the matching row (SELECT ... FOR UPDATE) so the
	// check-then-act of the toggle is race-free inside a transaction.
	FindForToggleTx(ctx context.Context, tx *gorm.DB, pedidoID uuid.UUID, fecha, tipo string) (*model.Remuneracion, error)
	CreateTx(ctx context.Context, tx *gorm.DB, r *model.Remuneracion) error
	DeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	// ListByFecha returns the day's snapshot newest-first by timestamp.
	ListByFecha(ctx context.Context, fecha string) ([]model.Remuneracion, error)
	DB() *gorm.DB
}

type remuneracionRepo struct{ db *gorm.DB }

func NewRemuneracionRepository(db *gorm.DB) RemuneracionRepository {
	return &remuneracionRepo{db: db}
}

func (r *remuneracionRepo) DB() *gorm.DB { return r.db }

func (r *remuneracionRepo) FindForToggleTx(ctx context.Context, tx *gorm.DB, pedidoID uuid.UUID, fecha, tipo string) (*model.Remuneracion, error) {
	var rec model.Remuneracion
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("pedido_id = ? AND fecha = ? AND tipo = ?", pedidoID, fecha, tipo).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *remuneracionRepo) CreateTx(ctx context.Context, tx *gorm.DB, rec *model.Remuneracion) error {
	return tx.WithContext(ctx).Create(rec).Error
}

func (r *remuneracionRepo) DeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return tx.WithContext(ctx).Delete(&model.Remuneracion{}, "id = ?", id).Error
}

func (r *remuneracionRepo) ListByFecha(ctx context.Context, fecha string) ([]model.Remuneracion, error) {
	var recs []model.Remuneracion
	err := r.db.WithContext(ctx).
		Where("fecha = ?", fecha).
		Order("timestamp DESC").
		Find(&recs).Error
	return recs, err
}
