package repository

import (
	"context"

	"github.com/CruzGuillermo/stock-app/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IngresoRepository is the data access contract for stock intake records.
// Mutations take a live tx because every intake write is paired with a stock
// adjustment in the same transaction.
type IngresoRepository interface {
	CreateTx(tx *gorm.DB, ing *model.IngresoStock) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.IngresoStock, error)
	UpdateTx(tx *gorm.DB, ing *model.IngresoStock) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	Historial(ctx context.Context) ([]model.IngresoStock, error)
	InversionTotal(ctx context.Context) (decimal.Decimal, error)

	DB() *gorm.DB
}

type ingresoRepo struct{ db *gorm.DB }

func NewIngresoRepository(db *gorm.DB) IngresoRepository { return &ingresoRepo{db: db} }

func (r *ingresoRepo) CreateTx(tx *gorm.DB, ing *model.IngresoStock) error {
	return tx.Create(ing).Error
}

func (r *ingresoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.IngresoStock, error) {
	var ing model.IngresoStock
	err := r.db.WithContext(ctx).First(&ing, "id = ?", id).Error
	return &ing, err
}

func (r *ingresoRepo) UpdateTx(tx *gorm.DB, ing *model.IngresoStock) error {
	return tx.Save(ing).Error
}

func (r *ingresoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.IngresoStock{}, "id = ?", id).Error
}

func (r *ingresoRepo) Historial(ctx context.Context) ([]model.IngresoStock, error) {
	var ingresos []model.IngresoStock
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Order("fecha DESC").
		Find(&ingresos).Error
	return ingresos, err
}

func (r *ingresoRepo) InversionTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.IngresoStock{}).
		Select("SUM(cantidad * precio_unitario)").
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *ingresoRepo) DB() *gorm.DB { return r.db }
