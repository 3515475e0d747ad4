package repository

import (
	"context"

	"github.com/CruzGuillermo/stock-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	// CreateTx inserts the sale and its detail rows in the caller's transaction.
	CreateTx(tx *gorm.DB, v *model.Venta) error
	// FindDetalles returns the detail rows of a sale (empty slice when the sale
	// is absent or already voided).
	FindDetalles(ctx context.Context, ventaID uuid.UUID) ([]model.DetalleVenta, error)
	// DeleteTx removes the detail rows and then the sale row itself.
	DeleteTx(tx *gorm.DB, ventaID uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	// Listado returns every sale with lines preloaded, newest first.
	Listado(ctx context.Context) ([]model.Venta, error)

	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindDetalles(ctx context.Context, ventaID uuid.UUID) ([]model.DetalleVenta, error) {
	var detalles []model.DetalleVenta
	err := r.db.WithContext(ctx).Where("venta_id = ?", ventaID).Find(&detalles).Error
	return detalles, err
}

func (r *ventaRepo) DeleteTx(tx *gorm.DB, ventaID uuid.UUID) error {
	if err := tx.Delete(&model.DetalleVenta{}, "venta_id = ?", ventaID).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Venta{}, "id = ?", ventaID).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Preload("Detalles.Producto").First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) Listado(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		Order("fecha DESC").
		Find(&ventas).Error
	return ventas, err
}
