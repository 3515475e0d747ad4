package repository

import (
	"context"

	"github.com/CruzGuillermo/stock-app/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AgregadoIngreso is the per-product all-time intake aggregate feeding the
// weighted-average cost.
type AgregadoIngreso struct {
	ProductoID uuid.UUID
	TotalCant  decimal.Decimal
	TotalValor decimal.Decimal
}

// AgregadoVenta is the per-product all-time sold quantity.
type AgregadoVenta struct {
	ProductoID   uuid.UUID
	TotalVendido decimal.Decimal
}

// TopProducto is one row of the best-sellers ranking.
type TopProducto struct {
	ID           uuid.UUID
	Nombre       string
	Categoria    string
	TotalVendido decimal.Decimal
}

// ResumenRepository aggregates the intake and sale ledgers for the profit
// engine. Read only: every call recomputes from the tables, no running
// balance is persisted anywhere.
type ResumenRepository interface {
	TotalVentas(ctx context.Context) (decimal.Decimal, error)
	IngresosPorProducto(ctx context.Context) ([]AgregadoIngreso, error)
	VendidoPorProducto(ctx context.Context) ([]AgregadoVenta, error)
	TopProductos(ctx context.Context, limit int) ([]TopProducto, error)
}

type resumenRepo struct{ db *gorm.DB }

func NewResumenRepository(db *gorm.DB) ResumenRepository { return &resumenRepo{db: db} }

func (r *resumenRepo) TotalVentas(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("SUM(total)").
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *resumenRepo) IngresosPorProducto(ctx context.Context) ([]AgregadoIngreso, error) {
	var rows []AgregadoIngreso
	err := r.db.WithContext(ctx).Model(&model.IngresoStock{}).
		Select("producto_id, SUM(cantidad) AS total_cant, SUM(cantidad * precio_unitario) AS total_valor").
		Group("producto_id").
		Scan(&rows).Error
	return rows, err
}

func (r *resumenRepo) VendidoPorProducto(ctx context.Context) ([]AgregadoVenta, error) {
	var rows []AgregadoVenta
	err := r.db.WithContext(ctx).Model(&model.DetalleVenta{}).
		Select("producto_id, SUM(cantidad) AS total_vendido").
		Group("producto_id").
		Scan(&rows).Error
	return rows, err
}

func (r *resumenRepo) TopProductos(ctx context.Context, limit int) ([]TopProducto, error) {
	var rows []TopProducto
	err := r.db.WithContext(ctx).
		Table("detalle_ventas dv").
		Select("p.id, p.nombre, p.categoria, SUM(dv.cantidad) AS total_vendido").
		Joins("JOIN productos p ON dv.producto_id = p.id").
		Group("p.id, p.nombre, p.categoria").
		Order("total_vendido DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
