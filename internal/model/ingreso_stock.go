package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngresoStock is one stock-receipt event. Cantidad and Unidad are stored as
// entered by the operator; the converted base quantity is applied to
// Producto.Stock in the same transaction that writes this row.
type IngresoStock struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fecha          time.Time       `gorm:"not null;index:idx_ingresos_fecha,sort:desc"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unidad         string          `gorm:"not null"`
	Observaciones  *string
	CreatedAt      time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

// TableName overrides GORM's pluralization (ingreso_stocks → ingresos_stock).
func (IngresoStock) TableName() string { return "ingresos_stock" }
