package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is a completed sale. It is immutable once committed: the only allowed
// mutation is a full void, which restores stock line by line and removes the
// sale together with its detail rows.
type Venta struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha time.Time       `gorm:"not null;index:idx_ventas_fecha,sort:desc"`
	Total decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Detalles []DetalleVenta `gorm:"foreignKey:VentaID"`
}

// DetalleVenta is one product line within a sale. Cantidad/Unidad are kept as
// sold; the stock debit uses the converted base quantity.
type DetalleVenta struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unidad         string          `gorm:"not null"`
	TipoOferta     *string
	Descuento      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleVenta) TableName() string { return "detalle_ventas" }
