package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog entry. Stock is always expressed in the base unit of
// the product's unit family (liters for liquids, kilograms for weights, count
// for discrete items) no matter what unit a sale or intake was recorded in.
// Stock is mutated exclusively by intake and sale operations; catalog updates
// never write it.
type Producto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string          `gorm:"index;not null"`
	Categoria   string          `gorm:"not null"`
	Stock       decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	Unidad      string          `gorm:"not null;default:'unidad'"`
	StockMinimo decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	Activo      bool            `gorm:"not null;default:true"`

	// Unit-specific list prices. Only the ones matching the product's unit
	// family are set; the rest stay NULL.
	Precio05L    *decimal.Decimal `gorm:"column:precio_0_5l;type:decimal(12,2)"`
	Precio1L     *decimal.Decimal `gorm:"column:precio_1l;type:decimal(12,2)"`
	Precio3L     *decimal.Decimal `gorm:"column:precio_3l;type:decimal(12,2)"`
	PrecioUnidad *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PrecioKg     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PrecioGramo  *decimal.Decimal `gorm:"type:decimal(12,4)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrecioVenta returns the list price matching the product's own unit,
// or nil when no price is loaded for it.
func (p *Producto) PrecioVenta() *decimal.Decimal {
	switch p.Unidad {
	case "medio_litro":
		return p.Precio05L
	case "litro":
		return p.Precio1L
	case "3litros":
		return p.Precio3L
	case "unidad":
		return p.PrecioUnidad
	case "kilogramo":
		return p.PrecioKg
	case "gramo":
		return p.PrecioGramo
	default:
		return nil
	}
}
