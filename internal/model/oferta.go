package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfertaEspecial is a named bundle with a fixed total price. It is purely a
// template for pre-filling a sale: selling it materializes ordinary sale
// lines, so the offer itself never holds or debits stock.
type OfertaEspecial struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string          `gorm:"not null"`
	PrecioTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Detalles []DetalleOfertaEspecial `gorm:"foreignKey:OfertaID"`
}

func (OfertaEspecial) TableName() string { return "ofertas_especiales" }

// DetalleOfertaEspecial is one (product, quantity, unit) component of a bundle.
type DetalleOfertaEspecial struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OfertaID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad   decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unidad     string          `gorm:"not null;default:'unidad'"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleOfertaEspecial) TableName() string { return "detalle_oferta_especial" }
