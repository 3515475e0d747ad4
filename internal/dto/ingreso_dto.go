package dto

import "github.com/shopspring/decimal"

// RegistrarIngresoRequest creates or (on PUT) replaces a stock intake record.
// Cantidad and PrecioUnitario must be strictly positive, validated before any
// database work.
type RegistrarIngresoRequest struct {
	ProductoID     string          `json:"producto_id"     validate:"required,uuid"`
	Fecha          string          `json:"fecha"           validate:"required,datetime=2006-01-02"`
	Cantidad       decimal.Decimal `json:"cantidad"        validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required,gt=0"`
	Unidad         string          `json:"unidad"          validate:"required"`
	Observaciones  *string         `json:"observaciones"`
}

type IngresoResponse struct {
	ID      string `json:"ingreso_id"`
	Mensaje string `json:"mensaje"`
}

// HistorialIngresoItem is one intake row joined with its product name,
// returned newest first.
type HistorialIngresoItem struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre"`
	Fecha          string          `json:"fecha"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Unidad         string          `json:"unidad"`
	Observaciones  *string         `json:"observaciones"`
}

type InversionTotalResponse struct {
	InversionTotal decimal.Decimal `json:"inversion_total"`
}
