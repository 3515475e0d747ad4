package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID     string          `json:"producto_id"     validate:"required,uuid"`
	Cantidad       decimal.Decimal `json:"cantidad"        validate:"required,gt=0"`
	Unidad         string          `json:"unidad"          validate:"required"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"min=0"`
	TipoOferta     *string         `json:"tipo_oferta"`
	Descuento      decimal.Decimal `json:"descuento"       validate:"min=0"`
}

type RegistrarVentaRequest struct {
	Productos []ItemVentaRequest `json:"productos" validate:"required,min=1,dive"`
	Total     decimal.Decimal    `json:"total"     validate:"required,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RegistrarVentaResponse struct {
	ID      string `json:"venta_id"`
	Mensaje string `json:"mensaje"`
}

// VentaPlanaItem is one (sale, line) pair of the flat listing.
type VentaPlanaItem struct {
	VentaID        string          `json:"venta_id"`
	Fecha          string          `json:"fecha"`
	NombreProducto string          `json:"nombre_producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	TipoOferta     *string         `json:"tipo_oferta"`
	Unidad         string          `json:"unidad"`
}

// VentaProductoItem is one nested line of the grouped history / sale detail.
type VentaProductoItem struct {
	Nombre         string          `json:"nombre"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descuento      decimal.Decimal `json:"descuento"`
}

// VentaAgrupada is one sale with its nested lines: the shape of both the
// grouped history listing and the single-sale detail.
type VentaAgrupada struct {
	ID        string              `json:"id"`
	Fecha     string              `json:"fecha"`
	Total     decimal.Decimal     `json:"total"`
	Productos []VentaProductoItem `json:"productos"`
}
