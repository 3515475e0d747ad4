package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearProductoRequest creates a catalog entry. Stock here is the opening
// balance only; after creation stock moves exclusively through intakes and
// sales.
type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required"`
	Categoria   string          `json:"categoria"    validate:"required"`
	Stock       decimal.Decimal `json:"stock"        validate:"min=0"`
	Unidad      string          `json:"unidad"       validate:"required,oneof=medio_litro litro 3litros unidad kilogramo gramo"`
	StockMinimo decimal.Decimal `json:"stock_minimo" validate:"min=0"`

	Precio05L    *decimal.Decimal `json:"precio_0_5l"`
	Precio1L     *decimal.Decimal `json:"precio_1l"`
	Precio3L     *decimal.Decimal `json:"precio_3l"`
	PrecioUnidad *decimal.Decimal `json:"precio_unidad"`
	PrecioKg     *decimal.Decimal `json:"precio_kg"`
	PrecioGramo  *decimal.Decimal `json:"precio_gramo"`
}

// ActualizarProductoRequest edits catalog fields and prices. There is
// deliberately no stock field: catalog edits never touch the stock ledger.
type ActualizarProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required"`
	Categoria   string          `json:"categoria"    validate:"required"`
	Unidad      string          `json:"unidad"       validate:"required,oneof=medio_litro litro 3litros unidad kilogramo gramo"`
	StockMinimo decimal.Decimal `json:"stock_minimo" validate:"min=0"`

	Precio05L    *decimal.Decimal `json:"precio_0_5l"`
	Precio1L     *decimal.Decimal `json:"precio_1l"`
	Precio3L     *decimal.Decimal `json:"precio_3l"`
	PrecioUnidad *decimal.Decimal `json:"precio_unidad"`
	PrecioKg     *decimal.Decimal `json:"precio_kg"`
	PrecioGramo  *decimal.Decimal `json:"precio_gramo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria"`
	Stock       decimal.Decimal `json:"stock"`
	Unidad      string          `json:"unidad"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`

	Precio05L    *decimal.Decimal `json:"precio_0_5l"`
	Precio1L     *decimal.Decimal `json:"precio_1l"`
	Precio3L     *decimal.Decimal `json:"precio_3l"`
	PrecioUnidad *decimal.Decimal `json:"precio_unidad"`
	PrecioKg     *decimal.Decimal `json:"precio_kg"`
	PrecioGramo  *decimal.Decimal `json:"precio_gramo"`

	// PrecioVenta is the list price matching the product's own unit.
	PrecioVenta *decimal.Decimal `json:"precio_venta"`
}

// ProductoStockItem backs the stock screen listing.
type ProductoStockItem struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Stock       decimal.Decimal `json:"stock"`
	Unidad      string          `json:"unidad"`
	Categoria   string          `json:"categoria"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`
}

// BusquedaProductoItem is the trimmed shape of the name search endpoint.
type BusquedaProductoItem struct {
	ID     string          `json:"id"`
	Nombre string          `json:"nombre"`
	Stock  decimal.Decimal `json:"stock"`
	Unidad string          `json:"unidad"`
}
