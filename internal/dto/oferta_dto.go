package dto

import "github.com/shopspring/decimal"

type ItemOfertaRequest struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Cantidad   decimal.Decimal `json:"cantidad"    validate:"required,gt=0"`
	Unidad     string          `json:"unidad"`
}

// GuardarOfertaRequest backs both create and update of a bundle.
type GuardarOfertaRequest struct {
	Nombre      string              `json:"nombre"       validate:"required"`
	PrecioTotal decimal.Decimal     `json:"precio_total" validate:"required,gt=0"`
	Items       []ItemOfertaRequest `json:"items"        validate:"required,min=1,dive"`
}

type OfertaItemResponse struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Unidad     string          `json:"unidad"`
}

type OfertaResponse struct {
	ID          string               `json:"id"`
	Nombre      string               `json:"nombre"`
	PrecioTotal decimal.Decimal      `json:"precio_total"`
	Items       []OfertaItemResponse `json:"items"`
}
