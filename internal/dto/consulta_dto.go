package dto

import "github.com/shopspring/decimal"

// ConsultaPreciosResponse is the public price check payload. Display only,
// it never feeds the stock ledger.
type ConsultaPreciosResponse struct {
	Nombre      string           `json:"nombre"`
	Categoria   string           `json:"categoria"`
	Unidad      string           `json:"unidad"`
	PrecioVenta *decimal.Decimal `json:"precio_venta"`
	Stock       decimal.Decimal  `json:"stock"`
}
