package dto

import "github.com/shopspring/decimal"

// ResumenFinancieroResponse and BalanceAvanzadoResponse are two projections of
// the same profit computation. Balance is an alias of Ganancia kept for the
// dashboard the original screens expect.
type ResumenFinancieroResponse struct {
	TotalVentas     decimal.Decimal `json:"total_ventas"`
	TotalIngresos   decimal.Decimal `json:"total_ingresos"`
	CostoRealVentas decimal.Decimal `json:"costo_real_ventas"`
	Ganancia        decimal.Decimal `json:"ganancia"`
}

type BalanceAvanzadoResponse struct {
	InversionTotal  decimal.Decimal `json:"inversion_total"`
	VentasTotal     decimal.Decimal `json:"ventas_total"`
	CostoRealVentas decimal.Decimal `json:"costo_real_ventas"`
	Ganancia        decimal.Decimal `json:"ganancia"`
	Balance         decimal.Decimal `json:"balance"`
}

type TopProductoItem struct {
	ID             string          `json:"id"`
	NombreProducto string          `json:"nombre_producto"`
	Categoria      string          `json:"categoria"`
	TotalVendido   decimal.Decimal `json:"total_vendido"`
}
