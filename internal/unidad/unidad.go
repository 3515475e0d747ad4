// Package unidad converts operator-entered (cantidad, unidad) pairs into the
// canonical base quantity used for all stock arithmetic: liters for liquid
// units, kilograms for weight units, plain count for discrete units.
//
// Sales and intakes use slightly different tables: the sale table knows the
// "3litros" pack, the intake table does not (a 3-liter pack is only ever sold,
// never received as such). Both fall back to the identity conversion for
// unrecognized units instead of failing. Keep the two tables separate: the
// divergence is intentional until the product owner says otherwise.
package unidad

import "github.com/shopspring/decimal"

// Unidades de medida reconocidas.
const (
	MedioLitro = "medio_litro"
	Litro      = "litro"
	TresLitros = "3litros"
	Unidad     = "unidad"
	Kilogramo  = "kilogramo"
	Gramo      = "gramo"
)

var (
	medio    = decimal.NewFromFloat(0.5)
	tres     = decimal.NewFromInt(3)
	milesima = decimal.NewFromFloat(0.001)
)

// ABaseVenta converts a sale quantity to base units.
func ABaseVenta(cantidad decimal.Decimal, unidad string) decimal.Decimal {
	switch unidad {
	case MedioLitro:
		return cantidad.Mul(medio)
	case Litro:
		return cantidad
	case TresLitros:
		return cantidad.Mul(tres)
	case Unidad:
		return cantidad
	case Kilogramo:
		return cantidad
	case Gramo:
		return cantidad.Mul(milesima)
	default:
		return cantidad
	}
}

// ABaseIngreso converts an intake quantity to base units. No "3litros" case:
// an intake recorded in that unit passes through unconverted.
func ABaseIngreso(cantidad decimal.Decimal, unidad string) decimal.Decimal {
	switch unidad {
	case MedioLitro:
		return cantidad.Mul(medio)
	case Litro:
		return cantidad
	case Unidad:
		return cantidad
	case Kilogramo:
		return cantidad
	case Gramo:
		return cantidad.Mul(milesima)
	default:
		return cantidad
	}
}
