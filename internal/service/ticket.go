package service

import (
	"fmt"
	"strings"

	"github.com/CruzGuillermo/stock-app/internal/model"

	"github.com/shopspring/decimal"
)

// Fixed-width receipt layout: 40 monospace columns, name 16 / qty 6 /
// unit price 6 / line subtotal 7, amounts right-aligned.
const (
	ticketAncho        = 40
	ticketSeparador    = "----------------------------------------"
	ticketCabecera     = "Producto         Cant   P.U.    Subt"
	anchoNombre        = 16
	anchoCantidad      = 6
	anchoPrecio        = 6
	anchoSubtotal      = 7
	anchoEtiquetaTotal = 38
)

// TicketLines builds the body of a receipt from a sale with product names
// preloaded. Pure presentation: no rounding ever reaches the database, amounts
// are formatted to whole pesos only here.
func TicketLines(v *model.Venta) []string {
	lines := make([]string, 0, len(v.Detalles)+8)

	lines = append(lines, ticketSeparador, ticketCabecera, ticketSeparador)

	subtotal := decimal.Zero
	descuentos := decimal.Zero
	for _, d := range v.Detalles {
		nombre := "Producto"
		if d.Producto != nil && d.Producto.Nombre != "" {
			nombre = d.Producto.Nombre
		}
		bruto := d.PrecioUnitario.Mul(d.Cantidad)
		subtotal = subtotal.Add(bruto)
		descuentos = descuentos.Add(d.Descuento)

		lines = append(lines, strings.Join([]string{
			padRight(nombre, anchoNombre),
			padLeft(d.Cantidad.StringFixed(2), anchoCantidad),
			padLeft(d.PrecioUnitario.StringFixed(0), anchoPrecio),
			padLeft(subtotalLinea(d).StringFixed(0), anchoSubtotal),
		}, " "))
	}

	lines = append(lines, ticketSeparador)
	lines = append(lines, lineaEtiquetaMonto("subtotal", subtotal, ""))
	lines = append(lines, lineaEtiquetaMonto("descuentos", descuentos, "-"))
	lines = append(lines, lineaEtiquetaMonto("total", v.Total, ""))

	return lines
}

func padRight(texto string, ancho int) string {
	r := []rune(texto)
	if len(r) > ancho {
		return string(r[:ancho])
	}
	return texto + strings.Repeat(" ", ancho-len(r))
}

func padLeft(texto string, ancho int) string {
	r := []rune(texto)
	if len(r) > ancho {
		return string(r[:ancho])
	}
	return strings.Repeat(" ", ancho-len(r)) + texto
}

func lineaEtiquetaMonto(etiqueta string, monto decimal.Decimal, signo string) string {
	montoStr := signo + "$" + monto.StringFixed(0)
	espacios := anchoEtiquetaTotal - len(etiqueta) - len(montoStr)
	if espacios < 1 {
		espacios = 1
	}
	return fmt.Sprintf("%s%s%s", etiqueta, strings.Repeat(" ", espacios), montoStr)
}
