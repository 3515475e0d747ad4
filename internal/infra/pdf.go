package infra

// Receipt ticket rendering with go-pdf/fpdf. Thermal-printer sized
// page: fixed 230pt width, height grown with the line count. The body comes
// from service.TicketLines; this file only lays text onto the page.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CruzGuillermo/stock-app/internal/model"
	"github.com/CruzGuillermo/stock-app/internal/service"

	"github.com/go-pdf/fpdf"
)

const (
	ticketLineHeight = 4.5 // mm
	ticketPageWidth  = 81  // mm ≈ 230pt, receipt roll width
)

// GenerateTicketPDF writes the receipt for a sale to storagePath and returns
// the absolute path of the generated file.
func GenerateTicketPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("ticket-venta-%s.pdf", venta.ID)
	filePath := filepath.Join(storagePath, fileName)

	body := service.TicketLines(venta)

	alto := 50 + float64(len(body)+6)*ticketLineHeight
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: ticketPageWidth, Ht: alto},
	})
	pdf.SetMargins(5, 5, 5)
	pdf.AddPage()

	ancho := ticketPageWidth - 10.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(ancho, 5, "Todo Limpio", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(ancho, 4, "Art. De Limpieza", "", 1, "C", false, 0, "")
	pdf.CellFormat(ancho, 4, "B° Campo Contreras", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.CellFormat(ancho, 4, "Fecha: "+venta.Fecha.Format("02/01/2006 15:04:05"), "", 1, "L", false, 0, "")
	pdf.CellFormat(ancho, 4, "N° Venta: "+venta.ID.String(), "", 1, "L", false, 0, "")
	pdf.CellFormat(ancho, 4, "Condición: Consumidor Final", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Courier", "", 7)
	for _, line := range body {
		pdf.CellFormat(ancho, ticketLineHeight, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(ancho, 4, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
