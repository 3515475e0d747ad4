package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CruzGuillermo/stock-app/internal/dto"
	"github.com/CruzGuillermo/stock-app/internal/model"
	"github.com/CruzGuillermo/stock-app/internal/repository"
	"github.com/CruzGuillermo/stock-app/internal/unidad"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentaService owns the sale side of the stock ledger: availability checks,
// atomic multi-line sale creation, and full-reversal voids.
type VentaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error)
	Anular(ctx context.Context, id uuid.UUID) error
	Listado(ctx context.Context) ([]dto.VentaPlanaItem, error)
	Historial(ctx context.Context) ([]dto.VentaAgrupada, error)
	Detalle(ctx context.Context, id uuid.UUID) (*dto.VentaAgrupada, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	zona         *time.Location
}

// NewVentaService builds the sale service. zona is the operator's local time
// zone used to stamp each sale.
func NewVentaService(repo repository.VentaRepository, productoRepo repository.ProductoRepository, zona *time.Location) VentaService {
	if zona == nil {
		zona = time.Local
	}
	return &ventaService{repo: repo, productoRepo: productoRepo, zona: zona}
}

// verificarStock runs the pre-validation pass over the whole batch: every line
// is checked and every violation collected, so the operator sees the complete
// list instead of fixing one line at a time.
func (s *ventaService) verificarStock(ctx context.Context, items []dto.ItemVentaRequest) []string {
	var errores []string

	for _, item := range items {
		if !item.Cantidad.IsPositive() {
			errores = append(errores, fmt.Sprintf("Cantidad inválida para producto ID %s", item.ProductoID))
			continue
		}
		if item.Unidad == "" {
			errores = append(errores, fmt.Sprintf("Unidad inválida para producto ID %s", item.ProductoID))
			continue
		}
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			errores = append(errores, fmt.Sprintf("Producto ID %s no existe.", item.ProductoID))
			continue
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			errores = append(errores, fmt.Sprintf("Producto ID %s no existe.", item.ProductoID))
			continue
		}

		convertida := unidad.ABaseVenta(item.Cantidad, item.Unidad)
		if p.Stock.LessThan(convertida) {
			errores = append(errores, fmt.Sprintf(
				"Stock insuficiente para %s. Disponible: %s, requerido: %s.",
				p.Nombre, p.Stock.String(), convertida.String()))
		}
	}
	return errores
}

// Registrar creates a sale. All validation happens before any write; the sale
// row, its detail rows, and every stock debit commit together or not at all.
func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error) {
	if len(req.Productos) == 0 {
		return nil, errValidacion("debe enviar productos para registrar la venta")
	}
	if !req.Total.IsPositive() {
		return nil, errValidacion("total inválido")
	}
	for _, item := range req.Productos {
		if item.PrecioUnitario.IsNegative() {
			return nil, errValidacion("precio unitario inválido para producto ID %s", item.ProductoID)
		}
	}

	if errores := s.verificarStock(ctx, req.Productos); len(errores) > 0 {
		return nil, &StockInsuficienteError{Errores: errores}
	}

	venta := model.Venta{
		Fecha: time.Now().In(s.zona),
		Total: req.Total,
	}
	for _, item := range req.Productos {
		pid, _ := uuid.Parse(item.ProductoID)
		venta.Detalles = append(venta.Detalles, model.DetalleVenta{
			ProductoID:     pid,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Unidad:         item.Unidad,
			TipoOferta:     item.TipoOferta,
			Descuento:      item.Descuento,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return err
		}
		for _, d := range venta.Detalles {
			debito := unidad.ABaseVenta(d.Cantidad, d.Unidad)
			if err := s.productoRepo.UpdateStockTx(tx, d.ProductoID, debito.Neg()); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.RegistrarVentaResponse{
		ID:      venta.ID.String(),
		Mensaje: "Venta registrada correctamente",
	}, nil
}

// Anular voids a sale: every line's converted quantity goes back to stock,
// then the detail rows and the sale row are removed. Full reversal only.
func (s *ventaService) Anular(ctx context.Context, id uuid.UUID) error {
	detalles, err := s.repo.FindDetalles(ctx, id)
	if err != nil {
		return err
	}
	if len(detalles) == 0 {
		return ErrVentaNoEncontrada
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, d := range detalles {
			credito := unidad.ABaseVenta(d.Cantidad, d.Unidad)
			if err := s.productoRepo.UpdateStockTx(tx, d.ProductoID, credito); err != nil {
				return err
			}
		}
		return s.repo.DeleteTx(tx, id)
	})
}

// Listado is the flat (sale × line) listing, newest first.
func (s *ventaService) Listado(ctx context.Context) ([]dto.VentaPlanaItem, error) {
	ventas, err := s.repo.Listado(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaPlanaItem, 0, len(ventas))
	for _, v := range ventas {
		for _, d := range v.Detalles {
			nombre := ""
			if d.Producto != nil {
				nombre = d.Producto.Nombre
			}
			items = append(items, dto.VentaPlanaItem{
				VentaID:        v.ID.String(),
				Fecha:          v.Fecha.Format(time.RFC3339),
				NombreProducto: nombre,
				Cantidad:       d.Cantidad,
				TipoOferta:     d.TipoOferta,
				Unidad:         d.Unidad,
			})
		}
	}
	return items, nil
}

// Historial groups the listing one record per sale with nested lines.
func (s *ventaService) Historial(ctx context.Context) ([]dto.VentaAgrupada, error) {
	ventas, err := s.repo.Listado(ctx)
	if err != nil {
		return nil, err
	}
	historial := make([]dto.VentaAgrupada, 0, len(ventas))
	for _, v := range ventas {
		historial = append(historial, *ventaAgrupada(&v))
	}
	return historial, nil
}

func (s *ventaService) Detalle(ctx context.Context, id uuid.UUID) (*dto.VentaAgrupada, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVentaNoEncontrada
		}
		return nil, err
	}
	return ventaAgrupada(v), nil
}

func ventaAgrupada(v *model.Venta) *dto.VentaAgrupada {
	productos := make([]dto.VentaProductoItem, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		productos = append(productos, dto.VentaProductoItem{
			Nombre:         nombre,
			Cantidad:       d.Cantidad,
			Unidad:         d.Unidad,
			PrecioUnitario: d.PrecioUnitario,
			Descuento:      d.Descuento,
		})
	}
	return &dto.VentaAgrupada{
		ID:        v.ID.String(),
		Fecha:     v.Fecha.Format(time.RFC3339),
		Total:     v.Total,
		Productos: productos,
	}
}

// subtotalLinea is the line amount shown on tickets: price × quantity − discount.
func subtotalLinea(d model.DetalleVenta) decimal.Decimal {
	return d.PrecioUnitario.Mul(d.Cantidad).Sub(d.Descuento)
}
