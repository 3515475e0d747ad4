package service

import (
	"context"
	"errors"

	"github.com/CruzGuillermo/stock-app/internal/dto"
	"github.com/CruzGuillermo/stock-app/internal/model"
	"github.com/CruzGuillermo/stock-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoService is pure catalog management. The one place stock appears here
// is the opening balance at creation; after that, updates deliberately skip
// the stock column so the ledger can only move through intakes and sales.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	Buscar(ctx context.Context, nombre string) ([]dto.BusquedaProductoItem, error)
	ListarStock(ctx context.Context) ([]dto.ProductoStockItem, error)
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		Nombre:       req.Nombre,
		Categoria:    req.Categoria,
		Stock:        req.Stock,
		Unidad:       req.Unidad,
		StockMinimo:  req.StockMinimo,
		Activo:       true,
		Precio05L:    req.Precio05L,
		Precio1L:     req.Precio1L,
		Precio3L:     req.Precio3L,
		PrecioUnidad: req.PrecioUnidad,
		PrecioKg:     req.PrecioKg,
		PrecioGramo:  req.PrecioGramo,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, *productoToResponse(&productos[i]))
	}
	return out, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductoNoEncontrado
		}
		return err
	}

	// Stock intentionally untouched.
	p.Nombre = req.Nombre
	p.Categoria = req.Categoria
	p.Unidad = req.Unidad
	p.StockMinimo = req.StockMinimo
	p.Precio05L = req.Precio05L
	p.Precio1L = req.Precio1L
	p.Precio3L = req.Precio3L
	p.PrecioUnidad = req.PrecioUnidad
	p.PrecioKg = req.PrecioKg
	p.PrecioGramo = req.PrecioGramo

	return s.repo.Update(ctx, p)
}

// Desactivar soft deletes: ledger rows keep referencing the product, so it is
// never physically removed.
func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductoNoEncontrado
		}
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *productoService) Buscar(ctx context.Context, nombre string) ([]dto.BusquedaProductoItem, error) {
	productos, err := s.repo.Search(ctx, nombre)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusquedaProductoItem, 0, len(productos))
	for _, p := range productos {
		items = append(items, dto.BusquedaProductoItem{
			ID:     p.ID.String(),
			Nombre: p.Nombre,
			Stock:  p.Stock,
			Unidad: p.Unidad,
		})
	}
	return items, nil
}

func (s *productoService) ListarStock(ctx context.Context) ([]dto.ProductoStockItem, error) {
	productos, err := s.repo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoStockItem, 0, len(productos))
	for _, p := range productos {
		items = append(items, dto.ProductoStockItem{
			ID:          p.ID.String(),
			Nombre:      p.Nombre,
			Stock:       p.Stock,
			Unidad:      p.Unidad,
			Categoria:   p.Categoria,
			StockMinimo: p.StockMinimo,
		})
	}
	return items, nil
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:           p.ID.String(),
		Nombre:       p.Nombre,
		Categoria:    p.Categoria,
		Stock:        p.Stock,
		Unidad:       p.Unidad,
		StockMinimo:  p.StockMinimo,
		Precio05L:    p.Precio05L,
		Precio1L:     p.Precio1L,
		Precio3L:     p.Precio3L,
		PrecioUnidad: p.PrecioUnidad,
		PrecioKg:     p.PrecioKg,
		PrecioGramo:  p.PrecioGramo,
		PrecioVenta:  p.PrecioVenta(),
	}
}
