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

// OfertaService manages bundle templates. Offers never hold stock and never
// touch the ledger: selling one materializes ordinary sale lines through
// VentaService.
type OfertaService interface {
	Listar(ctx context.Context) ([]dto.OfertaResponse, error)
	Crear(ctx context.Context, req dto.GuardarOfertaRequest) (*dto.OfertaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarOfertaRequest) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type ofertaService struct {
	repo         repository.OfertaRepository
	productoRepo repository.ProductoRepository
}

func NewOfertaService(repo repository.OfertaRepository, productoRepo repository.ProductoRepository) OfertaService {
	return &ofertaService{repo: repo, productoRepo: productoRepo}
}

func (s *ofertaService) Listar(ctx context.Context) ([]dto.OfertaResponse, error) {
	ofertas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OfertaResponse, 0, len(ofertas))
	for _, o := range ofertas {
		out = append(out, *ofertaToResponse(&o))
	}
	return out, nil
}

func (s *ofertaService) parseDetalles(ctx context.Context, items []dto.ItemOfertaRequest) ([]model.DetalleOfertaEspecial, error) {
	detalles := make([]model.DetalleOfertaEspecial, 0, len(items))
	for _, item := range items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, errValidacion("producto_id inválido en items")
		}
		if _, err := s.productoRepo.FindByID(ctx, pid); err != nil {
			return nil, ErrProductoNoEncontrado
		}
		u := item.Unidad
		if u == "" {
			u = "unidad"
		}
		detalles = append(detalles, model.DetalleOfertaEspecial{
			ProductoID: pid,
			Cantidad:   item.Cantidad,
			Unidad:     u,
		})
	}
	return detalles, nil
}

func (s *ofertaService) Crear(ctx context.Context, req dto.GuardarOfertaRequest) (*dto.OfertaResponse, error) {
	detalles, err := s.parseDetalles(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	oferta := model.OfertaEspecial{
		Nombre:      req.Nombre,
		PrecioTotal: req.PrecioTotal,
		Detalles:    detalles,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateTx(tx, &oferta)
	})
	if txErr != nil {
		return nil, txErr
	}
	return ofertaToResponse(&oferta), nil
}

// Actualizar replaces the bundle's header and its whole component list.
func (s *ofertaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarOfertaRequest) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOfertaNoEncontrada
		}
		return err
	}
	detalles, err := s.parseDetalles(ctx, req.Items)
	if err != nil {
		return err
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		o := model.OfertaEspecial{ID: id, Nombre: req.Nombre, PrecioTotal: req.PrecioTotal}
		if err := s.repo.UpdateTx(tx, &o); err != nil {
			return err
		}
		return s.repo.ReplaceDetallesTx(tx, id, detalles)
	})
}

func (s *ofertaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOfertaNoEncontrada
		}
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.DeleteTx(tx, id)
	})
}

func ofertaToResponse(o *model.OfertaEspecial) *dto.OfertaResponse {
	items := make([]dto.OfertaItemResponse, 0, len(o.Detalles))
	for _, d := range o.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		items = append(items, dto.OfertaItemResponse{
			ProductoID: d.ProductoID.String(),
			Nombre:     nombre,
			Cantidad:   d.Cantidad,
			Unidad:     d.Unidad,
		})
	}
	return &dto.OfertaResponse{
		ID:          o.ID.String(),
		Nombre:      o.Nombre,
		PrecioTotal: o.PrecioTotal,
		Items:       items,
	}
}
