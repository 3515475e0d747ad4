package service

import (
	"context"
	"errors"
	"time"

	"github.com/CruzGuillermo/stock-app/internal/dto"
	"github.com/CruzGuillermo/stock-app/internal/model"
	"github.com/CruzGuillermo/stock-app/internal/repository"
	"github.com/CruzGuillermo/stock-app/internal/unidad"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngresoService owns the intake side of the stock ledger. Every mutation
// pairs its record write with the converted stock delta inside one
// transaction, so an intake row and its stock effect are never visible apart.
type IngresoService interface {
	Registrar(ctx context.Context, req dto.RegistrarIngresoRequest) (*dto.IngresoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.RegistrarIngresoRequest) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	Historial(ctx context.Context) ([]dto.HistorialIngresoItem, error)
	InversionTotal(ctx context.Context) (*dto.InversionTotalResponse, error)
}

type ingresoService struct {
	repo         repository.IngresoRepository
	productoRepo repository.ProductoRepository
}

func NewIngresoService(repo repository.IngresoRepository, productoRepo repository.ProductoRepository) IngresoService {
	return &ingresoService{repo: repo, productoRepo: productoRepo}
}

// parseIngreso validates and converts the request before any I/O happens.
func parseIngreso(req dto.RegistrarIngresoRequest) (productoID uuid.UUID, fecha time.Time, err error) {
	productoID, err = uuid.Parse(req.ProductoID)
	if err != nil {
		return uuid.Nil, time.Time{}, errValidacion("producto_id inválido: %v", err)
	}
	fecha, err = time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return uuid.Nil, time.Time{}, errValidacion("fecha inválida: %v", err)
	}
	if !req.Cantidad.IsPositive() {
		return uuid.Nil, time.Time{}, errValidacion("cantidad debe ser positiva")
	}
	if !req.PrecioUnitario.IsPositive() {
		return uuid.Nil, time.Time{}, errValidacion("precio_unitario debe ser positivo")
	}
	if req.Unidad == "" {
		return uuid.Nil, time.Time{}, errValidacion("unidad es obligatoria")
	}
	return productoID, fecha, nil
}

func (s *ingresoService) Registrar(ctx context.Context, req dto.RegistrarIngresoRequest) (*dto.IngresoResponse, error) {
	productoID, fecha, err := parseIngreso(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.productoRepo.FindByID(ctx, productoID); err != nil {
		return nil, ErrProductoNoEncontrado
	}

	ing := &model.IngresoStock{
		ProductoID:     productoID,
		Fecha:          fecha,
		Cantidad:       req.Cantidad,
		PrecioUnitario: req.PrecioUnitario,
		Unidad:         req.Unidad,
		Observaciones:  req.Observaciones,
	}
	delta := unidad.ABaseIngreso(req.Cantidad, req.Unidad)

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, ing); err != nil {
			return err
		}
		return s.productoRepo.UpdateStockTx(tx, productoID, delta)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.IngresoResponse{
		ID:      ing.ID.String(),
		Mensaje: "Ingreso de stock registrado y stock actualizado",
	}, nil
}

// Actualizar replaces an intake record. The stock delta is the difference
// between the new and the stored converted quantity, applied in the same
// transaction as the record update.
func (s *ingresoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.RegistrarIngresoRequest) error {
	productoID, fecha, err := parseIngreso(req)
	if err != nil {
		return err
	}

	original, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIngresoNoEncontrado
		}
		return err
	}

	baseOriginal := unidad.ABaseIngreso(original.Cantidad, original.Unidad)
	baseNueva := unidad.ABaseIngreso(req.Cantidad, req.Unidad)
	diferencia := baseNueva.Sub(baseOriginal)

	original.ProductoID = productoID
	original.Fecha = fecha
	original.Cantidad = req.Cantidad
	original.PrecioUnitario = req.PrecioUnitario
	original.Unidad = req.Unidad
	original.Observaciones = req.Observaciones

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, original); err != nil {
			return err
		}
		return s.productoRepo.UpdateStockTx(tx, productoID, diferencia)
	})
}

// Eliminar reverses the intake's stock effect and removes the record.
func (s *ingresoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIngresoNoEncontrado
		}
		return err
	}

	base := unidad.ABaseIngreso(ing.Cantidad, ing.Unidad)

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return err
		}
		return s.productoRepo.UpdateStockTx(tx, ing.ProductoID, base.Neg())
	})
}

func (s *ingresoService) Historial(ctx context.Context) ([]dto.HistorialIngresoItem, error) {
	ingresos, err := s.repo.Historial(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistorialIngresoItem, 0, len(ingresos))
	for _, ing := range ingresos {
		nombre := ""
		if ing.Producto != nil {
			nombre = ing.Producto.Nombre
		}
		items = append(items, dto.HistorialIngresoItem{
			ID:             ing.ID.String(),
			ProductoID:     ing.ProductoID.String(),
			ProductoNombre: nombre,
			Fecha:          ing.Fecha.Format("2006-01-02"),
			Cantidad:       ing.Cantidad,
			PrecioUnitario: ing.PrecioUnitario,
			Unidad:         ing.Unidad,
			Observaciones:  ing.Observaciones,
		})
	}
	return items, nil
}

func (s *ingresoService) InversionTotal(ctx context.Context) (*dto.InversionTotalResponse, error) {
	total, err := s.repo.InversionTotal(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InversionTotalResponse{InversionTotal: total}, nil
}
