package service

import (
	"context"

	"github.com/CruzGuillermo/stock-app/internal/dto"
	"github.com/CruzGuillermo/stock-app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResumenService is the profit engine. There is no persisted cost basis: every
// call re-aggregates the intake and sale ledgers and derives weighted-average
// cost per product fresh. Two endpoints share one computation with different
// output projections.
type ResumenService interface {
	ResumenFinanciero(ctx context.Context) (*dto.ResumenFinancieroResponse, error)
	BalanceAvanzado(ctx context.Context) (*dto.BalanceAvanzadoResponse, error)
	TopProductos(ctx context.Context) ([]dto.TopProductoItem, error)
}

type resumenService struct {
	repo        repository.ResumenRepository
	ingresoRepo repository.IngresoRepository
}

func NewResumenService(repo repository.ResumenRepository, ingresoRepo repository.IngresoRepository) ResumenService {
	return &resumenService{repo: repo, ingresoRepo: ingresoRepo}
}

// resumen is the single source both projections are built from.
type resumen struct {
	totalVentas   decimal.Decimal
	totalIngresos decimal.Decimal
	costoReal     decimal.Decimal
	ganancia      decimal.Decimal
}

// calcular derives realized cost of goods sold from weighted-average intake
// cost. A product with no intake records has no cost data and contributes
// zero, its sales still count toward revenue.
func (s *resumenService) calcular(ctx context.Context) (*resumen, error) {
	totalVentas, err := s.repo.TotalVentas(ctx)
	if err != nil {
		return nil, err
	}
	totalIngresos, err := s.ingresoRepo.InversionTotal(ctx)
	if err != nil {
		return nil, err
	}

	ingresos, err := s.repo.IngresosPorProducto(ctx)
	if err != nil {
		return nil, err
	}
	vendidos, err := s.repo.VendidoPorProducto(ctx)
	if err != nil {
		return nil, err
	}

	type costoPromedio struct {
		promedio decimal.Decimal
	}
	costos := make(map[uuid.UUID]costoPromedio, len(ingresos))
	for _, ing := range ingresos {
		if ing.TotalCant.IsZero() {
			continue
		}
		costos[ing.ProductoID] = costoPromedio{promedio: ing.TotalValor.Div(ing.TotalCant)}
	}

	costoReal := decimal.Zero
	for _, v := range vendidos {
		if c, ok := costos[v.ProductoID]; ok {
			costoReal = costoReal.Add(v.TotalVendido.Mul(c.promedio))
		}
	}

	return &resumen{
		totalVentas:   totalVentas,
		totalIngresos: totalIngresos,
		costoReal:     costoReal,
		ganancia:      totalVentas.Sub(costoReal),
	}, nil
}

func (s *resumenService) ResumenFinanciero(ctx context.Context) (*dto.ResumenFinancieroResponse, error) {
	r, err := s.calcular(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ResumenFinancieroResponse{
		TotalVentas:     r.totalVentas,
		TotalIngresos:   r.totalIngresos,
		CostoRealVentas: r.costoReal,
		Ganancia:        r.ganancia,
	}, nil
}

func (s *resumenService) BalanceAvanzado(ctx context.Context) (*dto.BalanceAvanzadoResponse, error) {
	r, err := s.calcular(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceAvanzadoResponse{
		InversionTotal:  r.totalIngresos,
		VentasTotal:     r.totalVentas,
		CostoRealVentas: r.costoReal,
		Ganancia:        r.ganancia,
		Balance:         r.ganancia,
	}, nil
}

func (s *resumenService) TopProductos(ctx context.Context) ([]dto.TopProductoItem, error) {
	rows, err := s.repo.TopProductos(ctx, 5)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TopProductoItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.TopProductoItem{
			ID:             r.ID.String(),
			NombreProducto: r.Nombre,
			Categoria:      r.Categoria,
			TotalVendido:   r.TotalVendido,
		})
	}
	return items, nil
}
