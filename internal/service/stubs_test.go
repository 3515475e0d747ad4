package service_test

import (
	"context"

	"github.com/CruzGuillermo/stock-app/internal/model"
	"github.com/CruzGuillermo/stock-app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductoRepo is an in-memory ProductoRepository. UpdateStockTx accepts
// the nil *gorm.DB that runTx passes in unit-test mode.
type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindActivoByNombre(_ context.Context, nombre string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.Activo && p.Nombre == nombre {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) ListActivos(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Search(_ context.Context, nombre string) ([]model.Producto, error) {
	return r.ListActivos(context.Background())
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProductoRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Stock = p.Stock.Add(delta)
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// seedProducto registers an active product with the given base stock.
func seedProducto(r *stubProductoRepo, nombre, unidad string, stock float64) *model.Producto {
	p := &model.Producto{
		ID:        uuid.New(),
		Nombre:    nombre,
		Categoria: "limpieza",
		Unidad:    unidad,
		Stock:     decimal.NewFromFloat(stock),
		Activo:    true,
	}
	r.productos[p.ID] = p
	return p
}

// stubIngresoRepo is an in-memory IngresoRepository.
type stubIngresoRepo struct {
	ingresos map[uuid.UUID]*model.IngresoStock
}

func newStubIngresoRepo() *stubIngresoRepo {
	return &stubIngresoRepo{ingresos: make(map[uuid.UUID]*model.IngresoStock)}
}

func (r *stubIngresoRepo) CreateTx(_ *gorm.DB, ing *model.IngresoStock) error {
	if ing.ID == uuid.Nil {
		ing.ID = uuid.New()
	}
	r.ingresos[ing.ID] = ing
	return nil
}

func (r *stubIngresoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.IngresoStock, error) {
	ing, ok := r.ingresos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ing
	return &cp, nil
}

func (r *stubIngresoRepo) UpdateTx(_ *gorm.DB, ing *model.IngresoStock) error {
	if _, ok := r.ingresos[ing.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.ingresos[ing.ID] = ing
	return nil
}

func (r *stubIngresoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.ingresos, id)
	return nil
}

func (r *stubIngresoRepo) Historial(_ context.Context) ([]model.IngresoStock, error) {
	var out []model.IngresoStock
	for _, ing := range r.ingresos {
		out = append(out, *ing)
	}
	return out, nil
}

func (r *stubIngresoRepo) InversionTotal(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, ing := range r.ingresos {
		total = total.Add(ing.Cantidad.Mul(ing.PrecioUnitario))
	}
	return total, nil
}

func (r *stubIngresoRepo) DB() *gorm.DB { return nil }

var _ repository.IngresoRepository = (*stubIngresoRepo)(nil)

// stubVentaRepo is an in-memory VentaRepository.
type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Detalles {
		if v.Detalles[i].ID == uuid.Nil {
			v.Detalles[i].ID = uuid.New()
		}
		v.Detalles[i].VentaID = v.ID
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindDetalles(_ context.Context, ventaID uuid.UUID) ([]model.DetalleVenta, error) {
	v, ok := r.ventas[ventaID]
	if !ok {
		return nil, nil
	}
	return v.Detalles, nil
}

func (r *stubVentaRepo) DeleteTx(_ *gorm.DB, ventaID uuid.UUID) error {
	delete(r.ventas, ventaID)
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) Listado(_ context.Context) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// stubResumenRepo serves preset aggregates and records the limit it was
// asked for.
type stubResumenRepo struct {
	totalVentas decimal.Decimal
	ingresos    []repository.AgregadoIngreso
	vendidos    []repository.AgregadoVenta
	top         []repository.TopProducto
	topLimit    int
}

func (r *stubResumenRepo) TotalVentas(_ context.Context) (decimal.Decimal, error) {
	return r.totalVentas, nil
}

func (r *stubResumenRepo) IngresosPorProducto(_ context.Context) ([]repository.AgregadoIngreso, error) {
	return r.ingresos, nil
}

func (r *stubResumenRepo) VendidoPorProducto(_ context.Context) ([]repository.AgregadoVenta, error) {
	return r.vendidos, nil
}

func (r *stubResumenRepo) TopProductos(_ context.Context, limit int) ([]repository.TopProducto, error) {
	r.topLimit = limit
	return r.top, nil
}

var _ repository.ResumenRepository = (*stubResumenRepo)(nil)
