package service_test

import (
	"context"
	"testing"

	"github.com/CruzGuillermo/stock-app/internal/dto"
	"github.com/CruzGuillermo/stock-app/internal/model"
	"github.com/CruzGuillermo/stock-app/internal/repository"
	"github.com/CruzGuillermo/stock-app/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubOfertaRepo is an in-memory OfertaRepository.
type stubOfertaRepo struct {
	ofertas map[uuid.UUID]*model.OfertaEspecial
}

func newStubOfertaRepo() *stubOfertaRepo {
	return &stubOfertaRepo{ofertas: make(map[uuid.UUID]*model.OfertaEspecial)}
}

func (r *stubOfertaRepo) List(_ context.Context) ([]model.OfertaEspecial, error) {
	var out []model.OfertaEspecial
	for _, o := range r.ofertas {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOfertaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.OfertaEspecial, error) {
	o, ok := r.ofertas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOfertaRepo) CreateTx(_ *gorm.DB, o *model.OfertaEspecial) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	for i := range o.Detalles {
		o.Detalles[i].OfertaID = o.ID
	}
	r.ofertas[o.ID] = o
	return nil
}

func (r *stubOfertaRepo) ReplaceDetallesTx(_ *gorm.DB, ofertaID uuid.UUID, detalles []model.DetalleOfertaEspecial) error {
	o, ok := r.ofertas[ofertaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range detalles {
		detalles[i].OfertaID = ofertaID
	}
	o.Detalles = detalles
	return nil
}

func (r *stubOfertaRepo) UpdateTx(_ *gorm.DB, o *model.OfertaEspecial) error {
	stored, ok := r.ofertas[o.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Nombre = o.Nombre
	stored.PrecioTotal = o.PrecioTotal
	return nil
}

func (r *stubOfertaRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.ofertas, id)
	return nil
}

func (r *stubOfertaRepo) DB() *gorm.DB { return nil }

var _ repository.OfertaRepository = (*stubOfertaRepo)(nil)

func buildOfertaSvc() (service.OfertaService, *stubOfertaRepo, *stubProductoRepo) {
	ofertaRepo := newStubOfertaRepo()
	productoRepo := newStubProductoRepo()
	return service.NewOfertaService(ofertaRepo, productoRepo), ofertaRepo, productoRepo
}

func TestCrearOferta_UnidadPorDefecto(t *testing.T) {
	svc, _, productoRepo := buildOfertaSvc()
	p := seedProducto(productoRepo, "Lavandina", "litro", 10)

	resp, err := svc.Crear(context.Background(), dto.GuardarOfertaRequest{
		Nombre:      "Combo limpieza",
		PrecioTotal: decimal.NewFromInt(2500),
		Items: []dto.ItemOfertaRequest{
			{ProductoID: p.ID.String(), Cantidad: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "unidad", resp.Items[0].Unidad)
}

func TestCrearOferta_ProductoInexistente(t *testing.T) {
	svc, ofertaRepo, _ := buildOfertaSvc()

	_, err := svc.Crear(context.Background(), dto.GuardarOfertaRequest{
		Nombre:      "Combo fantasma",
		PrecioTotal: decimal.NewFromInt(1000),
		Items: []dto.ItemOfertaRequest{
			{ProductoID: uuid.New().String(), Cantidad: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)
	assert.Empty(t, ofertaRepo.ofertas)
}

func TestActualizarOferta_ReemplazaComponentes(t *testing.T) {
	svc, ofertaRepo, productoRepo := buildOfertaSvc()
	p1 := seedProducto(productoRepo, "Detergente", "litro", 10)
	p2 := seedProducto(productoRepo, "Esponja", "unidad", 10)

	resp, err := svc.Crear(context.Background(), dto.GuardarOfertaRequest{
		Nombre:      "Combo cocina",
		PrecioTotal: decimal.NewFromInt(1500),
		Items: []dto.ItemOfertaRequest{
			{ProductoID: p1.ID.String(), Cantidad: decimal.NewFromInt(1), Unidad: "litro"},
		},
	})
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	err = svc.Actualizar(context.Background(), id, dto.GuardarOfertaRequest{
		Nombre:      "Combo cocina plus",
		PrecioTotal: decimal.NewFromInt(1800),
		Items: []dto.ItemOfertaRequest{
			{ProductoID: p1.ID.String(), Cantidad: decimal.NewFromInt(1), Unidad: "litro"},
			{ProductoID: p2.ID.String(), Cantidad: decimal.NewFromInt(3), Unidad: "unidad"},
		},
	})
	require.NoError(t, err)

	stored := ofertaRepo.ofertas[id]
	assert.Equal(t, "Combo cocina plus", stored.Nombre)
	assert.Equal(t, "1800", stored.PrecioTotal.String())
	assert.Len(t, stored.Detalles, 2)
}

func TestEliminarOferta_NoEncontrada(t *testing.T) {
	svc, _, _ := buildOfertaSvc()
	err := svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrOfertaNoEncontrada)
}
