package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/CruzGuillermo/stock-app/internal/dto"
	"github.com/CruzGuillermo/stock-app/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildVentaSvc() (service.VentaService, *stubVentaRepo, *stubProductoRepo) {
	ventaRepo := newStubVentaRepo()
	productoRepo := newStubProductoRepo()
	svc := service.NewVentaService(ventaRepo, productoRepo, time.UTC)
	return svc, ventaRepo, productoRepo
}

func TestRegistrarVenta_DescuentaStockConvertido(t *testing.T) {
	svc, ventaRepo, productoRepo := buildVentaSvc()
	p := seedProducto(productoRepo, "Lavandina", "litro", 20)

	// 2 bidones de 3 litros = 6 litros base
	resp, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemVentaRequest{
			{
				ProductoID:     p.ID.String(),
				Cantidad:       decimal.NewFromInt(2),
				Unidad:         "3litros",
				PrecioUnitario: decimal.NewFromInt(1500),
			},
		},
		Total: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	assert.Equal(t, "14", p.Stock.String())

	stored, err := ventaRepo.FindByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Len(t, stored.Detalles, 1)
	assert.Equal(t, "3000", stored.Total.String())
}

func TestRegistrarVenta_RechazaLoteCompleto(t *testing.T) {
	svc, ventaRepo, productoRepo := buildVentaSvc()
	conStock := seedProducto(productoRepo, "Detergente", "litro", 50)
	sinStock := seedProducto(productoRepo, "Suavizante", "litro", 1)

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemVentaRequest{
			{
				ProductoID:     conStock.ID.String(),
				Cantidad:       decimal.NewFromInt(2),
				Unidad:         "litro",
				PrecioUnitario: decimal.NewFromInt(800),
			},
			{
				ProductoID:     sinStock.ID.String(),
				Cantidad:       decimal.NewFromInt(5),
				Unidad:         "litro",
				PrecioUnitario: decimal.NewFromInt(900),
			},
		},
		Total: decimal.NewFromInt(6100),
	})

	var stockErr *service.StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Len(t, stockErr.Errores, 1)
	assert.Contains(t, stockErr.Errores[0], "Suavizante")

	// nothing persisted, neither product debited
	assert.Empty(t, ventaRepo.ventas)
	assert.Equal(t, "50", conStock.Stock.String())
	assert.Equal(t, "1", sinStock.Stock.String())
}

func TestRegistrarVenta_AcumulaTodosLosErrores(t *testing.T) {
	svc, _, productoRepo := buildVentaSvc()
	p := seedProducto(productoRepo, "Cloro", "litro", 1)

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemVentaRequest{
			{
				ProductoID:     p.ID.String(),
				Cantidad:       decimal.NewFromInt(10),
				Unidad:         "litro",
				PrecioUnitario: decimal.NewFromInt(700),
			},
			{
				ProductoID:     uuid.New().String(),
				Cantidad:       decimal.NewFromInt(1),
				Unidad:         "litro",
				PrecioUnitario: decimal.NewFromInt(500),
			},
			{
				ProductoID:     p.ID.String(),
				Cantidad:       decimal.NewFromInt(-1),
				Unidad:         "litro",
				PrecioUnitario: decimal.NewFromInt(700),
			},
		},
		Total: decimal.NewFromInt(7500),
	})

	var stockErr *service.StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Len(t, stockErr.Errores, 3)
}

func TestRegistrarVenta_TotalInvalido(t *testing.T) {
	svc, _, productoRepo := buildVentaSvc()
	p := seedProducto(productoRepo, "Esponja", "unidad", 10)

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemVentaRequest{
			{
				ProductoID:     p.ID.String(),
				Cantidad:       decimal.NewFromInt(1),
				Unidad:         "unidad",
				PrecioUnitario: decimal.NewFromInt(300),
			},
		},
		Total: decimal.Zero,
	})
	assert.ErrorContains(t, err, "total inválido")

	var valErr *service.ValidacionError
	assert.ErrorAs(t, err, &valErr)
}

func TestAnularVenta_RestauraStock(t *testing.T) {
	svc, ventaRepo, productoRepo := buildVentaSvc()
	p := seedProducto(productoRepo, "Jabón líquido", "litro", 10)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemVentaRequest{
			{
				ProductoID:     p.ID.String(),
				Cantidad:       decimal.NewFromInt(6),
				Unidad:         "medio_litro",
				PrecioUnitario: decimal.NewFromInt(400),
			},
		},
		Total: decimal.NewFromInt(2400),
	})
	require.NoError(t, err)
	require.Equal(t, "7", p.Stock.String())

	err = svc.Anular(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "10", p.Stock.String())
	assert.Empty(t, ventaRepo.ventas)
}

func TestAnularVenta_NoEncontrada(t *testing.T) {
	svc, _, _ := buildVentaSvc()
	err := svc.Anular(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrVentaNoEncontrada)
}

func TestAnularVenta_DosVecesFalla(t *testing.T) {
	svc, _, productoRepo := buildVentaSvc()
	p := seedProducto(productoRepo, "Trapo de piso", "unidad", 5)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemVentaRequest{
			{
				ProductoID:     p.ID.String(),
				Cantidad:       decimal.NewFromInt(2),
				Unidad:         "unidad",
				PrecioUnitario: decimal.NewFromInt(600),
			},
		},
		Total: decimal.NewFromInt(1200),
	})
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	require.NoError(t, svc.Anular(context.Background(), id))
	assert.Equal(t, "5", p.Stock.String())

	// second void must not credit stock again
	err = svc.Anular(context.Background(), id)
	assert.ErrorIs(t, err, service.ErrVentaNoEncontrada)
	assert.Equal(t, "5", p.Stock.String())
}

func TestDetalleVenta_AgrupaLineas(t *testing.T) {
	svc, _, productoRepo := buildVentaSvc()
	p := seedProducto(productoRepo, "Desodorante de ambiente", "unidad", 30)

	oferta := "combo"
	resp, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemVentaRequest{
			{
				ProductoID:     p.ID.String(),
				Cantidad:       decimal.NewFromInt(3),
				Unidad:         "unidad",
				PrecioUnitario: decimal.NewFromInt(500),
				TipoOferta:     &oferta,
				Descuento:      decimal.NewFromInt(200),
			},
		},
		Total: decimal.NewFromInt(1300),
	})
	require.NoError(t, err)

	detalle, err := svc.Detalle(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	require.Len(t, detalle.Productos, 1)
	assert.Equal(t, "200", detalle.Productos[0].Descuento.String())
	assert.Equal(t, "1300", detalle.Total.String())
}
