package service_test

import (
	"context"
	"testing"

	"github.com/CruzGuillermo/stock-app/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsultaPrecios_SinCacheDisponible(t *testing.T) {
	repo := newStubProductoRepo()
	p := seedProducto(repo, "Lavandina", "litro", 12)
	precio := decimal.NewFromInt(1500)
	p.Precio1L = &precio

	svc := service.NewConsultaService(repo, nil)
	items, err := svc.PreciosPorNombre(context.Background(), "lavandina")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Lavandina", items[0].Nombre)
	require.NotNil(t, items[0].PrecioVenta)
	assert.Equal(t, "1500", items[0].PrecioVenta.String())
	assert.Equal(t, "12", items[0].Stock.String())
}
