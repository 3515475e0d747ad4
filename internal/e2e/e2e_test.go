//go:build integration

package e2e

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CruzGuillermo/stock-app/internal/config"
	"github.com/CruzGuillermo/stock-app/internal/infra"
	"github.com/CruzGuillermo/stock-app/internal/model"
	"github.com/CruzGuillermo/stock-app/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("stockapp_test"),
		tcPostgres.WithUsername("stockapp"),
		tcPostgres.WithPassword("stockapp"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               3001,
		Env:                "test",
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		Timezone:           "UTC",
		TicketStoragePath:  t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed admin user
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-e2e"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Usuario{
		Username:     "admin",
		Nombre:       "Admin E2E",
		PasswordHash: string(hash),
		Rol:          "administrador",
		Activo:       true,
	}).Error)

	r := router.New(cfg, db, rdb, time.UTC)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/auth/login",
		jsonBody(t, map[string]string{"usuario": "admin", "contrasena": "clave-e2e"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken}
}

func crearProducto(t *testing.T, env *testEnv, nombre, unidad string, stock float64) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/productos",
		jsonBody(t, map[string]any{
			"nombre":    nombre,
			"categoria": "limpieza",
			"unidad":    unidad,
			"stock":     stock,
			"precio_1l": 1200,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var prod struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &prod)
	return prod.ID
}

func stockActual(t *testing.T, env *testEnv, productoID string) string {
	t.Helper()
	resp := do(t, env.server, "GET", "/v1/productos/stock", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []struct {
		ID    string `json:"id"`
		Stock string `json:"stock"`
	}
	decodeJSON(t, resp, &items)
	for _, it := range items {
		if it.ID == productoID {
			return it.Stock
		}
	}
	t.Fatalf("producto %s no aparece en el listado de stock", productoID)
	return ""
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Intake, sale and profit report, all in liters so the cost average stays in
// one quantity domain.
func TestE2E_FlujoIngresoVentaResumen(t *testing.T) {
	env := setupTestEnv(t)
	prodID := crearProducto(t, env, "Lavandina", "litro", 0)

	ingResp := do(t, env.server, "POST", "/v1/ingresos-stock",
		jsonBody(t, map[string]any{
			"producto_id":     prodID,
			"fecha":           "2026-03-10",
			"cantidad":        20,
			"precio_unitario": 200,
			"unidad":          "litro",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, ingResp.StatusCode)
	ingResp.Body.Close()
	assert.Equal(t, "20", stockActual(t, env, prodID))

	ventaResp := do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"productos": []map[string]any{
				{"producto_id": prodID, "cantidad": 6, "unidad": "litro", "precio_unitario": 500},
			},
			"total": 3000,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, ventaResp.StatusCode)
	ventaResp.Body.Close()
	assert.Equal(t, "14", stockActual(t, env, prodID))

	// resumen: ventas 3000, inversion 4000, costo = 6 × (4000/20) = 1200
	resResp := do(t, env.server, "GET", "/v1/resumen-financiero", nil, env.token)
	require.Equal(t, http.StatusOK, resResp.StatusCode)
	var resumen struct {
		TotalVentas     string `json:"total_ventas"`
		TotalIngresos   string `json:"total_ingresos"`
		CostoRealVentas string `json:"costo_real_ventas"`
		Ganancia        string `json:"ganancia"`
	}
	decodeJSON(t, resResp, &resumen)
	assert.Equal(t, "3000", resumen.TotalVentas)
	assert.Equal(t, "4000", resumen.TotalIngresos)
	assert.Equal(t, "1200", resumen.CostoRealVentas)
	assert.Equal(t, "1800", resumen.Ganancia)
}

func TestE2E_AnularVentaRestauraStock(t *testing.T) {
	env := setupTestEnv(t)
	prodID := crearProducto(t, env, "Detergente", "litro", 10)

	ventaResp := do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"productos": []map[string]any{
				{"producto_id": prodID, "cantidad": 4, "unidad": "litro", "precio_unitario": 800},
			},
			"total": 3200,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, ventaResp.StatusCode)
	var venta struct {
		ID string `json:"venta_id"`
	}
	decodeJSON(t, ventaResp, &venta)
	assert.Equal(t, "6", stockActual(t, env, prodID))

	anularResp := do(t, env.server, "DELETE", fmt.Sprintf("/v1/ventas/%s", venta.ID), nil, env.token)
	require.Equal(t, http.StatusOK, anularResp.StatusCode)
	anularResp.Body.Close()
	assert.Equal(t, "10", stockActual(t, env, prodID))

	// second void must 404 and leave stock alone
	anular2 := do(t, env.server, "DELETE", fmt.Sprintf("/v1/ventas/%s", venta.ID), nil, env.token)
	assert.Equal(t, http.StatusNotFound, anular2.StatusCode)
	anular2.Body.Close()
	assert.Equal(t, "10", stockActual(t, env, prodID))
}

func TestE2E_VentaSinStockDevuelveErrores(t *testing.T) {
	env := setupTestEnv(t)
	prodID := crearProducto(t, env, "Suavizante", "litro", 2)

	resp := do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"productos": []map[string]any{
				{"producto_id": prodID, "cantidad": 5, "unidad": "litro", "precio_unitario": 900},
			},
			"total": 4500,
		}),
		env.token,
	)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Errors []string `json:"errors"`
	}
	decodeJSON(t, resp, &body)
	require.Len(t, body.Errors, 1)
	assert.Contains(t, body.Errors[0], "Suavizante")
	assert.Equal(t, "2", stockActual(t, env, prodID))
}

func TestE2E_RutasProtegidas(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/v1/productos", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// price check stays public
	pub := do(t, env.server, "GET", "/consulta-precios?nombre=lavandina", nil, "")
	assert.Equal(t, http.StatusOK, pub.StatusCode)
	pub.Body.Close()
}
