package handler

import (
	"net/http"
	"strings"

	"github.com/CruzGuillermo/stock-app/internal/apierror"
	"github.com/CruzGuillermo/stock-app/internal/dto"
	"github.com/CruzGuillermo/stock-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearProductoRequest true "Datos del producto"
// @Success      201  {object} dto.ProductoResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/productos [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar productos activos
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProductoResponse
// @Router       /v1/productos [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// Actualizar godoc
// @Summary      Editar producto
// @Description  Actualiza los datos de catálogo. El stock nunca se modifica por esta vía.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del producto"
// @Param        body body dto.ActualizarProductoRequest true "Datos del producto"
// @Success      200  {object} map[string]string
// @Failure      404  {object} apierror.APIError
// @Router       /v1/productos/{id} [put]
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Producto actualizado correctamente"})
}

// Desactivar godoc
// @Summary      Desactivar producto
// @Description  Baja lógica. El producto deja de aparecer en listados y búsquedas pero su historial se conserva.
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del producto"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apierror.APIError
// @Router       /v1/productos/{id} [delete]
func (h *ProductosHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Producto desactivado correctamente"})
}

// Buscar godoc
// @Summary      Buscar productos por nombre
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        nombre query string true "Fragmento del nombre, insensible a mayúsculas"
// @Success      200 {array} dto.BusquedaProductoItem
// @Failure      400 {object} apierror.APIError
// @Router       /v1/productos/buscar [get]
func (h *ProductosHandler) Buscar(c *gin.Context) {
	nombre := strings.TrimSpace(c.Query("nombre"))
	if nombre == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Debe indicar un nombre a buscar"))
		return
	}
	items, err := h.svc.Buscar(c.Request.Context(), nombre)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar productos"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListarStock godoc
// @Summary      Stock actual por producto
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProductoStockItem
// @Router       /v1/productos/stock [get]
func (h *ProductosHandler) ListarStock(c *gin.Context) {
	items, err := h.svc.ListarStock(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar stock"))
		return
	}
	c.JSON(http.StatusOK, items)
}
