package handler

import (
	"net/http"

	"github.com/CruzGuillermo/stock-app/internal/apierror"
	"github.com/CruzGuillermo/stock-app/internal/dto"
	"github.com/CruzGuillermo/stock-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IngresosHandler struct{ svc service.IngresoService }

func NewIngresosHandler(svc service.IngresoService) *IngresosHandler {
	return &IngresosHandler{svc: svc}
}

// Registrar godoc
// @Summary      Registrar ingreso de stock
// @Description  Inserta el ingreso y suma la cantidad convertida a unidades base al stock del producto, en una sola transacción.
// @Tags         ingresos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarIngresoRequest true "Datos del ingreso"
// @Success      201  {object} dto.IngresoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ingresos-stock [post]
func (h *IngresosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarIngresoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary      Editar ingreso de stock
// @Description  Actualiza el registro y ajusta el stock por la diferencia entre la cantidad base nueva y la almacenada.
// @Tags         ingresos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del ingreso"
// @Param        body body dto.RegistrarIngresoRequest true "Datos del ingreso"
// @Success      200  {object} map[string]string
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ingresos-stock/{id} [put]
func (h *IngresosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.RegistrarIngresoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Ingreso editado y stock actualizado"})
}

// Eliminar godoc
// @Summary      Eliminar ingreso de stock
// @Description  Resta la cantidad base del ingreso del stock del producto y borra el registro, atómicamente.
// @Tags         ingresos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del ingreso"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ingresos-stock/{id} [delete]
func (h *IngresosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Ingreso eliminado y stock actualizado"})
}

// Historial godoc
// @Summary      Historial de ingresos
// @Tags         ingresos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.HistorialIngresoItem
// @Router       /v1/ingresos-stock/historial [get]
func (h *IngresosHandler) Historial(c *gin.Context) {
	items, err := h.svc.Historial(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener historial"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// InversionTotal godoc
// @Summary      Inversión total
// @Description  Suma cantidad × precio_unitario sobre todos los ingresos.
// @Tags         ingresos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.InversionTotalResponse
// @Router       /v1/ingresos-stock/inversion-total [get]
func (h *IngresosHandler) InversionTotal(c *gin.Context) {
	resp, err := h.svc.InversionTotal(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar inversión total"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
