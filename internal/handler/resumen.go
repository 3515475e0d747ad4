package handler

import (
	"net/http"

	"github.com/CruzGuillermo/stock-app/internal/apierror"
	"github.com/CruzGuillermo/stock-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ResumenHandler struct{ svc service.ResumenService }

func NewResumenHandler(svc service.ResumenService) *ResumenHandler {
	return &ResumenHandler{svc: svc}
}

// ResumenFinanciero godoc
// @Summary      Resumen financiero
// @Description  Total vendido, total invertido, costo real de lo vendido a costo promedio ponderado y ganancia.
// @Tags         resumen
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ResumenFinancieroResponse
// @Router       /v1/resumen-financiero [get]
func (h *ResumenHandler) ResumenFinanciero(c *gin.Context) {
	resp, err := h.svc.ResumenFinanciero(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el resumen financiero"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BalanceAvanzado godoc
// @Summary      Balance avanzado
// @Tags         resumen
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.BalanceAvanzadoResponse
// @Router       /v1/balance-avanzado [get]
func (h *ResumenHandler) BalanceAvanzado(c *gin.Context) {
	resp, err := h.svc.BalanceAvanzado(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el balance"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TopProductos godoc
// @Summary      Productos más vendidos
// @Tags         resumen
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TopProductoItem
// @Router       /v1/productos-mas-vendidos [get]
func (h *ResumenHandler) TopProductos(c *gin.Context) {
	items, err := h.svc.TopProductos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar los productos más vendidos"))
		return
	}
	c.JSON(http.StatusOK, items)
}
