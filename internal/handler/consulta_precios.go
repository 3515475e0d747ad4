package handler

import (
	"net/http"
	"strings"

	"github.com/CruzGuillermo/stock-app/internal/apierror"
	"github.com/CruzGuillermo/stock-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ConsultaPreciosHandler struct{ svc service.ConsultaService }

func NewConsultaPreciosHandler(svc service.ConsultaService) *ConsultaPreciosHandler {
	return &ConsultaPreciosHandler{svc: svc}
}

// Consultar godoc
// @Summary      Consulta pública de precios
// @Description  Búsqueda por nombre para mostrador. La respuesta puede salir de una caché de corta vida.
// @Tags         consulta
// @Produce      json
// @Param        nombre query string true "Fragmento del nombre del producto"
// @Success      200 {array} dto.ConsultaPreciosResponse
// @Failure      400 {object} apierror.APIError
// @Router       /consulta-precios [get]
func (h *ConsultaPreciosHandler) Consultar(c *gin.Context) {
	nombre := strings.TrimSpace(c.Query("nombre"))
	if nombre == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Debe indicar un nombre a consultar"))
		return
	}
	items, err := h.svc.PreciosPorNombre(c.Request.Context(), nombre)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar precios"))
		return
	}
	c.JSON(http.StatusOK, items)
}
