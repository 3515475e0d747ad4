package handler

import (
	"errors"
	"net/http"

	"github.com/CruzGuillermo/stock-app/internal/apierror"
	"github.com/CruzGuillermo/stock-app/internal/dto"
	"github.com/CruzGuillermo/stock-app/internal/infra"
	"github.com/CruzGuillermo/stock-app/internal/repository"
	"github.com/CruzGuillermo/stock-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type VentasHandler struct {
	svc         service.VentaService
	ventaRepo   repository.VentaRepository
	ticketsPath string
}

func NewVentasHandler(svc service.VentaService, ventaRepo repository.VentaRepository, ticketsPath string) *VentasHandler {
	return &VentasHandler{svc: svc, ventaRepo: ventaRepo, ticketsPath: ticketsPath}
}

// Registrar godoc
// @Summary      Registrar venta
// @Description  Valida stock de todas las líneas antes de persistir. Si alguna no alcanza, rechaza la venta completa sin descontar nada.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVentaRequest true "Líneas de la venta"
// @Success      201  {object} dto.RegistrarVentaResponse
// @Failure      400  {object} apierror.StockErrors
// @Router       /v1/ventas [post]
func (h *VentasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
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

// Anular godoc
// @Summary      Anular venta
// @Description  Devuelve al stock las cantidades base de cada línea y elimina la venta con su detalle.
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/{id} [delete]
func (h *VentasHandler) Anular(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Anular(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Venta anulada y stock restaurado"})
}

// Listado godoc
// @Summary      Listado plano de líneas vendidas
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.VentaPlanaItem
// @Router       /v1/ventas [get]
func (h *VentasHandler) Listado(c *gin.Context) {
	items, err := h.svc.Listado(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// Historial godoc
// @Summary      Historial de ventas agrupadas
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.VentaAgrupada
// @Router       /v1/ventas/historial [get]
func (h *VentasHandler) Historial(c *gin.Context) {
	items, err := h.svc.Historial(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener historial de ventas"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// Detalle godoc
// @Summary      Detalle de una venta
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200 {object} dto.VentaAgrupada
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/{id} [get]
func (h *VentasHandler) Detalle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Detalle(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ticket godoc
// @Summary      Ticket PDF de una venta
// @Description  Genera el comprobante en formato 80mm y lo devuelve como archivo.
// @Tags         ventas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/{id}/ticket [get]
func (h *VentasHandler) Ticket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	venta, err := h.ventaRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Venta no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar la venta"))
		return
	}
	path, err := infra.GenerateTicketPDF(venta, h.ticketsPath)
	if err != nil {
		log.Error().Err(err).Str("venta_id", id.String()).Msg("no se pudo generar el ticket")
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el ticket"))
		return
	}
	c.Header("Content-Disposition", "inline; filename=ticket-"+id.String()+".pdf")
	c.File(path)
}
