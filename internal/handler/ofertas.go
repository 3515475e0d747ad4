package handler

import (
	"net/http"

	"github.com/CruzGuillermo/stock-app/internal/apierror"
	"github.com/CruzGuillermo/stock-app/internal/dto"
	"github.com/CruzGuillermo/stock-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfertasHandler struct{ svc service.OfertaService }

func NewOfertasHandler(svc service.OfertaService) *OfertasHandler {
	return &OfertasHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar ofertas especiales
// @Tags         ofertas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.OfertaResponse
// @Router       /v1/ofertas [get]
func (h *OfertasHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ofertas"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// Crear godoc
// @Summary      Crear oferta especial
// @Tags         ofertas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.GuardarOfertaRequest true "Oferta y sus componentes"
// @Success      201  {object} dto.OfertaResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/ofertas [post]
func (h *OfertasHandler) Crear(c *gin.Context) {
	var req dto.GuardarOfertaRequest
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

// Actualizar godoc
// @Summary      Editar oferta especial
// @Description  Reemplaza nombre, precio y la lista completa de componentes.
// @Tags         ofertas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la oferta"
// @Param        body body dto.GuardarOfertaRequest true "Oferta y sus componentes"
// @Success      200  {object} map[string]string
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ofertas/{id} [put]
func (h *OfertasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.GuardarOfertaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Oferta actualizada correctamente"})
}

// Eliminar godoc
// @Summary      Eliminar oferta especial
// @Tags         ofertas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la oferta"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ofertas/{id} [delete]
func (h *OfertasHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Oferta eliminada correctamente"})
}
