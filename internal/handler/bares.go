package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acero08/RutaCervezera-sub000/internal/dto"
	"github.com/acero08/RutaCervezera-sub000/internal/service"
)

type BaresHandler struct{ svc service.BarService }

func NewBaresHandler(svc service.BarService) *BaresHandler {
	return &BaresHandler{svc: svc}
}

func (h *BaresHandler) Crear(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	var req dto.CrearBarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), actorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BaresHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c, "barId")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BaresHandler) Listar(c *gin.Context) {
	var filter dto.BarFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BaresHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "barId")
	if !ok {
		return
	}
	actorID, rol, ok := actor(c)
	if !ok {
		return
	}
	var req dto.ActualizarBarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, actorID, rol, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BaresHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "barId")
	if !ok {
		return
	}
	actorID, rol, ok := actor(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id, actorID, rol); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
