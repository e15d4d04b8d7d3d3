package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acero08/RutaCervezera-sub000/internal/dto"
	"github.com/acero08/RutaCervezera-sub000/internal/service"
)

type EventosHandler struct{ svc service.EventoService }

func NewEventosHandler(svc service.EventoService) *EventosHandler {
	return &EventosHandler{svc: svc}
}

func (h *EventosHandler) Crear(c *gin.Context) {
	barID, ok := parseID(c, "barId")
	if !ok {
		return
	}
	actorID, rol, ok := actor(c)
	if !ok {
		return
	}
	var req dto.CrearEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), barID, actorID, rol, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EventosHandler) ListarProximos(c *gin.Context) {
	barID, ok := parseID(c, "barId")
	if !ok {
		return
	}
	resp, err := h.svc.ListarProximos(c.Request.Context(), barID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *EventosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actorID, rol, ok := actor(c)
	if !ok {
		return
	}
	var req dto.ActualizarEventoRequest
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

func (h *EventosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
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
