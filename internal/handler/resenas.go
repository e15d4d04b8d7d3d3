package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acero08/RutaCervezera-sub000/internal/dto"
	"github.com/acero08/RutaCervezera-sub000/internal/service"
)

type ResenasHandler struct{ svc service.ResenaService }

func NewResenasHandler(svc service.ResenaService) *ResenasHandler {
	return &ResenasHandler{svc: svc}
}

func (h *ResenasHandler) Crear(c *gin.Context) {
	barID, ok := parseID(c, "barId")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	var req dto.CrearResenaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), barID, actorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ResenasHandler) ListarPorBar(c *gin.Context) {
	barID, ok := parseID(c, "barId")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorBar(c.Request.Context(), barID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ResenasHandler) Eliminar(c *gin.Context) {
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

func (h *ResenasHandler) Upvote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	if err := h.svc.Upvote(c.Request.Context(), id, actorID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResenasHandler) QuitarUpvote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	if err := h.svc.QuitarUpvote(c.Request.Context(), id, actorID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
