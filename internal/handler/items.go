package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acero08/RutaCervezera-sub000/internal/apierror"
	"github.com/acero08/RutaCervezera-sub000/internal/dto"
	"github.com/acero08/RutaCervezera-sub000/internal/middleware"
	"github.com/acero08/RutaCervezera-sub000/internal/service"
)

type ItemsHandler struct{ svc service.ItemService }

func NewItemsHandler(svc service.ItemService) *ItemsHandler {
	return &ItemsHandler{svc: svc}
}

// actor extracts the authenticated caller's id and role from the JWT claims.
func actor(c *gin.Context) (uuid.UUID, string, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
		return uuid.Nil, "", false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
		return uuid.Nil, "", false
	}
	return id, claims.Rol, true
}

func (h *ItemsHandler) Crear(c *gin.Context) {
	barID, ok := parseID(c, "barId")
	if !ok {
		return
	}
	actorID, rol, ok := actor(c)
	if !ok {
		return
	}
	var req dto.CrearItemRequest
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

func (h *ItemsHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c, "id")
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

func (h *ItemsHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actorID, rol, ok := actor(c)
	if !ok {
		return
	}
	var req dto.ActualizarItemRequest
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

func (h *ItemsHandler) Eliminar(c *gin.Context) {
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

// ListarMenu serves the bar's menu. With a tipo filter it returns a flat
// paginated list; without one, the page grouped into food / drink buckets.
func (h *ItemsHandler) ListarMenu(c *gin.Context) {
	barID, ok := parseID(c, "barId")
	if !ok {
		return
	}
	var filter dto.MenuFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}

	if filter.Tipo != "" {
		resp, err := h.svc.ListarPorTipo(c.Request.Context(), barID, filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.ListarAgrupado(c.Request.Context(), barID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) Buscar(c *gin.Context) {
	barID, ok := parseID(c, "barId")
	if !ok {
		return
	}
	var filter dto.BuscarFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), barID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) MenuPDF(c *gin.Context) {
	barID, ok := parseID(c, "barId")
	if !ok {
		return
	}
	path, err := h.svc.ExportarMenuPDF(c.Request.Context(), barID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "inline; filename=menu.pdf")
	c.File(path)
}
