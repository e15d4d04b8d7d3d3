package dto

import "time"

type CrearEventoRequest struct {
	Titulo      string    `json:"titulo"      validate:"required,min=2,max=160"`
	Descripcion string    `json:"descripcion" validate:"required"`
	Fecha       time.Time `json:"fecha"       validate:"required"`
	Imagen      *string   `json:"imagen" validate:"omitempty,url"`
}

type ActualizarEventoRequest struct {
	Titulo      *string    `json:"titulo" validate:"omitempty,min=2,max=160"`
	Descripcion *string    `json:"descripcion"`
	Fecha       *time.Time `json:"fecha"`
	Imagen      *string    `json:"imagen" validate:"omitempty,url"`
}

type EventoResponse struct {
	ID          string    `json:"id"`
	BarID       string    `json:"bar_id"`
	Titulo      string    `json:"titulo"`
	Descripcion string    `json:"descripcion"`
	Fecha       time.Time `json:"fecha"`
	Imagen      *string   `json:"imagen,omitempty"`
}
