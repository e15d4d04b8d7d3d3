package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearItemRequest carries the base fields plus every variant field; the
// itemtype registry decides which of them are valid for the given tipo.
type CrearItemRequest struct {
	Tipo        string          `json:"tipo"        validate:"required"`
	Nombre      string          `json:"nombre"      validate:"required,min=2,max=120"`
	Descripcion string          `json:"descripcion" validate:"required"`
	Precio      decimal.Decimal `json:"precio"`
	Imagen      *string         `json:"imagen"      validate:"omitempty,url"`
	Disponible  *bool           `json:"disponible"`

	EsVegetariano *bool   `json:"es_vegetariano"`
	TieneGluten   *bool   `json:"tiene_gluten"`
	Calorias      *int    `json:"calorias"`
	Categoria     *string `json:"categoria"`

	Volumen             *decimal.Decimal `json:"volumen"`
	TemperaturaServicio *string          `json:"temperatura_servicio"`
	SinAzucar           *bool            `json:"sin_azucar"`
	Ingredientes        []string         `json:"ingredientes"`

	GradosAlcohol *decimal.Decimal `json:"grados_alcohol"`
	Origen        *string          `json:"origen"`
	Marca         *string          `json:"marca"`
}

// ActualizarItemRequest is a partial update. There is deliberately no Tipo
// field: the discriminator is fixed at creation and re-derived from the stored
// record, never taken from the client.
type ActualizarItemRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=2,max=120"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Imagen      *string          `json:"imagen" validate:"omitempty,url"`
	Disponible  *bool            `json:"disponible"`

	EsVegetariano *bool   `json:"es_vegetariano"`
	TieneGluten   *bool   `json:"tiene_gluten"`
	Calorias      *int    `json:"calorias"`
	Categoria     *string `json:"categoria"`

	Volumen             *decimal.Decimal `json:"volumen"`
	TemperaturaServicio *string          `json:"temperatura_servicio"`
	SinAzucar           *bool            `json:"sin_azucar"`
	Ingredientes        []string         `json:"ingredientes"`

	GradosAlcohol *decimal.Decimal `json:"grados_alcohol"`
	Origen        *string          `json:"origen"`
	Marca         *string          `json:"marca"`
}

// ─── Filters ─────────────────────────────────────────────────────────────────

// MenuFilter drives the paginated menu listing. Price bounds arrive as floats
// from the query string and are converted to decimal at the query boundary.
type MenuFilter struct {
	Tipo      string   `form:"tipo"`
	Q         string   `form:"q"`
	MinPrecio *float64 `form:"min_precio"`
	MaxPrecio *float64 `form:"max_precio"`
	Page      int      `form:"page,default=1"   validate:"min=1"`
	Limit     int      `form:"limit,default=20" validate:"min=1,max=100"`
}

// BuscarFilter drives the capped, unpaginated search endpoint.
type BuscarFilter struct {
	Q         string   `form:"q"`
	Tipo      string   `form:"tipo"`
	MinPrecio *float64 `form:"min_precio"`
	MaxPrecio *float64 `form:"max_precio"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID          string          `json:"id"`
	BarID       string          `json:"bar_id"`
	Tipo        string          `json:"tipo"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Imagen      *string         `json:"imagen,omitempty"`
	Disponible  bool            `json:"disponible"`

	EsVegetariano *bool   `json:"es_vegetariano,omitempty"`
	TieneGluten   *bool   `json:"tiene_gluten,omitempty"`
	Calorias      *int    `json:"calorias,omitempty"`
	Categoria     *string `json:"categoria,omitempty"`

	Volumen             *decimal.Decimal `json:"volumen,omitempty"`
	TemperaturaServicio *string          `json:"temperatura_servicio,omitempty"`
	SinAzucar           *bool            `json:"sin_azucar,omitempty"`
	Ingredientes        []string         `json:"ingredientes,omitempty"`

	GradosAlcohol *decimal.Decimal `json:"grados_alcohol,omitempty"`
	Origen        *string          `json:"origen,omitempty"`
	Marca         *string          `json:"marca,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuTipoResponse is the listing envelope when a tipo filter was requested.
type MenuTipoResponse struct {
	Data       []ItemResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// MenuAgrupadoResponse is the listing envelope when no tipo filter was
// requested: the page split into the two coarse buckets the app renders.
type MenuAgrupadoResponse struct {
	Food       []ItemResponse `json:"food"`
	Drink      []ItemResponse `json:"drink"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// BuscarItemsResponse is the capped search result set.
type BuscarItemsResponse struct {
	Count int            `json:"count"`
	Data  []ItemResponse `json:"data"`
}
