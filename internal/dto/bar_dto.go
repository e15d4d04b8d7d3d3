package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearBarRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=120"`
	Descripcion string  `json:"descripcion" validate:"required"`
	Direccion   string  `json:"direccion"   validate:"required"`
	Ciudad      string  `json:"ciudad"      validate:"required"`
	Telefono    *string `json:"telefono"`
	Horario     *string `json:"horario"`
	Imagen      *string `json:"imagen" validate:"omitempty,url"`
}

type ActualizarBarRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2,max=120"`
	Descripcion *string `json:"descripcion"`
	Direccion   *string `json:"direccion"`
	Ciudad      *string `json:"ciudad"`
	Telefono    *string `json:"telefono"`
	Horario     *string `json:"horario"`
	Imagen      *string `json:"imagen" validate:"omitempty,url"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type BarFilter struct {
	Nombre string `form:"nombre"`
	Ciudad string `form:"ciudad"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BarResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Direccion   string  `json:"direccion"`
	Ciudad      string  `json:"ciudad"`
	Telefono    *string `json:"telefono,omitempty"`
	Horario     *string `json:"horario,omitempty"`
	Imagen      *string `json:"imagen,omitempty"`
	DuenoID     string  `json:"dueno_id"`
}

type BarListResponse struct {
	Data       []BarResponse `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}
