package dto

import "time"

type CrearResenaRequest struct {
	Puntuacion int    `json:"puntuacion" validate:"required,min=1,max=5"`
	Comentario string `json:"comentario" validate:"required,max=2000"`
}

type ResenaResponse struct {
	ID            string    `json:"id"`
	BarID         string    `json:"bar_id"`
	UsuarioID     string    `json:"usuario_id"`
	UsuarioNombre string    `json:"usuario_nombre,omitempty"`
	Puntuacion    int       `json:"puntuacion"`
	Comentario    string    `json:"comentario"`
	Upvotes       int64     `json:"upvotes"`
	CreatedAt     time.Time `json:"created_at"`
}

type ResenaListResponse struct {
	Data     []ResenaResponse `json:"data"`
	Total    int64            `json:"total"`
	Promedio float64          `json:"promedio"`
}
