package model

import (
	"time"

	"github.com/google/uuid"
)

// Evento is a scheduled event hosted by a bar (live music, trivia, etc.).
type Evento struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Titulo      string    `gorm:"not null"`
	Descripcion string    `gorm:"not null"`
	Fecha       time.Time `gorm:"index;not null"`
	Imagen      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Bar *Bar `gorm:"foreignKey:BarID"`
}
