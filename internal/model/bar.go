package model

import (
	"time"

	"github.com/google/uuid"
)

// Bar is the owning establishment for menu items, reviews and events.
type Bar struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion string    `gorm:"not null"`
	Direccion   string    `gorm:"not null"`
	Ciudad      string    `gorm:"index;not null"`
	Telefono    *string
	Horario     *string
	Imagen      *string
	DuenoID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Activo      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Dueno *Usuario `gorm:"foreignKey:DuenoID"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Bar) TableName() string { return "bares" }
