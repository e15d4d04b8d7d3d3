package model

import (
	"time"

	"github.com/google/uuid"
)

// Resena is a user review of a bar. One review per user per bar.
type Resena struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarID      uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_resena_bar_usuario;not null"`
	UsuarioID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_resena_bar_usuario;not null"`
	Puntuacion int       `gorm:"not null"`
	Comentario string    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Resena) TableName() string { return "resenas" }

// Upvote marks that a user found a review useful. One per user per review.
type Upvote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ResenaID  uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_upvote_resena_usuario;not null"`
	UsuarioID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_upvote_resena_usuario;not null"`
	CreatedAt time.Time
}
