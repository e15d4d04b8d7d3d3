package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Discriminator values for the menu item table. The itemtype registry is the
// single source of truth for which columns apply to which value.
const (
	TipoComida           = "comida"
	TipoBebida           = "bebida"
	TipoBebidaAlcoholica = "bebida_alcoholica"
)

// Item stores every menu item of every bar in a single table, keyed by the
// Tipo discriminator. Variant columns are nullable and only populated for the
// tipo they belong to; Tipo is fixed at creation and never changed by updates.
type Item struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BarID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	Tipo        string          `gorm:"type:varchar(20);index;not null"`
	Nombre      string          `gorm:"index;not null"`
	Descripcion string          `gorm:"not null"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Imagen      *string
	Disponible  bool      `gorm:"not null;default:true"`
	CreadoPorID uuid.UUID `gorm:"type:uuid;not null"`

	// comida
	EsVegetariano *bool
	TieneGluten   *bool
	Calorias      *int
	// Categoria holds a different enum per tipo (entrada/postre/... for comida,
	// refresco/cafe/... for bebida, cerveza/vino/... for bebida_alcoholica).
	Categoria *string `gorm:"type:varchar(20);index"`

	// bebida / bebida_alcoholica
	Volumen             *decimal.Decimal `gorm:"type:decimal(10,2)"`
	TemperaturaServicio *string          `gorm:"type:varchar(10)"`
	SinAzucar           *bool
	Ingredientes        []string `gorm:"serializer:json"`

	// bebida_alcoholica
	GradosAlcohol *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Origen        *string
	Marca         *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Bar *Bar `gorm:"foreignKey:BarID"`
}
