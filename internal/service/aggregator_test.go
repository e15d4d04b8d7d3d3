package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acero08/RutaCervezera-sub000/internal/model"
)

func TestAgruparPorCategoria(t *testing.T) {
	items := []model.Item{
		{Nombre: "Tacos", Tipo: model.TipoComida},
		{Nombre: "Limonada", Tipo: model.TipoBebida},
		{Nombre: "IPA", Tipo: model.TipoBebidaAlcoholica},
		{Nombre: "Flan", Tipo: model.TipoComida},
	}

	food, drink := AgruparPorCategoria(items)

	assert.Len(t, food, 2)
	assert.Len(t, drink, 2)
	assert.Equal(t, "Tacos", food[0].Nombre)
	assert.Equal(t, "Flan", food[1].Nombre)
	assert.Equal(t, "Limonada", drink[0].Nombre)
	assert.Equal(t, "IPA", drink[1].Nombre)
}

func TestAgruparPorCategoriaVacio(t *testing.T) {
	food, drink := AgruparPorCategoria(nil)
	assert.Empty(t, food)
	assert.Empty(t, drink)
}

func TestAgruparPorCategoriaConservaCadaItem(t *testing.T) {
	items := []model.Item{
		{Nombre: "A", Tipo: model.TipoComida},
		{Nombre: "B", Tipo: model.TipoBebida},
		{Nombre: "C", Tipo: model.TipoBebidaAlcoholica},
	}

	food, drink := AgruparPorCategoria(items)
	assert.Equal(t, len(items), len(food)+len(drink))

	// re-grouping the concatenation changes nothing
	food2, drink2 := AgruparPorCategoria(append(append([]model.Item{}, food...), drink...))
	assert.Equal(t, food, food2)
	assert.Equal(t, drink, drink2)
}
