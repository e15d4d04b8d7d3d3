package service

import (
	"github.com/acero08/RutaCervezera-sub000/internal/model"
)

// AgruparPorCategoria splits a heterogeneous page of items into the two coarse
// buckets the app renders: comida → food, bebida and bebida_alcoholica →
// drink. The bucket is derived solely from the discriminator, never from any
// other field. Pure function, no I/O.
func AgruparPorCategoria(items []model.Item) (food, drink []model.Item) {
	food = make([]model.Item, 0, len(items))
	drink = make([]model.Item, 0, len(items))
	for _, it := range items {
		switch it.Tipo {
		case model.TipoComida:
			food = append(food, it)
		case model.TipoBebida, model.TipoBebidaAlcoholica:
			drink = append(drink, it)
		}
	}
	return food, drink
}
