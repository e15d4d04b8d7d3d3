// Package itemtype declares the allowed menu item specializations and their
// validation rules. Each discriminator owns a declarative spec (category enum,
// field rules, fields that belong to other variants); handlers and services
// never branch on tipo-specific rules themselves.
package itemtype

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/acero08/RutaCervezera-sub000/internal/apierror"
	"github.com/acero08/RutaCervezera-sub000/internal/model"
)

// Fields is the flattened candidate field set submitted for an item, covering
// the base record plus every variant column. Validar decides which of them
// apply for a given discriminator.
type Fields struct {
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	Imagen      *string
	Disponible  *bool

	// comida
	EsVegetariano *bool
	TieneGluten   *bool
	Calorias      *int
	Categoria     *string

	// bebida / bebida_alcoholica
	Volumen             *decimal.Decimal
	TemperaturaServicio *string
	SinAzucar           *bool
	Ingredientes        []string

	// bebida_alcoholica
	GradosAlcohol *decimal.Decimal
	Origen        *string
	Marca         *string
}

// TipoNoSoportadoError rejects unknown discriminators. Kept separate from
// field validation failures so callers can tell the two apart.
type TipoNoSoportadoError struct {
	Tipo string
}

func (e *TipoNoSoportadoError) Error() string {
	return fmt.Sprintf("tipo de item no soportado: %q", e.Tipo)
}

// ajeno names a variant field that does not belong to a discriminator.
type ajeno struct {
	campo string
	set   func(f *Fields) bool
}

// spec is the declarative description of one discriminator.
type spec struct {
	categorias []string
	validar    func(f *Fields, errs map[string]string)
	ajenos     []ajeno
}

var temperaturas = []string{"frio", "ambiente", "caliente"}

var registry = map[string]spec{
	model.TipoComida: {
		categorias: []string{"entrada", "plato_principal", "postre", "ensalada", "guarnicion"},
		validar: func(f *Fields, errs map[string]string) {
			if f.Calorias != nil && *f.Calorias < 0 {
				errs["calorias"] = "debe ser mayor o igual a 0"
			}
		},
		ajenos: []ajeno{
			{"volumen", func(f *Fields) bool { return f.Volumen != nil }},
			{"temperatura_servicio", func(f *Fields) bool { return f.TemperaturaServicio != nil }},
			{"sin_azucar", func(f *Fields) bool { return f.SinAzucar != nil }},
			{"ingredientes", func(f *Fields) bool { return len(f.Ingredientes) > 0 }},
			{"grados_alcohol", func(f *Fields) bool { return f.GradosAlcohol != nil }},
			{"origen", func(f *Fields) bool { return f.Origen != nil }},
			{"marca", func(f *Fields) bool { return f.Marca != nil }},
		},
	},
	model.TipoBebida: {
		categorias: []string{"refresco", "agua", "jugo", "cafe", "te", "energetica"},
		validar: func(f *Fields, errs map[string]string) {
			validarVolumen(f, errs)
			if f.TemperaturaServicio == nil || *f.TemperaturaServicio == "" {
				errs["temperatura_servicio"] = "requerido"
			} else if !contiene(temperaturas, *f.TemperaturaServicio) {
				errs["temperatura_servicio"] = valorInvalido(*f.TemperaturaServicio, temperaturas)
			}
			for i, ing := range f.Ingredientes {
				if strings.TrimSpace(ing) == "" {
					errs[fmt.Sprintf("ingredientes[%d]", i)] = "no puede estar vacio"
				}
			}
		},
		ajenos: []ajeno{
			{"es_vegetariano", func(f *Fields) bool { return f.EsVegetariano != nil }},
			{"tiene_gluten", func(f *Fields) bool { return f.TieneGluten != nil }},
			{"calorias", func(f *Fields) bool { return f.Calorias != nil }},
			{"grados_alcohol", func(f *Fields) bool { return f.GradosAlcohol != nil }},
			{"origen", func(f *Fields) bool { return f.Origen != nil }},
			{"marca", func(f *Fields) bool { return f.Marca != nil }},
		},
	},
	model.TipoBebidaAlcoholica: {
		categorias: []string{"cerveza", "vino", "coctel", "licor"},
		validar: func(f *Fields, errs map[string]string) {
			validarVolumen(f, errs)
			if f.GradosAlcohol == nil {
				errs["grados_alcohol"] = "requerido"
			} else if f.GradosAlcohol.IsNegative() || f.GradosAlcohol.GreaterThan(decimal.NewFromInt(100)) {
				errs["grados_alcohol"] = "debe estar entre 0 y 100"
			}
			if f.Marca == nil || strings.TrimSpace(*f.Marca) == "" {
				errs["marca"] = "requerido"
			}
		},
		ajenos: []ajeno{
			{"es_vegetariano", func(f *Fields) bool { return f.EsVegetariano != nil }},
			{"tiene_gluten", func(f *Fields) bool { return f.TieneGluten != nil }},
			{"calorias", func(f *Fields) bool { return f.Calorias != nil }},
			{"temperatura_servicio", func(f *Fields) bool { return f.TemperaturaServicio != nil }},
			{"sin_azucar", func(f *Fields) bool { return f.SinAzucar != nil }},
			{"ingredientes", func(f *Fields) bool { return len(f.Ingredientes) > 0 }},
		},
	},
}

// Soportados lists the registered discriminators.
func Soportados() []string {
	return []string{model.TipoComida, model.TipoBebida, model.TipoBebidaAlcoholica}
}

// EsSoportado reports whether tipo is a registered discriminator.
func EsSoportado(tipo string) bool {
	_, ok := registry[tipo]
	return ok
}

// Validar checks the full candidate field set against the rules of tipo.
// It returns nil, a *TipoNoSoportadoError for unknown discriminators, or an
// *apierror.ValidationError listing every offending field in one pass.
// On success the Fields have been normalized in place (trimmed text).
func Validar(tipo string, f *Fields) error {
	s, ok := registry[tipo]
	if !ok {
		return &TipoNoSoportadoError{Tipo: tipo}
	}

	normalizar(f)
	errs := make(map[string]string)

	if f.Nombre == "" {
		errs["nombre"] = "requerido"
	}
	if f.Descripcion == "" {
		errs["descripcion"] = "requerido"
	}
	if f.Precio.IsNegative() {
		errs["precio"] = "debe ser mayor o igual a 0"
	}
	if f.Categoria == nil || *f.Categoria == "" {
		errs["categoria"] = "requerido"
	} else if !contiene(s.categorias, *f.Categoria) {
		errs["categoria"] = valorInvalido(*f.Categoria, s.categorias)
	}

	s.validar(f, errs)

	for _, a := range s.ajenos {
		if a.set(f) {
			errs[a.campo] = "no corresponde al tipo " + tipo
		}
	}

	if len(errs) > 0 {
		return apierror.NewValidation(errs)
	}
	return nil
}

func validarVolumen(f *Fields, errs map[string]string) {
	if f.Volumen == nil {
		errs["volumen"] = "requerido"
	} else if f.Volumen.IsNegative() {
		errs["volumen"] = "debe ser mayor o igual a 0"
	}
}

func normalizar(f *Fields) {
	f.Nombre = strings.TrimSpace(f.Nombre)
	f.Descripcion = strings.TrimSpace(f.Descripcion)
	for i := range f.Ingredientes {
		f.Ingredientes[i] = strings.TrimSpace(f.Ingredientes[i])
	}
}

func contiene(valores []string, v string) bool {
	for _, c := range valores {
		if c == v {
			return true
		}
	}
	return false
}

func valorInvalido(v string, validos []string) string {
	return fmt.Sprintf("valor invalido %q (permitidos: %s)", v, strings.Join(validos, ", "))
}
