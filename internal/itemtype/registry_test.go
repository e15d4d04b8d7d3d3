package itemtype

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acero08/RutaCervezera-sub000/internal/apierror"
	"github.com/acero08/RutaCervezera-sub000/internal/model"
)

func strPtr(s string) *string                   { return &s }
func intPtr(i int) *int                         { return &i }
func boolPtr(b bool) *bool                      { return &b }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func comidaValida() *Fields {
	return &Fields{
		Nombre:      "Tacos de birria",
		Descripcion: "Tres tacos con consome",
		Precio:      decimal.NewFromInt(120),
		Categoria:   strPtr("plato_principal"),
	}
}

func bebidaValida() *Fields {
	return &Fields{
		Nombre:              "Limonada",
		Descripcion:         "Limonada natural",
		Precio:              decimal.NewFromInt(45),
		Categoria:           strPtr("jugo"),
		Volumen:             decPtr(decimal.NewFromInt(500)),
		TemperaturaServicio: strPtr("frio"),
	}
}

func alcoholicaValida() *Fields {
	return &Fields{
		Nombre:        "IPA de la casa",
		Descripcion:   "Cerveza artesanal amarga",
		Precio:        decimal.NewFromInt(95),
		Categoria:     strPtr("cerveza"),
		Volumen:       decPtr(decimal.NewFromInt(355)),
		GradosAlcohol: decPtr(decimal.NewFromFloat(6.5)),
		Marca:         strPtr("Cerveceria Norte"),
	}
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var valErr *apierror.ValidationError
	require.ErrorAs(t, err, &valErr)
	return valErr.Fields
}

func TestValidarComidaValida(t *testing.T) {
	require.NoError(t, Validar(model.TipoComida, comidaValida()))
}

func TestValidarBebidaValida(t *testing.T) {
	require.NoError(t, Validar(model.TipoBebida, bebidaValida()))
}

func TestValidarAlcoholicaValida(t *testing.T) {
	require.NoError(t, Validar(model.TipoBebidaAlcoholica, alcoholicaValida()))
}

func TestValidarTipoNoSoportado(t *testing.T) {
	err := Validar("merch", comidaValida())

	var tipoErr *TipoNoSoportadoError
	require.ErrorAs(t, err, &tipoErr)
	assert.Equal(t, "merch", tipoErr.Tipo)

	// Unknown discriminators are NOT a field validation failure
	var valErr *apierror.ValidationError
	assert.False(t, errors.As(err, &valErr))
}

func TestValidarReportaTodosLosCampos(t *testing.T) {
	f := &Fields{
		Nombre:      "  ",
		Descripcion: "",
		Precio:      decimal.NewFromInt(-5),
		Categoria:   strPtr("sopa"),
		Calorias:    intPtr(-100),
	}
	err := Validar(model.TipoComida, f)

	fields := validationFields(t, err)
	assert.Contains(t, fields, "nombre")
	assert.Contains(t, fields, "descripcion")
	assert.Contains(t, fields, "precio")
	assert.Contains(t, fields, "categoria")
	assert.Contains(t, fields, "calorias")
	assert.Len(t, fields, 5)
}

func TestValidarComidaRechazaCamposDeBebida(t *testing.T) {
	f := comidaValida()
	f.Volumen = decPtr(decimal.NewFromInt(500))
	f.GradosAlcohol = decPtr(decimal.NewFromInt(5))
	f.Marca = strPtr("Marca X")

	fields := validationFields(t, Validar(model.TipoComida, f))
	assert.Contains(t, fields, "volumen")
	assert.Contains(t, fields, "grados_alcohol")
	assert.Contains(t, fields, "marca")
	assert.Len(t, fields, 3)
}

func TestValidarBebidaRechazaCamposDeComida(t *testing.T) {
	f := bebidaValida()
	f.EsVegetariano = boolPtr(true)
	f.Calorias = intPtr(90)

	fields := validationFields(t, Validar(model.TipoBebida, f))
	assert.Contains(t, fields, "es_vegetariano")
	assert.Contains(t, fields, "calorias")
}

func TestValidarBebidaRequiereVolumenYTemperatura(t *testing.T) {
	f := bebidaValida()
	f.Volumen = nil
	f.TemperaturaServicio = nil

	fields := validationFields(t, Validar(model.TipoBebida, f))
	assert.Equal(t, "requerido", fields["volumen"])
	assert.Equal(t, "requerido", fields["temperatura_servicio"])
}

func TestValidarBebidaTemperaturaInvalida(t *testing.T) {
	f := bebidaValida()
	f.TemperaturaServicio = strPtr("tibio")

	fields := validationFields(t, Validar(model.TipoBebida, f))
	assert.Contains(t, fields, "temperatura_servicio")
}

func TestValidarBebidaIngredienteVacio(t *testing.T) {
	f := bebidaValida()
	f.Ingredientes = []string{"limon", "   ", "azucar"}

	fields := validationFields(t, Validar(model.TipoBebida, f))
	assert.Contains(t, fields, "ingredientes[1]")
}

func TestValidarAlcoholicaRequiereMarca(t *testing.T) {
	f := alcoholicaValida()
	f.Marca = strPtr("  ")

	fields := validationFields(t, Validar(model.TipoBebidaAlcoholica, f))
	assert.Equal(t, "requerido", fields["marca"])
}

func TestValidarAlcoholicaGradosFueraDeRango(t *testing.T) {
	casos := map[string]decimal.Decimal{
		"negativo":    decimal.NewFromInt(-1),
		"mas de cien": decimal.NewFromInt(101),
	}
	for nombre, grados := range casos {
		t.Run(nombre, func(t *testing.T) {
			f := alcoholicaValida()
			f.GradosAlcohol = decPtr(grados)
			fields := validationFields(t, Validar(model.TipoBebidaAlcoholica, f))
			assert.Equal(t, "debe estar entre 0 y 100", fields["grados_alcohol"])
		})
	}
}

func TestValidarAlcoholicaGradosEnLosLimites(t *testing.T) {
	for _, grados := range []int64{0, 100} {
		f := alcoholicaValida()
		f.GradosAlcohol = decPtr(decimal.NewFromInt(grados))
		assert.NoError(t, Validar(model.TipoBebidaAlcoholica, f))
	}
}

func TestValidarCategoriaDeOtroTipo(t *testing.T) {
	// "cerveza" is a valid category, but not for comida
	f := comidaValida()
	f.Categoria = strPtr("cerveza")

	fields := validationFields(t, Validar(model.TipoComida, f))
	assert.Contains(t, fields, "categoria")
}

func TestValidarNormalizaTexto(t *testing.T) {
	f := comidaValida()
	f.Nombre = "  Tacos de birria  "
	f.Descripcion = " Tres tacos con consome "

	require.NoError(t, Validar(model.TipoComida, f))
	assert.Equal(t, "Tacos de birria", f.Nombre)
	assert.Equal(t, "Tres tacos con consome", f.Descripcion)
}

func TestEsSoportado(t *testing.T) {
	for _, tipo := range Soportados() {
		assert.True(t, EsSoportado(tipo))
	}
	assert.False(t, EsSoportado(""))
	assert.False(t, EsSoportado("postre"))
}
