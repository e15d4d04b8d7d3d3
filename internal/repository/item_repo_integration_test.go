//go:build integration

package repository_test

// Integration tests for the item repository against a real Postgres via
// testcontainers. The in-memory stubs used by the service tests re-implement
// the query contract; these tests exercise the SQL that actually ships:
// ILIKE matching, both orderings, offset pagination and the RowsAffected
// checks. Run with: go test -tags integration ./internal/repository/... -v

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/acero08/RutaCervezera-sub000/internal/infra"
	"github.com/acero08/RutaCervezera-sub000/internal/model"
	"github.com/acero08/RutaCervezera-sub000/internal/repository"
)

type repoEnv struct {
	items repository.ItemRepository
	barID uuid.UUID
	autor uuid.UUID
}

func setupRepoEnv(t *testing.T) *repoEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx,
		"postgres:16-alpine",
		tcPostgres.WithDatabase("ruta_test"),
		tcPostgres.WithUsername("ruta"),
		tcPostgres.WithPassword("ruta"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgC.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	dueno := &model.Usuario{
		Email:        "dueno@ruta.test",
		Nombre:       "Dueno",
		PasswordHash: "x",
		Rol:          "dueno",
		Activo:       true,
	}
	require.NoError(t, db.Create(dueno).Error)
	bar := &model.Bar{
		Nombre:      "Bar Integracion",
		Descripcion: "bar de pruebas",
		Direccion:   "Calle 1",
		Ciudad:      "Hermosillo",
		DuenoID:     dueno.ID,
		Activo:      true,
	}
	require.NoError(t, db.Create(bar).Error)

	return &repoEnv{
		items: repository.NewItemRepository(db),
		barID: bar.ID,
		autor: dueno.ID,
	}
}

func (e *repoEnv) comida(t *testing.T, nombre string, precio int64) *model.Item {
	t.Helper()
	cat := "plato_principal"
	it := &model.Item{
		BarID:       e.barID,
		Tipo:        model.TipoComida,
		Nombre:      nombre,
		Descripcion: "plato de la casa",
		Precio:      decimal.NewFromInt(precio),
		Disponible:  true,
		CreadoPorID: e.autor,
		Categoria:   &cat,
	}
	require.NoError(t, e.items.Create(context.Background(), it))
	// keep created_at strictly increasing for the recency ordering checks
	time.Sleep(5 * time.Millisecond)
	return it
}

func TestItemRepoPostgres(t *testing.T) {
	env := setupRepoEnv(t)
	ctx := context.Background()

	env.comida(t, "Tacos de Birria", 120)
	env.comida(t, "BIRRIA en caldo", 90)
	env.comida(t, "Quesadilla", 90)
	env.comida(t, "Flan", 60)

	t.Run("texto ILIKE ignora mayusculas", func(t *testing.T) {
		items, total, err := env.items.List(ctx, repository.ItemQuery{
			BarID: env.barID, Texto: "birria", Page: 1, Limit: 20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, items, 2)
	})

	t.Run("texto tambien busca en descripcion", func(t *testing.T) {
		_, total, err := env.items.List(ctx, repository.ItemQuery{
			BarID: env.barID, Texto: "DE LA CASA", Page: 1, Limit: 20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
	})

	t.Run("orden precio asc con desempate por nombre", func(t *testing.T) {
		items, _, err := env.items.List(ctx, repository.ItemQuery{
			BarID: env.barID, Orden: repository.OrdenPrecioNombre, Page: 1, Limit: 20,
		})
		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, "Flan", items[0].Nombre)
		assert.Equal(t, "BIRRIA en caldo", items[1].Nombre) // 90, B < Q
		assert.Equal(t, "Quesadilla", items[2].Nombre)
		assert.Equal(t, "Tacos de Birria", items[3].Nombre)
	})

	t.Run("orden recientes primero", func(t *testing.T) {
		items, _, err := env.items.List(ctx, repository.ItemQuery{
			BarID: env.barID, Orden: repository.OrdenRecientes, Page: 1, Limit: 20,
		})
		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, "Flan", items[0].Nombre)
		assert.Equal(t, "Tacos de Birria", items[3].Nombre)
	})

	t.Run("pagina fuera de rango conserva el total", func(t *testing.T) {
		items, total, err := env.items.List(ctx, repository.ItemQuery{
			BarID: env.barID, Page: 9, Limit: 20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		assert.Empty(t, items)
	})

	t.Run("rango de precio", func(t *testing.T) {
		min := decimal.NewFromInt(70)
		max := decimal.NewFromInt(100)
		items, total, err := env.items.List(ctx, repository.ItemQuery{
			BarID: env.barID, MinPrecio: &min, MaxPrecio: &max,
			Orden: repository.OrdenPrecioNombre, Page: 1, Limit: 20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, items, 2)
		assert.Equal(t, "BIRRIA en caldo", items[0].Nombre)
	})

	t.Run("eliminar dos veces devuelve not found", func(t *testing.T) {
		it := env.comida(t, "Efimero", 10)
		require.NoError(t, env.items.Delete(ctx, it.ID))
		assert.ErrorIs(t, env.items.Delete(ctx, it.ID), gorm.ErrRecordNotFound)
	})

	t.Run("update de item inexistente devuelve not found", func(t *testing.T) {
		err := env.items.UpdateFields(ctx, uuid.New(), map[string]interface{}{"nombre": "Nadie"})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("update de ingredientes pasa por el serializador", func(t *testing.T) {
		cat := "jugo"
		temp := "frio"
		vol := decimal.NewFromInt(500)
		it := &model.Item{
			BarID:               env.barID,
			Tipo:                model.TipoBebida,
			Nombre:              "Agua de jamaica",
			Descripcion:         "agua fresca",
			Precio:              decimal.NewFromInt(35),
			Disponible:          true,
			CreadoPorID:         env.autor,
			Categoria:           &cat,
			TemperaturaServicio: &temp,
			Volumen:             &vol,
			Ingredientes:        []string{"jamaica"},
		}
		require.NoError(t, env.items.Create(ctx, it))

		err := env.items.UpdateFields(ctx, it.ID, map[string]interface{}{
			"ingredientes": []string{"jamaica", "azucar", "limon"},
		})
		require.NoError(t, err)

		leido, err := env.items.FindByID(ctx, it.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"jamaica", "azucar", "limon"}, leido.Ingredientes)
	})
}
