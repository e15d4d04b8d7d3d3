package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/acero08/RutaCervezera-sub000/internal/apierror"
	"github.com/acero08/RutaCervezera-sub000/internal/dto"
	"github.com/acero08/RutaCervezera-sub000/internal/infra"
	"github.com/acero08/RutaCervezera-sub000/internal/itemtype"
	"github.com/acero08/RutaCervezera-sub000/internal/model"
	"github.com/acero08/RutaCervezera-sub000/internal/repository"
)

const (
	// busquedaMax caps the unpaginated search endpoint.
	busquedaMax = 50
	// menuCacheTTL bounds staleness of the cached first menu page.
	menuCacheTTL = 5 * time.Minute
)

// ItemService is the menu item core: typed creation, partial updates that
// preserve the discriminator, deletion, and the filtered/paginated/aggregated
// listings the app consumes.
type ItemService interface {
	Crear(ctx context.Context, barID, actorID uuid.UUID, actorRol string, req dto.CrearItemRequest) (*dto.ItemResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error)
	Actualizar(ctx context.Context, id, actorID uuid.UUID, actorRol string, req dto.ActualizarItemRequest) (*dto.ItemResponse, error)
	Eliminar(ctx context.Context, id, actorID uuid.UUID, actorRol string) error
	ListarPorTipo(ctx context.Context, barID uuid.UUID, f dto.MenuFilter) (*dto.MenuTipoResponse, error)
	ListarAgrupado(ctx context.Context, barID uuid.UUID, f dto.MenuFilter) (*dto.MenuAgrupadoResponse, error)
	Buscar(ctx context.Context, barID uuid.UUID, f dto.BuscarFilter) (*dto.BuscarItemsResponse, error)
	ExportarMenuPDF(ctx context.Context, barID uuid.UUID) (string, error)
}

type itemService struct {
	items   repository.ItemRepository
	bares   repository.BarRepository
	rdb     *redis.Client
	pdfPath string
}

func NewItemService(items repository.ItemRepository, bares repository.BarRepository, rdb *redis.Client, pdfPath string) ItemService {
	return &itemService{items: items, bares: bares, rdb: rdb, pdfPath: pdfPath}
}

func (s *itemService) Crear(ctx context.Context, barID, actorID uuid.UUID, actorRol string, req dto.CrearItemRequest) (*dto.ItemResponse, error) {
	bar, err := s.bares.FindByID(ctx, barID)
	if err != nil {
		return nil, traducirGorm(err, "bar", barID.String(), "buscar bar")
	}
	if actorRol != "admin" && bar.DuenoID != actorID {
		return nil, apierror.Forbidden("solo el dueno del bar puede modificar su menu")
	}

	f := fieldsDeCreacion(req)
	if err := itemtype.Validar(req.Tipo, f); err != nil {
		return nil, err
	}

	it := &model.Item{
		BarID:       barID,
		Tipo:        req.Tipo,
		Nombre:      f.Nombre,
		Descripcion: f.Descripcion,
		Precio:      f.Precio,
		Imagen:      f.Imagen,
		Disponible:  true,
		CreadoPorID: actorID,

		EsVegetariano: f.EsVegetariano,
		TieneGluten:   f.TieneGluten,
		Calorias:      f.Calorias,
		Categoria:     f.Categoria,

		Volumen:             f.Volumen,
		TemperaturaServicio: f.TemperaturaServicio,
		SinAzucar:           f.SinAzucar,
		Ingredientes:        f.Ingredientes,

		GradosAlcohol: f.GradosAlcohol,
		Origen:        f.Origen,
		Marca:         f.Marca,
	}
	if f.Disponible != nil {
		it.Disponible = *f.Disponible
	}

	if err := s.items.Create(ctx, it); err != nil {
		return nil, apierror.Persistence("crear item", err)
	}
	s.invalidarMenu(ctx, barID)

	resp := mapItem(*it)
	return &resp, nil
}

func (s *itemService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	it, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, traducirGorm(err, "item", id.String(), "buscar item")
	}
	resp := mapItem(*it)
	return &resp, nil
}

// Actualizar merges the partial request over the stored record, validates the
// merged field set against the item's own discriminator and persists only the
// submitted columns. The tipo can never change through this path.
func (s *itemService) Actualizar(ctx context.Context, id, actorID uuid.UUID, actorRol string, req dto.ActualizarItemRequest) (*dto.ItemResponse, error) {
	it, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, traducirGorm(err, "item", id.String(), "buscar item")
	}
	if err := s.autorizarDueno(ctx, it.BarID, actorID, actorRol); err != nil {
		return nil, err
	}

	f := fieldsDeItem(it)
	updates := aplicarCambios(f, req)
	if len(updates) == 0 {
		resp := mapItem(*it)
		return &resp, nil
	}

	if err := itemtype.Validar(it.Tipo, f); err != nil {
		return nil, err
	}
	// pick up registry normalization (trimmed text) for the persisted columns
	if _, ok := updates["nombre"]; ok {
		updates["nombre"] = f.Nombre
	}
	if _, ok := updates["descripcion"]; ok {
		updates["descripcion"] = f.Descripcion
	}

	if err := s.items.UpdateFields(ctx, it.ID, updates); err != nil {
		return nil, traducirGorm(err, "item", id.String(), "actualizar item")
	}
	s.invalidarMenu(ctx, it.BarID)

	actualizado, err := s.items.FindByID(ctx, it.ID)
	if err != nil {
		return nil, traducirGorm(err, "item", id.String(), "releer item")
	}
	resp := mapItem(*actualizado)
	return &resp, nil
}

func (s *itemService) Eliminar(ctx context.Context, id, actorID uuid.UUID, actorRol string) error {
	it, err := s.items.FindByID(ctx, id)
	if err != nil {
		return traducirGorm(err, "item", id.String(), "buscar item")
	}
	if err := s.autorizarDueno(ctx, it.BarID, actorID, actorRol); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return traducirGorm(err, "item", id.String(), "eliminar item")
	}
	s.invalidarMenu(ctx, it.BarID)
	return nil
}

func (s *itemService) ListarPorTipo(ctx context.Context, barID uuid.UUID, f dto.MenuFilter) (*dto.MenuTipoResponse, error) {
	if !itemtype.EsSoportado(f.Tipo) {
		return nil, &itemtype.TipoNoSoportadoError{Tipo: f.Tipo}
	}
	if err := s.verificarBar(ctx, barID); err != nil {
		return nil, err
	}

	items, total, err := s.items.List(ctx, consultaMenu(barID, f))
	if err != nil {
		return nil, apierror.Persistence("listar items", err)
	}
	return &dto.MenuTipoResponse{
		Data:       mapItems(items),
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: totalPaginas(total, f.Limit),
	}, nil
}

func (s *itemService) ListarAgrupado(ctx context.Context, barID uuid.UUID, f dto.MenuFilter) (*dto.MenuAgrupadoResponse, error) {
	if err := s.verificarBar(ctx, barID); err != nil {
		return nil, err
	}

	cacheable := f.Q == "" && f.MinPrecio == nil && f.MaxPrecio == nil && f.Page == 1
	if cacheable {
		if resp := s.menuCacheado(ctx, barID, f.Limit); resp != nil {
			return resp, nil
		}
	}

	items, total, err := s.items.List(ctx, consultaMenu(barID, f))
	if err != nil {
		return nil, apierror.Persistence("listar items", err)
	}

	food, drink := AgruparPorCategoria(items)
	resp := &dto.MenuAgrupadoResponse{
		Food:       mapItems(food),
		Drink:      mapItems(drink),
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: totalPaginas(total, f.Limit),
	}

	if cacheable {
		s.cachearMenu(ctx, barID, f.Limit, resp)
	}
	return resp, nil
}

func (s *itemService) Buscar(ctx context.Context, barID uuid.UUID, f dto.BuscarFilter) (*dto.BuscarItemsResponse, error) {
	if f.Tipo != "" && !itemtype.EsSoportado(f.Tipo) {
		return nil, &itemtype.TipoNoSoportadoError{Tipo: f.Tipo}
	}
	if err := s.verificarBar(ctx, barID); err != nil {
		return nil, err
	}

	q := repository.ItemQuery{
		BarID:     barID,
		Tipo:      f.Tipo,
		Texto:     f.Q,
		MinPrecio: decimalDeFloat(f.MinPrecio),
		MaxPrecio: decimalDeFloat(f.MaxPrecio),
		Orden:     ordenListado(f.Q, f.Tipo),
		Page:      1,
		Limit:     busquedaMax,
	}
	items, _, err := s.items.List(ctx, q)
	if err != nil {
		return nil, apierror.Persistence("buscar items", err)
	}
	return &dto.BuscarItemsResponse{
		Count: len(items),
		Data:  mapItems(items),
	}, nil
}

func (s *itemService) ExportarMenuPDF(ctx context.Context, barID uuid.UUID) (string, error) {
	bar, err := s.bares.FindByID(ctx, barID)
	if err != nil {
		return "", traducirGorm(err, "bar", barID.String(), "buscar bar")
	}
	items, _, err := s.items.List(ctx, repository.ItemQuery{
		BarID: barID,
		Orden: repository.OrdenPrecioNombre,
		Page:  1,
		Limit: 500,
	})
	if err != nil {
		return "", apierror.Persistence("listar items", err)
	}
	food, drink := AgruparPorCategoria(items)
	path, err := infra.GenerarMenuPDF(bar, food, drink, s.pdfPath)
	if err != nil {
		return "", apierror.Persistence("generar pdf", err)
	}
	return path, nil
}

// ─── Internals ───────────────────────────────────────────────────────────────

func (s *itemService) verificarBar(ctx context.Context, barID uuid.UUID) error {
	ok, err := s.bares.Exists(ctx, barID)
	if err != nil {
		return apierror.Persistence("verificar bar", err)
	}
	if !ok {
		return apierror.NotFound("bar", barID.String())
	}
	return nil
}

func (s *itemService) autorizarDueno(ctx context.Context, barID, actorID uuid.UUID, actorRol string) error {
	if actorRol == "admin" {
		return nil
	}
	bar, err := s.bares.FindByID(ctx, barID)
	if err != nil {
		return traducirGorm(err, "bar", barID.String(), "buscar bar")
	}
	if bar.DuenoID != actorID {
		return apierror.Forbidden("solo el dueno del bar puede modificar su menu")
	}
	return nil
}

// consultaMenu translates the HTTP filter into the repository query. Browse
// listings come back newest first; a free-text search without tipo filter
// switches to price/name order — the two orders the app's screens expect.
func consultaMenu(barID uuid.UUID, f dto.MenuFilter) repository.ItemQuery {
	return repository.ItemQuery{
		BarID:     barID,
		Tipo:      f.Tipo,
		Texto:     f.Q,
		MinPrecio: decimalDeFloat(f.MinPrecio),
		MaxPrecio: decimalDeFloat(f.MaxPrecio),
		Orden:     ordenListado(f.Q, f.Tipo),
		Page:      f.Page,
		Limit:     f.Limit,
	}
}

func ordenListado(q, tipo string) repository.ItemOrden {
	if q != "" && tipo == "" {
		return repository.OrdenPrecioNombre
	}
	return repository.OrdenRecientes
}

func decimalDeFloat(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

func totalPaginas(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func traducirGorm(err error, recurso, id, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(recurso, id)
	}
	return apierror.Persistence(op, err)
}

func (s *itemService) menuKey(barID uuid.UUID, limit int) string {
	return "menu:" + barID.String() + ":" + strconv.Itoa(limit)
}

func (s *itemService) menuCacheado(ctx context.Context, barID uuid.UUID, limit int) *dto.MenuAgrupadoResponse {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, s.menuKey(barID, limit)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Debug().Err(err).Msg("menu cache read failed")
		}
		return nil
	}
	var resp dto.MenuAgrupadoResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *itemService) cachearMenu(ctx context.Context, barID uuid.UUID, limit int, resp *dto.MenuAgrupadoResponse) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, s.menuKey(barID, limit), data, menuCacheTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("menu cache write failed")
	}
}

// invalidarMenu drops every cached page-1 menu for the bar. Cache failures are
// logged and ignored — the cache is an optimization, never a source of truth.
func (s *itemService) invalidarMenu(ctx context.Context, barID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	iter := s.rdb.Scan(ctx, 0, "menu:"+barID.String()+":*", 50).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Debug().Err(err).Msg("menu cache invalidation failed")
		}
	}
	if err := iter.Err(); err != nil {
		log.Debug().Err(err).Msg("menu cache scan failed")
	}
}

// ─── Field mapping ───────────────────────────────────────────────────────────

func fieldsDeCreacion(req dto.CrearItemRequest) *itemtype.Fields {
	return &itemtype.Fields{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Imagen:      req.Imagen,
		Disponible:  req.Disponible,

		EsVegetariano: req.EsVegetariano,
		TieneGluten:   req.TieneGluten,
		Calorias:      req.Calorias,
		Categoria:     req.Categoria,

		Volumen:             req.Volumen,
		TemperaturaServicio: req.TemperaturaServicio,
		SinAzucar:           req.SinAzucar,
		Ingredientes:        req.Ingredientes,

		GradosAlcohol: req.GradosAlcohol,
		Origen:        req.Origen,
		Marca:         req.Marca,
	}
}

func fieldsDeItem(it *model.Item) *itemtype.Fields {
	disponible := it.Disponible
	return &itemtype.Fields{
		Nombre:      it.Nombre,
		Descripcion: it.Descripcion,
		Precio:      it.Precio,
		Imagen:      it.Imagen,
		Disponible:  &disponible,

		EsVegetariano: it.EsVegetariano,
		TieneGluten:   it.TieneGluten,
		Calorias:      it.Calorias,
		Categoria:     it.Categoria,

		Volumen:             it.Volumen,
		TemperaturaServicio: it.TemperaturaServicio,
		SinAzucar:           it.SinAzucar,
		Ingredientes:        it.Ingredientes,

		GradosAlcohol: it.GradosAlcohol,
		Origen:        it.Origen,
		Marca:         it.Marca,
	}
}

// aplicarCambios merges the partial update into f and returns the column map
// for the submitted fields only.
func aplicarCambios(f *itemtype.Fields, req dto.ActualizarItemRequest) map[string]interface{} {
	updates := make(map[string]interface{})
	if req.Nombre != nil {
		f.Nombre = *req.Nombre
		updates["nombre"] = *req.Nombre
	}
	if req.Descripcion != nil {
		f.Descripcion = *req.Descripcion
		updates["descripcion"] = *req.Descripcion
	}
	if req.Precio != nil {
		f.Precio = *req.Precio
		updates["precio"] = *req.Precio
	}
	if req.Imagen != nil {
		f.Imagen = req.Imagen
		updates["imagen"] = *req.Imagen
	}
	if req.Disponible != nil {
		f.Disponible = req.Disponible
		updates["disponible"] = *req.Disponible
	}
	if req.EsVegetariano != nil {
		f.EsVegetariano = req.EsVegetariano
		updates["es_vegetariano"] = *req.EsVegetariano
	}
	if req.TieneGluten != nil {
		f.TieneGluten = req.TieneGluten
		updates["tiene_gluten"] = *req.TieneGluten
	}
	if req.Calorias != nil {
		f.Calorias = req.Calorias
		updates["calorias"] = *req.Calorias
	}
	if req.Categoria != nil {
		f.Categoria = req.Categoria
		updates["categoria"] = *req.Categoria
	}
	if req.Volumen != nil {
		f.Volumen = req.Volumen
		updates["volumen"] = *req.Volumen
	}
	if req.TemperaturaServicio != nil {
		f.TemperaturaServicio = req.TemperaturaServicio
		updates["temperatura_servicio"] = *req.TemperaturaServicio
	}
	if req.SinAzucar != nil {
		f.SinAzucar = req.SinAzucar
		updates["sin_azucar"] = *req.SinAzucar
	}
	if req.Ingredientes != nil {
		f.Ingredientes = req.Ingredientes
		updates["ingredientes"] = req.Ingredientes
	}
	if req.GradosAlcohol != nil {
		f.GradosAlcohol = req.GradosAlcohol
		updates["grados_alcohol"] = *req.GradosAlcohol
	}
	if req.Origen != nil {
		f.Origen = req.Origen
		updates["origen"] = *req.Origen
	}
	if req.Marca != nil {
		f.Marca = req.Marca
		updates["marca"] = *req.Marca
	}
	return updates
}

func mapItem(it model.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID.String(),
		BarID:       it.BarID.String(),
		Tipo:        it.Tipo,
		Nombre:      it.Nombre,
		Descripcion: it.Descripcion,
		Precio:      it.Precio,
		Imagen:      it.Imagen,
		Disponible:  it.Disponible,

		EsVegetariano: it.EsVegetariano,
		TieneGluten:   it.TieneGluten,
		Calorias:      it.Calorias,
		Categoria:     it.Categoria,

		Volumen:             it.Volumen,
		TemperaturaServicio: it.TemperaturaServicio,
		SinAzucar:           it.SinAzucar,
		Ingredientes:        it.Ingredientes,

		GradosAlcohol: it.GradosAlcohol,
		Origen:        it.Origen,
		Marca:         it.Marca,

		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func mapItems(items []model.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, mapItem(it))
	}
	return out
}
