package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/acero08/RutaCervezera-sub000/internal/model"
)

// ItemOrden selects the listing order. The service decides which order each
// use case gets (browse feed vs search comparison list); the repository only
// applies it.
type ItemOrden int

const (
	// OrdenRecientes: created_at DESC — default browse order.
	OrdenRecientes ItemOrden = iota
	// OrdenPrecioNombre: precio ASC, nombre ASC — search result order.
	OrdenPrecioNombre
)

// ItemQuery is the filter-sort-page contract of the menu query engine.
// Page is 1-based; an out-of-range page yields an empty slice with the
// correct total, never an error.
type ItemQuery struct {
	BarID     uuid.UUID
	Tipo      string
	Texto     string // case-insensitive substring over nombre and descripcion
	MinPrecio *decimal.Decimal
	MaxPrecio *decimal.Decimal
	Orden     ItemOrden
	Page      int
	Limit     int
}

// ItemRepository defines the data access contract for menu items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ItemRepository interface {
	Create(ctx context.Context, it *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	List(ctx context.Context, q ItemQuery) ([]model.Item, int64, error)
	// UpdateFields persists only the given columns; the caller has already
	// validated the merged record against the item's discriminator.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// Delete removes the row. A missing id returns gorm.ErrRecordNotFound —
	// repeated deletes are deliberately not idempotent.
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) List(ctx context.Context, q ItemQuery) ([]model.Item, int64, error) {
	var items []model.Item
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Item{}).Where("bar_id = ?", q.BarID)

	if q.Tipo != "" {
		tx = tx.Where("tipo = ?", q.Tipo)
	}
	if q.Texto != "" {
		pattern := "%" + q.Texto + "%"
		tx = tx.Where("nombre ILIKE ? OR descripcion ILIKE ?", pattern, pattern)
	}
	if q.MinPrecio != nil {
		tx = tx.Where("precio >= ?", q.MinPrecio)
	}
	if q.MaxPrecio != nil {
		tx = tx.Where("precio <= ?", q.MaxPrecio)
	}

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch q.Orden {
	case OrdenPrecioNombre:
		tx = tx.Order("precio ASC").Order("nombre ASC")
	default:
		tx = tx.Order("created_at DESC")
	}

	offset := (q.Page - 1) * q.Limit
	err := tx.Limit(q.Limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *itemRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	// map-based Updates bypasses the struct field serializer, so the
	// ingredientes list must be encoded here before it hits the column
	if ing, ok := fields["ingredientes"].([]string); ok {
		data, err := json.Marshal(ing)
		if err != nil {
			return err
		}
		fields["ingredientes"] = string(data)
	}
	res := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
