package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acero08/RutaCervezera-sub000/internal/dto"
	"github.com/acero08/RutaCervezera-sub000/internal/model"
)

// BarRepository defines the data access contract for bars. Exists is the
// bar-existence check the menu core consumes before creating or querying items.
type BarRepository interface {
	Create(ctx context.Context, b *model.Bar) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Bar, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, filter dto.BarFilter) ([]model.Bar, int64, error)
	Update(ctx context.Context, b *model.Bar) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type barRepo struct{ db *gorm.DB }

func NewBarRepository(db *gorm.DB) BarRepository { return &barRepo{db: db} }

func (r *barRepo) Create(ctx context.Context, b *model.Bar) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *barRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Bar, error) {
	var b model.Bar
	err := r.db.WithContext(ctx).Where("activo = true").First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *barRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Bar{}).
		Where("id = ? AND activo = true", id).Count(&count).Error
	return count > 0, err
}

func (r *barRepo) List(ctx context.Context, filter dto.BarFilter) ([]model.Bar, int64, error) {
	var bares []model.Bar
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Bar{}).Where("activo = true")

	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Ciudad != "" {
		q = q.Where("ciudad ILIKE ?", filter.Ciudad)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nombre ASC").Limit(filter.Limit).Offset(offset).Find(&bares).Error
	return bares, total, err
}

func (r *barRepo) Update(ctx context.Context, b *model.Bar) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *barRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Bar{}).
		Where("id = ? AND activo = true", id).Update("activo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
