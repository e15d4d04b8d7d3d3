package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acero08/RutaCervezera-sub000/internal/model"
)

type ResenaRepository interface {
	Create(ctx context.Context, rs *model.Resena) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Resena, error)
	FindByBarAndUsuario(ctx context.Context, barID, usuarioID uuid.UUID) (*model.Resena, error)
	ListByBar(ctx context.Context, barID uuid.UUID) ([]model.Resena, error)
	Promedio(ctx context.Context, barID uuid.UUID) (float64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateUpvote(ctx context.Context, up *model.Upvote) error
	FindUpvote(ctx context.Context, resenaID, usuarioID uuid.UUID) (*model.Upvote, error)
	DeleteUpvote(ctx context.Context, resenaID, usuarioID uuid.UUID) error
	CountUpvotes(ctx context.Context, resenaID uuid.UUID) (int64, error)
}

type resenaRepo struct{ db *gorm.DB }

func NewResenaRepository(db *gorm.DB) ResenaRepository { return &resenaRepo{db: db} }

func (r *resenaRepo) Create(ctx context.Context, rs *model.Resena) error {
	return r.db.WithContext(ctx).Create(rs).Error
}

func (r *resenaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Resena, error) {
	var rs model.Resena
	err := r.db.WithContext(ctx).First(&rs, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

func (r *resenaRepo) FindByBarAndUsuario(ctx context.Context, barID, usuarioID uuid.UUID) (*model.Resena, error) {
	var rs model.Resena
	err := r.db.WithContext(ctx).
		Where("bar_id = ? AND usuario_id = ?", barID, usuarioID).First(&rs).Error
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

func (r *resenaRepo) ListByBar(ctx context.Context, barID uuid.UUID) ([]model.Resena, error) {
	var resenas []model.Resena
	err := r.db.WithContext(ctx).Preload("Usuario").
		Where("bar_id = ?", barID).Order("created_at DESC").Find(&resenas).Error
	return resenas, err
}

func (r *resenaRepo) Promedio(ctx context.Context, barID uuid.UUID) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&model.Resena{}).
		Where("bar_id = ?", barID).
		Select("AVG(puntuacion)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *resenaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Resena{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *resenaRepo) CreateUpvote(ctx context.Context, up *model.Upvote) error {
	return r.db.WithContext(ctx).Create(up).Error
}

func (r *resenaRepo) FindUpvote(ctx context.Context, resenaID, usuarioID uuid.UUID) (*model.Upvote, error) {
	var up model.Upvote
	err := r.db.WithContext(ctx).
		Where("resena_id = ? AND usuario_id = ?", resenaID, usuarioID).First(&up).Error
	if err != nil {
		return nil, err
	}
	return &up, nil
}

func (r *resenaRepo) DeleteUpvote(ctx context.Context, resenaID, usuarioID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("resena_id = ? AND usuario_id = ?", resenaID, usuarioID).Delete(&model.Upvote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *resenaRepo) CountUpvotes(ctx context.Context, resenaID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Upvote{}).
		Where("resena_id = ?", resenaID).Count(&count).Error
	return count, err
}
