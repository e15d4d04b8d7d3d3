package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acero08/RutaCervezera-sub000/internal/model"
)

type EventoRepository interface {
	Create(ctx context.Context, e *model.Evento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Evento, error)
	// ListByBar returns events at or after desde, soonest first.
	ListByBar(ctx context.Context, barID uuid.UUID, desde time.Time) ([]model.Evento, error)
	Update(ctx context.Context, e *model.Evento) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventoRepo struct{ db *gorm.DB }

func NewEventoRepository(db *gorm.DB) EventoRepository { return &eventoRepo{db: db} }

func (r *eventoRepo) Create(ctx context.Context, e *model.Evento) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Evento, error) {
	var e model.Evento
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventoRepo) ListByBar(ctx context.Context, barID uuid.UUID, desde time.Time) ([]model.Evento, error) {
	var eventos []model.Evento
	err := r.db.WithContext(ctx).
		Where("bar_id = ? AND fecha >= ?", barID, desde).
		Order("fecha ASC").Find(&eventos).Error
	return eventos, err
}

func (r *eventoRepo) Update(ctx context.Context, e *model.Evento) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *eventoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Evento{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
