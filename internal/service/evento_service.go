package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acero08/RutaCervezera-sub000/internal/apierror"
	"github.com/acero08/RutaCervezera-sub000/internal/dto"
	"github.com/acero08/RutaCervezera-sub000/internal/model"
	"github.com/acero08/RutaCervezera-sub000/internal/repository"
)

// EventoService defines business operations for bar events.
type EventoService interface {
	Crear(ctx context.Context, barID, actorID uuid.UUID, actorRol string, req dto.CrearEventoRequest) (*dto.EventoResponse, error)
	ListarProximos(ctx context.Context, barID uuid.UUID) ([]dto.EventoResponse, error)
	Actualizar(ctx context.Context, id, actorID uuid.UUID, actorRol string, req dto.ActualizarEventoRequest) (*dto.EventoResponse, error)
	Eliminar(ctx context.Context, id, actorID uuid.UUID, actorRol string) error
}

type eventoService struct {
	eventos repository.EventoRepository
	bares   repository.BarRepository
}

func NewEventoService(eventos repository.EventoRepository, bares repository.BarRepository) EventoService {
	return &eventoService{eventos: eventos, bares: bares}
}

func mapEvento(e model.Evento) dto.EventoResponse {
	return dto.EventoResponse{
		ID:          e.ID.String(),
		BarID:       e.BarID.String(),
		Titulo:      e.Titulo,
		Descripcion: e.Descripcion,
		Fecha:       e.Fecha,
		Imagen:      e.Imagen,
	}
}

func (s *eventoService) autorizar(ctx context.Context, barID, actorID uuid.UUID, actorRol string) error {
	if actorRol == "admin" {
		return nil
	}
	bar, err := s.bares.FindByID(ctx, barID)
	if err != nil {
		return traducirGorm(err, "bar", barID.String(), "buscar bar")
	}
	if bar.DuenoID != actorID {
		return apierror.Forbidden("solo el dueno del bar puede gestionar sus eventos")
	}
	return nil
}

func (s *eventoService) Crear(ctx context.Context, barID, actorID uuid.UUID, actorRol string, req dto.CrearEventoRequest) (*dto.EventoResponse, error) {
	ok, err := s.bares.Exists(ctx, barID)
	if err != nil {
		return nil, apierror.Persistence("verificar bar", err)
	}
	if !ok {
		return nil, apierror.NotFound("bar", barID.String())
	}
	if err := s.autorizar(ctx, barID, actorID, actorRol); err != nil {
		return nil, err
	}

	e := &model.Evento{
		BarID:       barID,
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Fecha:       req.Fecha,
		Imagen:      req.Imagen,
	}
	if err := s.eventos.Create(ctx, e); err != nil {
		return nil, apierror.Persistence("crear evento", err)
	}
	resp := mapEvento(*e)
	return &resp, nil
}

func (s *eventoService) ListarProximos(ctx context.Context, barID uuid.UUID) ([]dto.EventoResponse, error) {
	ok, err := s.bares.Exists(ctx, barID)
	if err != nil {
		return nil, apierror.Persistence("verificar bar", err)
	}
	if !ok {
		return nil, apierror.NotFound("bar", barID.String())
	}

	eventos, err := s.eventos.ListByBar(ctx, barID, time.Now())
	if err != nil {
		return nil, apierror.Persistence("listar eventos", err)
	}
	out := make([]dto.EventoResponse, 0, len(eventos))
	for _, e := range eventos {
		out = append(out, mapEvento(e))
	}
	return out, nil
}

func (s *eventoService) Actualizar(ctx context.Context, id, actorID uuid.UUID, actorRol string, req dto.ActualizarEventoRequest) (*dto.EventoResponse, error) {
	e, err := s.eventos.FindByID(ctx, id)
	if err != nil {
		return nil, traducirGorm(err, "evento", id.String(), "buscar evento")
	}
	if err := s.autorizar(ctx, e.BarID, actorID, actorRol); err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		e.Titulo = *req.Titulo
	}
	if req.Descripcion != nil {
		e.Descripcion = *req.Descripcion
	}
	if req.Fecha != nil {
		e.Fecha = *req.Fecha
	}
	if req.Imagen != nil {
		e.Imagen = req.Imagen
	}

	if err := s.eventos.Update(ctx, e); err != nil {
		return nil, apierror.Persistence("actualizar evento", err)
	}
	resp := mapEvento(*e)
	return &resp, nil
}

func (s *eventoService) Eliminar(ctx context.Context, id, actorID uuid.UUID, actorRol string) error {
	e, err := s.eventos.FindByID(ctx, id)
	if err != nil {
		return traducirGorm(err, "evento", id.String(), "buscar evento")
	}
	if err := s.autorizar(ctx, e.BarID, actorID, actorRol); err != nil {
		return err
	}
	if err := s.eventos.Delete(ctx, id); err != nil {
		return traducirGorm(err, "evento", id.String(), "eliminar evento")
	}
	return nil
}
