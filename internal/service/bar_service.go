package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/acero08/RutaCervezera-sub000/internal/apierror"
	"github.com/acero08/RutaCervezera-sub000/internal/dto"
	"github.com/acero08/RutaCervezera-sub000/internal/model"
	"github.com/acero08/RutaCervezera-sub000/internal/repository"
)

// BarService defines business operations for establishments.
type BarService interface {
	Crear(ctx context.Context, duenoID uuid.UUID, req dto.CrearBarRequest) (*dto.BarResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.BarResponse, error)
	Listar(ctx context.Context, filter dto.BarFilter) (*dto.BarListResponse, error)
	Actualizar(ctx context.Context, id, actorID uuid.UUID, actorRol string, req dto.ActualizarBarRequest) (*dto.BarResponse, error)
	Eliminar(ctx context.Context, id, actorID uuid.UUID, actorRol string) error
}

type barService struct {
	repo repository.BarRepository
}

func NewBarService(repo repository.BarRepository) BarService {
	return &barService{repo: repo}
}

func mapBar(b model.Bar) dto.BarResponse {
	return dto.BarResponse{
		ID:          b.ID.String(),
		Nombre:      b.Nombre,
		Descripcion: b.Descripcion,
		Direccion:   b.Direccion,
		Ciudad:      b.Ciudad,
		Telefono:    b.Telefono,
		Horario:     b.Horario,
		Imagen:      b.Imagen,
		DuenoID:     b.DuenoID.String(),
	}
}

func (s *barService) Crear(ctx context.Context, duenoID uuid.UUID, req dto.CrearBarRequest) (*dto.BarResponse, error) {
	b := &model.Bar{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Direccion:   req.Direccion,
		Ciudad:      req.Ciudad,
		Telefono:    req.Telefono,
		Horario:     req.Horario,
		Imagen:      req.Imagen,
		DuenoID:     duenoID,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, apierror.Persistence("crear bar", err)
	}
	resp := mapBar(*b)
	return &resp, nil
}

func (s *barService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.BarResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traducirGorm(err, "bar", id.String(), "buscar bar")
	}
	resp := mapBar(*b)
	return &resp, nil
}

func (s *barService) Listar(ctx context.Context, filter dto.BarFilter) (*dto.BarListResponse, error) {
	bares, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Persistence("listar bares", err)
	}
	data := make([]dto.BarResponse, 0, len(bares))
	for _, b := range bares {
		data = append(data, mapBar(b))
	}
	return &dto.BarListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPaginas(total, filter.Limit),
	}, nil
}

func (s *barService) Actualizar(ctx context.Context, id, actorID uuid.UUID, actorRol string, req dto.ActualizarBarRequest) (*dto.BarResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traducirGorm(err, "bar", id.String(), "buscar bar")
	}
	if actorRol != "admin" && b.DuenoID != actorID {
		return nil, apierror.Forbidden("solo el dueno puede modificar el bar")
	}

	if req.Nombre != nil {
		b.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		b.Descripcion = *req.Descripcion
	}
	if req.Direccion != nil {
		b.Direccion = *req.Direccion
	}
	if req.Ciudad != nil {
		b.Ciudad = *req.Ciudad
	}
	if req.Telefono != nil {
		b.Telefono = req.Telefono
	}
	if req.Horario != nil {
		b.Horario = req.Horario
	}
	if req.Imagen != nil {
		b.Imagen = req.Imagen
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, apierror.Persistence("actualizar bar", err)
	}
	resp := mapBar(*b)
	return &resp, nil
}

func (s *barService) Eliminar(ctx context.Context, id, actorID uuid.UUID, actorRol string) error {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traducirGorm(err, "bar", id.String(), "buscar bar")
	}
	if actorRol != "admin" && b.DuenoID != actorID {
		return apierror.Forbidden("solo el dueno puede eliminar el bar")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return traducirGorm(err, "bar", id.String(), "eliminar bar")
	}
	return nil
}
