package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/acero08/RutaCervezera-sub000/internal/apierror"
	"github.com/acero08/RutaCervezera-sub000/internal/dto"
	"github.com/acero08/RutaCervezera-sub000/internal/model"
	"github.com/acero08/RutaCervezera-sub000/internal/repository"
	"github.com/acero08/RutaCervezera-sub000/internal/worker"
)

// ResenaService defines business operations for reviews and upvotes.
type ResenaService interface {
	Crear(ctx context.Context, barID, usuarioID uuid.UUID, req dto.CrearResenaRequest) (*dto.ResenaResponse, error)
	ListarPorBar(ctx context.Context, barID uuid.UUID) (*dto.ResenaListResponse, error)
	Eliminar(ctx context.Context, id, actorID uuid.UUID, actorRol string) error
	Upvote(ctx context.Context, resenaID, usuarioID uuid.UUID) error
	QuitarUpvote(ctx context.Context, resenaID, usuarioID uuid.UUID) error
}

type resenaService struct {
	resenas  repository.ResenaRepository
	bares    repository.BarRepository
	usuarios repository.UsuarioRepository
	jobs     worker.Enqueuer
}

func NewResenaService(resenas repository.ResenaRepository, bares repository.BarRepository, usuarios repository.UsuarioRepository, jobs worker.Enqueuer) ResenaService {
	return &resenaService{resenas: resenas, bares: bares, usuarios: usuarios, jobs: jobs}
}

func (s *resenaService) Crear(ctx context.Context, barID, usuarioID uuid.UUID, req dto.CrearResenaRequest) (*dto.ResenaResponse, error) {
	bar, err := s.bares.FindByID(ctx, barID)
	if err != nil {
		return nil, traducirGorm(err, "bar", barID.String(), "buscar bar")
	}

	if _, err := s.resenas.FindByBarAndUsuario(ctx, barID, usuarioID); err == nil {
		return nil, apierror.NewValidation(map[string]string{"bar_id": "ya resenaste este bar"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Persistence("buscar resena", err)
	}

	rs := &model.Resena{
		BarID:      barID,
		UsuarioID:  usuarioID,
		Puntuacion: req.Puntuacion,
		Comentario: req.Comentario,
	}
	if err := s.resenas.Create(ctx, rs); err != nil {
		return nil, apierror.Persistence("crear resena", err)
	}

	s.notificarDueno(ctx, bar, rs)

	return &dto.ResenaResponse{
		ID:         rs.ID.String(),
		BarID:      rs.BarID.String(),
		UsuarioID:  rs.UsuarioID.String(),
		Puntuacion: rs.Puntuacion,
		Comentario: rs.Comentario,
		CreatedAt:  rs.CreatedAt,
	}, nil
}

// notificarDueno enqueues the owner notification. A full queue or a downed
// Redis never fails the review itself.
func (s *resenaService) notificarDueno(ctx context.Context, bar *model.Bar, rs *model.Resena) {
	if s.jobs == nil {
		return
	}
	dueno, err := s.usuarios.FindByID(ctx, bar.DuenoID)
	if err != nil {
		log.Warn().Err(err).Str("bar_id", bar.ID.String()).Msg("owner lookup failed — skipping notification")
		return
	}
	payload := worker.ResenaEmailPayload{
		ToEmail:    dueno.Email,
		BarNombre:  bar.Nombre,
		Puntuacion: rs.Puntuacion,
		Comentario: rs.Comentario,
	}
	if err := s.jobs.EnqueueEmail(ctx, payload); err != nil {
		log.Warn().Err(err).Msg("failed to enqueue review notification")
	}
}

func (s *resenaService) ListarPorBar(ctx context.Context, barID uuid.UUID) (*dto.ResenaListResponse, error) {
	ok, err := s.bares.Exists(ctx, barID)
	if err != nil {
		return nil, apierror.Persistence("verificar bar", err)
	}
	if !ok {
		return nil, apierror.NotFound("bar", barID.String())
	}

	resenas, err := s.resenas.ListByBar(ctx, barID)
	if err != nil {
		return nil, apierror.Persistence("listar resenas", err)
	}
	promedio, err := s.resenas.Promedio(ctx, barID)
	if err != nil {
		return nil, apierror.Persistence("promediar resenas", err)
	}

	data := make([]dto.ResenaResponse, 0, len(resenas))
	for _, rs := range resenas {
		upvotes, err := s.resenas.CountUpvotes(ctx, rs.ID)
		if err != nil {
			return nil, apierror.Persistence("contar upvotes", err)
		}
		item := dto.ResenaResponse{
			ID:         rs.ID.String(),
			BarID:      rs.BarID.String(),
			UsuarioID:  rs.UsuarioID.String(),
			Puntuacion: rs.Puntuacion,
			Comentario: rs.Comentario,
			Upvotes:    upvotes,
			CreatedAt:  rs.CreatedAt,
		}
		if rs.Usuario != nil {
			item.UsuarioNombre = rs.Usuario.Nombre
		}
		data = append(data, item)
	}

	return &dto.ResenaListResponse{
		Data:     data,
		Total:    int64(len(data)),
		Promedio: promedio,
	}, nil
}

func (s *resenaService) Eliminar(ctx context.Context, id, actorID uuid.UUID, actorRol string) error {
	rs, err := s.resenas.FindByID(ctx, id)
	if err != nil {
		return traducirGorm(err, "resena", id.String(), "buscar resena")
	}
	if actorRol != "admin" && rs.UsuarioID != actorID {
		return apierror.Forbidden("solo el autor puede eliminar la resena")
	}
	if err := s.resenas.Delete(ctx, id); err != nil {
		return traducirGorm(err, "resena", id.String(), "eliminar resena")
	}
	return nil
}

func (s *resenaService) Upvote(ctx context.Context, resenaID, usuarioID uuid.UUID) error {
	if _, err := s.resenas.FindByID(ctx, resenaID); err != nil {
		return traducirGorm(err, "resena", resenaID.String(), "buscar resena")
	}

	if _, err := s.resenas.FindUpvote(ctx, resenaID, usuarioID); err == nil {
		return apierror.NewValidation(map[string]string{"resena_id": "ya votaste esta resena"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.Persistence("buscar upvote", err)
	}

	up := &model.Upvote{ResenaID: resenaID, UsuarioID: usuarioID}
	if err := s.resenas.CreateUpvote(ctx, up); err != nil {
		return apierror.Persistence("crear upvote", err)
	}
	return nil
}

func (s *resenaService) QuitarUpvote(ctx context.Context, resenaID, usuarioID uuid.UUID) error {
	if err := s.resenas.DeleteUpvote(ctx, resenaID, usuarioID); err != nil {
		return traducirGorm(err, "upvote", resenaID.String(), "eliminar upvote")
	}
	return nil
}
