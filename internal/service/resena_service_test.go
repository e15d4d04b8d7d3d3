package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/acero08/RutaCervezera-sub000/internal/apierror"
	"github.com/acero08/RutaCervezera-sub000/internal/dto"
	"github.com/acero08/RutaCervezera-sub000/internal/model"
	"github.com/acero08/RutaCervezera-sub000/internal/repository"
	"github.com/acero08/RutaCervezera-sub000/internal/worker"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubResenaRepo struct {
	resenas map[uuid.UUID]*model.Resena
	upvotes map[string]*model.Upvote
}

func newStubResenaRepo() *stubResenaRepo {
	return &stubResenaRepo{
		resenas: make(map[uuid.UUID]*model.Resena),
		upvotes: make(map[string]*model.Upvote),
	}
}

func upvoteKey(resenaID, usuarioID uuid.UUID) string {
	return resenaID.String() + ":" + usuarioID.String()
}

func (r *stubResenaRepo) Create(_ context.Context, rs *model.Resena) error {
	if rs.ID == uuid.Nil {
		rs.ID = uuid.New()
	}
	r.resenas[rs.ID] = rs
	return nil
}

func (r *stubResenaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Resena, error) {
	rs, ok := r.resenas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rs, nil
}

func (r *stubResenaRepo) FindByBarAndUsuario(_ context.Context, barID, usuarioID uuid.UUID) (*model.Resena, error) {
	for _, rs := range r.resenas {
		if rs.BarID == barID && rs.UsuarioID == usuarioID {
			return rs, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubResenaRepo) ListByBar(_ context.Context, barID uuid.UUID) ([]model.Resena, error) {
	var out []model.Resena
	for _, rs := range r.resenas {
		if rs.BarID == barID {
			out = append(out, *rs)
		}
	}
	return out, nil
}

func (r *stubResenaRepo) Promedio(_ context.Context, barID uuid.UUID) (float64, error) {
	var suma, n float64
	for _, rs := range r.resenas {
		if rs.BarID == barID {
			suma += float64(rs.Puntuacion)
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return suma / n, nil
}

func (r *stubResenaRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.resenas[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.resenas, id)
	return nil
}

func (r *stubResenaRepo) CreateUpvote(_ context.Context, up *model.Upvote) error {
	r.upvotes[upvoteKey(up.ResenaID, up.UsuarioID)] = up
	return nil
}

func (r *stubResenaRepo) FindUpvote(_ context.Context, resenaID, usuarioID uuid.UUID) (*model.Upvote, error) {
	up, ok := r.upvotes[upvoteKey(resenaID, usuarioID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return up, nil
}

func (r *stubResenaRepo) DeleteUpvote(_ context.Context, resenaID, usuarioID uuid.UUID) error {
	key := upvoteKey(resenaID, usuarioID)
	if _, ok := r.upvotes[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.upvotes, key)
	return nil
}

func (r *stubResenaRepo) CountUpvotes(_ context.Context, resenaID uuid.UUID) (int64, error) {
	var n int64
	for _, up := range r.upvotes {
		if up.ResenaID == resenaID {
			n++
		}
	}
	return n, nil
}

var _ repository.ResenaRepository = (*stubResenaRepo)(nil)

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// fakeEnqueuer records enqueued payloads instead of touching Redis.
type fakeEnqueuer struct {
	enqueued []interface{}
}

func (f *fakeEnqueuer) EnqueueEmail(_ context.Context, payload interface{}) error {
	f.enqueued = append(f.enqueued, payload)
	return nil
}

var _ worker.Enqueuer = (*fakeEnqueuer)(nil)

// ── Fixture ───────────────────────────────────────────────────────────────────

type resenaFixture struct {
	svc     ResenaService
	jobs    *fakeEnqueuer
	barID   uuid.UUID
	ownerID uuid.UUID
}

func newResenaFixture(t *testing.T) *resenaFixture {
	t.Helper()
	owner := &model.Usuario{
		ID:    uuid.New(),
		Email: "dueno@bar.com",
		Rol:   "dueno",
	}
	bar := &model.Bar{
		ID:      uuid.New(),
		Nombre:  "Bar Prueba",
		DuenoID: owner.ID,
		Activo:  true,
	}
	jobs := &fakeEnqueuer{}
	usuarios := &stubUsuarioRepo{usuarios: map[uuid.UUID]*model.Usuario{owner.ID: owner}}
	svc := NewResenaService(newStubResenaRepo(), newStubBarRepo(bar), usuarios, jobs)
	return &resenaFixture{svc: svc, jobs: jobs, barID: bar.ID, ownerID: owner.ID}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCrearResenaNotificaAlDueno(t *testing.T) {
	fx := newResenaFixture(t)

	resp, err := fx.svc.Crear(context.Background(), fx.barID, uuid.New(), dto.CrearResenaRequest{
		Puntuacion: 4,
		Comentario: "Buena cerveza",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Puntuacion)

	require.Len(t, fx.jobs.enqueued, 1)
	payload, ok := fx.jobs.enqueued[0].(worker.ResenaEmailPayload)
	require.True(t, ok)
	assert.Equal(t, "dueno@bar.com", payload.ToEmail)
	assert.Equal(t, "Bar Prueba", payload.BarNombre)
	assert.Equal(t, 4, payload.Puntuacion)
}

func TestCrearResenaDuplicada(t *testing.T) {
	fx := newResenaFixture(t)
	ctx := context.Background()
	usuarioID := uuid.New()

	_, err := fx.svc.Crear(ctx, fx.barID, usuarioID, dto.CrearResenaRequest{Puntuacion: 5, Comentario: "Excelente"})
	require.NoError(t, err)

	_, err = fx.svc.Crear(ctx, fx.barID, usuarioID, dto.CrearResenaRequest{Puntuacion: 1, Comentario: "Cambio de opinion"})
	var valErr *apierror.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields, "bar_id")

	// the duplicate never reached the queue
	assert.Len(t, fx.jobs.enqueued, 1)
}

func TestCrearResenaBarInexistente(t *testing.T) {
	fx := newResenaFixture(t)

	_, err := fx.svc.Crear(context.Background(), uuid.New(), uuid.New(), dto.CrearResenaRequest{Puntuacion: 3, Comentario: "ok"})

	var nfErr *apierror.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestListarResenasConPromedioYUpvotes(t *testing.T) {
	fx := newResenaFixture(t)
	ctx := context.Background()

	r1, err := fx.svc.Crear(ctx, fx.barID, uuid.New(), dto.CrearResenaRequest{Puntuacion: 5, Comentario: "Excelente"})
	require.NoError(t, err)
	_, err = fx.svc.Crear(ctx, fx.barID, uuid.New(), dto.CrearResenaRequest{Puntuacion: 3, Comentario: "Regular"})
	require.NoError(t, err)

	require.NoError(t, fx.svc.Upvote(ctx, uuid.MustParse(r1.ID), uuid.New()))
	require.NoError(t, fx.svc.Upvote(ctx, uuid.MustParse(r1.ID), uuid.New()))

	resp, err := fx.svc.ListarPorBar(ctx, fx.barID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Total)
	assert.InDelta(t, 4.0, resp.Promedio, 0.001)

	for _, rs := range resp.Data {
		if rs.ID == r1.ID {
			assert.EqualValues(t, 2, rs.Upvotes)
		}
	}
}

func TestUpvoteDuplicado(t *testing.T) {
	fx := newResenaFixture(t)
	ctx := context.Background()

	r, err := fx.svc.Crear(ctx, fx.barID, uuid.New(), dto.CrearResenaRequest{Puntuacion: 5, Comentario: "Excelente"})
	require.NoError(t, err)
	resenaID := uuid.MustParse(r.ID)
	votante := uuid.New()

	require.NoError(t, fx.svc.Upvote(ctx, resenaID, votante))

	err = fx.svc.Upvote(ctx, resenaID, votante)
	var valErr *apierror.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestQuitarUpvoteInexistente(t *testing.T) {
	fx := newResenaFixture(t)

	err := fx.svc.QuitarUpvote(context.Background(), uuid.New(), uuid.New())

	var nfErr *apierror.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestEliminarResenaSoloAutorOAdmin(t *testing.T) {
	fx := newResenaFixture(t)
	ctx := context.Background()
	autor := uuid.New()

	r, err := fx.svc.Crear(ctx, fx.barID, autor, dto.CrearResenaRequest{Puntuacion: 2, Comentario: "Meh"})
	require.NoError(t, err)
	resenaID := uuid.MustParse(r.ID)

	err = fx.svc.Eliminar(ctx, resenaID, uuid.New(), "cliente")
	var fbErr *apierror.ForbiddenError
	require.ErrorAs(t, err, &fbErr)

	require.NoError(t, fx.svc.Eliminar(ctx, resenaID, autor, "cliente"))
}
