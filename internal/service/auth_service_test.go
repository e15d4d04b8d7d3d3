package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acero08/RutaCervezera-sub000/internal/apierror"
	"github.com/acero08/RutaCervezera-sub000/internal/config"
	"github.com/acero08/RutaCervezera-sub000/internal/dto"
	"github.com/acero08/RutaCervezera-sub000/internal/model"
)

func newAuthFixture() AuthService {
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	repo := &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
	return NewAuthService(repo, cfg)
}

func TestRegistrarYLogin(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Registrar(ctx, dto.RegistrarRequest{
		Email:    "ana@example.com",
		Nombre:   "Ana",
		Password: "superseguro1",
	})
	require.NoError(t, err)
	assert.Equal(t, "cliente", user.Rol) // default role

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "superseguro1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestRegistrarEmailDuplicado(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Registrar(ctx, dto.RegistrarRequest{Email: "ana@example.com", Nombre: "Ana", Password: "superseguro1"})
	require.NoError(t, err)

	_, err = svc.Registrar(ctx, dto.RegistrarRequest{Email: "ana@example.com", Nombre: "Otra Ana", Password: "otropassword"})
	var valErr *apierror.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields, "email")
}

func TestLoginPasswordIncorrecto(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Registrar(ctx, dto.RegistrarRequest{Email: "ana@example.com", Nombre: "Ana", Password: "superseguro1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "incorrecto"})
	require.Error(t, err)

	// same opaque message for unknown email, no account enumeration
	_, err2 := svc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "loquesea"})
	require.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error())
}

func TestRefreshEmiteNuevosTokens(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Registrar(ctx, dto.RegistrarRequest{Email: "ana@example.com", Nombre: "Ana", Password: "superseguro1", Rol: "dueno"})
	require.NoError(t, err)
	login, err := svc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "superseguro1"})
	require.NoError(t, err)

	resp, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "dueno", resp.User.Rol)
}

func TestRefreshTokenInvalido(t *testing.T) {
	svc := newAuthFixture()

	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	require.Error(t, err)
}
