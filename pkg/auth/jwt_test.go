package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/gestao-estoque/internal/domain/user"
	"github.com/hugohenrick/gestao-estoque/internal/domain/valueobject"
)

func newTestUser(t *testing.T) *user.User {
	t.Helper()

	email, err := valueobject.NewEmail("maria@empresa.com.br")
	require.NoError(t, err)

	u, err := user.NewUser("Maria Silva", email, "senha-secreta", user.RoleManager)
	require.NoError(t, err)
	return u
}

func TestNewJWTService(t *testing.T) {
	t.Run("sem chave secreta", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")

		_, err := NewJWTService()
		assert.ErrorIs(t, err, ErrMissingJWTKey)
	})

	t.Run("com chave secreta", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "chave-de-teste")

		svc, err := NewJWTService()
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestJWTServiceGenerateAndValidate(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")

	svc, err := NewJWTService()
	require.NoError(t, err)

	u := newTestUser(t)

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "maria@empresa.com.br", claims.Email)
	assert.Equal(t, "Maria Silva", claims.Name)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, u.ID, claims.Subject)
}

func TestJWTServiceValidateToken_Invalido(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")

	svc, err := NewJWTService()
	require.NoError(t, err)

	_, err = svc.ValidateToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceValidateToken_ChaveErrada(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-original")
	svc, err := NewJWTService()
	require.NoError(t, err)

	token, err := svc.GenerateToken(newTestUser(t))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "outra-chave")
	other, err := NewJWTService()
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")

	svc, err := NewJWTService()
	require.NoError(t, err)

	u := newTestUser(t)

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)

	renewed, err := svc.RefreshToken(token)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(renewed)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}
