package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/stockroom-api/internal/application/auth"
	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/infrastructure/memory"
	"github.com/invorya/stockroom-api/pkg/session"
)

func newAuthUseCase(t *testing.T) (*auth.AuthUseCase, *session.Manager) {
	t.Helper()
	store := memory.NewStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("a"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(&entity.User{Username: "max", PasswordHash: string(hash)}))

	sessions := session.NewManager("test-secret", "stockroom-test", 60)
	return auth.NewAuthUseCase(store.Users(), sessions), sessions
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, sessions := newAuthUseCase(t)

	tok, err := uc.Login(dto.LoginRequest{Username: "max", Password: "a"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	// El token emitido identifica al usuario autenticado.
	username, err := sessions.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "max", username)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "max", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "nouser", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Usuario inexistente y password malo producen exactamente el mismo error:
// no hay señal que permita enumerar usernames.
func TestLogin_FalloIndistinguible(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	_, errNoUser := uc.Login(dto.LoginRequest{Username: "nouser", Password: "x"})
	_, errBadPass := uc.Login(dto.LoginRequest{Username: "max", Password: "wrong"})
	assert.Equal(t, errNoUser, errBadPass)
}
