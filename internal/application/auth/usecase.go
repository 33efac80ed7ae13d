package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/pkg/session"
)

// AuthUseCase caso de uso de autenticación: login contra el hash almacenado.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions *session.Manager
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions *session.Manager) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions}
}

// Login verifica username/password y emite el token de sesión. Usuario
// inexistente y password incorrecto devuelven el mismo
// domain.ErrInvalidCredentials: el resultado no distingue el caso para no
// permitir enumerar usernames.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return uc.sessions.Issue(user.Username)
}
