package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/auth"
	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/pkg/logger"
	"github.com/invorya/stockroom-api/pkg/session"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	sessions *session.Manager
	log      *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, sessions *session.Manager, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, log: log}
}

// Login procesa el formulario de login. En éxito fija la cookie de sesión y
// redirige al índice; en cualquier fallo vuelve a la vista de login con el
// indicador genérico (sin distinguir usuario inexistente de password malo).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	in := dto.LoginRequest{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}

	token, err := h.uc.Login(in)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			h.log.Error().Err(err).Msg("login: fallo del almacén")
		}
		return c.Render("login", fiber.Map{"Error": "Invalid credentials"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.sessions.TTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusFound)
}

// Logout limpia la sesión incondicionalmente y redirige al índice.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusFound)
}
