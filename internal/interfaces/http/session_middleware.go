package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/pkg/session"
)

// SessionCookie nombre de la cookie de sesión.
const SessionCookie = "stockroom_session"

// LocalUsername key del username autenticado en c.Locals.
const LocalUsername = "session_username"

// SessionMiddleware lee la cookie de sesión si está presente y deja el
// username en c.Locals. Un token ausente o inválido no es un error: la
// petición sigue como anónima (el handler del índice elige la vista).
func SessionMiddleware(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token != "" {
			if username, err := sessions.Parse(token); err == nil {
				c.Locals(LocalUsername, username)
			}
		}
		return c.Next()
	}
}

// RequireSession corta a los visitantes anónimos: redirige al índice sin
// error, sin log de error y sin efecto alguno. Las rutas de mutación y de
// listado autenticado cuelgan de este middleware.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUsername(c) == "" {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Next()
	}
}

// CurrentUsername devuelve el username de la sesión o "" si es anónimo.
func CurrentUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
