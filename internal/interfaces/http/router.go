package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/auth"
	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/application/notes"
	"github.com/invorya/stockroom-api/pkg/logger"
	"github.com/invorya/stockroom-api/pkg/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.InventoryUseCase
	NotesUC     *notes.NoteUseCase
	Sessions    *session.Manager
	Log         *logger.Logger
}

// Router registra las rutas de la aplicación. Todas las peticiones pasan por
// SessionMiddleware; las rutas de mutación y listado además por
// RequireSession, que devuelve al anónimo al índice sin error.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.Sessions))

	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.Log)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Log)
	notesHandler := NewNotesHandler(deps.NotesUC, deps.Log)

	// Público: índice (elige vista según sesión), login, logout e imagen.
	app.Get("/", inventoryHandler.Index)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	app.Get("/show_image", func(c *fiber.Ctx) error {
		return c.Render("image", fiber.Map{})
	})

	// Protegido: requiere sesión autenticada.
	protected := app.Group("/", RequireSession())
	protected.Post("/add_stock", inventoryHandler.AddStock)
	protected.Get("/notes", notesHandler.Notes)
	protected.Post("/add_note", notesHandler.AddNote)
}
