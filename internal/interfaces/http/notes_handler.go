package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/notes"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/pkg/logger"
)

// NotesHandler maneja la vista de notas y el alta de notas.
type NotesHandler struct {
	uc  *notes.NoteUseCase
	log *logger.Logger
}

// NewNotesHandler construye el handler de notas.
func NewNotesHandler(uc *notes.NoteUseCase, log *logger.Logger) *NotesHandler {
	return &NotesHandler{uc: uc, log: log}
}

// Notes lista las notas, la más reciente primero.
func (h *NotesHandler) Notes(c *fiber.Ctx) error {
	list, err := h.uc.ListNotes(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("notes: fallo al listar")
		list = nil
	}
	return c.Render("notes", fiber.Map{
		"Username": CurrentUsername(c),
		"Notes":    list,
	})
}

// AddNote procesa el formulario de nota nueva y vuelve a la vista de notas.
// Contenido vacío es un no-op silencioso.
func (h *NotesHandler) AddNote(c *fiber.Ctx) error {
	content := c.FormValue("note_content")
	if err := h.uc.AddNote(c.UserContext(), content); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.log.Debug().Msg("add_note: contenido vacío o demasiado largo")
		} else {
			h.log.Error().Err(err).Msg("add_note: fallo del almacén")
		}
	}
	return c.Redirect("/notes", fiber.StatusFound)
}
