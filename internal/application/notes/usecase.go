package notes

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/pkg/logger"
)

// NoteUseCase casos de uso de notas: alta con timestamp de servidor y listado
// descendente.
type NoteUseCase struct {
	tx       inventory.TxRunner
	noteRepo repository.NoteRepository
	log      *logger.Logger
}

// NewNoteUseCase construye el caso de uso de notas.
func NewNoteUseCase(tx inventory.TxRunner, noteRepo repository.NoteRepository, log *logger.Logger) *NoteUseCase {
	return &NoteUseCase{tx: tx, noteRepo: noteRepo, log: log}
}

// AddNote valida el contenido, estampa la hora de pared del servidor y
// persiste dentro de una transacción. Contenido vacío o de más de 500
// caracteres es domain.ErrInvalidInput sin efecto en el almacén. Un fallo del
// almacén hace rollback, se registra y devuelve nil (el visitante observa el
// flujo normal).
func (uc *NoteUseCase) AddNote(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrInvalidInput
	}
	if utf8.RuneCountInString(content) > entity.NoteMaxContentLen {
		return domain.ErrInvalidInput
	}

	note := &entity.Note{
		Content:   content,
		Timestamp: time.Now().Format(entity.NoteTimestampLayout),
	}
	err := uc.tx.Run(ctx, func(
		_ repository.UserRepository,
		_ repository.LocationRepository,
		_ repository.StockRepository,
		notes repository.NoteRepository,
	) error {
		return notes.Create(note)
	})
	if err != nil {
		uc.log.Error().Err(err).Msg("nota no guardada")
		return nil
	}
	return nil
}

// ListNotes devuelve todas las notas, la más reciente primero.
func (uc *NoteUseCase) ListNotes(ctx context.Context) ([]dto.NoteResponse, error) {
	list, err := uc.noteRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoteResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NoteResponse{ID: n.ID, Content: n.Content, Timestamp: n.Timestamp})
	}
	return out, nil
}
