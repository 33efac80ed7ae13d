package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// NoteRepository define el puerto de persistencia para Note (DIP).
type NoteRepository interface {
	Create(note *entity.Note) error
	// ListAll devuelve las notas ordenadas por id descendente (la más
	// reciente primero).
	ListAll() ([]*entity.Note, error)
}
