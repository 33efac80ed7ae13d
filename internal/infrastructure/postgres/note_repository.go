package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo implementación del puerto NoteRepository sobre PostgreSQL.
type NoteRepo struct {
	q querier
}

// NewNoteRepository construye el adaptador de persistencia para notas.
func NewNoteRepository(q querier) *NoteRepo {
	return &NoteRepo{q: q}
}

// Create persiste una nota y asigna el ID generado por la BD.
func (r *NoteRepo) Create(note *entity.Note) error {
	query := `
		INSERT INTO notes (content, timestamp)
		VALUES ($1, $2) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		note.Content, note.Timestamp,
	).Scan(&note.ID)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// ListAll lista las notas por id descendente (la más reciente primero).
func (r *NoteRepo) ListAll() ([]*entity.Note, error) {
	query := `
		SELECT id, content, timestamp
		FROM notes ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.Content, &n.Timestamp); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
