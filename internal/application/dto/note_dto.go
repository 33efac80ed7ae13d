package dto

// NoteResponse nota para la vista de notas.
type NoteResponse struct {
	ID        int64
	Content   string
	Timestamp string
}
