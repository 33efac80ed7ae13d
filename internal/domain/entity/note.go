package entity

// NoteTimestampLayout formato del timestamp asignado por el servidor al crear.
const NoteTimestampLayout = "2006-01-02 15:04:05"

// NoteMaxContentLen longitud máxima del contenido de una nota (en runas).
const NoteMaxContentLen = 500

// Note anotación de texto libre, inmutable después de creada. El timestamp se
// guarda como string ya formateado ("YYYY-MM-DD HH:MM:SS").
type Note struct {
	ID        int64
	Content   string
	Timestamp string
}
