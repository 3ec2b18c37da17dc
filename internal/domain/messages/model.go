package messages

import "time"

// Message es una nota de un usuario al dueño de un aviso de mascota
// perdida (un avistamiento, una consulta).
type Message struct {
	ID           int64
	UserID       int64 // remitente
	MissingPetID int64 // aviso destinatario
	Comment      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
