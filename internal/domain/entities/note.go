package entities

import (
	"time"
)

// Note represents a free-text session note attached to a consultation
// (and transitively to a patient).
type Note struct {
	ID             int64     `json:"id"`
	Content        string    `json:"contenido"`
	CreatedAt      time.Time `json:"fecha_creacion"`
	UpdatedAt      time.Time `json:"fecha_actualizacion"`
	ConsultationID int64     `json:"consulta"`
}
