package entities

import (
	"time"
)

// Consultation represents an appointment (consulta). References to the
// professional, room and patient are opaque ids resolved by lookup against
// the sibling collections; a dangling reference degrades to a placeholder
// label, never an error.
type Consultation struct {
	ID             int64     `json:"id"`
	Date           time.Time `json:"fecha"`
	ProfessionalID int64     `json:"profesional"`
	RoomID         int64     `json:"consultorio"`
	PatientID      int64     `json:"paciente"`
	Virtual        bool      `json:"virtual"`

	// Denormalized display fields attached after fetch by joining the
	// patient and room collections. Never on the wire.
	PatientName string `json:"-"`
	RoomAddress string `json:"-"`
}

// Room represents a consulting room (consultorio)
type Room struct {
	ID      int64  `json:"id"`
	Address string `json:"direccion"`
	Phone   string `json:"telefono"`
}

// Professional represents a practitioner account
type Professional struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	License   string `json:"matricula"`
}
