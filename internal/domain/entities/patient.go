package entities

// Patient represents a patient record as served by the practice API. Field
// names on the wire follow the backend's Spanish schema.
type Patient struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"nombre"`
	LastName  string  `json:"apellido"`
	DNI       string  `json:"dni"`
	BirthDate string  `json:"fecha_nacimiento"` // YYYY-MM-DD
	Phone     string  `json:"telefono"`
	Email     string  `json:"email"`
	Password  string  `json:"contrasena,omitempty"` // write-only, sent on create
	Address   string  `json:"direccion"`
	HeightCm  float64 `json:"altura"`
	WeightKg  float64 `json:"peso"`
}

// FullName returns the display name used in lists and joins
func (p Patient) FullName() string {
	if p.FirstName == "" && p.LastName == "" {
		return ""
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
