package domain

import "time"

// OIC represents an internal oversight body (Órgano Interno de Control)
// attached to an ente público.
type OIC struct {
	ID            string    `json:"id"`
	EnteID        string    `json:"ente_id"`
	Nombre        string    `json:"nombre"`
	TitularNombre string    `json:"titular_nombre,omitempty"`
	Puesto        string    `json:"puesto,omitempty"`
	Email         string    `json:"email,omitempty"`
	Telefono      string    `json:"telefono,omitempty"`
	Activo        bool      `json:"activo"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
