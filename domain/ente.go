package domain

import "time"

// Ámbitos de gobierno.
const (
	AmbitoFederal   = "FEDERAL"
	AmbitoEstatal   = "ESTATAL"
	AmbitoMunicipal = "MUNICIPAL"
)

// Poderes y órganos.
const (
	PoderEjecutivo   = "EJECUTIVO"
	PoderLegislativo = "LEGISLATIVO"
	PoderJudicial    = "JUDICIAL"
	OrganoAutonomo   = "AUTONOMO"
)

// Ente represents a public entity registered in the dashboard.
type Ente struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Siglas        string    `json:"siglas,omitempty"`
	Ambito        string    `json:"ambito"`
	Poder         string    `json:"poder"`
	TitularNombre string    `json:"titular_nombre,omitempty"`
	TitularCargo  string    `json:"titular_cargo,omitempty"`
	Activo        bool      `json:"activo"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ValidAmbito(ambito string) bool {
	switch ambito {
	case AmbitoFederal, AmbitoEstatal, AmbitoMunicipal:
		return true
	}
	return false
}

func ValidPoder(poder string) bool {
	switch poder {
	case PoderEjecutivo, PoderLegislativo, PoderJudicial, OrganoAutonomo:
		return true
	}
	return false
}
