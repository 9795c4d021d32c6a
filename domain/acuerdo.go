package domain

import "time"

// Estados de un acuerdo.
const (
	AcuerdoPendiente = "PENDIENTE"
	AcuerdoEnProceso = "EN_PROCESO"
	AcuerdoCumplido  = "CUMPLIDO"
	AcuerdoCancelado = "CANCELADO"
)

// Acuerdo represents an agreement taken with an ente público.
type Acuerdo struct {
	ID              string     `json:"id"`
	EnteID          string     `json:"ente_id"`
	Descripcion     string     `json:"descripcion"`
	FechaCompromiso *time.Time `json:"fecha_compromiso,omitempty"`
	Estado          string     `json:"estado"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsClosed reports whether the acuerdo no longer accepts seguimientos.
func (a *Acuerdo) IsClosed() bool {
	return a != nil && (a.Estado == AcuerdoCumplido || a.Estado == AcuerdoCancelado)
}

func ValidEstado(estado string) bool {
	switch estado {
	case AcuerdoPendiente, AcuerdoEnProceso, AcuerdoCumplido, AcuerdoCancelado:
		return true
	}
	return false
}

// Seguimiento is a follow-up note recorded against an acuerdo.
type Seguimiento struct {
	ID         string    `json:"id"`
	AcuerdoID  string    `json:"acuerdo_id"`
	AutorID    string    `json:"autor_id"`
	Comentario string    `json:"comentario"`
	Fecha      time.Time `json:"fecha"`
}
