package domain

import "time"

// Estadisticas is the aggregate snapshot rendered by the dashboard home.
type Estadisticas struct {
	TotalEntes        int            `json:"total_entes"`
	TotalOICs         int            `json:"total_oics"`
	TotalAcuerdos     int            `json:"total_acuerdos"`
	TotalUsuarios     int            `json:"total_usuarios"`
	EntesPorAmbito    map[string]int `json:"entes_por_ambito"`
	AcuerdosPorEstado map[string]int `json:"acuerdos_por_estado"`
	GeneratedAt       time.Time      `json:"generated_at"`
}
