package transport

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EnteRequest struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	Siglas        string `json:"siglas"`
	Ambito        string `json:"ambito"`
	Poder         string `json:"poder"`
	TitularNombre string `json:"titular_nombre"`
	TitularCargo  string `json:"titular_cargo"`
	Activo        *bool  `json:"activo"`
}

type OICRequest struct {
	ID            string `json:"id"`
	EnteID        string `json:"ente_id"`
	Nombre        string `json:"nombre"`
	TitularNombre string `json:"titular_nombre"`
	Puesto        string `json:"puesto"`
	Email         string `json:"email"`
	Telefono      string `json:"telefono"`
	Activo        *bool  `json:"activo"`
}

type AcuerdoRequest struct {
	ID              string `json:"id"`
	EnteID          string `json:"ente_id"`
	Descripcion     string `json:"descripcion"`
	FechaCompromiso string `json:"fecha_compromiso"`
	Estado          string `json:"estado"`
}

type SeguimientoRequest struct {
	Comentario string `json:"comentario"`
}

type UserCreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UserUpdateRequest struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active *bool  `json:"active"`
}

type PasswordRequest struct {
	Password string `json:"password"`
}
