package domain

// Role classifies dashboard users. The four values are consumed verbatim
// by every client; adding or renaming one is a coordinated deployment,
// never a runtime concern.
type Role string

const (
	RoleAdministrador Role = "ADMINISTRADOR"
	RoleOperativo     Role = "OPERATIVO"
	RoleSeguimiento   Role = "SEGUIMIENTO"
	RoleInvitado      Role = "INVITADO"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdministrador, RoleOperativo, RoleSeguimiento, RoleInvitado:
		return true
	}
	return false
}

// ParseRole validates a raw role string coming from a token or payload.
func ParseRole(raw string) (Role, error) {
	r := Role(raw)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// AllRoles lists every role in descending privilege order.
func AllRoles() []Role {
	return []Role{RoleAdministrador, RoleOperativo, RoleSeguimiento, RoleInvitado}
}
