package entity

import "time"

// Roles válidos para User. El rol se fija al sembrar el usuario y no cambia.
const (
	RoleAdmin   = "admin"
	RoleTaller  = "taller"
	RoleMaquila = "maquila"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Usuario      string // único
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Rol          string // admin, taller, maquila
	CreatedAt    time.Time
}

// ValidRole indica si el rol pertenece al conjunto permitido.
func ValidRole(rol string) bool {
	switch rol {
	case RoleAdmin, RoleTaller, RoleMaquila:
		return true
	}
	return false
}
