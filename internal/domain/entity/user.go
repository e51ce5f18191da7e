package entity

import (
	"strings"
	"time"
)

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User credenciales de acceso (basic auth). Roles es una lista separada por comas, ej. "admin,user".
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt
	Roles        string
	CreatedAt    time.Time
}

// RoleList devuelve los roles del usuario sin espacios ni vacíos.
func (u *User) RoleList() []string {
	var out []string
	for _, r := range strings.Split(u.Roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
