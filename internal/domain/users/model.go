package users

import "time"

// User es la identidad registrada en el sistema. Password guarda el hash
// bcrypt, nunca el texto plano, y nunca se serializa hacia afuera.
type User struct {
	ID       int64
	Name     string
	Email    string
	Password string

	CreatedAt time.Time
	UpdatedAt time.Time
}
