package domain

import "time"

// User representa una cuenta persistida. PasswordHash nunca se serializa:
// la vista pública de la cuenta es el resto de los campos.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
