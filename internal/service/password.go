package service

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost replica el factor de trabajo del servicio original.
const DefaultBcryptCost = 10

// PasswordHasher encapsula el hashing unidireccional de contraseñas.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher crea un hasher con el costo indicado; valores fuera de
// rango caen al costo por defecto.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produce un hash bcrypt del plaintext. Solo falla ante un error
// interno de bcrypt.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// Verify informa si el plaintext corresponde al hash almacenado. Un
// mismatch o un hash malformado es un resultado false, nunca un error.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
