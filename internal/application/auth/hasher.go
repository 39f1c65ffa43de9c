package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword genera el digest bcrypt de la contraseña (con sal por usuario y
// costo configurable por la librería).
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compara la contraseña en claro contra el digest almacenado.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
