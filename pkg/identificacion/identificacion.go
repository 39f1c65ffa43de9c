// Package identificacion valida los identificadores tributarios y personales
// exigidos en el registro según el plan contratado: las empresas del plan
// "pyme" registran su RUC (13 dígitos) y las del plan "professional" la cédula
// del titular (10 dígitos).
package identificacion

import "fmt"

const (
	RUCLength    = 13
	CedulaLength = 10
)

// ValidateRUC valida que el RUC sea una cadena numérica de exactamente 13 dígitos.
func ValidateRUC(ruc string) error {
	return validateDigits(ruc, RUCLength, "RUC")
}

// ValidateCedula valida que la cédula sea una cadena numérica de exactamente 10 dígitos.
func ValidateCedula(cedula string) error {
	return validateDigits(cedula, CedulaLength, "cédula")
}

func validateDigits(s string, length int, label string) error {
	if len(s) != length {
		return fmt.Errorf("identificacion: %s debe tener exactamente %d dígitos, se recibieron %d", label, length, len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("identificacion: %s solo admite dígitos numéricos", label)
		}
	}
	return nil
}
