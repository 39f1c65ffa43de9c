package http

import (
	"github.com/go-playground/validator/v10"
)

// validate instancia compartida del validador de structs. Los tags `validate`
// viven en los DTOs de application/dto.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessage arma un mensaje legible a partir del primer campo que
// falló. No se exponen los detalles internos del validador.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "datos inválidos"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return "el campo '" + fe.Field() + "' es requerido"
	case "email":
		return "el campo '" + fe.Field() + "' debe ser un email válido"
	case "min":
		return "el campo '" + fe.Field() + "' es demasiado corto"
	case "max":
		return "el campo '" + fe.Field() + "' es demasiado largo"
	case "oneof":
		return "el campo '" + fe.Field() + "' tiene un valor fuera del catálogo"
	default:
		return "el campo '" + fe.Field() + "' es inválido"
	}
}
