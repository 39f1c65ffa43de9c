package dto

import "time"

// RegisterRequest alta de una empresa con su primer administrador
// (rol manager_owner). TaxID es el RUC de 13 dígitos para el plan pyme o la
// cédula de 10 dígitos para el plan professional; la regla cruzada se valida
// en el caso de uso.
type RegisterRequest struct {
	CompanyName     string `json:"companyName" validate:"required,min=2,max=120"`
	Plan            string `json:"plan" validate:"required,oneof=pyme professional"`
	TaxID           string `json:"taxId" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"firstName" validate:"required,max=80"`
	LastName        string `json:"lastName" validate:"required,max=80"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Phone           string `json:"phone" validate:"omitempty,max=20"`
	Address         string `json:"address" validate:"omitempty,max=200"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SupportModeResponse contexto de impersonación activo en el token.
type SupportModeResponse struct {
	CompanyID string    `json:"companyId"`
	AdminID   string    `json:"adminId"`
	StartedAt time.Time `json:"startedAt"`
}

// UserResponse usuario sin el hash de contraseña (nunca sale del dominio).
type UserResponse struct {
	ID          string               `json:"id"`
	Email       string               `json:"email"`
	FirstName   string               `json:"firstName"`
	LastName    string               `json:"lastName"`
	Role        string               `json:"role"`
	SupportMode *SupportModeResponse `json:"supportMode,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// RegisterResponse resultado del registro: empresa + administrador creado.
type RegisterResponse struct {
	Company CompanyResponse `json:"company"`
	User    UserResponse    `json:"user"`
	Token   string          `json:"-"` // viaja solo en la cookie
}

// LoginResponse resultado del login.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"-"` // viaja solo en la cookie
}
