package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL validez fija del token de sesión: 7 días desde su emisión.
// El logout es puramente del lado del cliente (se borra la cookie); no hay
// lista de revocación en el servidor.
const TokenTTL = 7 * 24 * time.Hour

// SupportMode contexto de impersonación de una empresa por un super_admin.
// Presente/ausente en el token es todo el estado del "modo soporte": entrar o
// salir del modo reemite un token nuevo, nunca se muta el existente.
type SupportMode struct {
	CompanyID string    `json:"company_id"`
	AdminID   string    `json:"admin_id"`
	StartedAt time.Time `json:"started_at"`
}

// Claims incluye los claims estándar JWT más la identidad de la aplicación.
// El token es la única fuente de identidad por request; no existe tabla de
// sesiones en el servidor.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string       `json:"user_id"`
	Email       string       `json:"email"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Role        string       `json:"role"` // super_admin | technical_admin | manager_owner
	SupportMode *SupportMode `json:"support_mode,omitempty"`
}

// InSupportMode indica si el token lleva contexto de impersonación.
func (c *Claims) InSupportMode() bool {
	return c.SupportMode != nil
}

// Identity datos mínimos para emitir un token.
type Identity struct {
	UserID      string
	Email       string
	FirstName   string
	LastName    string
	Role        string
	SupportMode *SupportMode
}

// Service emite y verifica tokens de sesión firmados con HS256.
// El secreto se inyecta en la construcción; nunca se lee de forma ad hoc.
type Service struct {
	secret []byte
	issuer string
}

// NewService construye el servicio de tokens.
func NewService(secret, issuer string) *Service {
	return &Service{secret: []byte(secret), issuer: issuer}
}

// Issue genera un token firmado con validez de 7 días.
func (s *Service) Issue(id Identity) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID:      id.UserID,
		Email:       id.Email,
		FirstName:   id.FirstName,
		LastName:    id.LastName,
		Role:        id.Role,
		SupportMode: id.SupportMode,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida firma y expiración y devuelve los claims decodificados.
// Retorna error ante cualquier fallo (firma incorrecta, token malformado o
// expirado); el transporte debe tratar ese error como "anónimo", nunca
// propagarlo a la lógica de negocio.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
