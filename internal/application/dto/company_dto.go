package dto

import "time"

// CompanyResponse empresa expuesta por la API.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan"`
	TaxID     string    `json:"taxId"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	MaxUsers  int       `json:"maxUsers"`
	MaxAssets int       `json:"maxAssets"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// MembershipResponse empresa + rol del llamador en ella (GET /companies).
type MembershipResponse struct {
	Company CompanyResponse `json:"company"`
	Role    string          `json:"role"`
}
