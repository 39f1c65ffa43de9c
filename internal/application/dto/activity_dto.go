package dto

import "time"

// ActivityLogResponse entrada de la bitácora expuesta por la API.
type ActivityLogResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"companyId"`
	UserID     string    `json:"userId"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	EntityName string    `json:"entityName"`
	CreatedAt  time.Time `json:"createdAt"`
}
