package models

import (
	"time"
)

type Company struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CompanyID string    `json:"company_id" gorm:"size:4;unique;not null"`
	Name      string    `json:"name" gorm:"size:70;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
