package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:254;unique;not null"`
	Name         string    `json:"name" gorm:"size:45;not null"`
	LastName     string    `json:"last_name" gorm:"size:45;default:'none'"`
	Phone        string    `json:"phone" gorm:"size:20"`
	PasswordHash string    `json:"-" gorm:"not null"`
	IsStaff      bool      `json:"is_staff" gorm:"default:false"`
	Roles        []Role    `json:"roles" gorm:"many2many:user_roles"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Role struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:10;unique;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role names seeded at startup, one per department that touches an order.
const (
	RoleAdmin       = "ADM"
	RoleAgent       = "AGE"
	RoleCosts       = "CST"
	RoleReceivables = "CXC"
	RoleDirection   = "DIR"
	RoleShipments   = "EMB"
	RoleInvoicing   = "FAC"
	RoleDates       = "FEC"
	RoleEngineering = "ING"
)
