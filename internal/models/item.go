package models

import (
	"time"
)

// Item is the catalog master record. ItemID is the business key used by
// clients on the wire; the numeric ID stays internal.
type Item struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ItemID      string    `json:"item_id" gorm:"size:20;unique;not null"`
	Description string    `json:"description" gorm:"size:70"`
	UdVta       string    `json:"udVta" gorm:"size:4"`
	AccessKey   string    `json:"access_key" gorm:"size:20"`
	StandarCost float64   `json:"standar_cost" gorm:"type:decimal(15,4)"`
	CompanyID   uint      `json:"company" gorm:"not null"`
	Company     Company   `json:"-" gorm:"foreignKey:CompanyID"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Warehouse struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	WarehouseID string    `json:"warehouse_id" gorm:"size:4;unique;not null"`
	Name        string    `json:"name" gorm:"size:70"`
	CompanyID   uint      `json:"company" gorm:"not null"`
	Company     Company   `json:"-" gorm:"foreignKey:CompanyID"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Inventory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ItemID      uint      `json:"item" gorm:"not null"`
	Item        Item      `json:"-" gorm:"foreignKey:ItemID"`
	WarehouseID uint      `json:"warehouse" gorm:"not null"`
	Warehouse   Warehouse `json:"-" gorm:"foreignKey:WarehouseID"`
	Quantity    float64   `json:"quantity"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
