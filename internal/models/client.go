package models

import (
	"time"
)

type Agent struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Representant string    `json:"representant" gorm:"size:45"`
	CompanyID    uint      `json:"company" gorm:"not null"`
	Company      Company   `json:"-" gorm:"foreignKey:CompanyID"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PriceList struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	PriceListID   string    `json:"price_list_id" gorm:"size:10;unique;not null"`
	CompanyID     uint      `json:"company" gorm:"not null"`
	Company       Company   `json:"-" gorm:"foreignKey:CompanyID"`
	ItemID        uint      `json:"item" gorm:"not null"`
	Item          Item      `json:"-" gorm:"foreignKey:ItemID"`
	DiscountLevel int       `json:"discount_level"` // 1 or 2
	CantOImp      int64     `json:"cantOImp"`
	Price         float64   `json:"price"`
	Discount      float64   `json:"discount"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ClientStatus int

const (
	ClientNormal    ClientStatus = 1
	ClientDoubtful  ClientStatus = 2
	ClientBlocked   ClientStatus = 3
	ClientPotential ClientStatus = 4
)

type Client struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	ClientID    string      `json:"client_id" gorm:"size:10;unique;not null"`
	CompanyID   uint        `json:"company" gorm:"not null"`
	Company     Company     `json:"-" gorm:"foreignKey:CompanyID"`
	NameA       string      `json:"nameA" gorm:"size:50"`
	NameB       string      `json:"nameB" gorm:"size:50"`
	Status      int         `json:"status"`
	AgentID     uint        `json:"agent" gorm:"not null"`
	Agent       Agent       `json:"-" gorm:"foreignKey:AgentID"`
	Analist     string      `json:"analist" gorm:"size:10"`
	Currency    string      `json:"currency" gorm:"size:3"`
	CreditLim   int64       `json:"credit_lim"`
	WarehouseID uint        `json:"warehouse" gorm:"not null"`
	Warehouse   Warehouse   `json:"-" gorm:"foreignKey:WarehouseID"`
	PriceLists  []PriceList `json:"-" gorm:"many2many:client_price_lists"`
	IsActive    bool        `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
