package models

import (
	"time"
)

type Order struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	OrdenCompra     uint      `json:"ordenCompra"` // mirrors ID once the order is committed
	ObsOrder        string    `json:"obsOrder" gorm:"size:70"`
	FechaOrden      time.Time `json:"fechaOrden" gorm:"type:date;not null"`
	FechaSolicitada time.Time `json:"fechaSolicitada" gorm:"type:date;not null"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SalesOrderStatus string

const (
	SalesOrderInProgress SalesOrderStatus = "inProgress"
	SalesOrderFinished   SalesOrderStatus = "finished"
	SalesOrderCancelled  SalesOrderStatus = "cancelled"
)

type SalesOrder struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order" gorm:"not null;uniqueIndex"`
	Order     Order     `json:"-" gorm:"foreignKey:OrderID"`
	Status    string    `json:"status" gorm:"size:20;default:'inProgress'"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderDetail is the single line item of an order. Precio and UdVta are
// captured from the catalog item when the order is placed and are not
// re-derived if the item changes afterwards.
type OrderDetail struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order" gorm:"not null;uniqueIndex"`
	Order     Order     `json:"-" gorm:"foreignKey:OrderID"`
	ItemID    uint      `json:"item" gorm:"not null"`
	Item      Item      `json:"-" gorm:"foreignKey:ItemID"`
	Cantidad  float64   `json:"cantidad" gorm:"not null"`
	UdVta     string    `json:"udvta" gorm:"size:4"`
	Precio    float64   `json:"precio"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Authorization holds the per-department sign-off flags for an order. Each
// flag is flipped independently by its department, all start unauthorized.
type Authorization struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order" gorm:"not null;uniqueIndex"`
	Order     Order     `json:"-" gorm:"foreignKey:OrderID"`
	Vta       bool      `json:"vta" gorm:"default:false"`
	Cst       bool      `json:"cst" gorm:"default:false"`
	Suaje     bool      `json:"suaje" gorm:"default:false"`
	Grabado   bool      `json:"grabado" gorm:"default:false"`
	Pln       bool      `json:"pln" gorm:"default:false"`
	Ing       bool      `json:"ing" gorm:"default:false"`
	Cxc       bool      `json:"cxc" gorm:"default:false"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
