package models

import (
	"time"
)

type RegType int

const (
	RegCaptured  RegType = 1
	RegCancelled RegType = 2
	RegInvoiced  RegType = 3
)

// DeliveredQuantity records one delivery movement against an order position.
type DeliveredQuantity struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CompanyID   uint      `json:"company" gorm:"not null"`
	Company     Company   `json:"-" gorm:"foreignKey:CompanyID"`
	OrderNumber int64     `json:"order" gorm:"unique;not null"`
	Position    int       `json:"position"`
	MovDate     time.Time `json:"mov_date" gorm:"type:date"`
	Time        int64     `json:"time"`
	Sequence    int       `json:"sequence"`
	RegType     int       `json:"reg_type"`
	Quantity    float64   `json:"quantity"`
	ItemID      uint      `json:"item" gorm:"not null"`
	Item        Item      `json:"-" gorm:"foreignKey:ItemID"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Invoice struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CompanyID     uint      `json:"company" gorm:"not null"`
	Company       Company   `json:"-" gorm:"foreignKey:CompanyID"`
	InvoiceNumber int64     `json:"invoice_number" gorm:"unique;not null"`
	Position      int       `json:"position"`
	Delivery      int       `json:"delivery"`
	TransType     string    `json:"trans_type" gorm:"size:4"`
	ItemID        uint      `json:"item" gorm:"not null"`
	Item          Item      `json:"-" gorm:"foreignKey:ItemID"`
	InvoiceDate   time.Time `json:"invoice_date" gorm:"type:date"`
	ClientID      uint      `json:"client" gorm:"not null"`
	Client        Client    `json:"-" gorm:"foreignKey:ClientID"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DeliverAddress struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CompanyID  uint      `json:"company" gorm:"not null"`
	Company    Company   `json:"-" gorm:"foreignKey:CompanyID"`
	ClientID   uint      `json:"client" gorm:"not null"`
	Client     Client    `json:"-" gorm:"foreignKey:ClientID"`
	DelAddress string    `json:"del_address" gorm:"size:4"`
	NameA      string    `json:"nameA" gorm:"size:50"`
	NameB      string    `json:"nameB" gorm:"size:50"`
	NameC      string    `json:"nameC" gorm:"size:50"`
	NameD      string    `json:"nameD" gorm:"size:50"`
	NameE      string    `json:"nameE" gorm:"size:50"`
	PostalCode string    `json:"postal_code" gorm:"size:5"`
	RouteCode  string    `json:"route_code" gorm:"size:5"`
	Country    string    `json:"country" gorm:"size:3"`
	RFC        string    `json:"rfc" gorm:"size:20"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
