package models

import "time"

const OrderStatusOrdered = "ordered"

type Order struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID     uint      `gorm:"index" json:"product_id"`
	Product       *Product  `gorm:"foreignKey:ProductID" json:"-"`
	UserID        uint      `gorm:"index" json:"user_id"`
	User          *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	OrderQuantity int       `gorm:"not null" json:"order_quantity"`
	OrderSize     string    `gorm:"size:255;not null" json:"order_size"`
	OrderImage    string    `gorm:"size:1000;not null" json:"order_image"`
	Status        string    `gorm:"size:255;not null" json:"status"`
	OrderDate     time.Time `gorm:"type:date;not null" json:"order_date"`
}

// OrderLine is the joined order view: one row per order enriched with
// the product title, unit price and computed total.
type OrderLine struct {
	Title         string    `json:"title"`
	Price         float64   `json:"price"`
	OrderID       uint      `json:"order_id"`
	OrderQuantity int       `json:"order_quantity"`
	OrderSize     string    `json:"order_size"`
	OrderImage    string    `json:"order_image"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	OrderDate     time.Time `json:"order_date"`
}
