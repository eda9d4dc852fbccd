package models

import "gorm.io/gorm"

type Cart struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint     `gorm:"index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`
	UserID    uint     `gorm:"index" json:"user_id"`
	User      *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Size      string   `gorm:"size:255;not null" json:"size"`
	CartImage string   `gorm:"size:1000;not null" json:"cart_image"`
}

// TableName keeps the historical singular table name.
func (Cart) TableName() string { return "cart" }

// CartLine is the joined cart view returned to clients: one row per cart
// entry enriched with product data and the computed line total.
type CartLine struct {
	ProductID    uint    `json:"product_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CartImage    string  `json:"cart_image"`
	Image2       *string `json:"image2"`
	Image3       *string `json:"image3"`
	Image4       *string `json:"image4"`
	CartID       uint    `json:"cart_id"`
	CartQuantity int     `json:"cart_quantity"`
	Size         string  `json:"size"`
	TotalPrice   float64 `json:"total_price"`
}

// CartLinesForUser loads the joined cart view for one user. The cart
// listing, checkout-session builder and webhook all read this shape.
func CartLinesForUser(db *gorm.DB, userID uint) ([]CartLine, error) {
	var lines []CartLine
	err := db.Table("cart").
		Select("products.id AS product_id, products.title, products.description, products.price, " +
			"cart.cart_image, products.image2, products.image3, products.image4, " +
			"cart.id AS cart_id, cart.quantity AS cart_quantity, cart.size, " +
			"cart.quantity * products.price AS total_price").
		Joins("JOIN products ON products.id = cart.product_id").
		Where("cart.user_id = ?", userID).
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}
