package models

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Price       float64 `gorm:"type:numeric(8,2);not null" json:"price"`
	Category    string  `gorm:"size:255;not null" json:"category"`
	Label       *string `gorm:"size:255" json:"label"`
	Description string  `gorm:"size:500;not null" json:"description"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Image1      string  `gorm:"size:1000;not null" json:"image1"`
	Image2      *string `gorm:"size:1000" json:"image2"`
	Image3      *string `gorm:"size:1000" json:"image3"`
	Image4      *string `gorm:"size:1000" json:"image4"`
	BtnColor1   string  `gorm:"size:255;not null" json:"btn_color1"`
	BtnColor2   string  `gorm:"size:255;not null" json:"btn_color2"`
	BtnColor3   string  `gorm:"size:255;not null" json:"btn_color3"`
	BtnColor4   string  `gorm:"size:255;not null" json:"btn_color4"`
}
