package models

type Address struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Zip      string `gorm:"size:255;not null" json:"zip"`
	Address  string `gorm:"size:255;not null" json:"address"`
	Locality string `gorm:"size:255;not null" json:"locality"`
	City     string `gorm:"size:255;not null" json:"city"`
	State    string `gorm:"size:255;not null" json:"state"`
	UserID   uint   `gorm:"index" json:"user_id"`
	User     *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the historical singular table name.
func (Address) TableName() string { return "address" }
