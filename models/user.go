package models

import "gorm.io/gorm"

type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Email     string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string `gorm:"size:255;not null" json:"password"` // bcrypt hash, never plaintext
	Firstname string `gorm:"size:255;not null" json:"firstname"`
	Lastname  string `gorm:"size:255;not null" json:"lastname"`
	Phone     *int64 `gorm:"type:numeric(20,0)" json:"phone"`
}

// UserByUsername resolves the acting user for a verified token claim.
// The auth middleware only carries the username, so every protected
// handler goes through this lookup.
func UserByUsername(db *gorm.DB, username string) (*User, error) {
	var user User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
