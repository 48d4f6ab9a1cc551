package models

import "time"

// User представляет учетную запись владельца транзакций.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // bcrypt-хэш, никогда не отдается наружу
	CreatedAt time.Time `json:"created_at"`

	Transactions []Transaction `json:"-" gorm:"foreignKey:UserID"`
}
