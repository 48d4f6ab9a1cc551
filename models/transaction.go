// FILE: models/transaction.go
package models

import "time"

// Transaction представляет одну финансовую операцию (доход или расход).
type Transaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Amount    float64   `json:"amount" gorm:"type:numeric(10,2);not null"`
	Type      string    `json:"type" gorm:"size:10;not null;check:chk_transaction_type,type IN ('income','expense')"`
	Category  *string   `json:"category" gorm:"size:50"`
	Note      string    `json:"note" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
