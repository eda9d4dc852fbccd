package models

import "time"

// CheckoutSession records every payment session the webhook has already
// materialized into orders. The unique session id makes the webhook
// idempotent: a replayed delivery hits the index instead of inserting
// a second batch of orders.
type CheckoutSession struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID   string    `gorm:"size:255;not null;uniqueIndex" json:"session_id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	ProcessedAt time.Time `gorm:"not null" json:"processed_at"`
}
