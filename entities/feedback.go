package entities

import "time"

type Feedback struct {
	FeedbackID uint      `gorm:"primaryKey" json:"feedback_id"`
	Username   string    `gorm:"index" json:"username"`
	Type       string    `gorm:"column:feedback_type" json:"type"`
	Message    string    `gorm:"type:text" json:"message"`
	Image      *string   `json:"image,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
