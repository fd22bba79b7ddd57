package models

import (
	"time"

	"github.com/google/uuid"
)

type PortfolioStatus string

const (
	StatusQueued     PortfolioStatus = "queued"
	StatusProcessing PortfolioStatus = "processing"
	StatusCompleted  PortfolioStatus = "completed"
	StatusFailed     PortfolioStatus = "failed"
)

type Portfolio struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	ResumeID         uuid.UUID       `gorm:"type:uuid;not null" json:"resume_id"`
	Name             string          `gorm:"type:text" json:"name"`
	Theme            string          `gorm:"type:text" json:"theme"`
	ThemePreferences string          `gorm:"type:text" json:"theme_preferences"`
	Status           PortfolioStatus `gorm:"not null;default:'queued'" json:"status"`
	HTMLContent      *string         `gorm:"type:text" json:"html_content,omitempty"`
	ErrorMessage     *string         `gorm:"type:text" json:"error_message,omitempty"`
	IsFavorite       bool            `gorm:"default:false" json:"is_favorite"`
	CreatedAt        time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Resume Resume `gorm:"foreignKey:ResumeID" json:"-"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}
