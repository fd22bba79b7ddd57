package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	// Relations
	Portfolios []Portfolio `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) TableName() string {
	return "users"
}
