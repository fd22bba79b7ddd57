package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume holds one uploaded resume and the structured record the extraction
// pipeline produced from it. Sections are stored as ordered JSON.
type Resume struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	ContentText      string    `gorm:"type:text" json:"content_text"`
	Name             string    `gorm:"type:text" json:"name"`
	Email            string    `gorm:"type:text" json:"email"`
	Phone            string    `gorm:"type:text" json:"phone"`
	SectionsJSON     string    `gorm:"type:text" json:"sections_json"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}
