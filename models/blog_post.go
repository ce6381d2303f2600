package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is the single persisted blog entity. Tags are stored as one
// comma-joined string even though the API accepts an array or a string.
// Length bounds on Title and Content are enforced at the API boundary,
// not by the store.
type BlogPost struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt   string    `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;index"`
	Published bool      `json:"published" db:"published" gorm:"not null;default:false"`
	Author    string    `json:"author" db:"author" gorm:"type:text;not null;default:'Anonymous'"`
	Tags      string    `json:"tags" db:"tags" gorm:"type:text"`
	ReadTime  int       `json:"readTime" db:"read_time" gorm:"not null;default:1"`
	Views     int       `json:"views" db:"views" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
