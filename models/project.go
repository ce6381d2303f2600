package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents an entry in the projects showcase.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	GithubLink  string    `json:"githubLink" db:"github_link" gorm:"type:text"`
	DemoLink    string    `json:"demoLink" db:"demo_link" gorm:"type:text"`
	ImageQuery  string    `json:"imageQuery" db:"image_query" gorm:"type:text"`
	Tags        string    `json:"tags" db:"tags" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
