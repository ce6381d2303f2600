package database

import (
	"github.com/rpupo63/portfolio-blog-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	blogPostRepo *BlogPostRepo
	projectRepo  *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance.
func New(db *gorm.DB) Database {
	return Database{
		blogPostRepo: NewBlogPostRepo(db),
		projectRepo:  NewProjectRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.BlogPost{}, &models.Project{})
}
