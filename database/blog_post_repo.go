package database

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-blog-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *BlogPostRepo) GetDB() *gorm.DB {
	return r.db
}

// ListParams controls filtering and pagination for List.
type ListParams struct {
	Search string
	Tag    string
	Offset int
	Limit  int
}

// List returns one page of blog posts ordered by creation time descending,
// along with the total count of posts matching the filters. Search matches
// title, content or excerpt case-insensitively; Tag matches the stored tags
// string case-insensitively. LOWER + LIKE keeps the query portable between
// postgres and sqlite.
func (r *BlogPostRepo) List(params ListParams) ([]*models.BlogPost, int64, error) {
	query := r.db.Model(&models.BlogPost{})

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(excerpt) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if params.Tag != "" {
		query = query.Where("LOWER(tags) LIKE ?", "%"+strings.ToLower(params.Tag)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var blogPosts []*models.BlogPost
	err := query.
		Order("created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&blogPosts).Error
	return blogPosts, total, err
}

// FindByID returns a blog post by its ID, or nil if no such post exists.
func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := r.db.First(&blogPost, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogPost, nil
}

// Add inserts a new blog post into the database, assigning an ID when unset.
func (r *BlogPostRepo) Add(blogPost *models.BlogPost) error {
	if blogPost.ID == uuid.Nil {
		blogPost.ID = uuid.New()
	}
	return r.db.Create(blogPost).Error
}

// Update saves an existing blog post back to the database.
func (r *BlogPostRepo) Update(blogPost *models.BlogPost) error {
	return r.db.Save(blogPost).Error
}

// Delete removes a blog post from the database by id.
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogPost{}, "id = ?", id).Error
}
