package api

import (
	"github.com/rpupo63/portfolio-blog-backend/config"
	"github.com/rpupo63/portfolio-blog-backend/database"
	"github.com/rpupo63/portfolio-blog-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, cfg map[string]string) *routeHandlers {
	images := services.NewImageClient(config.GetString(cfg, "UNSPLASH_ACCESS_KEY", ""))

	return &routeHandlers{
		blogPostHandler: newBlogPostHandler(database.BlogPostRepo(), images),
		projectHandler:  newProjectHandler(database.ProjectRepo()),
	}
}
