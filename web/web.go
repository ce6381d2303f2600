// Package web serves the server-rendered presentation pages. Pages fetch
// their data from the JSON API over HTTP at request time and render fallback
// states when the fetch fails or the resource is absent.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-blog-backend/models"
	"github.com/rpupo63/portfolio-blog-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageFetchTimeout = 5 * time.Second

var errNotFound = errors.New("resource not found")

type Handler struct {
	logger  zerolog.Logger
	client  *http.Client
	baseURL string
	tmpl    *template.Template
}

// NewHandler builds the page handler. baseURL is the address the pages use
// for server-side self-calls to the JSON API.
func NewHandler(baseURL string) *Handler {
	logger := log.With().Str("handlerName", "web").Logger()

	funcs := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
	}

	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))

	return &Handler{
		logger:  logger,
		client:  &http.Client{Timeout: pageFetchTimeout},
		baseURL: baseURL,
		tmpl:    tmpl,
	}
}

// Routes registers the page routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.home())
	r.Get("/blog", h.blogIndex())
	r.Get("/blog/{blogID}", h.blogShow())
	r.Get("/about/projects", h.projects())
	r.Get("/about/contacts", h.contacts())
}

type blogIndexData struct {
	Posts []blogCard
}

type blogCard struct {
	Post  models.BlogPost
	Tags  []string
	Image services.Image
}

type blogShowData struct {
	Post  models.BlogPost
	Tags  []string
	Image services.Image
}

type projectsData struct {
	Projects []models.Project
}

func (h *Handler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, http.StatusOK, "home.html", nil)
	}
}

func (h *Handler) blogIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var collection struct {
			Blogs []models.BlogPost `json:"blogs"`
		}
		if err := h.getJSON("/api/blog", &collection); err != nil {
			h.logger.Error().Err(err).Msg("Failed to load blog posts for index page")
			h.render(w, http.StatusInternalServerError, "error.html", nil)
			return
		}

		cards := make([]blogCard, 0, len(collection.Blogs))
		for i, post := range collection.Blogs {
			// Cycle through a small pool of stock placeholder images so the
			// list renders without any external lookup per post.
			imageID := (i % 20) + 1
			cards = append(cards, blogCard{
				Post: post,
				Tags: services.SplitTags(post.Tags),
				Image: services.Image{
					URL:   fmt.Sprintf("https://picsum.photos/800/500?random=%d", imageID),
					Small: fmt.Sprintf("https://picsum.photos/400/250?random=%d", imageID),
					Alt:   post.Title,
				},
			})
		}

		h.render(w, http.StatusOK, "blog_index.html", blogIndexData{Posts: cards})
	}
}

func (h *Handler) blogShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID := chi.URLParam(r, "blogID")

		var post models.BlogPost
		err := h.getJSON("/api/blog/"+blogID, &post)
		if errors.Is(err, errNotFound) {
			h.render(w, http.StatusNotFound, "notfound.html", nil)
			return
		}
		if err != nil {
			h.logger.Error().Err(err).Str("blogID", blogID).Msg("Failed to load blog post for detail page")
			h.render(w, http.StatusInternalServerError, "error.html", nil)
			return
		}

		tags := services.SplitTags(post.Tags)
		image := services.PlaceholderImage(services.GenerateImageQuery(post.Title, tags))

		h.render(w, http.StatusOK, "blog_show.html", blogShowData{
			Post:  post,
			Tags:  tags,
			Image: image,
		})
	}
}

func (h *Handler) projects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var collection struct {
			Projects []models.Project `json:"projects"`
		}
		if err := h.getJSON("/api/projects", &collection); err != nil {
			h.logger.Error().Err(err).Msg("Failed to load projects page")
			h.render(w, http.StatusInternalServerError, "error.html", nil)
			return
		}

		h.render(w, http.StatusOK, "projects.html", projectsData{Projects: collection.Projects})
	}
}

func (h *Handler) contacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, http.StatusOK, "contacts.html", nil)
	}
}

// getJSON fetches baseURL+path and decodes the JSON body into dst. A 404
// response maps to errNotFound; any other non-success status is an error.
func (h *Handler) getJSON(path string, dst any) error {
	resp, err := h.client.Get(h.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error().Err(err).Str("template", name).Msg("Failed to render template")
	}
}
