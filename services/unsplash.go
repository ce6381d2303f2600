package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	unsplashBaseURL   = "https://api.unsplash.com"
	imageFetchTimeout = 5 * time.Second
)

// Image describes a single decorative image for a post or project. Either a
// real stock photo or a deterministic placeholder.
type Image struct {
	ID        string `json:"id,omitempty"`
	URL       string `json:"url"`
	Small     string `json:"small"`
	Thumb     string `json:"thumb,omitempty"`
	Alt       string `json:"alt"`
	Author    string `json:"author,omitempty"`
	AuthorURL string `json:"authorUrl,omitempty"`
}

// unsplashPhotoResponse mirrors the fields we use from the Unsplash
// random-photo endpoint.
type unsplashPhotoResponse struct {
	ID   string `json:"id"`
	URLs struct {
		Regular string `json:"regular"`
		Small   string `json:"small"`
		Thumb   string `json:"thumb"`
	} `json:"urls"`
	AltDescription string `json:"alt_description"`
	User           struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
}

// ImageClient looks up stock photos for search queries. Lookups are
// best-effort: a missing credential, network failure, timeout or bad payload
// yields a placeholder image, never an error. Results are not cached and
// failed lookups are not retried.
type ImageClient struct {
	logger    zerolog.Logger
	client    *http.Client
	baseURL   string
	accessKey string
}

// NewImageClient builds an ImageClient. An empty accessKey is allowed and
// makes every lookup return a placeholder.
func NewImageClient(accessKey string) *ImageClient {
	logger := log.With().Str("serviceName", "imageClient").Logger()

	return &ImageClient{
		logger:    logger,
		client:    &http.Client{Timeout: imageFetchTimeout},
		baseURL:   unsplashBaseURL,
		accessKey: accessKey,
	}
}

// Fetch returns one image for the given query.
func (c *ImageClient) Fetch(query string) Image {
	if c.accessKey == "" {
		c.logger.Warn().Msg("Unsplash access key not configured, using placeholder image")
		return PlaceholderImage(query)
	}

	reqURL := fmt.Sprintf("%s/photos/random?query=%s&client_id=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.accessKey))

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error().Err(err).Str("query", query).Msg("Failed to build image request")
		return PlaceholderImage(query)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("query", query).Msg("Image lookup failed, using placeholder")
		return PlaceholderImage(query)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("query", query).
			Msg("Image lookup returned non-success status, using placeholder")
		return PlaceholderImage(query)
	}

	var photo unsplashPhotoResponse
	if err := json.NewDecoder(resp.Body).Decode(&photo); err != nil {
		c.logger.Warn().Err(err).Str("query", query).Msg("Failed to decode image response, using placeholder")
		return PlaceholderImage(query)
	}

	alt := photo.AltDescription
	if alt == "" {
		alt = query
	}

	return Image{
		ID:        photo.ID,
		URL:       photo.URLs.Regular,
		Small:     photo.URLs.Small,
		Thumb:     photo.URLs.Thumb,
		Alt:       alt,
		Author:    photo.User.Name,
		AuthorURL: photo.User.Links.HTML,
	}
}

// PlaceholderImage builds the deterministic fallback image descriptor for a
// query, embedding the query text in the generated URLs.
func PlaceholderImage(query string) Image {
	text := url.QueryEscape(query)
	return Image{
		URL:   fmt.Sprintf("https://via.placeholder.com/800x500/6366f1/ffffff?text=%s", text),
		Small: fmt.Sprintf("https://via.placeholder.com/400x250/6366f1/ffffff?text=%s", text),
		Alt:   query,
	}
}
