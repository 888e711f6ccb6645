package api

import (
	"github.com/jinunyachhyon/folio/internal/index"
	"github.com/jinunyachhyon/folio/internal/models"
	"github.com/jinunyachhyon/folio/internal/siteservice"
)

// PostListing is the blog listing response (aliased from the domain layer).
type PostListing = siteservice.PostListing

// PostDetail is the full post response type (aliased from the domain layer).
type PostDetail = siteservice.PostDetail

// PublicationListing is the publication listing response.
type PublicationListing = siteservice.PublicationListing

// ExperienceListing is the experience page response.
type ExperienceListing = siteservice.ExperienceListing

// SeriesResponse wraps the series list.
type SeriesResponse struct {
	Series []siteservice.SeriesItem `json:"series" validate:"required"`
}

// HeadingsResponse wraps a post's table of contents.
type HeadingsResponse struct {
	Slug     string           `json:"slug" example:"multimodal-learning" validate:"required"`
	Headings []models.Heading `json:"headings" validate:"required"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []index.SearchResult `json:"results" validate:"required"`
}

// TagsResponse wraps tag usage counts.
type TagsResponse struct {
	Tags []index.TagCount `json:"tags" validate:"required"`
}

// PublicationTagsResponse wraps the publication tag list.
type PublicationTagsResponse struct {
	Tags []string `json:"tags" example:"NLP,Computer Vision" validate:"required"`
}
