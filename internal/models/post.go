// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the publishing state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// Valid reports whether s is one of the known post statuses.
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

// Post is a rich article bound to a post-typed subcategory. The slug is
// unique across all posts, not just within its subcategory, because post
// URLs on the site are /post/{slug}. Content is an opaque rich-text payload
// produced by the editor; the backend stores it verbatim.
type Post struct {
	ID                uuid.UUID       `json:"id"`
	Title             string          `json:"title"`
	Slug              string          `json:"slug"`
	Description       string          `json:"description,omitempty"`
	Content           json.RawMessage `json:"content"`
	ImageURL          string          `json:"imageUrl,omitempty"`
	CategoryID        uuid.UUID       `json:"category"`
	CategorySlug      string          `json:"categorySlug"`
	SubcategoryID     uuid.UUID       `json:"subCategory"`
	SubcategorySlug   string          `json:"subCategorySlug"`
	Tags              []string        `json:"tags"`
	Status            PostStatus      `json:"status"`
	Type              string          `json:"type"`
	VisibleInCarousel bool            `json:"isVisibleInCarousel"`
	SendNotification  bool            `json:"sendNotification"`
	PublishedAt       *time.Time      `json:"publishedAt,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// IsPublished returns true if the post is in published status.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}
