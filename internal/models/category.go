// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a top-level section of the site (e.g. "news", "sports").
// A category may optionally point at another category as its parent,
// forming a tree. ParentSlug is a denormalized read cache of the parent's
// slug; ParentID is the authoritative reference.
type Category struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description,omitempty"`
	IconURL       string     `json:"iconUrl,omitempty"`
	ParentID      *uuid.UUID `json:"parentCategory,omitempty"`
	ParentSlug    string     `json:"parentSlug,omitempty"`
	VisibleOnHome bool       `json:"isVisibleOnHome"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	// Virtual fields populated by tree/overview queries.
	Subcategories []Subcategory `json:"subcategories,omitempty"`
	Parent        *Category     `json:"parent,omitempty"`
}
