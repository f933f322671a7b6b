// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// HeaderComponent is the single header row shown above a table
// subcategory's content (e.g. a "download full list" PDF link). At most one
// header component may exist per subcategory.
type HeaderComponent struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Heading         string    `json:"heading"`
	Link            Link      `json:"link"`
	CategoryID      uuid.UUID `json:"parentCategory"`
	CategorySlug    string    `json:"parentSlug"`
	SubcategoryID   uuid.UUID `json:"subCategory"`
	SubcategorySlug string    `json:"subCategorySlug"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
