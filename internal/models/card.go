// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Card is a small display unit (heading plus up to two fields and a link)
// bound to a card-typed subcategory. Slug is unique within the
// (category, subcategory) pair.
type Card struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	TopField        string    `json:"topField,omitempty"`
	CardHeading     string    `json:"cardHeading"`
	MiddleField     string    `json:"middleField,omitempty"`
	Link            *Link     `json:"link,omitempty"`
	CategoryID      uuid.UUID `json:"parentCategory"`
	CategorySlug    string    `json:"parentSlug"`
	SubcategoryID   uuid.UUID `json:"subCategory"`
	SubcategorySlug string    `json:"subCategorySlug"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
