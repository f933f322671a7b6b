// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SubcategoryType gates which content kind may bind to a subcategory.
type SubcategoryType string

const (
	SubcategoryTypePost  SubcategoryType = "post"
	SubcategoryTypeTable SubcategoryType = "table"
	SubcategoryTypeCard  SubcategoryType = "card"
)

// Valid reports whether t is one of the known subcategory types.
func (t SubcategoryType) Valid() bool {
	switch t {
	case SubcategoryTypePost, SubcategoryTypeTable, SubcategoryTypeCard:
		return true
	}
	return false
}

// Subcategory is a child section under exactly one category. Its slug is
// unique within the parent, not globally. Type is fixed at creation: all
// content validation keys off it. Table subcategories carry a reference to
// the table structure their rows must conform to.
type Subcategory struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Slug               string          `json:"slug"`
	Description        string          `json:"description,omitempty"`
	Type               SubcategoryType `json:"type"`
	ParentID           uuid.UUID       `json:"parentCategory"`
	ParentSlug         string          `json:"parentSlug"`
	TableStructureID   *uuid.UUID      `json:"tableStructure,omitempty"`
	TableStructureSlug string          `json:"tableStructureSlug,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}
