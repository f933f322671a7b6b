// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ColumnType is the declared value type of a table column. It is
// descriptive schema; rows are only checked against it in strict mode.
type ColumnType string

const (
	ColumnTypeText    ColumnType = "text"
	ColumnTypeNumber  ColumnType = "number"
	ColumnTypeDate    ColumnType = "date"
	ColumnTypeBoolean ColumnType = "boolean"
)

// Valid reports whether t is one of the known column types.
func (t ColumnType) Valid() bool {
	switch t {
	case ColumnTypeText, ColumnTypeNumber, ColumnTypeDate, ColumnTypeBoolean:
		return true
	}
	return false
}

// Column describes one position of a table structure.
type Column struct {
	Name     string     `json:"name"`
	Type     ColumnType `json:"type"`
	Required bool       `json:"required"`
	Unique   bool       `json:"unique"`
}

// TableStructure is a named, ordered column schema. Table subcategories
// reference one structure; every row bound to such a subcategory must have
// exactly len(Columns) cells, matched by position.
type TableStructure struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Columns     []Column  `json:"columns"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RowCell is one positional value of a table row. Cells flagged as links
// must carry a link type so the client knows how to open them.
type RowCell struct {
	Row      string   `json:"row"`
	IsLink   bool     `json:"isLink"`
	LinkType LinkType `json:"link_type,omitempty"`
}

// TableRow is one row of tabular content bound to a table-typed
// subcategory. TableStructureSlug denormalizes which structure the row was
// validated against.
type TableRow struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	CategoryID         uuid.UUID `json:"parentCategory"`
	CategorySlug       string    `json:"parentSlug"`
	SubcategoryID      uuid.UUID `json:"subCategory"`
	SubcategorySlug    string    `json:"subCategorySlug"`
	TableStructureID   uuid.UUID `json:"tableStructure"`
	TableStructureSlug string    `json:"tableStructureSlug"`
	RowData            []RowCell `json:"rowData"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
