// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"errors"
	"fmt"
)

// Sentinel errors for every failure kind the engine can report. Callers
// classify with errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrCategoryNotFound indicates a category slug or id did not resolve.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSubcategoryNotFound indicates a subcategory did not resolve within
	// the given parent category.
	ErrSubcategoryNotFound = errors.New("subcategory not found")

	// ErrTableStructureNotFound indicates a table structure slug or id did
	// not resolve.
	ErrTableStructureNotFound = errors.New("table structure not found")

	// ErrContentNotFound indicates a content item (post, card, table row,
	// header component, social link, device) did not resolve.
	ErrContentNotFound = errors.New("content not found")

	// ErrDuplicateSlug indicates the slug is already taken within its
	// uniqueness scope.
	ErrDuplicateSlug = errors.New("slug already exists")

	// ErrTypeMismatch indicates the target subcategory's type does not
	// admit the content kind being written.
	ErrTypeMismatch = errors.New("subcategory type mismatch")

	// ErrHeaderExists indicates the subcategory already has its one
	// permitted header component.
	ErrHeaderExists = errors.New("header component already exists for subcategory")

	// ErrColumnCountMismatch indicates a row's cell count does not equal
	// the structure's column count.
	ErrColumnCountMismatch = errors.New("row data does not match column count")

	// ErrMissingLinkType indicates a link cell without a link type.
	ErrMissingLinkType = errors.New("link cell missing link type")

	// ErrInvalidID indicates a bulk request id that is not a valid uuid.
	// The whole batch is rejected before any deletion runs.
	ErrInvalidID = errors.New("invalid id format")

	// ErrUnsupportedContentType indicates an unrecognized universal bulk
	// delete tag.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrHasDependents indicates a guarded delete was blocked by dependent
	// entities. Usually wrapped in a DependencyError carrying the counts.
	ErrHasDependents = errors.New("entity has dependent content")

	// ErrValidation indicates missing or malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrNotifierUnavailable indicates no push gateway is configured.
	ErrNotifierUnavailable = errors.New("notification gateway not configured")
)

// DependentCounts tallies direct dependents per kind for guarded deletes.
type DependentCounts struct {
	Subcategories    int `json:"subcategories,omitempty"`
	Posts            int `json:"posts"`
	Cards            int `json:"cards"`
	TableRows        int `json:"tableRows"`
	HeaderComponents int `json:"headerComponents"`
}

// Total returns the sum of all dependent counts.
func (c DependentCounts) Total() int {
	return c.Subcategories + c.Posts + c.Cards + c.TableRows + c.HeaderComponents
}

// DependencyError reports why a guarded delete was refused: the entity, its
// human-readable name, and the per-kind dependent counts. For table
// structures, Dependents lists the names of referencing entities instead.
type DependencyError struct {
	Entity     string          `json:"entity"`
	Name       string          `json:"name"`
	Slug       string          `json:"slug"`
	Counts     DependentCounts `json:"counts"`
	Dependents []string        `json:"dependents,omitempty"`
}

func (e *DependencyError) Error() string {
	if len(e.Dependents) > 0 {
		return fmt.Sprintf("%s %q is referenced by %d dependent(s)", e.Entity, e.Name, len(e.Dependents))
	}
	return fmt.Sprintf("%s %q has dependent content (%d subcategories, %d posts, %d cards, %d table rows, %d header components)",
		e.Entity, e.Name, e.Counts.Subcategories, e.Counts.Posts, e.Counts.Cards, e.Counts.TableRows, e.Counts.HeaderComponents)
}

// Unwrap lets errors.Is(err, ErrHasDependents) match.
func (e *DependencyError) Unwrap() error { return ErrHasDependents }
