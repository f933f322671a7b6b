// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// Package postgres implements the store interfaces on PostgreSQL via
// database/sql. Document-shaped fields (column schemas, row cells, tags,
// editor payloads) live in JSONB columns; slug uniqueness scopes are
// enforced by unique indexes in the migrations.
package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"rajkhabar/internal/store"
)

// NewStores returns a complete store.Stores bundle over the given
// database handle.
func NewStores(db *sql.DB) store.Stores {
	return store.Stores{
		Categories:      NewCategoryStore(db),
		Subcategories:   NewSubcategoryStore(db),
		TableStructures: NewTableStructureStore(db),
		Posts:           NewPostStore(db),
		Cards:           NewCardStore(db),
		TableRows:       NewTableRowStore(db),
		Headers:         NewHeaderComponentStore(db),
		SocialLinks:     NewSocialLinkStore(db),
		Devices:         NewDeviceStore(db),
	}
}

// toJSON marshals v for a JSONB parameter. nil input becomes SQL NULL.
func toJSON(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

// fromJSON unmarshals a JSONB column into dst. NULL leaves dst untouched.
func fromJSON(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("unmarshal jsonb: %w", err)
	}
	return nil
}

// uuidStrings converts ids for an ANY($1::uuid[]) parameter.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
