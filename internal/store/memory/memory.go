// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// Package memory provides in-memory store implementations backed by
// mutex-guarded maps. Used by unit tests and local development; data does
// not survive a restart.
package memory

import (
	"sync/atomic"

	"rajkhabar/internal/store"
)

// seqCounter orders records across all collections. Map iteration is
// random, so listings sort on an insertion sequence instead of relying on
// CreatedAt, which can collide within a test run.
var seqCounter atomic.Int64

func nextSeq() int64 { return seqCounter.Add(1) }

// NewStores returns a complete store.Stores bundle backed by memory.
func NewStores() store.Stores {
	return store.Stores{
		Categories:      NewCategoryStore(),
		Subcategories:   NewSubcategoryStore(),
		TableStructures: NewTableStructureStore(),
		Posts:           NewPostStore(),
		Cards:           NewCardStore(),
		TableRows:       NewTableRowStore(),
		Headers:         NewHeaderComponentStore(),
		SocialLinks:     NewSocialLinkStore(),
		Devices:         NewDeviceStore(),
	}
}
