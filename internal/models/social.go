// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialLinkType distinguishes social profiles from policy pages in the
// link directory.
type SocialLinkType string

const (
	SocialLinkTypeSocial SocialLinkType = "social"
	SocialLinkTypePolicy SocialLinkType = "policy"
)

// Valid reports whether t is one of the known social link types.
func (t SocialLinkType) Valid() bool {
	return t == SocialLinkTypeSocial || t == SocialLinkTypePolicy
}

// SocialLink is a flat directory entry (social profile or policy page)
// shown in the app footer. Unrelated to the taxonomy.
type SocialLink struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Type      SocialLinkType `json:"type"`
	Link      string         `json:"link"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
