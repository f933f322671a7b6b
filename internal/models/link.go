// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package models

// LinkType says how the mobile client should open a link.
type LinkType string

const (
	LinkTypeWebView  LinkType = "web-view"
	LinkTypeExternal LinkType = "external"
	LinkTypePDF      LinkType = "pdf"
	LinkTypeInternal LinkType = "internal"
)

// Valid reports whether t is one of the known link types.
func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeWebView, LinkTypeExternal, LinkTypePDF, LinkTypeInternal:
		return true
	}
	return false
}

// Link is a URL plus the client-side open behavior.
type Link struct {
	Link     string   `json:"link"`
	LinkType LinkType `json:"link_type,omitempty"`
}
