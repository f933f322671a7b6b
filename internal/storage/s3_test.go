// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package storage

import "testing"

func TestListPrefix(t *testing.T) {
	cases := []struct {
		folder string
		want   string
	}{
		{"uploads", "uploads/"},
		{"uploads/", "uploads/"},
		{"a/b", "a/b/"},
		// No folder lists the whole bucket, not the bogus "/" prefix.
		{"", ""},
	}
	for _, tc := range cases {
		if got := listPrefix(tc.folder); got != tc.want {
			t.Errorf("listPrefix(%q) = %q, want %q", tc.folder, got, tc.want)
		}
	}
}

func TestFileURLAndExtractKey(t *testing.T) {
	c := &Client{
		endpoint:  "https://s3.example.com",
		bucket:    "media",
		publicURL: "https://cdn.example.com",
	}

	url := c.FileURL("uploads/a.jpg")
	if url != "https://cdn.example.com/uploads/a.jpg" {
		t.Errorf("FileURL = %q", url)
	}

	key, ok := c.ExtractKey(url)
	if !ok || key != "uploads/a.jpg" {
		t.Errorf("ExtractKey(%q) = %q, %v", url, key, ok)
	}

	// Path-style URLs resolve even when a CDN is configured.
	key, ok = c.ExtractKey("https://s3.example.com/media/uploads/b.pdf")
	if !ok || key != "uploads/b.pdf" {
		t.Errorf("ExtractKey path-style = %q, %v", key, ok)
	}

	if _, ok := c.ExtractKey("https://elsewhere.example/x.jpg"); ok {
		t.Error("ExtractKey matched a foreign URL")
	}
}

func TestNewWithoutCredentials(t *testing.T) {
	c, err := New("", "ap-south-1", "", "", "media", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != nil {
		t.Error("expected nil client without endpoint and credentials")
	}
}
