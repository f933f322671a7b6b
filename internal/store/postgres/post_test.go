// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"rajkhabar/internal/models"
	"rajkhabar/internal/store"
)

func TestPostStoreJSONRoundTrip(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	ctx := context.Background()

	slug := "it-post-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		if _, err := db.Exec(`DELETE FROM posts WHERE slug = $1`, slug); err != nil {
			t.Errorf("cleanup post %s: %v", slug, err)
		}
	})

	content := json.RawMessage(`{"blocks":[{"type":"paragraph","text":"hello"}]}`)
	created, err := s.Create(ctx, &models.Post{
		Title:           "Integration Post",
		Slug:            slug,
		Content:         content,
		CategoryID:      uuid.New(),
		CategorySlug:    "it-cat",
		SubcategoryID:   uuid.New(),
		SubcategorySlug: "it-sub",
		Tags:            []string{"exam", "2025"},
		Status:          models.PostStatusDraft,
		Type:            "post",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := s.FindBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("expected post, got nil")
	}
	if string(found.Content) != string(content) {
		t.Errorf("content: got %s", found.Content)
	}
	if len(found.Tags) != 2 || found.Tags[0] != "exam" {
		t.Errorf("tags: got %v", found.Tags)
	}
	if found.PublishedAt != nil {
		t.Error("draft post should have nil published_at")
	}

	// Status filter sees the draft under its subcategory.
	n, err := s.CountFiltered(ctx, store.PostFilter{
		Status:        models.PostStatusDraft,
		SubcategoryID: created.SubcategoryID,
	})
	if err != nil {
		t.Fatalf("CountFiltered: %v", err)
	}
	if n != 1 {
		t.Errorf("CountFiltered: got %d, want 1", n)
	}
}
