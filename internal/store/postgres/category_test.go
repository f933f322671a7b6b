// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"rajkhabar/internal/models"
)

func cleanCategoryBySlug(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		if _, err := db.Exec(`DELETE FROM categories WHERE slug = $1`, slug); err != nil {
			t.Errorf("cleanup category %s: %v", slug, err)
		}
	}
}

func TestCategoryStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	ctx := context.Background()

	slug := "it-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategoryBySlug(t, db, slug) })

	created, err := s.Create(ctx, &models.Category{
		Name:          "Integration Category",
		Slug:          slug,
		Description:   "store test",
		VisibleOnHome: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if !created.VisibleOnHome {
		t.Error("visible_on_home not persisted")
	}

	found, err := s.FindBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("expected category, got nil")
	}
	if found.ID != created.ID {
		t.Errorf("id: got %s, want %s", found.ID, created.ID)
	}

	// Missing rows come back as (nil, nil).
	found, err = s.FindBySlug(ctx, slug+"-missing")
	if err != nil {
		t.Fatalf("FindBySlug missing: %v", err)
	}
	if found != nil {
		t.Error("expected nil for missing slug")
	}
}

func TestCategoryStoreParentReference(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	ctx := context.Background()

	parentSlug := "it-parent-" + uuid.NewString()[:8]
	childSlug := "it-child-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCategoryBySlug(t, db, childSlug, parentSlug) })

	parent, err := s.Create(ctx, &models.Category{Name: "Parent", Slug: parentSlug})
	if err != nil {
		t.Fatalf("Create parent: %v", err)
	}
	child, err := s.Create(ctx, &models.Category{
		Name:       "Child",
		Slug:       childSlug,
		ParentID:   &parent.ID,
		ParentSlug: parent.Slug,
	})
	if err != nil {
		t.Fatalf("Create child: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != parent.ID {
		t.Error("parent reference not persisted")
	}

	// Detach the child.
	child.ParentID = nil
	child.ParentSlug = ""
	if err := s.Update(ctx, child); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, err := s.FindByID(ctx, child.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if updated.ParentID != nil {
		t.Error("expected nil parent after detach")
	}
}

func TestSubcategoryStoreScopedSlug(t *testing.T) {
	db := testDB(t)
	cats := NewCategoryStore(db)
	subs := NewSubcategoryStore(db)
	ctx := context.Background()

	slugA := "it-scope-a-" + uuid.NewString()[:8]
	slugB := "it-scope-b-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		// No FK cascade: content and subcategory rows are removed by the
		// service layer in production, so tests clean both tables.
		for _, slug := range []string{slugA, slugB} {
			if _, err := db.Exec(`DELETE FROM subcategories WHERE parent_slug = $1`, slug); err != nil {
				t.Errorf("cleanup subcategories %s: %v", slug, err)
			}
		}
		cleanCategoryBySlug(t, db, slugA, slugB)
	})

	a, err := cats.Create(ctx, &models.Category{Name: "A", Slug: slugA})
	if err != nil {
		t.Fatalf("Create category A: %v", err)
	}
	b, err := cats.Create(ctx, &models.Category{Name: "B", Slug: slugB})
	if err != nil {
		t.Fatalf("Create category B: %v", err)
	}

	// Same subcategory slug under two different parents.
	for _, parent := range []*models.Category{a, b} {
		_, err := subs.Create(ctx, &models.Subcategory{
			Name:       "Headlines",
			Slug:       "headlines",
			Type:       models.SubcategoryTypePost,
			ParentID:   parent.ID,
			ParentSlug: parent.Slug,
		})
		if err != nil {
			t.Fatalf("Create subcategory under %s: %v", parent.Slug, err)
		}
	}

	found, err := subs.FindBySlug(ctx, "headlines", a.ID)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil || found.ParentID != a.ID {
		t.Fatal("scoped lookup returned wrong subcategory")
	}

	n, err := subs.DeleteByParent(ctx, a.ID)
	if err != nil {
		t.Fatalf("DeleteByParent: %v", err)
	}
	if n != 1 {
		t.Errorf("DeleteByParent: got %d, want 1", n)
	}
}
