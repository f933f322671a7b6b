// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"rajkhabar/internal/models"
)

func TestBulkDeleteRejectsMalformedBatch(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	p, err := svc.CreatePost(ctx, CreatePostRequest{
		Title: "Victim", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(),
	})
	require.NoError(t, err)

	// One bad id rejects the whole batch before anything is deleted.
	_, err = svc.BulkDeletePosts(ctx, []string{p.ID.String(), "not-a-uuid"})
	require.ErrorIs(t, err, ErrInvalidID)

	got, err := svc.GetPost(ctx, p.Slug)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	_, err = svc.BulkDeletePosts(ctx, nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestBulkDeletePostsPartialFailure(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	p, err := svc.CreatePost(ctx, CreatePostRequest{
		Title: "Keeper", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(),
	})
	require.NoError(t, err)
	ghost := uuid.New()

	res, err := svc.BulkDeletePosts(ctx, []string{p.ID.String(), ghost.String()})
	require.NoError(t, err)
	require.Equal(t, 2, res.Requested)
	require.Equal(t, 1, res.Deleted)
	require.Len(t, res.Errors, 1)
	require.Equal(t, ghost.String(), res.Errors[0].ID)
}

func TestBulkDeleteCategoriesGuarded(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, CreatePostRequest{
		Title: "Bound", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(),
	})
	require.NoError(t, err)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	id := cats[0].ID.String()

	// Guarded: the category has subcategories and a post.
	res, err := svc.BulkDeleteCategories(ctx, []string{id}, false)
	require.NoError(t, err)
	require.Equal(t, 0, res.Deleted)
	require.Len(t, res.Errors, 1)
	require.Contains(t, res.Errors[0].Message, "News")

	// The service still has the category.
	cats, err = svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)

	// Forced: everything under it goes too.
	res, err = svc.BulkDeleteCategories(ctx, []string{id}, true)
	require.NoError(t, err)
	require.Equal(t, 1, res.Deleted)
	require.Equal(t, int64(3), res.DeletedSubcategories)
	require.Equal(t, int64(1), res.DeletedPosts)

	cats, err = svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Empty(t, cats)
}

func TestBulkDeleteSubcategoriesForceCascades(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := svc.CreatePost(ctx, CreatePostRequest{
			Title: title, CategorySlug: "news", SubcategorySlug: "headlines",
			Content: postContent(),
		})
		require.NoError(t, err)
	}

	subs, err := svc.ListSubcategories(ctx, "news")
	require.NoError(t, err)
	var headlinesID string
	for _, sub := range subs {
		if sub.Slug == "headlines" {
			headlinesID = sub.ID.String()
		}
	}
	require.NotEmpty(t, headlinesID)

	res, err := svc.BulkDeleteSubcategories(ctx, []string{headlinesID}, false)
	require.NoError(t, err)
	require.Equal(t, 0, res.Deleted)

	res, err = svc.BulkDeleteSubcategories(ctx, []string{headlinesID}, true)
	require.NoError(t, err)
	require.Equal(t, 1, res.Deleted)
	require.Equal(t, int64(3), res.DeletedPosts)
}

func TestBulkDeleteTableStructuresAlwaysGuarded(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	structures, err := svc.ListTableStructures(ctx)
	require.NoError(t, err)
	require.Len(t, structures, 1)
	id := structures[0].ID.String()

	// "results" is referenced by the exam-results subcategory; force is not
	// part of the structure contract at all.
	res, err := svc.BulkDeleteTableStructures(ctx, []string{id})
	require.NoError(t, err)
	require.Equal(t, 0, res.Deleted)
	require.Len(t, res.Errors, 1)

	// Remove the referencing subcategory and retry.
	subs, err := svc.ListSubcategories(ctx, "news")
	require.NoError(t, err)
	for _, sub := range subs {
		if sub.Slug == "exam-results" {
			_, err = svc.BulkDeleteSubcategories(ctx, []string{sub.ID.String()}, false)
			require.NoError(t, err)
		}
	}

	res, err = svc.BulkDeleteTableStructures(ctx, []string{id})
	require.NoError(t, err)
	require.Equal(t, 1, res.Deleted)
}

func TestBulkDeleteTableStructuresGuardedByOrphanedRows(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	row, err := svc.CreateTableRow(ctx, CreateTableRowRequest{
		Name: "SSC Result", CategorySlug: "news", SubcategorySlug: "exam-results",
		RowData: []models.RowCell{{Row: "SSC"}, {Row: "2025-06-01"}},
	})
	require.NoError(t, err)

	// The single subcategory delete orphans the row instead of cascading.
	_, err = svc.DeleteSubcategory(ctx, "exam-results")
	require.NoError(t, err)

	structures, err := svc.ListTableStructures(ctx)
	require.NoError(t, err)
	require.Len(t, structures, 1)
	id := structures[0].ID.String()

	// The orphaned row still references the structure and blocks deletion.
	res, err := svc.BulkDeleteTableStructures(ctx, []string{id})
	require.NoError(t, err)
	require.Equal(t, 0, res.Deleted)
	require.Len(t, res.Errors, 1)

	// Remove the row and the structure becomes deletable.
	rowRes, err := svc.BulkDeleteTableRows(ctx, []string{row.ID.String()})
	require.NoError(t, err)
	require.Equal(t, 1, rowRes.Deleted)

	res, err = svc.BulkDeleteTableStructures(ctx, []string{id})
	require.NoError(t, err)
	require.Equal(t, 1, res.Deleted)
}

func TestUniversalBulkDeleteDispatch(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	card, err := svc.CreateCard(ctx, CreateCardRequest{
		Name: "Job Card", CardHeading: "Apply Now",
		CategorySlug: "news", SubcategorySlug: "jobs",
	})
	require.NoError(t, err)

	res, err := svc.UniversalBulkDelete(ctx, "cards", []string{card.ID.String()}, false)
	require.NoError(t, err)
	require.Equal(t, 1, res.Deleted)

	_, err = svc.UniversalBulkDelete(ctx, "widgets", []string{uuid.NewString()}, false)
	require.ErrorIs(t, err, ErrUnsupportedContentType)
}

func TestDependencyErrorCarriesCounts(t *testing.T) {
	counts := DependentCounts{Subcategories: 2, Posts: 5}
	dep := &DependencyError{Entity: "category", Name: "News", Slug: "news", Counts: counts}
	require.ErrorIs(t, dep, ErrHasDependents)
	require.Equal(t, 7, counts.Total())
	require.Contains(t, dep.Error(), "News")

	wrapped := fmt.Errorf("delete category: %w", dep)
	var target *DependencyError
	require.True(t, errors.As(wrapped, &target))
	require.Equal(t, 5, target.Counts.Posts)
}
