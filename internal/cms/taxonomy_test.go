// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"rajkhabar/internal/models"
)

func TestCreateCategoryGeneratesSlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Sports & Games"})
	require.NoError(t, err)
	require.Equal(t, "sports-games", c.Slug)
	require.NotEqual(t, "", c.ID.String())
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "News", Slug: "news"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Other News", Slug: "news"})
	require.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestCreateCategorySelfParent(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateCategory(context.Background(), CreateCategoryRequest{
		Name: "News", Slug: "news", ParentSlug: "news",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateCategoryReparentCycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "A", Slug: "a"})
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, CreateCategoryRequest{Name: "B", Slug: "b", ParentSlug: "a"})
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, CreateCategoryRequest{Name: "C", Slug: "c", ParentSlug: "b"})
	require.NoError(t, err)

	// a -> c would close the loop a -> b -> c -> a.
	parent := "c"
	_, err = svc.UpdateCategory(ctx, "a", UpdateCategoryRequest{ParentSlug: &parent})
	require.ErrorIs(t, err, ErrValidation)

	// Detaching is always allowed.
	root := ""
	b, err := svc.UpdateCategory(ctx, "b", UpdateCategoryRequest{ParentSlug: &root})
	require.NoError(t, err)
	require.Nil(t, b.ParentID)
}

func TestSubcategorySlugScopedToParent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, slug := range []string{"news", "sports"} {
		_, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: slug, Slug: slug})
		require.NoError(t, err)
	}

	// The same subcategory slug may exist under different parents.
	for _, parent := range []string{"news", "sports"} {
		_, err := svc.CreateSubcategory(ctx, CreateSubcategoryRequest{
			Name: "Latest", Slug: "latest", Type: models.SubcategoryTypePost, ParentSlug: parent,
		})
		require.NoError(t, err)
	}

	// But not twice under the same parent.
	_, err := svc.CreateSubcategory(ctx, CreateSubcategoryRequest{
		Name: "Latest Again", Slug: "latest", Type: models.SubcategoryTypePost, ParentSlug: "news",
	})
	require.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestCreateSubcategoryTableRequiresStructure(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "News", Slug: "news"})
	require.NoError(t, err)

	_, err = svc.CreateSubcategory(ctx, CreateSubcategoryRequest{
		Name: "Results", Slug: "results", Type: models.SubcategoryTypeTable, ParentSlug: "news",
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateSubcategory(ctx, CreateSubcategoryRequest{
		Name: "Results", Slug: "results", Type: models.SubcategoryTypeTable,
		ParentSlug: "news", TableStructureSlug: "missing",
	})
	require.ErrorIs(t, err, ErrTableStructureNotFound)
}

func TestDeleteCategoryCascadesSubcategoriesButOrphansContent(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	p, err := svc.CreatePost(ctx, CreatePostRequest{
		Title: "Hello", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(),
	})
	require.NoError(t, err)

	res, err := svc.DeleteCategory(ctx, "news")
	require.NoError(t, err)
	require.Equal(t, int64(3), res.DeletedSubcategories)

	// The bound post survives as an orphan.
	got, err := svc.GetPost(ctx, p.Slug)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	_, err = svc.DeleteCategory(ctx, "news")
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryTree(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Regional", Slug: "regional", ParentSlug: "news"})
	require.NoError(t, err)

	tree, err := svc.CategoryTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	byCatSlug := map[string]models.Category{}
	for _, c := range tree {
		byCatSlug[c.Slug] = c
	}
	require.Len(t, byCatSlug["news"].Subcategories, 3)
	require.NotNil(t, byCatSlug["regional"].Parent)
	require.Equal(t, "news", byCatSlug["regional"].Parent.Slug)
	// Embedded parents stay shallow.
	require.Nil(t, byCatSlug["regional"].Parent.Parent)
}

func TestCategoryOverview(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	published := models.PostStatusPublished
	_, err := svc.CreatePost(ctx, CreatePostRequest{
		Title: "Live", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(), Status: published,
	})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, CreatePostRequest{
		Title: "Draft", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(),
	})
	require.NoError(t, err)

	ov, err := svc.CategoryOverview(ctx, "news", "")
	require.NoError(t, err)
	require.Len(t, ov.Subcategories, 3)
	// Only published posts surface on the landing page.
	require.Len(t, ov.Posts, 1)
	require.Equal(t, "live", ov.Posts[0].Slug)

	// An unknown subcategory slug falls back to the whole category.
	ov, err = svc.CategoryOverview(ctx, "news", "nope")
	require.NoError(t, err)
	require.Len(t, ov.Posts, 1)

	_, err = svc.CategoryOverview(ctx, "missing", "")
	require.ErrorIs(t, err, ErrCategoryNotFound)
}
