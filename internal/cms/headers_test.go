// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"rajkhabar/internal/models"
	"rajkhabar/internal/store"
)

func TestHeaderComponentSingleton(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	h, err := svc.CreateHeaderComponent(ctx, CreateHeaderComponentRequest{
		Name: "Results Banner", Heading: "Latest Results",
		CategorySlug: "news", SubcategorySlug: "exam-results",
	})
	require.NoError(t, err)
	require.Equal(t, "results-banner", h.Slug)

	// One header per subcategory.
	_, err = svc.CreateHeaderComponent(ctx, CreateHeaderComponentRequest{
		Name: "Second Banner", Heading: "Also Results",
		CategorySlug: "news", SubcategorySlug: "exam-results",
	})
	require.ErrorIs(t, err, ErrHeaderExists)

	// Deleting frees the slot.
	_, err = svc.DeleteHeaderComponent(ctx, "news", "exam-results", h.Slug)
	require.NoError(t, err)
	_, err = svc.CreateHeaderComponent(ctx, CreateHeaderComponentRequest{
		Name: "Second Banner", Heading: "Also Results",
		CategorySlug: "news", SubcategorySlug: "exam-results",
	})
	require.NoError(t, err)
}

func TestHeaderComponentRequiresTableSubcategory(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)

	_, err := svc.CreateHeaderComponent(context.Background(), CreateHeaderComponentRequest{
		Name: "Banner", Heading: "Heading",
		CategorySlug: "news", SubcategorySlug: "headlines",
	})
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestHeaderComponentLinkNeedsValidType(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	_, err := svc.CreateHeaderComponent(ctx, CreateHeaderComponentRequest{
		Name: "Banner", Heading: "Heading",
		Link:         "https://example.org",
		CategorySlug: "news", SubcategorySlug: "exam-results",
	})
	require.ErrorIs(t, err, ErrValidation)

	h, err := svc.CreateHeaderComponent(ctx, CreateHeaderComponentRequest{
		Name: "Banner", Heading: "Heading",
		Link: "https://example.org", LinkType: models.LinkTypeExternal,
		CategorySlug: "news", SubcategorySlug: "exam-results",
	})
	require.NoError(t, err)
	require.Equal(t, models.LinkTypeExternal, h.Link.LinkType)
}

func TestGetHeaderComponentAbsentIsNil(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)

	h, err := svc.GetHeaderComponent(context.Background(), "news", "exam-results")
	require.NoError(t, err)
	require.Nil(t, h)
}

func TestListHeaderComponentsFilter(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	_, err := svc.CreateTableStructure(ctx, CreateTableStructureRequest{
		Name: "Notices", Slug: "notices",
		Columns: []models.Column{{Name: "Notice"}},
	})
	require.NoError(t, err)
	_, err = svc.CreateSubcategory(ctx, CreateSubcategoryRequest{
		Name: "Notices", Slug: "notices", Type: models.SubcategoryTypeTable,
		ParentSlug: "news", TableStructureSlug: "notices",
	})
	require.NoError(t, err)

	for _, sub := range []string{"exam-results", "notices"} {
		_, err := svc.CreateHeaderComponent(ctx, CreateHeaderComponentRequest{
			Name: "Banner " + sub, Heading: "H",
			CategorySlug: "news", SubcategorySlug: sub,
		})
		require.NoError(t, err)
	}

	list, err := svc.ListHeaderComponents(ctx, store.HeaderFilter{}, 1)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)

	list, err = svc.ListHeaderComponents(ctx, store.HeaderFilter{SubcategorySlug: "notices"}, 1)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	require.Equal(t, "banner-notices", list.Headers[0].Slug)
}
