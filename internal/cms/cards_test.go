// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateCardPartialPatch(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	card, err := svc.CreateCard(ctx, CreateCardRequest{
		Name: "SSC Recruitment", CardHeading: "Apply Now",
		TopField:     "Staff Selection Commission",
		CategorySlug: "news", SubcategorySlug: "jobs",
	})
	require.NoError(t, err)

	name := "SSC Recruitment 2025"
	updated, err := svc.UpdateCard(ctx, card.Slug, UpdateCardRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, name, updated.Name)
	// Untouched fields survive the patch.
	require.Equal(t, "Apply Now", updated.CardHeading)
	require.Equal(t, "Staff Selection Commission", updated.TopField)

	// Name and heading cannot be blanked.
	empty := ""
	_, err = svc.UpdateCard(ctx, card.Slug, UpdateCardRequest{Name: &empty})
	require.ErrorIs(t, err, ErrValidation)
	_, err = svc.UpdateCard(ctx, card.Slug, UpdateCardRequest{CardHeading: &empty})
	require.ErrorIs(t, err, ErrValidation)

	kept, err := svc.GetCard(ctx, card.Slug)
	require.NoError(t, err)
	require.Equal(t, name, kept.Name)
}
