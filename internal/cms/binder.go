// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"fmt"

	"rajkhabar/internal/models"
)

// resolveBinding runs the shared validation sequence for every content
// write: resolve the category by slug, resolve the subcategory within that
// category, and check the subcategory's type admits the content kind being
// written. Every content create goes through here; updates go through it
// only when the patch re-binds the item.
func (s *Service) resolveBinding(ctx context.Context, categorySlug, subcategorySlug string, want models.SubcategoryType) (*models.Category, *models.Subcategory, error) {
	if categorySlug == "" || subcategorySlug == "" {
		return nil, nil, fmt.Errorf("%w: category and subcategory slugs are required", ErrValidation)
	}

	c, err := s.stores.Categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve category: %w", err)
	}
	if c == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, categorySlug)
	}

	sub, err := s.stores.Subcategories.FindBySlug(ctx, subcategorySlug, c.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve subcategory: %w", err)
	}
	if sub == nil {
		return nil, nil, fmt.Errorf("%w: %q in category %q", ErrSubcategoryNotFound, subcategorySlug, categorySlug)
	}

	if sub.Type != want {
		return nil, nil, fmt.Errorf("%w: subcategory %q is of type %q, want %q", ErrTypeMismatch, subcategorySlug, sub.Type, want)
	}
	return c, sub, nil
}
