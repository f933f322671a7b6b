// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"fmt"

	"rajkhabar/internal/models"
	"rajkhabar/internal/slug"
)

// CreateCardRequest carries the fields for a new card.
type CreateCardRequest struct {
	Name            string       `json:"name"`
	Slug            string       `json:"slug"`
	TopField        string       `json:"topField"`
	CardHeading     string       `json:"cardHeading"`
	MiddleField     string       `json:"middleField"`
	Link            *models.Link `json:"link"`
	CategorySlug    string       `json:"parentSlug"`
	SubcategorySlug string       `json:"subCategorySlug"`
}

// CreateCard validates the binding and persists a new card. Card slugs are
// unique within their (category, subcategory) pair.
func (s *Service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	if req.Name == "" || req.CardHeading == "" {
		return nil, fmt.Errorf("%w: name and cardHeading are required", ErrValidation)
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	if !slug.IsValid(req.Slug) {
		return nil, fmt.Errorf("%w: malformed slug %q", ErrValidation, req.Slug)
	}
	if req.Link != nil && req.Link.LinkType != "" && !req.Link.LinkType.Valid() {
		return nil, fmt.Errorf("%w: unknown link type %q", ErrValidation, req.Link.LinkType)
	}

	c, sub, err := s.resolveBinding(ctx, req.CategorySlug, req.SubcategorySlug, models.SubcategoryTypeCard)
	if err != nil {
		return nil, err
	}

	existing, err := s.stores.Cards.FindBySlug(ctx, req.Slug, c.ID, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("check card slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: card %q in %s/%s", ErrDuplicateSlug, req.Slug, c.Slug, sub.Slug)
	}

	card := &models.Card{
		Name:            req.Name,
		Slug:            req.Slug,
		TopField:        req.TopField,
		CardHeading:     req.CardHeading,
		MiddleField:     req.MiddleField,
		Link:            req.Link,
		CategoryID:      c.ID,
		CategorySlug:    c.Slug,
		SubcategoryID:   sub.ID,
		SubcategorySlug: sub.Slug,
	}
	created, err := s.stores.Cards.Create(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return created, nil
}

// UpdateCardRequest is a partial patch. Supplying CategorySlug or
// SubcategorySlug re-runs the binding validation.
type UpdateCardRequest struct {
	Name            *string      `json:"name"`
	TopField        *string      `json:"topField"`
	CardHeading     *string      `json:"cardHeading"`
	MiddleField     *string      `json:"middleField"`
	Link            *models.Link `json:"link"`
	CategorySlug    *string      `json:"parentSlug"`
	SubcategorySlug *string      `json:"subCategorySlug"`
}

// UpdateCard applies a partial update to the first card matching the slug.
func (s *Service) UpdateCard(ctx context.Context, cardSlug string, req UpdateCardRequest) (*models.Card, error) {
	card, err := s.stores.Cards.FindFirstBySlug(ctx, cardSlug)
	if err != nil {
		return nil, fmt.Errorf("find card: %w", err)
	}
	if card == nil {
		return nil, fmt.Errorf("card %w: %q", ErrContentNotFound, cardSlug)
	}

	if req.CategorySlug != nil || req.SubcategorySlug != nil {
		catSlug, subSlug := card.CategorySlug, card.SubcategorySlug
		if req.CategorySlug != nil {
			catSlug = *req.CategorySlug
		}
		if req.SubcategorySlug != nil {
			subSlug = *req.SubcategorySlug
		}
		c, sub, err := s.resolveBinding(ctx, catSlug, subSlug, models.SubcategoryTypeCard)
		if err != nil {
			return nil, err
		}
		card.CategoryID, card.CategorySlug = c.ID, c.Slug
		card.SubcategoryID, card.SubcategorySlug = sub.ID, sub.Slug
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		card.Name = *req.Name
	}
	if req.TopField != nil {
		card.TopField = *req.TopField
	}
	if req.CardHeading != nil {
		if *req.CardHeading == "" {
			return nil, fmt.Errorf("%w: cardHeading cannot be empty", ErrValidation)
		}
		card.CardHeading = *req.CardHeading
	}
	if req.MiddleField != nil {
		card.MiddleField = *req.MiddleField
	}
	if req.Link != nil {
		if req.Link.LinkType != "" && !req.Link.LinkType.Valid() {
			return nil, fmt.Errorf("%w: unknown link type %q", ErrValidation, req.Link.LinkType)
		}
		card.Link = req.Link
	}

	if err := s.stores.Cards.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	return card, nil
}

// DeleteCard removes a card addressed by slug within its binding. The
// subcategory must be card-typed.
func (s *Service) DeleteCard(ctx context.Context, categorySlug, subcategorySlug, cardSlug string) (*models.Card, error) {
	c, sub, err := s.resolveBinding(ctx, categorySlug, subcategorySlug, models.SubcategoryTypeCard)
	if err != nil {
		return nil, err
	}
	card, err := s.stores.Cards.FindBySlug(ctx, cardSlug, c.ID, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("find card: %w", err)
	}
	if card == nil {
		return nil, fmt.Errorf("card %w: %q in %s/%s", ErrContentNotFound, cardSlug, categorySlug, subcategorySlug)
	}
	if err := s.stores.Cards.Delete(ctx, card.ID); err != nil {
		return nil, fmt.Errorf("delete card %q: %w", cardSlug, err)
	}
	return card, nil
}

// GetCard retrieves the first card matching the slug.
func (s *Service) GetCard(ctx context.Context, cardSlug string) (*models.Card, error) {
	card, err := s.stores.Cards.FindFirstBySlug(ctx, cardSlug)
	if err != nil {
		return nil, fmt.Errorf("find card: %w", err)
	}
	if card == nil {
		return nil, fmt.Errorf("card %w: %q", ErrContentNotFound, cardSlug)
	}
	return card, nil
}

// ListCards returns all cards.
func (s *Service) ListCards(ctx context.Context) ([]models.Card, error) {
	return s.stores.Cards.List(ctx)
}

// ListCardsByBinding returns all cards under a card-typed subcategory.
func (s *Service) ListCardsByBinding(ctx context.Context, categorySlug, subcategorySlug string) ([]models.Card, error) {
	c, sub, err := s.resolveBinding(ctx, categorySlug, subcategorySlug, models.SubcategoryTypeCard)
	if err != nil {
		return nil, err
	}
	return s.stores.Cards.ListByBinding(ctx, c.ID, sub.ID)
}
