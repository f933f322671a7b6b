// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"fmt"

	"rajkhabar/internal/models"
	"rajkhabar/internal/slug"
)

// CreateSocialLinkRequest carries the fields for a new social or policy
// link.
type CreateSocialLinkRequest struct {
	Name string                `json:"name"`
	Slug string                `json:"slug"`
	Type models.SocialLinkType `json:"type"`
	Link string                `json:"link"`
}

// CreateSocialLink persists a new directory entry. Slugs are globally
// unique within the directory.
func (s *Service) CreateSocialLink(ctx context.Context, req CreateSocialLinkRequest) (*models.SocialLink, error) {
	if req.Name == "" || req.Link == "" {
		return nil, fmt.Errorf("%w: name and link are required", ErrValidation)
	}
	if req.Type == "" {
		req.Type = models.SocialLinkTypeSocial
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown social link type %q", ErrValidation, req.Type)
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	if !slug.IsValid(req.Slug) {
		return nil, fmt.Errorf("%w: malformed slug %q", ErrValidation, req.Slug)
	}

	existing, err := s.stores.SocialLinks.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check social link slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: social link %q", ErrDuplicateSlug, req.Slug)
	}

	created, err := s.stores.SocialLinks.Create(ctx, &models.SocialLink{
		Name: req.Name,
		Slug: req.Slug,
		Type: req.Type,
		Link: req.Link,
	})
	if err != nil {
		return nil, fmt.Errorf("create social link: %w", err)
	}
	return created, nil
}

// UpdateSocialLinkRequest is a partial patch.
type UpdateSocialLinkRequest struct {
	Name *string                `json:"name"`
	Type *models.SocialLinkType `json:"type"`
	Link *string                `json:"link"`
}

// UpdateSocialLink applies a partial update to the link with the given
// slug.
func (s *Service) UpdateSocialLink(ctx context.Context, linkSlug string, req UpdateSocialLinkRequest) (*models.SocialLink, error) {
	l, err := s.stores.SocialLinks.FindBySlug(ctx, linkSlug)
	if err != nil {
		return nil, fmt.Errorf("find social link: %w", err)
	}
	if l == nil {
		return nil, fmt.Errorf("social link %w: %q", ErrContentNotFound, linkSlug)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		l.Name = *req.Name
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown social link type %q", ErrValidation, *req.Type)
		}
		l.Type = *req.Type
	}
	if req.Link != nil {
		if *req.Link == "" {
			return nil, fmt.Errorf("%w: link cannot be empty", ErrValidation)
		}
		l.Link = *req.Link
	}

	if err := s.stores.SocialLinks.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("update social link: %w", err)
	}
	return l, nil
}

// DeleteSocialLink removes the link with the given slug.
func (s *Service) DeleteSocialLink(ctx context.Context, linkSlug string) (*models.SocialLink, error) {
	l, err := s.stores.SocialLinks.FindBySlug(ctx, linkSlug)
	if err != nil {
		return nil, fmt.Errorf("find social link: %w", err)
	}
	if l == nil {
		return nil, fmt.Errorf("social link %w: %q", ErrContentNotFound, linkSlug)
	}
	if err := s.stores.SocialLinks.Delete(ctx, l.ID); err != nil {
		return nil, fmt.Errorf("delete social link %q: %w", linkSlug, err)
	}
	return l, nil
}

// ListSocialLinks returns the whole directory, optionally filtered by
// type.
func (s *Service) ListSocialLinks(ctx context.Context, linkType models.SocialLinkType) ([]models.SocialLink, error) {
	all, err := s.stores.SocialLinks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	if linkType == "" {
		return all, nil
	}
	if !linkType.Valid() {
		return nil, fmt.Errorf("%w: unknown social link type %q", ErrValidation, linkType)
	}
	filtered := make([]models.SocialLink, 0, len(all))
	for _, l := range all {
		if l.Type == linkType {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}
