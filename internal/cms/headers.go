// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"fmt"

	"rajkhabar/internal/models"
	"rajkhabar/internal/slug"
	"rajkhabar/internal/store"
)

// CreateHeaderComponentRequest carries the fields for a new header
// component.
type CreateHeaderComponentRequest struct {
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Heading         string          `json:"heading"`
	Link            string          `json:"link"`
	LinkType        models.LinkType `json:"link_type"`
	CategorySlug    string          `json:"parentSlug"`
	SubcategorySlug string          `json:"subCategorySlug"`
}

// CreateHeaderComponent persists a header component under a table-typed
// subcategory. At most one header may exist per subcategory; a second
// create is rejected with ErrHeaderExists.
func (s *Service) CreateHeaderComponent(ctx context.Context, req CreateHeaderComponentRequest) (*models.HeaderComponent, error) {
	if req.Name == "" || req.Heading == "" {
		return nil, fmt.Errorf("%w: name and heading are required", ErrValidation)
	}
	if req.Link != "" && !req.LinkType.Valid() {
		return nil, fmt.Errorf("%w: link requires a valid link_type, got %q", ErrValidation, req.LinkType)
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	if !slug.IsValid(req.Slug) {
		return nil, fmt.Errorf("%w: malformed slug %q", ErrValidation, req.Slug)
	}

	c, sub, err := s.resolveBinding(ctx, req.CategorySlug, req.SubcategorySlug, models.SubcategoryTypeTable)
	if err != nil {
		return nil, err
	}

	existing, err := s.stores.Headers.FindByBinding(ctx, c.ID, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("check header singleton: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: subcategory %q already has header %q", ErrHeaderExists, sub.Slug, existing.Slug)
	}
	dup, err := s.stores.Headers.FindBySlug(ctx, req.Slug, c.ID, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("check header slug: %w", err)
	}
	if dup != nil {
		return nil, fmt.Errorf("%w: header %q in %s/%s", ErrDuplicateSlug, req.Slug, c.Slug, sub.Slug)
	}

	h := &models.HeaderComponent{
		Name:            req.Name,
		Slug:            req.Slug,
		Heading:         req.Heading,
		Link:            models.Link{Link: req.Link, LinkType: req.LinkType},
		CategoryID:      c.ID,
		CategorySlug:    c.Slug,
		SubcategoryID:   sub.ID,
		SubcategorySlug: sub.Slug,
	}
	created, err := s.stores.Headers.Create(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("create header component: %w", err)
	}
	return created, nil
}

// UpdateHeaderComponentRequest is a partial patch. Moving the header to
// another subcategory re-checks the one-per-subcategory constraint at the
// destination.
type UpdateHeaderComponentRequest struct {
	Name            *string          `json:"name"`
	Heading         *string          `json:"heading"`
	Link            *string          `json:"link"`
	LinkType        *models.LinkType `json:"link_type"`
	CategorySlug    *string          `json:"parentSlug"`
	SubcategorySlug *string          `json:"subCategorySlug"`
}

// UpdateHeaderComponent applies a partial update to the header component
// with the given id-bearing slug within its current binding.
func (s *Service) UpdateHeaderComponent(ctx context.Context, categorySlug, subcategorySlug, headerSlug string, req UpdateHeaderComponentRequest) (*models.HeaderComponent, error) {
	c, sub, err := s.resolveBinding(ctx, categorySlug, subcategorySlug, models.SubcategoryTypeTable)
	if err != nil {
		return nil, err
	}
	h, err := s.stores.Headers.FindBySlug(ctx, headerSlug, c.ID, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("find header component: %w", err)
	}
	if h == nil {
		return nil, fmt.Errorf("header component %w: %q in %s/%s", ErrContentNotFound, headerSlug, categorySlug, subcategorySlug)
	}

	if req.CategorySlug != nil || req.SubcategorySlug != nil {
		catSlug, subSlug := h.CategorySlug, h.SubcategorySlug
		if req.CategorySlug != nil {
			catSlug = *req.CategorySlug
		}
		if req.SubcategorySlug != nil {
			subSlug = *req.SubcategorySlug
		}
		nc, nsub, err := s.resolveBinding(ctx, catSlug, subSlug, models.SubcategoryTypeTable)
		if err != nil {
			return nil, err
		}
		if nsub.ID != h.SubcategoryID {
			occupied, err := s.stores.Headers.FindByBinding(ctx, nc.ID, nsub.ID)
			if err != nil {
				return nil, fmt.Errorf("check header singleton: %w", err)
			}
			if occupied != nil {
				return nil, fmt.Errorf("%w: subcategory %q already has header %q", ErrHeaderExists, nsub.Slug, occupied.Slug)
			}
		}
		h.CategoryID, h.CategorySlug = nc.ID, nc.Slug
		h.SubcategoryID, h.SubcategorySlug = nsub.ID, nsub.Slug
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		h.Name = *req.Name
	}
	if req.Heading != nil {
		if *req.Heading == "" {
			return nil, fmt.Errorf("%w: heading cannot be empty", ErrValidation)
		}
		h.Heading = *req.Heading
	}
	if req.Link != nil {
		h.Link.Link = *req.Link
	}
	if req.LinkType != nil {
		if !req.LinkType.Valid() {
			return nil, fmt.Errorf("%w: unknown link type %q", ErrValidation, *req.LinkType)
		}
		h.Link.LinkType = *req.LinkType
	}
	if h.Link.Link != "" && h.Link.LinkType == "" {
		return nil, fmt.Errorf("%w: header link", ErrMissingLinkType)
	}

	if err := s.stores.Headers.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("update header component: %w", err)
	}
	return h, nil
}

// DeleteHeaderComponent removes the header component addressed by slug
// within its binding.
func (s *Service) DeleteHeaderComponent(ctx context.Context, categorySlug, subcategorySlug, headerSlug string) (*models.HeaderComponent, error) {
	c, sub, err := s.resolveBinding(ctx, categorySlug, subcategorySlug, models.SubcategoryTypeTable)
	if err != nil {
		return nil, err
	}
	h, err := s.stores.Headers.FindBySlug(ctx, headerSlug, c.ID, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("find header component: %w", err)
	}
	if h == nil {
		return nil, fmt.Errorf("header component %w: %q in %s/%s", ErrContentNotFound, headerSlug, categorySlug, subcategorySlug)
	}
	if err := s.stores.Headers.Delete(ctx, h.ID); err != nil {
		return nil, fmt.Errorf("delete header component %q: %w", headerSlug, err)
	}
	return h, nil
}

// GetHeaderComponent returns the header component for a table subcategory,
// or (nil, nil) when the subcategory has none. Consumers render the table
// without a header in that case.
func (s *Service) GetHeaderComponent(ctx context.Context, categorySlug, subcategorySlug string) (*models.HeaderComponent, error) {
	c, sub, err := s.resolveBinding(ctx, categorySlug, subcategorySlug, models.SubcategoryTypeTable)
	if err != nil {
		return nil, err
	}
	h, err := s.stores.Headers.FindByBinding(ctx, c.ID, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("find header component: %w", err)
	}
	return h, nil
}

// HeaderList is one page of header components plus pagination metadata.
type HeaderList struct {
	Headers     []models.HeaderComponent `json:"headerComponents"`
	Total       int                      `json:"total"`
	TotalPages  int                      `json:"totalPages"`
	CurrentPage int                      `json:"currentPage"`
}

// ListHeaderComponents returns one page of header components, optionally
// filtered by binding slugs or a name search.
func (s *Service) ListHeaderComponents(ctx context.Context, f store.HeaderFilter, page int) (*HeaderList, error) {
	if page < 1 {
		page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}
	f.Offset = (page - 1) * f.Limit

	total, err := s.stores.Headers.CountFiltered(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count header components: %w", err)
	}
	headers, err := s.stores.Headers.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list header components: %w", err)
	}
	if headers == nil {
		headers = []models.HeaderComponent{}
	}
	totalPages := (total + f.Limit - 1) / f.Limit
	return &HeaderList{Headers: headers, Total: total, TotalPages: totalPages, CurrentPage: page}, nil
}
