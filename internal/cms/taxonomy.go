// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"rajkhabar/internal/models"
	"rajkhabar/internal/slug"
)

// CreateCategoryRequest carries the fields for a new category. ParentSlug
// is optional; empty means a root category. An empty Slug is generated
// from Name.
type CreateCategoryRequest struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	IconURL       string `json:"iconUrl"`
	ParentSlug    string `json:"parentSlug"`
	VisibleOnHome bool   `json:"isVisibleOnHome"`
}

// CreateCategory validates and persists a new category. The slug must be
// unique across all categories; a parent slug, if given, must resolve and
// may not equal the category's own slug.
func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	if !slug.IsValid(req.Slug) {
		return nil, fmt.Errorf("%w: malformed slug %q", ErrValidation, req.Slug)
	}

	existing, err := s.stores.Categories.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check category slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: category %q", ErrDuplicateSlug, req.Slug)
	}

	c := &models.Category{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		IconURL:       req.IconURL,
		VisibleOnHome: req.VisibleOnHome,
	}

	if req.ParentSlug != "" {
		if req.ParentSlug == req.Slug {
			return nil, fmt.Errorf("%w: category cannot be its own parent", ErrValidation)
		}
		parent, err := s.stores.Categories.FindBySlug(ctx, req.ParentSlug)
		if err != nil {
			return nil, fmt.Errorf("resolve parent category: %w", err)
		}
		if parent == nil {
			return nil, fmt.Errorf("parent %w: %q", ErrCategoryNotFound, req.ParentSlug)
		}
		c.ParentID = &parent.ID
		c.ParentSlug = parent.Slug
	}

	created, err := s.stores.Categories.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

// UpdateCategoryRequest is a partial patch: nil fields are left untouched.
// Setting ParentSlug to the empty string detaches the category from its
// parent and makes it a root.
type UpdateCategoryRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	IconURL       *string `json:"iconUrl"`
	ParentSlug    *string `json:"parentSlug"`
	VisibleOnHome *bool   `json:"isVisibleOnHome"`
}

// UpdateCategory applies a partial update to the category with the given
// slug. Re-parenting is validated against self-reference and cycles.
func (s *Service) UpdateCategory(ctx context.Context, categorySlug string, req UpdateCategoryRequest) (*models.Category, error) {
	c, err := s.stores.Categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, categorySlug)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.IconURL != nil {
		c.IconURL = *req.IconURL
	}
	if req.VisibleOnHome != nil {
		c.VisibleOnHome = *req.VisibleOnHome
	}

	if req.ParentSlug != nil {
		switch *req.ParentSlug {
		case "":
			c.ParentID = nil
			c.ParentSlug = ""
		case c.Slug:
			return nil, fmt.Errorf("%w: category cannot be its own parent", ErrValidation)
		default:
			parent, err := s.stores.Categories.FindBySlug(ctx, *req.ParentSlug)
			if err != nil {
				return nil, fmt.Errorf("resolve parent category: %w", err)
			}
			if parent == nil {
				return nil, fmt.Errorf("parent %w: %q", ErrCategoryNotFound, *req.ParentSlug)
			}
			cycle, err := s.wouldCycle(ctx, c.ID, parent)
			if err != nil {
				return nil, err
			}
			if cycle {
				return nil, fmt.Errorf("%w: re-parenting would create a cycle", ErrValidation)
			}
			c.ParentID = &parent.ID
			c.ParentSlug = parent.Slug
		}
	}

	if err := s.stores.Categories.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// wouldCycle walks the parent chain upward from candidate and reports
// whether it reaches the category being re-parented.
func (s *Service) wouldCycle(ctx context.Context, id uuid.UUID, candidate *models.Category) (bool, error) {
	seen := map[uuid.UUID]bool{id: true}
	cur := candidate
	for cur != nil {
		if seen[cur.ID] {
			return true, nil
		}
		seen[cur.ID] = true
		if cur.ParentID == nil {
			return false, nil
		}
		next, err := s.stores.Categories.FindByID(ctx, *cur.ParentID)
		if err != nil {
			return false, fmt.Errorf("walk parent chain: %w", err)
		}
		cur = next
	}
	return false, nil
}

// CascadeResult summarizes a single-category delete.
type CascadeResult struct {
	DeletedSubcategories int64 `json:"deletedSubcategories"`
}

// DeleteCategory removes the category and, unconditionally, its direct
// subcategories. Content bound to those subcategories is NOT removed and
// is left orphaned; this mirrors the historical behavior the mobile
// clients rely on; use the bulk delete path with force=true for a full
// cascade.
func (s *Service) DeleteCategory(ctx context.Context, categorySlug string) (*CascadeResult, error) {
	c, err := s.stores.Categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, categorySlug)
	}

	deleted, err := s.stores.Subcategories.DeleteByParent(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("delete subcategories of %q: %w", categorySlug, err)
	}
	if err := s.stores.Categories.Delete(ctx, c.ID); err != nil {
		return nil, fmt.Errorf("delete category %q: %w", categorySlug, err)
	}
	return &CascadeResult{DeletedSubcategories: deleted}, nil
}

// ListCategories returns all categories.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.stores.Categories.List(ctx)
}

// CreateSubcategoryRequest carries the fields for a new subcategory. For
// table-typed subcategories TableStructureSlug is mandatory and must
// resolve to an existing structure.
type CreateSubcategoryRequest struct {
	Name               string                 `json:"name"`
	Slug               string                 `json:"slug"`
	Description        string                 `json:"description"`
	Type               models.SubcategoryType `json:"type"`
	ParentSlug         string                 `json:"parentSlug"`
	TableStructureSlug string                 `json:"tableStructureSlug"`
}

// CreateSubcategory validates and persists a new subcategory under its
// parent category. The slug must be unique within the parent only.
func (s *Service) CreateSubcategory(ctx context.Context, req CreateSubcategoryRequest) (*models.Subcategory, error) {
	if req.Name == "" || req.ParentSlug == "" {
		return nil, fmt.Errorf("%w: name and parentSlug are required", ErrValidation)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown subcategory type %q", ErrValidation, req.Type)
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	if !slug.IsValid(req.Slug) {
		return nil, fmt.Errorf("%w: malformed slug %q", ErrValidation, req.Slug)
	}

	parent, err := s.stores.Categories.FindBySlug(ctx, req.ParentSlug)
	if err != nil {
		return nil, fmt.Errorf("resolve parent category: %w", err)
	}
	if parent == nil {
		return nil, fmt.Errorf("parent %w: %q", ErrCategoryNotFound, req.ParentSlug)
	}

	existing, err := s.stores.Subcategories.FindBySlug(ctx, req.Slug, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("check subcategory slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: subcategory %q in category %q", ErrDuplicateSlug, req.Slug, req.ParentSlug)
	}

	sub := &models.Subcategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Type:        req.Type,
		ParentID:    parent.ID,
		ParentSlug:  parent.Slug,
	}

	if req.Type == models.SubcategoryTypeTable {
		if req.TableStructureSlug == "" {
			return nil, fmt.Errorf("%w: tableStructureSlug is required for table subcategories", ErrValidation)
		}
		ts, err := s.stores.TableStructures.FindBySlug(ctx, req.TableStructureSlug)
		if err != nil {
			return nil, fmt.Errorf("resolve table structure: %w", err)
		}
		if ts == nil {
			return nil, fmt.Errorf("%w: %q", ErrTableStructureNotFound, req.TableStructureSlug)
		}
		sub.TableStructureID = &ts.ID
		sub.TableStructureSlug = ts.Slug
	}

	created, err := s.stores.Subcategories.Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("create subcategory: %w", err)
	}
	return created, nil
}

// UpdateSubcategoryRequest is a partial patch. Type and parent are fixed
// at creation, since all content validation keys off them, so only the
// descriptive fields are updatable.
type UpdateSubcategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateSubcategory applies a partial update to the first subcategory
// matching the slug.
func (s *Service) UpdateSubcategory(ctx context.Context, subSlug string, req UpdateSubcategoryRequest) (*models.Subcategory, error) {
	sub, err := s.stores.Subcategories.FindFirstBySlug(ctx, subSlug)
	if err != nil {
		return nil, fmt.Errorf("find subcategory: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: %q", ErrSubcategoryNotFound, subSlug)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		sub.Name = *req.Name
	}
	if req.Description != nil {
		sub.Description = *req.Description
	}

	if err := s.stores.Subcategories.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("update subcategory: %w", err)
	}
	return sub, nil
}

// DeleteSubcategory removes a subcategory by slug without checking for
// dependent content; bound content is orphaned. The guarded path is the
// bulk delete coordinator.
func (s *Service) DeleteSubcategory(ctx context.Context, subSlug string) (*models.Subcategory, error) {
	sub, err := s.stores.Subcategories.FindFirstBySlug(ctx, subSlug)
	if err != nil {
		return nil, fmt.Errorf("find subcategory: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: %q", ErrSubcategoryNotFound, subSlug)
	}
	if err := s.stores.Subcategories.Delete(ctx, sub.ID); err != nil {
		return nil, fmt.Errorf("delete subcategory %q: %w", subSlug, err)
	}
	return sub, nil
}

// ListSubcategories returns all subcategories of the category with the
// given slug.
func (s *Service) ListSubcategories(ctx context.Context, categorySlug string) ([]models.Subcategory, error) {
	c, err := s.stores.Categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, categorySlug)
	}
	return s.stores.Subcategories.ListByParent(ctx, c.ID)
}

// CategoryTree returns every category with its direct subcategories
// attached, plus a shallow copy of its parent category resolved by slug.
// The result is stable for identical store contents.
func (s *Service) CategoryTree(ctx context.Context) ([]models.Category, error) {
	cats, err := s.stores.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	subs, err := s.stores.Subcategories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}

	bySlug := make(map[string]models.Category, len(cats))
	for _, c := range cats {
		bySlug[c.Slug] = c
	}
	byParent := make(map[string][]models.Subcategory)
	for _, sub := range subs {
		byParent[sub.ParentSlug] = append(byParent[sub.ParentSlug], sub)
	}

	out := make([]models.Category, len(cats))
	for i, c := range cats {
		c.Subcategories = byParent[c.Slug]
		if c.ParentSlug != "" {
			if p, ok := bySlug[c.ParentSlug]; ok {
				// Shallow copy: the embedded parent carries no children
				// of its own, keeping the payload acyclic.
				c.Parent = &p
			}
		}
		out[i] = c
	}
	return out, nil
}

// Overview bundles the essentials of a category landing page: the category
// itself, its subcategories, and the most recent content of each kind.
type Overview struct {
	Category      *models.Category     `json:"category"`
	Subcategories []models.Subcategory `json:"subcategories"`
	Posts         []models.Post        `json:"posts"`
	TableRows     []models.TableRow    `json:"tablePosts"`
	Cards         []models.Card        `json:"cardPosts"`
}

const (
	overviewPostLimit = 12
	overviewRowLimit  = 8
	overviewCardLimit = 8
)

// CategoryOverview assembles the overview for one category, optionally
// narrowed to a single subcategory slug. An unresolvable subcategory slug
// falls back to the whole category rather than failing.
func (s *Service) CategoryOverview(ctx context.Context, categorySlug, subcategorySlug string) (*Overview, error) {
	c, err := s.stores.Categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, categorySlug)
	}

	subs, err := s.stores.Subcategories.ListByParent(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}

	var ids []uuid.UUID
	if subcategorySlug != "" {
		sub, err := s.stores.Subcategories.FindBySlug(ctx, subcategorySlug, c.ID)
		if err != nil {
			return nil, fmt.Errorf("find subcategory: %w", err)
		}
		if sub != nil {
			ids = []uuid.UUID{sub.ID}
		}
	}
	if ids == nil {
		for _, sub := range subs {
			ids = append(ids, sub.ID)
		}
	}

	ov := &Overview{Category: c, Subcategories: subs}
	if len(ids) == 0 {
		return ov, nil
	}

	if ov.Posts, err = s.stores.Posts.ListRecent(ctx, ids, overviewPostLimit); err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}
	if ov.TableRows, err = s.stores.TableRows.ListRecent(ctx, ids, overviewRowLimit); err != nil {
		return nil, fmt.Errorf("list recent table rows: %w", err)
	}
	if ov.Cards, err = s.stores.Cards.ListRecent(ctx, ids, overviewCardLimit); err != nil {
		return nil, fmt.Errorf("list recent cards: %w", err)
	}
	return ov, nil
}
