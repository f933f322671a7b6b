// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// BulkResult reports the outcome of a bulk delete. Each id is processed
// independently: failures land in Errors while the rest of the batch
// proceeds. The per-kind counters cover cascaded children, not just the
// requested ids.
type BulkResult struct {
	Requested            int         `json:"requested"`
	Deleted              int         `json:"deleted"`
	DeletedSubcategories int64       `json:"deletedSubCategories,omitempty"`
	DeletedPosts         int64       `json:"deletedPosts,omitempty"`
	DeletedCards         int64       `json:"deletedCards,omitempty"`
	DeletedTableRows     int64       `json:"deletedTablePosts,omitempty"`
	DeletedHeaders       int64       `json:"deletedHeaderComponents,omitempty"`
	Errors               []BulkError `json:"errors,omitempty"`
}

// BulkError pins a failure to the id that caused it.
type BulkError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (r *BulkResult) fail(id uuid.UUID, err error) {
	r.Errors = append(r.Errors, BulkError{ID: id.String(), Message: err.Error()})
}

// parseIDs validates every id up front. One malformed id rejects the whole
// batch, before anything is deleted.
func parseIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no ids supplied", ErrValidation)
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, r)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// BulkDeleteCategories deletes categories by id. Without force, a category
// with subcategories or content is skipped with a DependencyError entry;
// with force, its subcategories and all content under it are removed too.
func (s *Service) BulkDeleteCategories(ctx context.Context, rawIDs []string, force bool) (*BulkResult, error) {
	ids, err := parseIDs(rawIDs)
	if err != nil {
		return nil, err
	}
	res := &BulkResult{Requested: len(ids)}
	for _, id := range ids {
		c, err := s.stores.Categories.FindByID(ctx, id)
		if err != nil {
			res.fail(id, fmt.Errorf("find category: %w", err))
			continue
		}
		if c == nil {
			res.fail(id, ErrCategoryNotFound)
			continue
		}

		counts, err := s.categoryDependents(ctx, id)
		if err != nil {
			res.fail(id, err)
			continue
		}
		if counts.Total() > 0 && !force {
			res.fail(id, &DependencyError{Entity: "category", Name: c.Name, Slug: c.Slug, Counts: *counts})
			continue
		}

		if force {
			n, err := s.stores.Posts.DeleteByCategory(ctx, id)
			if err != nil {
				res.fail(id, fmt.Errorf("delete posts: %w", err))
				continue
			}
			res.DeletedPosts += n
			if n, err = s.stores.Cards.DeleteByCategory(ctx, id); err != nil {
				res.fail(id, fmt.Errorf("delete cards: %w", err))
				continue
			}
			res.DeletedCards += n
			if n, err = s.stores.TableRows.DeleteByCategory(ctx, id); err != nil {
				res.fail(id, fmt.Errorf("delete table rows: %w", err))
				continue
			}
			res.DeletedTableRows += n
			if n, err = s.stores.Headers.DeleteByCategory(ctx, id); err != nil {
				res.fail(id, fmt.Errorf("delete header components: %w", err))
				continue
			}
			res.DeletedHeaders += n
			if n, err = s.stores.Subcategories.DeleteByParent(ctx, id); err != nil {
				res.fail(id, fmt.Errorf("delete subcategories: %w", err))
				continue
			}
			res.DeletedSubcategories += n
		}

		if err := s.stores.Categories.Delete(ctx, id); err != nil {
			res.fail(id, fmt.Errorf("delete category: %w", err))
			continue
		}
		res.Deleted++
	}
	return res, nil
}

func (s *Service) categoryDependents(ctx context.Context, id uuid.UUID) (*DependentCounts, error) {
	var counts DependentCounts
	var err error
	if counts.Subcategories, err = s.stores.Subcategories.CountByParent(ctx, id); err != nil {
		return nil, fmt.Errorf("count subcategories: %w", err)
	}
	if counts.Posts, err = s.stores.Posts.CountByCategory(ctx, id); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	if counts.Cards, err = s.stores.Cards.CountByCategory(ctx, id); err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}
	if counts.TableRows, err = s.stores.TableRows.CountByCategory(ctx, id); err != nil {
		return nil, fmt.Errorf("count table rows: %w", err)
	}
	if counts.HeaderComponents, err = s.stores.Headers.CountByCategory(ctx, id); err != nil {
		return nil, fmt.Errorf("count header components: %w", err)
	}
	return &counts, nil
}

// BulkDeleteSubcategories deletes subcategories by id with the same
// guarded/forced contract as categories, scoped to the content directly
// under each subcategory.
func (s *Service) BulkDeleteSubcategories(ctx context.Context, rawIDs []string, force bool) (*BulkResult, error) {
	ids, err := parseIDs(rawIDs)
	if err != nil {
		return nil, err
	}
	res := &BulkResult{Requested: len(ids)}
	for _, id := range ids {
		sub, err := s.stores.Subcategories.FindByID(ctx, id)
		if err != nil {
			res.fail(id, fmt.Errorf("find subcategory: %w", err))
			continue
		}
		if sub == nil {
			res.fail(id, ErrSubcategoryNotFound)
			continue
		}

		counts, err := s.subcategoryDependents(ctx, id)
		if err != nil {
			res.fail(id, err)
			continue
		}
		if counts.Total() > 0 && !force {
			res.fail(id, &DependencyError{Entity: "subcategory", Name: sub.Name, Slug: sub.Slug, Counts: *counts})
			continue
		}

		if force {
			n, err := s.stores.Posts.DeleteBySubcategory(ctx, id)
			if err != nil {
				res.fail(id, fmt.Errorf("delete posts: %w", err))
				continue
			}
			res.DeletedPosts += n
			if n, err = s.stores.Cards.DeleteBySubcategory(ctx, id); err != nil {
				res.fail(id, fmt.Errorf("delete cards: %w", err))
				continue
			}
			res.DeletedCards += n
			if n, err = s.stores.TableRows.DeleteBySubcategory(ctx, id); err != nil {
				res.fail(id, fmt.Errorf("delete table rows: %w", err))
				continue
			}
			res.DeletedTableRows += n
			if n, err = s.stores.Headers.DeleteBySubcategory(ctx, id); err != nil {
				res.fail(id, fmt.Errorf("delete header components: %w", err))
				continue
			}
			res.DeletedHeaders += n
		}

		if err := s.stores.Subcategories.Delete(ctx, id); err != nil {
			res.fail(id, fmt.Errorf("delete subcategory: %w", err))
			continue
		}
		res.Deleted++
	}
	return res, nil
}

func (s *Service) subcategoryDependents(ctx context.Context, id uuid.UUID) (*DependentCounts, error) {
	var counts DependentCounts
	var err error
	if counts.Posts, err = s.stores.Posts.CountBySubcategory(ctx, id); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	if counts.Cards, err = s.stores.Cards.CountBySubcategory(ctx, id); err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}
	if counts.TableRows, err = s.stores.TableRows.CountBySubcategory(ctx, id); err != nil {
		return nil, fmt.Errorf("count table rows: %w", err)
	}
	if counts.HeaderComponents, err = s.stores.Headers.CountBySubcategory(ctx, id); err != nil {
		return nil, fmt.Errorf("count header components: %w", err)
	}
	return &counts, nil
}

// BulkDeleteTableStructures deletes structures by id. Structure deletion is
// always guarded: a structure referenced by any subcategory or any table
// row is never removed, force or not, because its rows would lose their
// schema. Rows count even when their subcategory is already gone, since
// the single-delete path orphans content rather than cascading.
func (s *Service) BulkDeleteTableStructures(ctx context.Context, rawIDs []string) (*BulkResult, error) {
	ids, err := parseIDs(rawIDs)
	if err != nil {
		return nil, err
	}
	res := &BulkResult{Requested: len(ids)}
	for _, id := range ids {
		ts, err := s.stores.TableStructures.FindByID(ctx, id)
		if err != nil {
			res.fail(id, fmt.Errorf("find table structure: %w", err))
			continue
		}
		if ts == nil {
			res.fail(id, ErrTableStructureNotFound)
			continue
		}

		subs, err := s.stores.Subcategories.ListByStructureSlug(ctx, ts.Slug)
		if err != nil {
			res.fail(id, fmt.Errorf("list referencing subcategories: %w", err))
			continue
		}
		rows, err := s.stores.TableRows.ListByStructureSlug(ctx, ts.Slug)
		if err != nil {
			res.fail(id, fmt.Errorf("list referencing table rows: %w", err))
			continue
		}
		if len(subs) > 0 || len(rows) > 0 {
			dep := &DependencyError{Entity: "table structure", Name: ts.Name, Slug: ts.Slug}
			dep.Counts.Subcategories = len(subs)
			dep.Counts.TableRows = len(rows)
			for _, sub := range subs {
				dep.Dependents = append(dep.Dependents, sub.Slug)
			}
			for _, row := range rows {
				dep.Dependents = append(dep.Dependents, row.Slug)
			}
			res.fail(id, dep)
			continue
		}

		if err := s.stores.TableStructures.Delete(ctx, id); err != nil {
			res.fail(id, fmt.Errorf("delete table structure: %w", err))
			continue
		}
		res.Deleted++
	}
	return res, nil
}

// bulkDeleteByID runs the shared unguarded per-id loop for flat content
// kinds.
func bulkDeleteByID[T any](
	ctx context.Context,
	rawIDs []string,
	find func(context.Context, uuid.UUID) (*T, error),
	del func(context.Context, uuid.UUID) error,
	missing error,
) (*BulkResult, error) {
	ids, err := parseIDs(rawIDs)
	if err != nil {
		return nil, err
	}
	res := &BulkResult{Requested: len(ids)}
	for _, id := range ids {
		item, err := find(ctx, id)
		if err != nil {
			res.fail(id, fmt.Errorf("find: %w", err))
			continue
		}
		if item == nil {
			res.fail(id, missing)
			continue
		}
		if err := del(ctx, id); err != nil {
			res.fail(id, fmt.Errorf("delete: %w", err))
			continue
		}
		res.Deleted++
	}
	return res, nil
}

// BulkDeletePosts deletes posts by id.
func (s *Service) BulkDeletePosts(ctx context.Context, rawIDs []string) (*BulkResult, error) {
	return bulkDeleteByID(ctx, rawIDs, s.stores.Posts.FindByID, s.stores.Posts.Delete, ErrContentNotFound)
}

// BulkDeleteCards deletes cards by id.
func (s *Service) BulkDeleteCards(ctx context.Context, rawIDs []string) (*BulkResult, error) {
	return bulkDeleteByID(ctx, rawIDs, s.stores.Cards.FindByID, s.stores.Cards.Delete, ErrContentNotFound)
}

// BulkDeleteTableRows deletes table rows by id.
func (s *Service) BulkDeleteTableRows(ctx context.Context, rawIDs []string) (*BulkResult, error) {
	return bulkDeleteByID(ctx, rawIDs, s.stores.TableRows.FindByID, s.stores.TableRows.Delete, ErrContentNotFound)
}

// BulkDeleteHeaderComponents deletes header components by id.
func (s *Service) BulkDeleteHeaderComponents(ctx context.Context, rawIDs []string) (*BulkResult, error) {
	return bulkDeleteByID(ctx, rawIDs, s.stores.Headers.FindByID, s.stores.Headers.Delete, ErrContentNotFound)
}

// BulkDeleteSocialLinks deletes social links by id.
func (s *Service) BulkDeleteSocialLinks(ctx context.Context, rawIDs []string) (*BulkResult, error) {
	return bulkDeleteByID(ctx, rawIDs, s.stores.SocialLinks.FindByID, s.stores.SocialLinks.Delete, ErrContentNotFound)
}

// UniversalBulkDelete dispatches a bulk delete by content-type tag. The tag
// set mirrors the admin panel's delete dialog.
func (s *Service) UniversalBulkDelete(ctx context.Context, contentType string, rawIDs []string, force bool) (*BulkResult, error) {
	switch contentType {
	case "posts":
		return s.BulkDeletePosts(ctx, rawIDs)
	case "cards":
		return s.BulkDeleteCards(ctx, rawIDs)
	case "table-posts":
		return s.BulkDeleteTableRows(ctx, rawIDs)
	case "table-structures":
		return s.BulkDeleteTableStructures(ctx, rawIDs)
	case "categories":
		return s.BulkDeleteCategories(ctx, rawIDs, force)
	case "subcategories":
		return s.BulkDeleteSubcategories(ctx, rawIDs, force)
	case "social-media":
		return s.BulkDeleteSocialLinks(ctx, rawIDs)
	case "header-components":
		return s.BulkDeleteHeaderComponents(ctx, rawIDs)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}
}
