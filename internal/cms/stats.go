// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"fmt"

	"rajkhabar/internal/models"
)

// Statistics is the dashboard snapshot of the whole content inventory.
type Statistics struct {
	Categories      int `json:"totalCategories"`
	Subcategories   int `json:"totalSubCategories"`
	Posts           int `json:"totalPosts"`
	PublishedPosts  int `json:"publishedPosts"`
	DraftPosts      int `json:"draftPosts"`
	Cards           int `json:"totalCards"`
	TableRows       int `json:"totalTablePosts"`
	TableStructures int `json:"totalTableStructures"`
	Headers         int `json:"totalHeaderComponents"`
	SocialLinks     int `json:"totalSocialLinks"`
	Devices         int `json:"totalDevices"`

	PerCategory []CategoryStats `json:"perCategory"`
}

// CategoryStats breaks the inventory down per top-level category.
type CategoryStats struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Subcategories int    `json:"subCategories"`
	Posts         int    `json:"posts"`
	Cards         int    `json:"cards"`
	TableRows     int    `json:"tablePosts"`
	Headers       int    `json:"headerComponents"`
}

// GetStatistics assembles the dashboard counters. Counts are read one by
// one without a snapshot; a write racing the assembly can skew a counter
// by one, which the dashboard tolerates.
func (s *Service) GetStatistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	var err error

	if stats.Categories, err = s.stores.Categories.Count(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if stats.Subcategories, err = s.stores.Subcategories.Count(ctx); err != nil {
		return nil, fmt.Errorf("count subcategories: %w", err)
	}
	if stats.Posts, err = s.stores.Posts.Count(ctx); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	if stats.PublishedPosts, err = s.stores.Posts.CountByStatus(ctx, models.PostStatusPublished); err != nil {
		return nil, fmt.Errorf("count published posts: %w", err)
	}
	if stats.DraftPosts, err = s.stores.Posts.CountByStatus(ctx, models.PostStatusDraft); err != nil {
		return nil, fmt.Errorf("count draft posts: %w", err)
	}
	if stats.Cards, err = s.stores.Cards.Count(ctx); err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}
	if stats.TableRows, err = s.stores.TableRows.Count(ctx); err != nil {
		return nil, fmt.Errorf("count table rows: %w", err)
	}
	if stats.TableStructures, err = s.stores.TableStructures.Count(ctx); err != nil {
		return nil, fmt.Errorf("count table structures: %w", err)
	}
	if stats.Headers, err = s.stores.Headers.Count(ctx); err != nil {
		return nil, fmt.Errorf("count header components: %w", err)
	}
	if stats.SocialLinks, err = s.stores.SocialLinks.Count(ctx); err != nil {
		return nil, fmt.Errorf("count social links: %w", err)
	}
	if stats.Devices, err = s.stores.Devices.Count(ctx); err != nil {
		return nil, fmt.Errorf("count devices: %w", err)
	}

	categories, err := s.stores.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	stats.PerCategory = make([]CategoryStats, 0, len(categories))
	for _, c := range categories {
		cs := CategoryStats{Name: c.Name, Slug: c.Slug}
		if cs.Subcategories, err = s.stores.Subcategories.CountByParent(ctx, c.ID); err != nil {
			return nil, fmt.Errorf("count subcategories for %q: %w", c.Slug, err)
		}
		if cs.Posts, err = s.stores.Posts.CountByCategory(ctx, c.ID); err != nil {
			return nil, fmt.Errorf("count posts for %q: %w", c.Slug, err)
		}
		if cs.Cards, err = s.stores.Cards.CountByCategory(ctx, c.ID); err != nil {
			return nil, fmt.Errorf("count cards for %q: %w", c.Slug, err)
		}
		if cs.TableRows, err = s.stores.TableRows.CountByCategory(ctx, c.ID); err != nil {
			return nil, fmt.Errorf("count table rows for %q: %w", c.Slug, err)
		}
		if cs.Headers, err = s.stores.Headers.CountByCategory(ctx, c.ID); err != nil {
			return nil, fmt.Errorf("count header components for %q: %w", c.Slug, err)
		}
		stats.PerCategory = append(stats.PerCategory, cs)
	}
	return &stats, nil
}
