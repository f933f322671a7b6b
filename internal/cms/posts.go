// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rajkhabar/internal/models"
	"rajkhabar/internal/slug"
	"rajkhabar/internal/store"
)

const defaultPageSize = 10

// CreatePostRequest carries the fields for a new post.
type CreatePostRequest struct {
	Title             string            `json:"title"`
	Slug              string            `json:"slug"`
	Description       string            `json:"description"`
	Content           json.RawMessage   `json:"content"`
	CategorySlug      string            `json:"categorySlug"`
	SubcategorySlug   string            `json:"subCategorySlug"`
	ImageURL          string            `json:"imageUrl"`
	Tags              []string          `json:"tags"`
	Status            models.PostStatus `json:"status"`
	VisibleInCarousel bool              `json:"isVisibleInCarousel"`
	SendNotification  bool              `json:"sendNotification"`
}

// CreatePost validates the binding and persists a new post. Post slugs are
// globally unique. Creating directly in published status triggers the
// fire-and-forget publish notification.
func (s *Service) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	if req.Title == "" || len(req.Content) == 0 {
		return nil, fmt.Errorf("%w: title and content are required", ErrValidation)
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Title)
	}
	if !slug.IsValid(req.Slug) {
		return nil, fmt.Errorf("%w: malformed slug %q", ErrValidation, req.Slug)
	}
	if req.Status == "" {
		req.Status = models.PostStatusDraft
	}
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}

	existing, err := s.stores.Posts.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check post slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: post %q", ErrDuplicateSlug, req.Slug)
	}

	c, sub, err := s.resolveBinding(ctx, req.CategorySlug, req.SubcategorySlug, models.SubcategoryTypePost)
	if err != nil {
		return nil, err
	}

	p := &models.Post{
		Title:             req.Title,
		Slug:              req.Slug,
		Description:       req.Description,
		Content:           req.Content,
		ImageURL:          req.ImageURL,
		CategoryID:        c.ID,
		CategorySlug:      c.Slug,
		SubcategoryID:     sub.ID,
		SubcategorySlug:   sub.Slug,
		Tags:              req.Tags,
		Status:            req.Status,
		Type:              "post",
		VisibleInCarousel: req.VisibleInCarousel,
		SendNotification:  req.SendNotification,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.IsPublished() {
		now := time.Now()
		p.PublishedAt = &now
	}

	created, err := s.stores.Posts.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if created.IsPublished() && created.SendNotification {
		s.notifyPublish(created, c)
	}
	return created, nil
}

// UpdatePostRequest is a partial patch. Supplying CategorySlug or
// SubcategorySlug re-runs the full binding validation; omitting both keeps
// the post where it is.
type UpdatePostRequest struct {
	Title             *string            `json:"title"`
	Slug              *string            `json:"slug"`
	Description       *string            `json:"description"`
	Content           json.RawMessage    `json:"content"`
	ImageURL          *string            `json:"imageUrl"`
	Tags              *[]string          `json:"tags"`
	Status            *models.PostStatus `json:"status"`
	CategorySlug      *string            `json:"categorySlug"`
	SubcategorySlug   *string            `json:"subCategorySlug"`
	VisibleInCarousel *bool              `json:"isVisibleInCarousel"`
	SendNotification  *bool              `json:"sendNotification"`
}

// UpdatePost applies a partial update to the post with the given slug. A
// transition into published status triggers the publish notification.
func (s *Service) UpdatePost(ctx context.Context, postSlug string, req UpdatePostRequest) (*models.Post, error) {
	p, err := s.stores.Posts.FindBySlug(ctx, postSlug)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("post %w: %q", ErrContentNotFound, postSlug)
	}
	wasPublished := p.IsPublished()

	if req.CategorySlug != nil || req.SubcategorySlug != nil {
		catSlug, subSlug := p.CategorySlug, p.SubcategorySlug
		if req.CategorySlug != nil {
			catSlug = *req.CategorySlug
		}
		if req.SubcategorySlug != nil {
			subSlug = *req.SubcategorySlug
		}
		c, sub, err := s.resolveBinding(ctx, catSlug, subSlug, models.SubcategoryTypePost)
		if err != nil {
			return nil, err
		}
		p.CategoryID, p.CategorySlug = c.ID, c.Slug
		p.SubcategoryID, p.SubcategorySlug = sub.ID, sub.Slug
	}

	if req.Slug != nil && *req.Slug != p.Slug {
		if !slug.IsValid(*req.Slug) {
			return nil, fmt.Errorf("%w: malformed slug %q", ErrValidation, *req.Slug)
		}
		dup, err := s.stores.Posts.FindBySlug(ctx, *req.Slug)
		if err != nil {
			return nil, fmt.Errorf("check post slug: %w", err)
		}
		if dup != nil {
			return nil, fmt.Errorf("%w: post %q", ErrDuplicateSlug, *req.Slug)
		}
		p.Slug = *req.Slug
	}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if len(req.Content) > 0 {
		p.Content = req.Content
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.VisibleInCarousel != nil {
		p.VisibleInCarousel = *req.VisibleInCarousel
	}
	if req.SendNotification != nil {
		p.SendNotification = *req.SendNotification
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
		p.Status = *req.Status
		if p.IsPublished() && p.PublishedAt == nil {
			now := time.Now()
			p.PublishedAt = &now
		}
	}

	if err := s.stores.Posts.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	if !wasPublished && p.IsPublished() && p.SendNotification {
		c, err := s.stores.Categories.FindByID(ctx, p.CategoryID)
		if err == nil {
			s.notifyPublish(p, c)
		}
	}
	return p, nil
}

// DeletePost removes the post with the given slug.
func (s *Service) DeletePost(ctx context.Context, postSlug string) (*models.Post, error) {
	p, err := s.stores.Posts.FindBySlug(ctx, postSlug)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("post %w: %q", ErrContentNotFound, postSlug)
	}
	if err := s.stores.Posts.Delete(ctx, p.ID); err != nil {
		return nil, fmt.Errorf("delete post %q: %w", postSlug, err)
	}
	return p, nil
}

// GetPost retrieves one post by slug.
func (s *Service) GetPost(ctx context.Context, postSlug string) (*models.Post, error) {
	p, err := s.stores.Posts.FindBySlug(ctx, postSlug)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("post %w: %q", ErrContentNotFound, postSlug)
	}
	return p, nil
}

// PostList is one page of posts plus pagination metadata.
type PostList struct {
	Posts       []models.Post `json:"posts"`
	Total       int           `json:"total"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

// ListPosts returns one page of posts, newest first, optionally filtered
// by status.
func (s *Service) ListPosts(ctx context.Context, page, limit int, status models.PostStatus) (*PostList, error) {
	f := store.PostFilter{Status: status}
	return s.listPosts(ctx, f, page, limit)
}

// ListPostsByBinding returns one page of posts under a specific
// category/subcategory pair. The subcategory must be post-typed.
func (s *Service) ListPostsByBinding(ctx context.Context, categorySlug, subcategorySlug string, page, limit int) (*PostList, error) {
	c, sub, err := s.resolveBinding(ctx, categorySlug, subcategorySlug, models.SubcategoryTypePost)
	if err != nil {
		return nil, err
	}
	f := store.PostFilter{CategoryID: c.ID, SubcategoryID: sub.ID}
	return s.listPosts(ctx, f, page, limit)
}

// SearchPosts returns one page of posts whose title matches the query,
// case-insensitively.
func (s *Service) SearchPosts(ctx context.Context, query string, page, limit int) (*PostList, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrValidation)
	}
	return s.listPosts(ctx, store.PostFilter{Search: query}, page, limit)
}

func (s *Service) listPosts(ctx context.Context, f store.PostFilter, page, limit int) (*PostList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	f.Limit = limit
	f.Offset = (page - 1) * limit

	total, err := s.stores.Posts.CountFiltered(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	posts, err := s.stores.Posts.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}

	totalPages := (total + limit - 1) / limit
	return &PostList{Posts: posts, Total: total, TotalPages: totalPages, CurrentPage: page}, nil
}
