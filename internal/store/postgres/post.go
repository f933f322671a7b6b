// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"rajkhabar/internal/models"
	"rajkhabar/internal/store"
)

const postColumns = `id, title, slug, description, content, image_url,
       category_id, category_slug, subcategory_id, subcategory_slug,
       tags, status, type, visible_in_carousel, send_notification,
       published_at, created_at, updated_at`

// PostStore handles post persistence. The editor payload and tag list are
// stored as JSONB.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a PostStore over the given connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	p := &models.Post{}
	var content, tags []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &content, &p.ImageURL,
		&p.CategoryID, &p.CategorySlug, &p.SubcategoryID, &p.SubcategorySlug,
		&tags, &p.Status, &p.Type, &p.VisibleInCarousel, &p.SendNotification,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Content = content
	if err := fromJSON(tags, &p.Tags); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostStore) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	tags, err := toJSON(p.Tags)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, slug, description, content, image_url,
		                   category_id, category_slug, subcategory_id, subcategory_slug,
		                   tags, status, type, visible_in_carousel, send_notification, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Description, []byte(p.Content), p.ImageURL,
		p.CategoryID, p.CategorySlug, p.SubcategoryID, p.SubcategorySlug,
		tags, p.Status, p.Type, p.VisibleInCarousel, p.SendNotification, p.PublishedAt,
	)
	created, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

func (s *PostStore) Update(ctx context.Context, p *models.Post) error {
	tags, err := toJSON(p.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		UPDATE posts SET
			title = $1, slug = $2, description = $3, content = $4, image_url = $5,
			category_id = $6, category_slug = $7, subcategory_id = $8, subcategory_slug = $9,
			tags = $10, status = $11, visible_in_carousel = $12, send_notification = $13,
			published_at = $14, updated_at = NOW()
		WHERE id = $15
	`, p.Title, p.Slug, p.Description, []byte(p.Content), p.ImageURL,
		p.CategoryID, p.CategorySlug, p.SubcategoryID, p.SubcategorySlug,
		tags, p.Status, p.VisibleInCarousel, p.SendNotification, p.PublishedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (s *PostStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

func (s *PostStore) FindBySlug(ctx context.Context, slug string) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE slug = $1`, slug)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// filterClause builds the WHERE clause for a PostFilter. Zero filter
// values add no condition.
func filterClause(f store.PostFilter) (string, []any) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != "" {
		conds = append(conds, "status = "+arg(f.Status))
	}
	if f.Search != "" {
		conds = append(conds, "title ILIKE "+arg("%"+f.Search+"%"))
	}
	if f.CategoryID != uuid.Nil {
		conds = append(conds, "category_id = "+arg(f.CategoryID))
	}
	if f.SubcategoryID != uuid.Nil {
		conds = append(conds, "subcategory_id = "+arg(f.SubcategoryID))
	}
	if f.CarouselVisible {
		conds = append(conds, "visible_in_carousel = TRUE")
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (s *PostStore) List(ctx context.Context, f store.PostFilter) ([]models.Post, error) {
	where, args := filterClause(f)
	q := `SELECT ` + postColumns + ` FROM posts ` + where + ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (s *PostStore) CountFiltered(ctx context.Context, f store.PostFilter) (int, error) {
	where, args := filterClause(f)
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts `+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

func (s *PostStore) ListRecent(ctx context.Context, subcategoryIDs []uuid.UUID, limit int) ([]models.Post, error) {
	if len(subcategoryIDs) == 0 {
		return nil, nil
	}
	ids := uuidStrings(subcategoryIDs)
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+postColumns+` FROM posts
		WHERE subcategory_id = ANY($1::uuid[]) AND status = 'published'
		ORDER BY created_at DESC
		LIMIT $2
	`, ids, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (s *PostStore) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	return s.countWhere(ctx, `category_id = $1`, categoryID)
}

func (s *PostStore) CountBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int, error) {
	return s.countWhere(ctx, `subcategory_id = $1`, subcategoryID)
}

func (s *PostStore) CountByStatus(ctx context.Context, status models.PostStatus) (int, error) {
	return s.countWhere(ctx, `status = $1`, status)
}

func (s *PostStore) countWhere(ctx context.Context, cond string, arg any) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts WHERE `+cond, arg).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

func (s *PostStore) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete posts by category: %w", err)
	}
	return res.RowsAffected()
}

func (s *PostStore) DeleteBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE subcategory_id = $1`, subcategoryID)
	if err != nil {
		return 0, fmt.Errorf("delete posts by subcategory: %w", err)
	}
	return res.RowsAffected()
}

func (s *PostStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}
