// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"rajkhabar/internal/models"
)

const categoryColumns = `id, name, slug, description, icon_url, parent_id, parent_slug,
       visible_on_home, created_at, updated_at`

// CategoryStore handles category persistence.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a CategoryStore over the given connection.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func scanCategory(row interface{ Scan(...any) error }) (*models.Category, error) {
	c := &models.Category{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconURL, &c.ParentID,
		&c.ParentSlug, &c.VisibleOnHome, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryStore) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, slug, description, icon_url, parent_id, parent_slug, visible_on_home)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.Description, c.IconURL, c.ParentID, c.ParentSlug, c.VisibleOnHome,
	)
	created, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

func (s *CategoryStore) Update(ctx context.Context, c *models.Category) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE categories SET
			name = $1, slug = $2, description = $3, icon_url = $4,
			parent_id = $5, parent_slug = $6, visible_on_home = $7,
			updated_at = NOW()
		WHERE id = $8
	`, c.Name, c.Slug, c.Description, c.IconURL, c.ParentID, c.ParentSlug, c.VisibleOnHome, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *CategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

func (s *CategoryStore) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	return c, nil
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (s *CategoryStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}
