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

const cardColumns = `id, name, slug, top_field, card_heading, middle_field, link,
       category_id, category_slug, subcategory_id, subcategory_slug,
       created_at, updated_at`

// CardStore handles card persistence. The optional link is a JSONB object.
type CardStore struct {
	db *sql.DB
}

// NewCardStore creates a CardStore over the given connection.
func NewCardStore(db *sql.DB) *CardStore {
	return &CardStore{db: db}
}

func scanCard(row interface{ Scan(...any) error }) (*models.Card, error) {
	c := &models.Card{}
	var link []byte
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.TopField, &c.CardHeading, &c.MiddleField, &link,
		&c.CategoryID, &c.CategorySlug, &c.SubcategoryID, &c.SubcategorySlug,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(link) > 0 {
		c.Link = &models.Link{}
		if err := fromJSON(link, c.Link); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *CardStore) Create(ctx context.Context, c *models.Card) (*models.Card, error) {
	var link any
	if c.Link != nil {
		var err error
		if link, err = toJSON(c.Link); err != nil {
			return nil, err
		}
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO cards (name, slug, top_field, card_heading, middle_field, link,
		                   category_id, category_slug, subcategory_id, subcategory_slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+cardColumns,
		c.Name, c.Slug, c.TopField, c.CardHeading, c.MiddleField, link,
		c.CategoryID, c.CategorySlug, c.SubcategoryID, c.SubcategorySlug,
	)
	created, err := scanCard(row)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return created, nil
}

func (s *CardStore) Update(ctx context.Context, c *models.Card) error {
	var link any
	if c.Link != nil {
		var err error
		if link, err = toJSON(c.Link); err != nil {
			return err
		}
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE cards SET
			name = $1, slug = $2, top_field = $3, card_heading = $4, middle_field = $5, link = $6,
			category_id = $7, category_slug = $8, subcategory_id = $9, subcategory_slug = $10,
			updated_at = NOW()
		WHERE id = $11
	`, c.Name, c.Slug, c.TopField, c.CardHeading, c.MiddleField, link,
		c.CategoryID, c.CategorySlug, c.SubcategoryID, c.SubcategorySlug, c.ID)
	if err != nil {
		return fmt.Errorf("update card: %w", err)
	}
	return nil
}

func (s *CardStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	return nil
}

func (s *CardStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id)
	c, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find card by id: %w", err)
	}
	return c, nil
}

func (s *CardStore) FindBySlug(ctx context.Context, slug string, categoryID, subcategoryID uuid.UUID) (*models.Card, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE slug = $1 AND category_id = $2 AND subcategory_id = $3`,
		slug, categoryID, subcategoryID,
	)
	c, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find card by slug: %w", err)
	}
	return c, nil
}

func (s *CardStore) FindFirstBySlug(ctx context.Context, slug string) (*models.Card, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE slug = $1 ORDER BY created_at LIMIT 1`, slug)
	c, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find card by slug: %w", err)
	}
	return c, nil
}

func (s *CardStore) List(ctx context.Context) ([]models.Card, error) {
	return s.listQuery(ctx, `SELECT `+cardColumns+` FROM cards ORDER BY created_at DESC`)
}

func (s *CardStore) ListByBinding(ctx context.Context, categoryID, subcategoryID uuid.UUID) ([]models.Card, error) {
	return s.listQuery(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE category_id = $1 AND subcategory_id = $2 ORDER BY created_at DESC`,
		categoryID, subcategoryID,
	)
}

func (s *CardStore) ListRecent(ctx context.Context, subcategoryIDs []uuid.UUID, limit int) ([]models.Card, error) {
	if len(subcategoryIDs) == 0 {
		return nil, nil
	}
	return s.listQuery(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE subcategory_id = ANY($1::uuid[]) ORDER BY created_at DESC LIMIT $2`,
		uuidStrings(subcategoryIDs), limit,
	)
}

func (s *CardStore) listQuery(ctx context.Context, q string, args ...any) ([]models.Card, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var items []models.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (s *CardStore) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	return s.countWhere(ctx, `category_id = $1`, categoryID)
}

func (s *CardStore) CountBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int, error) {
	return s.countWhere(ctx, `subcategory_id = $1`, subcategoryID)
}

func (s *CardStore) countWhere(ctx context.Context, cond string, arg any) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards WHERE `+cond, arg).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return count, nil
}

func (s *CardStore) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete cards by category: %w", err)
	}
	return res.RowsAffected()
}

func (s *CardStore) DeleteBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE subcategory_id = $1`, subcategoryID)
	if err != nil {
		return 0, fmt.Errorf("delete cards by subcategory: %w", err)
	}
	return res.RowsAffected()
}

func (s *CardStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return count, nil
}
