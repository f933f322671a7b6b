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

const headerColumns = `id, name, slug, heading, link, link_type,
       category_id, category_slug, subcategory_id, subcategory_slug,
       created_at, updated_at`

// HeaderComponentStore handles header component persistence. The unique
// index on subcategory_id enforces the one-per-subcategory rule.
type HeaderComponentStore struct {
	db *sql.DB
}

// NewHeaderComponentStore creates a HeaderComponentStore over the given
// connection.
func NewHeaderComponentStore(db *sql.DB) *HeaderComponentStore {
	return &HeaderComponentStore{db: db}
}

func scanHeader(row interface{ Scan(...any) error }) (*models.HeaderComponent, error) {
	h := &models.HeaderComponent{}
	err := row.Scan(
		&h.ID, &h.Name, &h.Slug, &h.Heading, &h.Link.Link, &h.Link.LinkType,
		&h.CategoryID, &h.CategorySlug, &h.SubcategoryID, &h.SubcategorySlug,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (s *HeaderComponentStore) Create(ctx context.Context, h *models.HeaderComponent) (*models.HeaderComponent, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO header_components (name, slug, heading, link, link_type,
		                               category_id, category_slug, subcategory_id, subcategory_slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+headerColumns,
		h.Name, h.Slug, h.Heading, h.Link.Link, h.Link.LinkType,
		h.CategoryID, h.CategorySlug, h.SubcategoryID, h.SubcategorySlug,
	)
	created, err := scanHeader(row)
	if err != nil {
		return nil, fmt.Errorf("create header component: %w", err)
	}
	return created, nil
}

func (s *HeaderComponentStore) Update(ctx context.Context, h *models.HeaderComponent) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE header_components SET
			name = $1, slug = $2, heading = $3, link = $4, link_type = $5,
			category_id = $6, category_slug = $7, subcategory_id = $8, subcategory_slug = $9,
			updated_at = NOW()
		WHERE id = $10
	`, h.Name, h.Slug, h.Heading, h.Link.Link, h.Link.LinkType,
		h.CategoryID, h.CategorySlug, h.SubcategoryID, h.SubcategorySlug, h.ID)
	if err != nil {
		return fmt.Errorf("update header component: %w", err)
	}
	return nil
}

func (s *HeaderComponentStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM header_components WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete header component: %w", err)
	}
	return nil
}

func (s *HeaderComponentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.HeaderComponent, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+headerColumns+` FROM header_components WHERE id = $1`, id)
	h, err := scanHeader(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find header component by id: %w", err)
	}
	return h, nil
}

func (s *HeaderComponentStore) FindBySlug(ctx context.Context, slug string, categoryID, subcategoryID uuid.UUID) (*models.HeaderComponent, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+headerColumns+` FROM header_components WHERE slug = $1 AND category_id = $2 AND subcategory_id = $3`,
		slug, categoryID, subcategoryID,
	)
	h, err := scanHeader(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find header component by slug: %w", err)
	}
	return h, nil
}

func (s *HeaderComponentStore) FindByBinding(ctx context.Context, categoryID, subcategoryID uuid.UUID) (*models.HeaderComponent, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+headerColumns+` FROM header_components WHERE category_id = $1 AND subcategory_id = $2`,
		categoryID, subcategoryID,
	)
	h, err := scanHeader(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find header component by binding: %w", err)
	}
	return h, nil
}

func headerFilterClause(f store.HeaderFilter) (string, []any) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.CategorySlug != "" {
		conds = append(conds, "category_slug = "+arg(f.CategorySlug))
	}
	if f.SubcategorySlug != "" {
		conds = append(conds, "subcategory_slug = "+arg(f.SubcategorySlug))
	}
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		conds = append(conds, "(name ILIKE "+p+" OR heading ILIKE "+p+")")
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (s *HeaderComponentStore) List(ctx context.Context, f store.HeaderFilter) ([]models.HeaderComponent, error) {
	where, args := headerFilterClause(f)
	q := `SELECT ` + headerColumns + ` FROM header_components ` + where + ` ORDER BY created_at DESC`
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
		return nil, fmt.Errorf("list header components: %w", err)
	}
	defer rows.Close()

	var items []models.HeaderComponent
	for rows.Next() {
		h, err := scanHeader(rows)
		if err != nil {
			return nil, fmt.Errorf("scan header component: %w", err)
		}
		items = append(items, *h)
	}
	return items, rows.Err()
}

func (s *HeaderComponentStore) CountFiltered(ctx context.Context, f store.HeaderFilter) (int, error) {
	where, args := headerFilterClause(f)
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM header_components `+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count header components: %w", err)
	}
	return count, nil
}

func (s *HeaderComponentStore) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	return s.countWhere(ctx, `category_id = $1`, categoryID)
}

func (s *HeaderComponentStore) CountBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int, error) {
	return s.countWhere(ctx, `subcategory_id = $1`, subcategoryID)
}

func (s *HeaderComponentStore) countWhere(ctx context.Context, cond string, arg any) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM header_components WHERE `+cond, arg).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count header components: %w", err)
	}
	return count, nil
}

func (s *HeaderComponentStore) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM header_components WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete header components by category: %w", err)
	}
	return res.RowsAffected()
}

func (s *HeaderComponentStore) DeleteBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM header_components WHERE subcategory_id = $1`, subcategoryID)
	if err != nil {
		return 0, fmt.Errorf("delete header components by subcategory: %w", err)
	}
	return res.RowsAffected()
}

func (s *HeaderComponentStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM header_components`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count header components: %w", err)
	}
	return count, nil
}
