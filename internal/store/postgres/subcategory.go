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

const subcategoryColumns = `id, name, slug, description, type, parent_id, parent_slug,
       table_structure_id, table_structure_slug, created_at, updated_at`

// SubcategoryStore handles subcategory persistence.
type SubcategoryStore struct {
	db *sql.DB
}

// NewSubcategoryStore creates a SubcategoryStore over the given connection.
func NewSubcategoryStore(db *sql.DB) *SubcategoryStore {
	return &SubcategoryStore{db: db}
}

func scanSubcategory(row interface{ Scan(...any) error }) (*models.Subcategory, error) {
	sub := &models.Subcategory{}
	err := row.Scan(
		&sub.ID, &sub.Name, &sub.Slug, &sub.Description, &sub.Type,
		&sub.ParentID, &sub.ParentSlug, &sub.TableStructureID, &sub.TableStructureSlug,
		&sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubcategoryStore) Create(ctx context.Context, sub *models.Subcategory) (*models.Subcategory, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO subcategories (name, slug, description, type, parent_id, parent_slug,
		                           table_structure_id, table_structure_slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+subcategoryColumns,
		sub.Name, sub.Slug, sub.Description, sub.Type, sub.ParentID, sub.ParentSlug,
		sub.TableStructureID, sub.TableStructureSlug,
	)
	created, err := scanSubcategory(row)
	if err != nil {
		return nil, fmt.Errorf("create subcategory: %w", err)
	}
	return created, nil
}

func (s *SubcategoryStore) Update(ctx context.Context, sub *models.Subcategory) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE subcategories SET
			name = $1, slug = $2, description = $3,
			table_structure_id = $4, table_structure_slug = $5,
			updated_at = NOW()
		WHERE id = $6
	`, sub.Name, sub.Slug, sub.Description, sub.TableStructureID, sub.TableStructureSlug, sub.ID)
	if err != nil {
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

func (s *SubcategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}

func (s *SubcategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Subcategory, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+subcategoryColumns+` FROM subcategories WHERE id = $1`, id)
	sub, err := scanSubcategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find subcategory by id: %w", err)
	}
	return sub, nil
}

func (s *SubcategoryStore) FindBySlug(ctx context.Context, slug string, parentID uuid.UUID) (*models.Subcategory, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+subcategoryColumns+` FROM subcategories WHERE slug = $1 AND parent_id = $2`,
		slug, parentID,
	)
	sub, err := scanSubcategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find subcategory by slug: %w", err)
	}
	return sub, nil
}

func (s *SubcategoryStore) FindFirstBySlug(ctx context.Context, slug string) (*models.Subcategory, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+subcategoryColumns+` FROM subcategories WHERE slug = $1 ORDER BY created_at LIMIT 1`,
		slug,
	)
	sub, err := scanSubcategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find subcategory by slug: %w", err)
	}
	return sub, nil
}

func (s *SubcategoryStore) List(ctx context.Context) ([]models.Subcategory, error) {
	return s.listWhere(ctx, ``)
}

func (s *SubcategoryStore) ListByParent(ctx context.Context, parentID uuid.UUID) ([]models.Subcategory, error) {
	return s.listWhere(ctx, `WHERE parent_id = $1`, parentID)
}

func (s *SubcategoryStore) ListByStructureSlug(ctx context.Context, structureSlug string) ([]models.Subcategory, error) {
	return s.listWhere(ctx, `WHERE table_structure_slug = $1`, structureSlug)
}

func (s *SubcategoryStore) listWhere(ctx context.Context, where string, args ...any) ([]models.Subcategory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+subcategoryColumns+` FROM subcategories `+where+` ORDER BY created_at`, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	var items []models.Subcategory
	for rows.Next() {
		sub, err := scanSubcategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		items = append(items, *sub)
	}
	return items, rows.Err()
}

func (s *SubcategoryStore) DeleteByParent(ctx context.Context, parentID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM subcategories WHERE parent_id = $1`, parentID)
	if err != nil {
		return 0, fmt.Errorf("delete subcategories by parent: %w", err)
	}
	return res.RowsAffected()
}

func (s *SubcategoryStore) CountByParent(ctx context.Context, parentID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subcategories WHERE parent_id = $1`, parentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count subcategories by parent: %w", err)
	}
	return count, nil
}

func (s *SubcategoryStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subcategories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count subcategories: %w", err)
	}
	return count, nil
}
