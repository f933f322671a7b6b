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

const rowColumns = `id, name, slug, category_id, category_slug,
       subcategory_id, subcategory_slug, table_structure_id, table_structure_slug,
       row_data, created_at, updated_at`

// TableRowStore handles table row persistence. The positional cells are a
// JSONB array.
type TableRowStore struct {
	db *sql.DB
}

// NewTableRowStore creates a TableRowStore over the given connection.
func NewTableRowStore(db *sql.DB) *TableRowStore {
	return &TableRowStore{db: db}
}

func scanTableRow(row interface{ Scan(...any) error }) (*models.TableRow, error) {
	r := &models.TableRow{}
	var data []byte
	err := row.Scan(
		&r.ID, &r.Name, &r.Slug, &r.CategoryID, &r.CategorySlug,
		&r.SubcategoryID, &r.SubcategorySlug, &r.TableStructureID, &r.TableStructureSlug,
		&data, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := fromJSON(data, &r.RowData); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *TableRowStore) Create(ctx context.Context, r *models.TableRow) (*models.TableRow, error) {
	data, err := toJSON(r.RowData)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO table_rows (name, slug, category_id, category_slug,
		                        subcategory_id, subcategory_slug,
		                        table_structure_id, table_structure_slug, row_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+rowColumns,
		r.Name, r.Slug, r.CategoryID, r.CategorySlug,
		r.SubcategoryID, r.SubcategorySlug, r.TableStructureID, r.TableStructureSlug, data,
	)
	created, err := scanTableRow(row)
	if err != nil {
		return nil, fmt.Errorf("create table row: %w", err)
	}
	return created, nil
}

func (s *TableRowStore) Update(ctx context.Context, r *models.TableRow) error {
	data, err := toJSON(r.RowData)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		UPDATE table_rows SET
			name = $1, slug = $2, category_id = $3, category_slug = $4,
			subcategory_id = $5, subcategory_slug = $6,
			table_structure_id = $7, table_structure_slug = $8,
			row_data = $9, updated_at = NOW()
		WHERE id = $10
	`, r.Name, r.Slug, r.CategoryID, r.CategorySlug,
		r.SubcategoryID, r.SubcategorySlug, r.TableStructureID, r.TableStructureSlug,
		data, r.ID)
	if err != nil {
		return fmt.Errorf("update table row: %w", err)
	}
	return nil
}

func (s *TableRowStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM table_rows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete table row: %w", err)
	}
	return nil
}

func (s *TableRowStore) FindByID(ctx context.Context, id uuid.UUID) (*models.TableRow, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+rowColumns+` FROM table_rows WHERE id = $1`, id)
	r, err := scanTableRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find table row by id: %w", err)
	}
	return r, nil
}

func (s *TableRowStore) FindBySlug(ctx context.Context, slug string, categoryID, subcategoryID uuid.UUID) (*models.TableRow, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+rowColumns+` FROM table_rows WHERE slug = $1 AND category_id = $2 AND subcategory_id = $3`,
		slug, categoryID, subcategoryID,
	)
	r, err := scanTableRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find table row by slug: %w", err)
	}
	return r, nil
}

func (s *TableRowStore) FindFirstBySlug(ctx context.Context, slug string) (*models.TableRow, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+rowColumns+` FROM table_rows WHERE slug = $1 ORDER BY created_at LIMIT 1`, slug)
	r, err := scanTableRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find table row by slug: %w", err)
	}
	return r, nil
}

func (s *TableRowStore) ListByBinding(ctx context.Context, categoryID, subcategoryID uuid.UUID) ([]models.TableRow, error) {
	return s.listQuery(ctx,
		`SELECT `+rowColumns+` FROM table_rows WHERE category_id = $1 AND subcategory_id = $2 ORDER BY created_at DESC`,
		categoryID, subcategoryID,
	)
}

func (s *TableRowStore) ListByStructureSlug(ctx context.Context, structureSlug string) ([]models.TableRow, error) {
	return s.listQuery(ctx,
		`SELECT `+rowColumns+` FROM table_rows WHERE table_structure_slug = $1 ORDER BY created_at DESC`,
		structureSlug,
	)
}

func (s *TableRowStore) ListRecent(ctx context.Context, subcategoryIDs []uuid.UUID, limit int) ([]models.TableRow, error) {
	if len(subcategoryIDs) == 0 {
		return nil, nil
	}
	return s.listQuery(ctx,
		`SELECT `+rowColumns+` FROM table_rows WHERE subcategory_id = ANY($1::uuid[]) ORDER BY created_at DESC LIMIT $2`,
		uuidStrings(subcategoryIDs), limit,
	)
}

func (s *TableRowStore) listQuery(ctx context.Context, q string, args ...any) ([]models.TableRow, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list table rows: %w", err)
	}
	defer rows.Close()

	var items []models.TableRow
	for rows.Next() {
		r, err := scanTableRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		items = append(items, *r)
	}
	return items, rows.Err()
}

func (s *TableRowStore) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	return s.countWhere(ctx, `category_id = $1`, categoryID)
}

func (s *TableRowStore) CountBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int, error) {
	return s.countWhere(ctx, `subcategory_id = $1`, subcategoryID)
}

func (s *TableRowStore) countWhere(ctx context.Context, cond string, arg any) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM table_rows WHERE `+cond, arg).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count table rows: %w", err)
	}
	return count, nil
}

func (s *TableRowStore) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM table_rows WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete table rows by category: %w", err)
	}
	return res.RowsAffected()
}

func (s *TableRowStore) DeleteBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM table_rows WHERE subcategory_id = $1`, subcategoryID)
	if err != nil {
		return 0, fmt.Errorf("delete table rows by subcategory: %w", err)
	}
	return res.RowsAffected()
}

func (s *TableRowStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM table_rows`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count table rows: %w", err)
	}
	return count, nil
}
