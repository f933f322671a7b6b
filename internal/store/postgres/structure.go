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

const structureColumns = `id, name, slug, description, columns, created_at, updated_at`

// TableStructureStore handles table structure persistence. The ordered
// column schema is stored as a JSONB array.
type TableStructureStore struct {
	db *sql.DB
}

// NewTableStructureStore creates a TableStructureStore over the given
// connection.
func NewTableStructureStore(db *sql.DB) *TableStructureStore {
	return &TableStructureStore{db: db}
}

func scanStructure(row interface{ Scan(...any) error }) (*models.TableStructure, error) {
	ts := &models.TableStructure{}
	var cols []byte
	err := row.Scan(&ts.ID, &ts.Name, &ts.Slug, &ts.Description, &cols, &ts.CreatedAt, &ts.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := fromJSON(cols, &ts.Columns); err != nil {
		return nil, err
	}
	return ts, nil
}

func (s *TableStructureStore) Create(ctx context.Context, t *models.TableStructure) (*models.TableStructure, error) {
	cols, err := toJSON(t.Columns)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO table_structures (name, slug, description, columns)
		VALUES ($1, $2, $3, $4)
		RETURNING `+structureColumns,
		t.Name, t.Slug, t.Description, cols,
	)
	created, err := scanStructure(row)
	if err != nil {
		return nil, fmt.Errorf("create table structure: %w", err)
	}
	return created, nil
}

func (s *TableStructureStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM table_structures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete table structure: %w", err)
	}
	return nil
}

func (s *TableStructureStore) FindByID(ctx context.Context, id uuid.UUID) (*models.TableStructure, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+structureColumns+` FROM table_structures WHERE id = $1`, id)
	ts, err := scanStructure(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find table structure by id: %w", err)
	}
	return ts, nil
}

func (s *TableStructureStore) FindBySlug(ctx context.Context, slug string) (*models.TableStructure, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+structureColumns+` FROM table_structures WHERE slug = $1`, slug)
	ts, err := scanStructure(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find table structure by slug: %w", err)
	}
	return ts, nil
}

func (s *TableStructureStore) List(ctx context.Context) ([]models.TableStructure, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+structureColumns+` FROM table_structures ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list table structures: %w", err)
	}
	defer rows.Close()

	var items []models.TableStructure
	for rows.Next() {
		ts, err := scanStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("scan table structure: %w", err)
		}
		items = append(items, *ts)
	}
	return items, rows.Err()
}

func (s *TableStructureStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM table_structures`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count table structures: %w", err)
	}
	return count, nil
}
