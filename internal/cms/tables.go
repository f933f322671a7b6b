// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"rajkhabar/internal/models"
	"rajkhabar/internal/slug"
)

// CreateTableStructureRequest carries the fields for a new column schema.
type CreateTableStructureRequest struct {
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Columns     []models.Column `json:"columns"`
}

// CreateTableStructure persists a new named column schema. Structure slugs
// are globally unique.
func (s *Service) CreateTableStructure(ctx context.Context, req CreateTableStructureRequest) (*models.TableStructure, error) {
	if req.Name == "" || len(req.Columns) == 0 {
		return nil, fmt.Errorf("%w: name and columns are required", ErrValidation)
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	if !slug.IsValid(req.Slug) {
		return nil, fmt.Errorf("%w: malformed slug %q", ErrValidation, req.Slug)
	}
	for i, col := range req.Columns {
		if col.Name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrValidation, i)
		}
		if col.Type != "" && !col.Type.Valid() {
			return nil, fmt.Errorf("%w: column %q has unknown type %q", ErrValidation, col.Name, col.Type)
		}
		if col.Type == "" {
			req.Columns[i].Type = models.ColumnTypeText
		}
	}

	existing, err := s.stores.TableStructures.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check structure slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: table structure %q", ErrDuplicateSlug, req.Slug)
	}

	created, err := s.stores.TableStructures.Create(ctx, &models.TableStructure{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Columns:     req.Columns,
	})
	if err != nil {
		return nil, fmt.Errorf("create table structure: %w", err)
	}
	return created, nil
}

// GetTableStructure retrieves one structure by slug.
func (s *Service) GetTableStructure(ctx context.Context, structureSlug string) (*models.TableStructure, error) {
	ts, err := s.stores.TableStructures.FindBySlug(ctx, structureSlug)
	if err != nil {
		return nil, fmt.Errorf("find table structure: %w", err)
	}
	if ts == nil {
		return nil, fmt.Errorf("%w: %q", ErrTableStructureNotFound, structureSlug)
	}
	return ts, nil
}

// ListTableStructures returns all structures.
func (s *Service) ListTableStructures(ctx context.Context) ([]models.TableStructure, error) {
	return s.stores.TableStructures.List(ctx)
}

// validateRowData checks a row against its structure: the cell count must
// equal the column count, and every link cell must carry a link type.
// Cells are positional: cell i belongs to column i. In strict mode the
// column metadata is additionally enforced: required columns reject empty
// cells and typed columns reject unparsable values.
func (s *Service) validateRowData(structure *models.TableStructure, cells []models.RowCell) error {
	if len(cells) != len(structure.Columns) {
		return fmt.Errorf("%w: structure %q has %d columns, row has %d cells",
			ErrColumnCountMismatch, structure.Slug, len(structure.Columns), len(cells))
	}
	for i, cell := range cells {
		if cell.IsLink && cell.LinkType == "" {
			return fmt.Errorf("%w: cell %d (%q)", ErrMissingLinkType, i, structure.Columns[i].Name)
		}
		if cell.LinkType != "" && !cell.LinkType.Valid() {
			return fmt.Errorf("%w: cell %d has unknown link type %q", ErrValidation, i, cell.LinkType)
		}
	}
	if !s.strictRows {
		return nil
	}
	for i, cell := range cells {
		col := structure.Columns[i]
		if col.Required && cell.Row == "" {
			return fmt.Errorf("%w: column %q is required", ErrValidation, col.Name)
		}
		if cell.Row == "" || cell.IsLink {
			continue
		}
		switch col.Type {
		case models.ColumnTypeNumber:
			if _, err := strconv.ParseFloat(cell.Row, 64); err != nil {
				return fmt.Errorf("%w: column %q expects a number, got %q", ErrValidation, col.Name, cell.Row)
			}
		case models.ColumnTypeBoolean:
			if _, err := strconv.ParseBool(cell.Row); err != nil {
				return fmt.Errorf("%w: column %q expects a boolean, got %q", ErrValidation, col.Name, cell.Row)
			}
		case models.ColumnTypeDate:
			if _, err := time.Parse("2006-01-02", cell.Row); err != nil {
				return fmt.Errorf("%w: column %q expects a date (YYYY-MM-DD), got %q", ErrValidation, col.Name, cell.Row)
			}
		}
	}
	return nil
}

// CreateTableRowRequest carries the fields for a new table row. The row is
// validated against the table structure referenced by the target
// subcategory.
type CreateTableRowRequest struct {
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	CategorySlug    string           `json:"parentSlug"`
	SubcategorySlug string           `json:"subCategorySlug"`
	RowData         []models.RowCell `json:"rowData"`
}

// CreateTableRow validates the binding and row shape, then persists the
// row with the structure reference denormalized onto it.
func (s *Service) CreateTableRow(ctx context.Context, req CreateTableRowRequest) (*models.TableRow, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	if !slug.IsValid(req.Slug) {
		return nil, fmt.Errorf("%w: malformed slug %q", ErrValidation, req.Slug)
	}

	c, sub, err := s.resolveBinding(ctx, req.CategorySlug, req.SubcategorySlug, models.SubcategoryTypeTable)
	if err != nil {
		return nil, err
	}
	if sub.TableStructureSlug == "" {
		return nil, fmt.Errorf("%w: subcategory %q has no table structure", ErrTableStructureNotFound, sub.Slug)
	}
	structure, err := s.stores.TableStructures.FindBySlug(ctx, sub.TableStructureSlug)
	if err != nil {
		return nil, fmt.Errorf("resolve table structure: %w", err)
	}
	if structure == nil {
		return nil, fmt.Errorf("%w: %q", ErrTableStructureNotFound, sub.TableStructureSlug)
	}
	if err := s.validateRowData(structure, req.RowData); err != nil {
		return nil, err
	}

	existing, err := s.stores.TableRows.FindBySlug(ctx, req.Slug, c.ID, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("check row slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: table row %q in %s/%s", ErrDuplicateSlug, req.Slug, c.Slug, sub.Slug)
	}

	row := &models.TableRow{
		Name:               req.Name,
		Slug:               req.Slug,
		CategoryID:         c.ID,
		CategorySlug:       c.Slug,
		SubcategoryID:      sub.ID,
		SubcategorySlug:    sub.Slug,
		TableStructureID:   structure.ID,
		TableStructureSlug: structure.Slug,
		RowData:            req.RowData,
	}
	created, err := s.stores.TableRows.Create(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("create table row: %w", err)
	}
	return created, nil
}

// UpdateTableRowRequest is a partial patch. New row data is re-validated
// against the row's structure; re-binding re-runs the full sequence.
type UpdateTableRowRequest struct {
	Name            *string          `json:"name"`
	CategorySlug    *string          `json:"parentSlug"`
	SubcategorySlug *string          `json:"subCategorySlug"`
	RowData         []models.RowCell `json:"rowData"`
}

// UpdateTableRow applies a partial update to the first row matching the
// slug.
func (s *Service) UpdateTableRow(ctx context.Context, rowSlug string, req UpdateTableRowRequest) (*models.TableRow, error) {
	row, err := s.stores.TableRows.FindFirstBySlug(ctx, rowSlug)
	if err != nil {
		return nil, fmt.Errorf("find table row: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("table row %w: %q", ErrContentNotFound, rowSlug)
	}

	structureSlug := row.TableStructureSlug
	if req.CategorySlug != nil || req.SubcategorySlug != nil {
		catSlug, subSlug := row.CategorySlug, row.SubcategorySlug
		if req.CategorySlug != nil {
			catSlug = *req.CategorySlug
		}
		if req.SubcategorySlug != nil {
			subSlug = *req.SubcategorySlug
		}
		c, sub, err := s.resolveBinding(ctx, catSlug, subSlug, models.SubcategoryTypeTable)
		if err != nil {
			return nil, err
		}
		if sub.TableStructureSlug == "" {
			return nil, fmt.Errorf("%w: subcategory %q has no table structure", ErrTableStructureNotFound, sub.Slug)
		}
		row.CategoryID, row.CategorySlug = c.ID, c.Slug
		row.SubcategoryID, row.SubcategorySlug = sub.ID, sub.Slug
		if sub.TableStructureID != nil {
			row.TableStructureID = *sub.TableStructureID
		}
		row.TableStructureSlug = sub.TableStructureSlug
		structureSlug = sub.TableStructureSlug
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		row.Name = *req.Name
	}
	if req.RowData != nil {
		structure, err := s.stores.TableStructures.FindBySlug(ctx, structureSlug)
		if err != nil {
			return nil, fmt.Errorf("resolve table structure: %w", err)
		}
		if structure == nil {
			return nil, fmt.Errorf("%w: %q", ErrTableStructureNotFound, structureSlug)
		}
		if err := s.validateRowData(structure, req.RowData); err != nil {
			return nil, err
		}
		row.RowData = req.RowData
	}

	if err := s.stores.TableRows.Update(ctx, row); err != nil {
		return nil, fmt.Errorf("update table row: %w", err)
	}
	return row, nil
}

// DeleteTableRow removes the first table row matching the slug.
func (s *Service) DeleteTableRow(ctx context.Context, rowSlug string) (*models.TableRow, error) {
	row, err := s.stores.TableRows.FindFirstBySlug(ctx, rowSlug)
	if err != nil {
		return nil, fmt.Errorf("find table row: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("table row %w: %q", ErrContentNotFound, rowSlug)
	}
	if err := s.stores.TableRows.Delete(ctx, row.ID); err != nil {
		return nil, fmt.Errorf("delete table row %q: %w", rowSlug, err)
	}
	return row, nil
}

// GetTableRow retrieves the first table row matching the slug.
func (s *Service) GetTableRow(ctx context.Context, rowSlug string) (*models.TableRow, error) {
	row, err := s.stores.TableRows.FindFirstBySlug(ctx, rowSlug)
	if err != nil {
		return nil, fmt.Errorf("find table row: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("table row %w: %q", ErrContentNotFound, rowSlug)
	}
	return row, nil
}

// ListTableRowsByBinding returns all rows under a table-typed subcategory,
// along with the structure they conform to.
func (s *Service) ListTableRowsByBinding(ctx context.Context, categorySlug, subcategorySlug string) ([]models.TableRow, *models.TableStructure, error) {
	c, sub, err := s.resolveBinding(ctx, categorySlug, subcategorySlug, models.SubcategoryTypeTable)
	if err != nil {
		return nil, nil, err
	}
	rows, err := s.stores.TableRows.ListByBinding(ctx, c.ID, sub.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list table rows: %w", err)
	}
	var structure *models.TableStructure
	if sub.TableStructureSlug != "" {
		structure, err = s.stores.TableStructures.FindBySlug(ctx, sub.TableStructureSlug)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve table structure: %w", err)
		}
	}
	return rows, structure, nil
}
