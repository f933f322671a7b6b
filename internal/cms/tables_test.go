// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"rajkhabar/internal/models"
)

func TestCreateTableStructureDefaultsColumnType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	ts, err := svc.CreateTableStructure(ctx, CreateTableStructureRequest{
		Name:    "Schedule",
		Columns: []models.Column{{Name: "Event"}, {Name: "When", Type: models.ColumnTypeDate}},
	})
	require.NoError(t, err)
	require.Equal(t, "schedule", ts.Slug)
	require.Equal(t, models.ColumnTypeText, ts.Columns[0].Type)
	require.Equal(t, models.ColumnTypeDate, ts.Columns[1].Type)

	_, err = svc.CreateTableStructure(ctx, CreateTableStructureRequest{Name: "No Columns"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateTableStructure(ctx, CreateTableStructureRequest{
		Name:    "Bad Type",
		Columns: []models.Column{{Name: "X", Type: "decimal"}},
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateTableRowColumnCount(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	// The seeded structure has two columns.
	_, err := svc.CreateTableRow(ctx, CreateTableRowRequest{
		Name: "One Cell", CategorySlug: "news", SubcategorySlug: "exam-results",
		RowData: []models.RowCell{{Row: "SSC"}},
	})
	require.ErrorIs(t, err, ErrColumnCountMismatch)

	row, err := svc.CreateTableRow(ctx, CreateTableRowRequest{
		Name: "Full Row", CategorySlug: "news", SubcategorySlug: "exam-results",
		RowData: []models.RowCell{{Row: "SSC"}, {Row: "2025-06-01"}},
	})
	require.NoError(t, err)
	require.Equal(t, "results", row.TableStructureSlug)
}

func TestCreateTableRowLinkCellNeedsType(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	_, err := svc.CreateTableRow(ctx, CreateTableRowRequest{
		Name: "Linked", CategorySlug: "news", SubcategorySlug: "exam-results",
		RowData: []models.RowCell{
			{Row: "https://example.org/result.pdf", IsLink: true},
			{Row: "2025-06-01"},
		},
	})
	require.ErrorIs(t, err, ErrMissingLinkType)

	_, err = svc.CreateTableRow(ctx, CreateTableRowRequest{
		Name: "Linked", CategorySlug: "news", SubcategorySlug: "exam-results",
		RowData: []models.RowCell{
			{Row: "https://example.org/result.pdf", IsLink: true, LinkType: models.LinkTypePDF},
			{Row: "2025-06-01"},
		},
	})
	require.NoError(t, err)
}

func TestCreateTableRowTypeGating(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)

	_, err := svc.CreateTableRow(context.Background(), CreateTableRowRequest{
		Name: "Misbound", CategorySlug: "news", SubcategorySlug: "headlines",
		RowData: []models.RowCell{{Row: "a"}, {Row: "b"}},
	})
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestStrictRowValidation(t *testing.T) {
	svc := newTestService(t, WithStrictRows())
	seedTaxonomy(t, svc)
	ctx := context.Background()

	// Column 0 (Exam, text) is required; column 1 (Date) must parse.
	cases := []struct {
		name  string
		cells []models.RowCell
		ok    bool
	}{
		{"valid", []models.RowCell{{Row: "SSC"}, {Row: "2025-06-01"}}, true},
		{"empty optional date", []models.RowCell{{Row: "SSC"}, {Row: ""}}, true},
		{"missing required", []models.RowCell{{Row: ""}, {Row: "2025-06-01"}}, false},
		{"bad date", []models.RowCell{{Row: "SSC"}, {Row: "June 1st"}}, false},
	}
	for i, tc := range cases {
		_, err := svc.CreateTableRow(ctx, CreateTableRowRequest{
			Name: tc.name, Slug: fmt.Sprintf("row-%d", i),
			CategorySlug: "news", SubcategorySlug: "exam-results",
			RowData: tc.cells,
		})
		if tc.ok {
			require.NoError(t, err, tc.name)
		} else {
			require.ErrorIs(t, err, ErrValidation, tc.name)
		}
	}
}

func TestStrictRowNumberAndBoolean(t *testing.T) {
	svc := newTestService(t, WithStrictRows())
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Data", Slug: "data"})
	require.NoError(t, err)
	_, err = svc.CreateTableStructure(ctx, CreateTableStructureRequest{
		Name: "Metrics", Slug: "metrics",
		Columns: []models.Column{
			{Name: "Score", Type: models.ColumnTypeNumber},
			{Name: "Passed", Type: models.ColumnTypeBoolean},
		},
	})
	require.NoError(t, err)
	_, err = svc.CreateSubcategory(ctx, CreateSubcategoryRequest{
		Name: "Scores", Slug: "scores", Type: models.SubcategoryTypeTable,
		ParentSlug: "data", TableStructureSlug: "metrics",
	})
	require.NoError(t, err)

	_, err = svc.CreateTableRow(ctx, CreateTableRowRequest{
		Name: "ok", CategorySlug: "data", SubcategorySlug: "scores",
		RowData: []models.RowCell{{Row: "87.5"}, {Row: "true"}},
	})
	require.NoError(t, err)

	_, err = svc.CreateTableRow(ctx, CreateTableRowRequest{
		Name: "bad number", CategorySlug: "data", SubcategorySlug: "scores",
		RowData: []models.RowCell{{Row: "eighty"}, {Row: "true"}},
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateTableRow(ctx, CreateTableRowRequest{
		Name: "bad boolean", CategorySlug: "data", SubcategorySlug: "scores",
		RowData: []models.RowCell{{Row: "87.5"}, {Row: "yes"}},
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateTableRowRevalidates(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	row, err := svc.CreateTableRow(ctx, CreateTableRowRequest{
		Name: "Row", CategorySlug: "news", SubcategorySlug: "exam-results",
		RowData: []models.RowCell{{Row: "SSC"}, {Row: "2025-06-01"}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateTableRow(ctx, row.Slug, UpdateTableRowRequest{
		RowData: []models.RowCell{{Row: "only one"}},
	})
	require.ErrorIs(t, err, ErrColumnCountMismatch)
}

func TestListTableRowsByBindingReturnsStructure(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	for _, name := range []string{"First", "Second"} {
		_, err := svc.CreateTableRow(ctx, CreateTableRowRequest{
			Name: name, CategorySlug: "news", SubcategorySlug: "exam-results",
			RowData: []models.RowCell{{Row: name}, {Row: "2025-06-01"}},
		})
		require.NoError(t, err)
	}

	rows, structure, err := svc.ListTableRowsByBinding(ctx, "news", "exam-results")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, structure)
	require.Equal(t, "results", structure.Slug)
	// Newest first.
	require.Equal(t, "second", rows[0].Slug)
}
