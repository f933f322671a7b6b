// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"rajkhabar/internal/models"
	"rajkhabar/internal/store/memory"
)

// newTestService builds a Service over in-memory stores.
func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	return New(memory.NewStores(), opts...)
}

// seedTaxonomy creates one category with a subcategory of each type, plus
// a two-column table structure backing the table subcategory.
func seedTaxonomy(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "News", Slug: "news"})
	require.NoError(t, err)

	_, err = svc.CreateTableStructure(ctx, CreateTableStructureRequest{
		Name: "Results",
		Slug: "results",
		Columns: []models.Column{
			{Name: "Exam", Type: models.ColumnTypeText, Required: true},
			{Name: "Date", Type: models.ColumnTypeDate},
		},
	})
	require.NoError(t, err)

	for _, sub := range []CreateSubcategoryRequest{
		{Name: "Headlines", Slug: "headlines", Type: models.SubcategoryTypePost, ParentSlug: "news"},
		{Name: "Jobs", Slug: "jobs", Type: models.SubcategoryTypeCard, ParentSlug: "news"},
		{Name: "Exam Results", Slug: "exam-results", Type: models.SubcategoryTypeTable, ParentSlug: "news", TableStructureSlug: "results"},
	} {
		_, err := svc.CreateSubcategory(ctx, sub)
		require.NoError(t, err)
	}
}

func postContent() json.RawMessage {
	return json.RawMessage(`{"blocks":[{"type":"paragraph","text":"hello"}]}`)
}
