package pdf_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/infrastructure/pdf"
)

func TestRunReportRenderer_Render(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	report := &dto.RunReport{
		RunID:             "run-1",
		Store:             "CALLE 8",
		Supplier:          "CigarPOS",
		RowsRead:          400,
		RowsProcessed:     390,
		ProductsUpserted:  390,
		InventoryUpserted: 390,
		InventoryPruned:   3,
		UnresolvedColumns: []string{"stock_code"},
		StartedAt:         start,
		FinishedAt:        start.Add(2 * time.Second),
	}
	for i := 0; i < pdf.MaxSkippedRows+5; i++ {
		report.Skipped = append(report.Skipped, dto.SkipReason{Line: i + 2, Name: fmt.Sprintf("ITEM %d", i), Reason: "duplicate_name"})
	}

	out, err := pdf.NewRunReportRenderer().Render(context.Background(), report)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRunReportRenderer_NilReport(t *testing.T) {
	_, err := pdf.NewRunReportRenderer().Render(context.Background(), nil)
	assert.Error(t, err)
}
