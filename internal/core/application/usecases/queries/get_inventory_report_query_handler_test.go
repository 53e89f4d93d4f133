package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInventoryReportQueryHandler_Handle(t *testing.T) {
	t.Run("report lists totals and entries", func(t *testing.T) {
		registry := registryWith(t, newDurable(t, "D-1"), newPerishableExpiring(t, "P-1", 30))

		h := queries.NewGetInventoryReportQueryHandler(registry)
		report, err := h.Handle(t.Context(), queries.NewGetInventoryReportQuery())

		require.NoError(t, err)
		assert.Contains(t, report, "WAREHOUSE INVENTORY REPORT")
		assert.Contains(t, report, "Total Items: 2")
		assert.Contains(t, report, "Perishables: 1")
		assert.Contains(t, report, "Durables:    1")
		assert.Contains(t, report, "Crate D-1")
		assert.Contains(t, report, "Goods P-1")
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		h := queries.NewGetInventoryReportQueryHandler(registryWith(t))

		_, err := h.Handle(t.Context(), queries.GetInventoryReportQuery{})

		require.ErrorIs(t, err, queries.ErrGetInventoryReportQueryIsNotConstructed)
	})
}
