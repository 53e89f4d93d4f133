package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAuditTrailQueryHandler_Handle(t *testing.T) {
	trail := audit.NewTrail()
	trail.LogOrderStatus("O-1", "Pending")
	trail.LogWarning("low capacity")

	h := queries.NewGetAuditTrailQueryHandler(trail)
	text, err := h.Handle(t.Context(), queries.NewGetAuditTrailQuery())

	require.NoError(t, err)
	assert.Contains(t, text, "(ORDER_STATUS) -> Order O-1 changed status to Pending")
	assert.Contains(t, text, "(WARNING) -> low capacity")
}
