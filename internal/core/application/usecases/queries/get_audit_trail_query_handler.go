package queries

import (
	"context"

	"warehouse/internal/core/domain/model/audit"
)

// GetAuditTrailQueryHandler exports the session's audit trail.
type GetAuditTrailQueryHandler struct {
	trail *audit.Trail
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
func NewGetAuditTrailQueryHandler(trail *audit.Trail) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{trail: trail}
}

// Handle executes the query.
// Returns one line per record in insertion order.
func (h GetAuditTrailQueryHandler) Handle(_ context.Context, query GetAuditTrailQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	return h.trail.ExportText(), nil
}
