package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// GetAuditTrailQuery represents a request for the session's audit trail as
// formatted text.
type GetAuditTrailQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates a query for the audit trail export.
func NewGetAuditTrailQuery() GetAuditTrailQuery {
	return GetAuditTrailQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}
