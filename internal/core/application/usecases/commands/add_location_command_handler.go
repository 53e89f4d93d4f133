package commands

import (
	"context"

	"warehouse/internal/core/domain/model/storage"
)

// AddLocationCommandHandler handles the business logic for extending the
// facility with new storage locations.
type AddLocationCommandHandler struct {
	facility *storage.Facility
}

// NewAddLocationCommandHandler creates a handler for facility extension.
func NewAddLocationCommandHandler(facility *storage.Facility) AddLocationCommandHandler {
	return AddLocationCommandHandler{facility: facility}
}

// Handle processes the extension command.
func (h AddLocationCommandHandler) Handle(_ context.Context, cmd AddLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.facility.AddLocation(cmd.Location())
}
