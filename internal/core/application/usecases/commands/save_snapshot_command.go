package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrSaveSnapshotCommandIsNotConstructed = errors.New(
	"SaveSnapshotCommand must be created via NewSaveSnapshotCommand constructor",
)

// SaveSnapshotCommand represents a request to persist the current warehouse
// state. It carries no data; the handler snapshots whatever is live.
type SaveSnapshotCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewSaveSnapshotCommand creates a command to persist the warehouse state.
func NewSaveSnapshotCommand() SaveSnapshotCommand {
	return SaveSnapshotCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SaveSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrSaveSnapshotCommandIsNotConstructed)
}
