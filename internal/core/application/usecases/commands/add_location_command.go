package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/storage"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrAddLocationCommandIsNotConstructed = errors.New(
	"AddLocationCommand must be created via NewAddLocationCommand constructor",
)

// AddLocationCommand represents a request to append a storage location to
// the facility.
type AddLocationCommand struct { //nolint:recvcheck //using for validation
	location storage.Location

	guard guard.ConstructorGuard
}

// NewAddLocationCommand creates a command to append a storage location.
func NewAddLocationCommand(loc storage.Location) (AddLocationCommand, error) {
	cmd := AddLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLocation(loc); err != nil {
		return AddLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLocationCommand) Validate() error {
	return c.guard.Validate(ErrAddLocationCommandIsNotConstructed)
}

// Location returns the storage location to append.
func (c AddLocationCommand) Location() storage.Location {
	return c.location
}

func (c *AddLocationCommand) setLocation(loc storage.Location) error {
	if loc == nil {
		return errs.NewValueIsRequiredError("location is required")
	}
	if err := loc.Validate(); err != nil {
		return err
	}

	c.location = loc
	return nil
}
