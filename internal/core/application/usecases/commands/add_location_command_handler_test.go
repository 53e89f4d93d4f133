package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	facility, err := storage.NewFacility("Central Fulfillment")
	require.NoError(t, err)
	shelf, err := storage.NewShelf("S-1", 100, 2.0)
	require.NoError(t, err)
	cmd, err := commands.NewAddLocationCommand(shelf)
	require.NoError(t, err)

	h := commands.NewAddLocationCommandHandler(facility)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, []string{"S-1"}, facility.LocationIDs())
}

func TestNewAddLocationCommand_NilLocation(t *testing.T) {
	_, err := commands.NewAddLocationCommand(nil)

	require.Error(t, err)
}
