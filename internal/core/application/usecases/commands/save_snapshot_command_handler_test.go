package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/storage"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveSnapshotCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	item := newDurable(t, "D-1")
	registry := registryWith(t, item)
	facility, err := storage.NewFacility("Central Fulfillment")
	require.NoError(t, err)
	aggregate, err := order.NewOrder("O-1", "Acme Corp", []product.Product{item}, audit.NewTrail())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAll", mock.Anything).Return([]*order.Order{aggregate}, nil).Once()

	snapshotRepo := new(MockSnapshotRepository)
	snapshotRepo.On("Save", mock.Anything, mock.AnythingOfType("*ports.Snapshot")).Return(nil).Once()

	h := commands.NewSaveSnapshotCommandHandler(registry, facility, orderRepo, snapshotRepo)
	require.NoError(t, h.Handle(ctx, commands.NewSaveSnapshotCommand()))

	saved := snapshotRepo.Calls[0].Arguments.Get(1).(*ports.Snapshot)
	assert.Same(t, registry, saved.Registry)
	assert.Same(t, facility, saved.Facility)
	require.Len(t, saved.Orders, 1)
	assert.Equal(t, "O-1", saved.Orders[0].ID())
	orderRepo.AssertExpectations(t)
	snapshotRepo.AssertExpectations(t)
}

func TestSaveSnapshotCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewSaveSnapshotCommandHandler(nil, nil, nil, nil)

	err := h.Handle(t.Context(), commands.SaveSnapshotCommand{}) // not constructed properly

	require.ErrorIs(t, err, commands.ErrSaveSnapshotCommandIsNotConstructed)
}
