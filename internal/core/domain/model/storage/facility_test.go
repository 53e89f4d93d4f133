package storage_test

import (
	"testing"

	"warehouse/internal/core/domain/model/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFacility(t *testing.T) *storage.Facility {
	t.Helper()
	facility, err := storage.NewFacility("Central Fulfillment")
	require.NoError(t, err)
	return facility
}

func newShelf(t *testing.T, id string, capacity float64) *storage.Shelf {
	t.Helper()
	shelf, err := storage.NewShelf(id, capacity, 2.0)
	require.NoError(t, err)
	return shelf
}

func TestNewFacility(t *testing.T) {
	t.Run("should create facility with name", func(t *testing.T) {
		facility, err := storage.NewFacility("Central Fulfillment")

		require.NoError(t, err)
		assert.Equal(t, "Central Fulfillment", facility.Name())
		assert.Empty(t, facility.Locations())
		require.NoError(t, facility.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		facility, err := storage.NewFacility("")

		require.Error(t, err)
		assert.Nil(t, facility)
	})
}

func TestFacility_AddLocation(t *testing.T) {
	t.Run("should append locations preserving insertion order", func(t *testing.T) {
		facility := newFacility(t)

		require.NoError(t, facility.AddLocation(newShelf(t, "S-1", 100)))
		require.NoError(t, facility.AddLocation(newShelf(t, "S-2", 200)))

		assert.Equal(t, []string{"S-1", "S-2"}, facility.LocationIDs())
	})

	t.Run("should reject nil and zero-value locations", func(t *testing.T) {
		facility := newFacility(t)

		require.Error(t, facility.AddLocation(nil))
		require.Error(t, facility.AddLocation(&storage.Shelf{}))
		assert.Empty(t, facility.Locations())
	})

	t.Run("duplicate identifiers are permitted", func(t *testing.T) {
		facility := newFacility(t)

		require.NoError(t, facility.AddLocation(newShelf(t, "S-1", 100)))
		require.NoError(t, facility.AddLocation(newShelf(t, "S-1", 200)))

		assert.Len(t, facility.Locations(), 2)
	})
}

func TestFacility_FindByID(t *testing.T) {
	t.Run("should find location by identifier", func(t *testing.T) {
		facility := newFacility(t)
		shelf := newShelf(t, "S-1", 100)
		require.NoError(t, facility.AddLocation(shelf))

		assert.Same(t, shelf, facility.FindByID("S-1"))
	})

	t.Run("should return nil for unknown identifier", func(t *testing.T) {
		facility := newFacility(t)

		assert.Nil(t, facility.FindByID("missing"))
	})

	t.Run("should return last match when duplicates exist", func(t *testing.T) {
		facility := newFacility(t)
		first := newShelf(t, "S-1", 100)
		second := newShelf(t, "S-1", 200)
		require.NoError(t, facility.AddLocation(first))
		require.NoError(t, facility.AddLocation(second))

		assert.Same(t, second, facility.FindByID("S-1"))
	})
}

func TestFacility_FreeCapacity(t *testing.T) {
	t.Run("should sum remaining capacity across locations", func(t *testing.T) {
		facility := newFacility(t)
		first := newShelf(t, "S-1", 100)
		second := newShelf(t, "S-2", 50)
		require.NoError(t, facility.AddLocation(first))
		require.NoError(t, facility.AddLocation(second))
		require.True(t, first.AddItem(newDurable(t, "D-1", 30)))

		assert.InEpsilon(t, 120.0, facility.FreeCapacity(), 1e-9)
	})

	t.Run("empty facility has zero free capacity", func(t *testing.T) {
		assert.Zero(t, newFacility(t).FreeCapacity())
	})
}

func TestFacility_Locations(t *testing.T) {
	t.Run("returned slice is a copy", func(t *testing.T) {
		facility := newFacility(t)
		require.NoError(t, facility.AddLocation(newShelf(t, "S-1", 100)))

		locations := facility.Locations()
		locations[0] = nil

		assert.NotNil(t, facility.Locations()[0])
	})
}

func TestRestoreFacility(t *testing.T) {
	t.Run("should restore facility with ordered locations", func(t *testing.T) {
		locations := []storage.Location{
			newShelf(t, "S-1", 100),
			newShelf(t, "S-2", 200),
		}

		facility, err := storage.RestoreFacility("Central Fulfillment", locations)

		require.NoError(t, err)
		assert.Equal(t, []string{"S-1", "S-2"}, facility.LocationIDs())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := storage.RestoreFacility("", nil)

		require.Error(t, err)
	})
}
