package guard_test

import (
	"errors"
	"testing"

	"warehouse/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is embedded
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Carrier struct {
		name  string
		guard guard.ConstructorGuard
	}

	var errCarrierNotConstructed = errors.New("Carrier must be created via newCarrier")

	newCarrier := func(name string) (Carrier, error) {
		if name == "" {
			return Carrier{}, errors.New("name is required")
		}
		return Carrier{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	validateCarrier := func(c Carrier) error {
		return c.guard.Validate(errCarrierNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		carrier, err := newCarrier("FastShip")

		require.NoError(t, err)
		require.NoError(t, validateCarrier(carrier))
		assert.Equal(t, "FastShip", carrier.name)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		var carrier Carrier // zero value

		err := validateCarrier(carrier)

		require.Error(t, err)
		assert.Equal(t, errCarrierNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newCarrier("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})
}
