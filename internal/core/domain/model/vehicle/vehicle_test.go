package vehicle_test

import (
	"testing"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	t.Run("valid vehicle is active and unassigned", func(t *testing.T) {
		id := kernel.NewUUID()

		v, err := vehicle.NewVehicle(id, "KA-1234-BC", 1200)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, v.ID().IsEqual(id))
		assert.Equal(t, "KA-1234-BC", v.Plate())
		assert.Equal(t, 1200, v.Capacity())
		assert.True(t, v.IsActive())
		assert.Nil(t, v.DriverID())
		assert.True(t, v.IsFree())
	})

	t.Run("invalid parameters", func(t *testing.T) {
		testCases := []struct {
			name     string
			plate    string
			capacity int
		}{
			{"empty plate", "", 1200},
			{"zero capacity", "KA-1234-BC", 0},
			{"negative capacity", "KA-1234-BC", -10},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := vehicle.NewVehicle(kernel.NewUUID(), tc.plate, tc.capacity)
				require.Error(t, err)
			})
		}
	})
}

func TestVehicle_AssignDriver(t *testing.T) {
	t.Run("assigns driver to free vehicle", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), "KA-1234-BC", 1200)
		require.NoError(t, err)
		driverID := kernel.NewUUID()

		require.NoError(t, v.AssignDriver(driverID))

		require.NotNil(t, v.DriverID())
		assert.True(t, v.DriverID().IsEqual(driverID))
		assert.False(t, v.IsFree())
	})

	t.Run("fails on inactive vehicle", func(t *testing.T) {
		v, _ := vehicle.NewVehicle(kernel.NewUUID(), "KA-1234-BC", 1200)
		v.Deactivate()

		err := v.AssignDriver(kernel.NewUUID())

		require.ErrorIs(t, err, vehicle.ErrVehicleIsNotActive)
		assert.Nil(t, v.DriverID())
	})

	t.Run("fails when a driver is already bound, even the same one", func(t *testing.T) {
		v, _ := vehicle.NewVehicle(kernel.NewUUID(), "KA-1234-BC", 1200)
		driverID := kernel.NewUUID()
		require.NoError(t, v.AssignDriver(driverID))

		require.ErrorIs(t, v.AssignDriver(kernel.NewUUID()), vehicle.ErrDriverAlreadyAssigned)
		require.ErrorIs(t, v.AssignDriver(driverID), vehicle.ErrDriverAlreadyAssigned)
	})

	t.Run("fails on zero driver id", func(t *testing.T) {
		v, _ := vehicle.NewVehicle(kernel.NewUUID(), "KA-1234-BC", 1200)
		require.Error(t, v.AssignDriver(kernel.UUID{}))
	})
}

func TestVehicle_UnassignDriver(t *testing.T) {
	v, _ := vehicle.NewVehicle(kernel.NewUUID(), "KA-1234-BC", 1200)
	driverID := kernel.NewUUID()
	require.NoError(t, v.AssignDriver(driverID))

	v.UnassignDriver()
	assert.Nil(t, v.DriverID())
	assert.True(t, v.IsFree())

	// Idempotent on an already-unassigned vehicle.
	v.UnassignDriver()
	assert.Nil(t, v.DriverID())
}

func TestVehicle_AssignAfterUnassignRestoresBinding(t *testing.T) {
	v, _ := vehicle.NewVehicle(kernel.NewUUID(), "KA-1234-BC", 1200)

	require.NoError(t, v.AssignDriver(kernel.NewUUID()))
	v.UnassignDriver()
	require.NoError(t, v.AssignDriver(kernel.NewUUID()))
	assert.NotNil(t, v.DriverID())
}

func TestVehicle_CanCarry(t *testing.T) {
	v, _ := vehicle.NewVehicle(kernel.NewUUID(), "KA-1234-BC", 100)

	assert.True(t, v.CanCarry(100))
	assert.True(t, v.CanCarry(1))
	assert.False(t, v.CanCarry(101))
	assert.False(t, v.CanCarry(0))
}

func TestVehicle_IsFree(t *testing.T) {
	v, _ := vehicle.NewVehicle(kernel.NewUUID(), "KA-1234-BC", 100)
	assert.True(t, v.IsFree())

	v.Deactivate()
	assert.False(t, v.IsFree())
}

func TestRestoreVehicle(t *testing.T) {
	id := kernel.NewUUID()
	driverID := kernel.NewUUID()

	v, err := vehicle.RestoreVehicle(id, "KA-1234-BC", 800, true, &driverID)

	require.NoError(t, err)
	require.NotNil(t, v.DriverID())
	assert.True(t, v.DriverID().IsEqual(driverID))
	assert.False(t, v.IsFree())
}

func TestVehicle_DriverIDReturnsCopy(t *testing.T) {
	v, _ := vehicle.NewVehicle(kernel.NewUUID(), "KA-1234-BC", 100)
	driverID := kernel.NewUUID()
	require.NoError(t, v.AssignDriver(driverID))

	got := v.DriverID()
	*got = kernel.NewUUID()

	assert.True(t, v.DriverID().IsEqual(driverID))
}

func TestVehicle_Validate_ZeroValue(t *testing.T) {
	var v vehicle.Vehicle
	require.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
}
