package services_test

import (
	"testing"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mannedVehicle(t *testing.T, capacity int) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "B 123 CD", capacity)
	require.NoError(t, err)
	require.NoError(t, v.AssignDriver(kernel.NewUUID()))
	return v
}

func TestOrderAllocator_Allocate(t *testing.T) {
	allocator := services.NewOrderAllocator()

	t.Run("assigns order to first vehicle that can carry it", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 500)
		require.NoError(t, err)

		small := mannedVehicle(t, 100)
		big := mannedVehicle(t, 1000)

		chosen, err := allocator.Allocate(o, []*vehicle.Vehicle{small, big})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(big))
		assert.Equal(t, order.StatusAssigned, o.Status())
		require.NotNil(t, o.VehicleID())
		assert.True(t, o.VehicleID().IsEqual(big.ID()))
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(*big.DriverID()))
	})

	t.Run("skips unmanned and inactive vehicles", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 100)
		require.NoError(t, err)

		unmanned, err := vehicle.NewVehicle(kernel.NewUUID(), "C 456 DE", 1000)
		require.NoError(t, err)

		inactive := mannedVehicle(t, 1000)
		inactive.Deactivate()

		_, err = allocator.Allocate(o, []*vehicle.Vehicle{unmanned, inactive})

		require.ErrorIs(t, err, services.ErrNoSuitableVehicle)
		assert.Equal(t, order.StatusCreated, o.Status())
	})

	t.Run("fails when no vehicle fits the weight", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 2000)
		require.NoError(t, err)

		_, err = allocator.Allocate(o, []*vehicle.Vehicle{mannedVehicle(t, 1000)})

		require.ErrorIs(t, err, services.ErrNoSuitableVehicle)
	})

	t.Run("fails on empty candidate list", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 100)
		require.NoError(t, err)

		_, err = allocator.Allocate(o, nil)

		require.ErrorIs(t, err, services.ErrNoSuitableVehicle)
	})
}
