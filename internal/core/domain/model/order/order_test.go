package order_test

import (
	"testing"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts created and unassigned", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, 250)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, 250, o.Weight())
		assert.Equal(t, order.StatusCreated, o.Status())
		assert.Nil(t, o.VehicleID())
		assert.Nil(t, o.DriverID())
	})

	t.Run("non-positive weight is rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), 0)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), -5)
		require.Error(t, err)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("binds vehicle and driver", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), 250)
		vehicleID := kernel.NewUUID()
		driverID := kernel.NewUUID()

		require.NoError(t, o.Assign(vehicleID, driverID))

		assert.Equal(t, order.StatusAssigned, o.Status())
		require.NotNil(t, o.VehicleID())
		assert.True(t, o.VehicleID().IsEqual(vehicleID))
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
	})

	t.Run("cannot assign twice", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), 250)
		require.NoError(t, o.Assign(kernel.NewUUID(), kernel.NewUUID()))

		require.Error(t, o.Assign(kernel.NewUUID(), kernel.NewUUID()))
	})
}

func TestOrder_Complete(t *testing.T) {
	o, _ := order.NewOrder(kernel.NewUUID(), 250)

	require.Error(t, o.Complete()) // not assigned yet

	require.NoError(t, o.Assign(kernel.NewUUID(), kernel.NewUUID()))
	require.NoError(t, o.Complete())
	assert.Equal(t, order.StatusCompleted, o.Status())

	require.Error(t, o.Complete()) // final
}

func TestRestoreOrder(t *testing.T) {
	vehicleID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	o, err := order.RestoreOrder(kernel.NewUUID(), 250, &vehicleID, &driverID, order.StatusAssigned)

	require.NoError(t, err)
	assert.Equal(t, order.StatusAssigned, o.Status())
	assert.True(t, o.VehicleID().IsEqual(vehicleID))

	_, err = order.RestoreOrder(kernel.NewUUID(), 250, nil, nil, order.StatusUnknown)
	require.Error(t, err)
}
