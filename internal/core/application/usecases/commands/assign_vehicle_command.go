package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
)

// AssignVehicleCommand represents a request to bind a vehicle to a driver.
// The vehicle side owns the binding; a vehicle carries at most one driver
// while a driver may hold several vehicles up to the configured cap.
//
// Example:
//
//	cmd, err := NewAssignVehicleCommand(driverID, vehicleID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates a command to bind vehicleID to driverID.
func NewAssignVehicleCommand(driverID, vehicleID kernel.UUID) (AssignVehicleCommand, error) {
	command := AssignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setVehicleID(vehicleID),
	); err != nil {
		return AssignVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignVehicleCommandIsNotConstructed if validation fails.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c AssignVehicleCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the vehicle ID from the command.
func (c AssignVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *AssignVehicleCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *AssignVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}
