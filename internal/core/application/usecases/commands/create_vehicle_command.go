package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
	ErrPlateIsRequired   = errors.New("plate is required")
	ErrCapacityIsInvalid = errors.New("capacity must be greater than 0")
)

// CreateVehicleCommand represents a request to register a new vehicle.
// Automatically generates a unique ID for the vehicle.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	plate     string
	capacity  int

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
func NewCreateVehicleCommand(plate string, capacity int) (CreateVehicleCommand, error) {
	command := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(kernel.NewUUID()),
		command.setPlate(plate),
		command.setCapacity(capacity),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the generated vehicle ID.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Plate returns the registration plate from the command.
func (c CreateVehicleCommand) Plate() string {
	return c.plate
}

// Capacity returns the cargo capacity from the command.
func (c CreateVehicleCommand) Capacity() int {
	return c.capacity
}

func (c *CreateVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *CreateVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}

	c.plate = plate
	return nil
}

func (c *CreateVehicleCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
