package vehicle

import (
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrPlateIsRequired is returned when creating a vehicle without a plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrVehicleIsNotActive is returned when an operation requires an active vehicle.
	ErrVehicleIsNotActive = errors.New("vehicle is not active")
	// ErrDriverAlreadyAssigned is returned when binding a driver to a vehicle
	// that already has one, regardless of which driver it is.
	ErrDriverAlreadyAssigned = errors.New("vehicle already has a driver assigned")
)

// Vehicle is the aggregate root for a fleet vehicle. The optional driver
// reference on the vehicle is the sole source of truth for the driver/vehicle
// binding; a driver's vehicle list is always derived by query, never stored.
//
// Business rules:
//   - Vehicles are created active and must have a plate and a positive capacity
//   - A driver may be bound only while the vehicle is active
//   - At most one driver is bound at a time; rebinding requires an unbind first
type Vehicle struct {
	// id uniquely identifies the vehicle
	id kernel.UUID
	// plate is the registration plate
	plate string
	// capacity is the maximum order weight the vehicle can carry
	capacity int
	// active reports whether the vehicle participates in assignments
	active bool
	// driverID references the bound driver, nil when the vehicle is unassigned
	driverID *kernel.UUID
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates an active, unassigned Vehicle.
func NewVehicle(id kernel.UUID, plate string, capacity int) (*Vehicle, error) {
	v := &Vehicle{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistent storage, including
// its activity flag and current driver binding.
func RestoreVehicle(id kernel.UUID, plate string, capacity int, active bool, driverID *kernel.UUID) (*Vehicle, error) {
	v := &Vehicle{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setCapacity(capacity),
		v.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate checks that the Vehicle was created through its constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identifier.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Plate returns the registration plate.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Capacity returns the maximum order weight the vehicle can carry.
func (v *Vehicle) Capacity() int {
	return v.capacity
}

// IsActive reports whether the vehicle participates in assignments.
func (v *Vehicle) IsActive() bool {
	return v.active
}

// DriverID returns the bound driver's identifier, or nil when unassigned.
// A copy is returned so callers cannot mutate the binding.
func (v *Vehicle) DriverID() *kernel.UUID {
	if v.driverID == nil {
		return nil
	}
	id := *v.driverID
	return &id
}

// IsFree reports whether the vehicle is active and has no driver bound.
func (v *Vehicle) IsFree() bool {
	return v.active && v.driverID == nil
}

// CanCarry reports whether an order of the given weight fits the vehicle's
// capacity. This is the single numeric comparison used for order allocation.
func (v *Vehicle) CanCarry(weight int) bool {
	return weight > 0 && weight <= v.capacity
}

// AssignDriver binds a driver to the vehicle.
//
// Returns ErrVehicleIsNotActive when the vehicle is deactivated and
// ErrDriverAlreadyAssigned when a driver is already bound. The caller is
// responsible for checking the driver's own activity and capacity limits
// before calling; those rules live outside this aggregate.
func (v *Vehicle) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if !v.active {
		return ErrVehicleIsNotActive
	}

	if v.driverID != nil {
		return ErrDriverAlreadyAssigned
	}

	v.driverID = &driverID
	return nil
}

// UnassignDriver clears the driver binding. Calling it on an unassigned
// vehicle is a no-op, making unbinding idempotent.
func (v *Vehicle) UnassignDriver() {
	v.driverID = nil
}

// Activate marks the vehicle as active.
func (v *Vehicle) Activate() {
	v.active = true
}

// Deactivate marks the vehicle as inactive.
func (v *Vehicle) Deactivate() {
	v.active = false
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		v.driverID = nil
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	id := *driverID
	v.driverID = &id
	return nil
}
