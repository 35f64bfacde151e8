package order

import (
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a transport order. An order starts
// unassigned; allocation binds it to a vehicle and that vehicle's driver at
// the same time.
type Order struct {
	// id uniquely identifies the order
	id kernel.UUID
	// weight is the cargo weight used for the capacity comparison
	weight int
	// vehicleID references the carrying vehicle, nil until assigned
	vehicleID *kernel.UUID
	// driverID references the driver bound to the vehicle at assignment time
	driverID *kernel.UUID
	// status is the current lifecycle state
	status Status
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates an Order in the Created state. Weight must be positive.
func NewOrder(id kernel.UUID, weight int) (*Order, error) {
	o := &Order{
		status: StatusCreated,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
func RestoreOrder(id kernel.UUID, weight int, vehicleID, driverID *kernel.UUID, status Status) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setWeight(weight),
		o.setVehicleID(vehicleID),
		o.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks that the Order was created through its constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Weight returns the cargo weight.
func (o *Order) Weight() int {
	return o.weight
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// VehicleID returns the carrying vehicle's identifier, or nil while unassigned.
func (o *Order) VehicleID() *kernel.UUID {
	if o.vehicleID == nil {
		return nil
	}
	id := *o.vehicleID
	return &id
}

// DriverID returns the bound driver's identifier, or nil while unassigned.
func (o *Order) DriverID() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

// Assign binds the order to a vehicle and its driver, moving it to Assigned.
func (o *Order) Assign(vehicleID, driverID kernel.UUID) error {
	if err := errors.Join(vehicleID.Validate(), driverID.Validate()); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = &vehicleID
	o.driverID = &driverID
	return nil
}

// Complete marks the order as delivered.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%d is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setVehicleID(vehicleID *kernel.UUID) error {
	if vehicleID == nil {
		return nil
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	id := *vehicleID
	o.vehicleID = &id
	return nil
}

func (o *Order) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	id := *driverID
	o.driverID = &id
	return nil
}
