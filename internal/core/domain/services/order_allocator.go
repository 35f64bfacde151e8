package services

import (
	"errors"

	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/vehicle"
)

// ErrNoSuitableVehicle is returned when none of the candidate vehicles can
// carry the order. Either no vehicles were provided or every one is
// inactive, unmanned, or too small for the order's weight.
var ErrNoSuitableVehicle = errors.New("no suitable vehicle found")

// OrderAllocator is a domain service that places a created order on a
// vehicle. The sole selection rule is the weight check: the order's weight
// must not exceed the vehicle's capacity. Candidates must be active and
// have a driver bound; the first fitting vehicle wins.
type OrderAllocator struct{}

// NewOrderAllocator creates a new OrderAllocator instance.
func NewOrderAllocator() OrderAllocator {
	return OrderAllocator{}
}

// Allocate assigns the order to the first candidate vehicle that can carry
// it, binding both the vehicle and its driver to the order.
func (a OrderAllocator) Allocate(o *order.Order, vehicles []*vehicle.Vehicle) (*vehicle.Vehicle, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return nil, err
		}

		if !v.IsActive() || v.DriverID() == nil {
			continue
		}

		if !v.CanCarry(o.Weight()) {
			continue
		}

		if err := o.Assign(v.ID(), *v.DriverID()); err != nil {
			return nil, err
		}

		return v, nil
	}

	return nil, ErrNoSuitableVehicle
}
