// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrGetFreeVehiclesQueryIsNotConstructed = errors.New(
	"GetFreeVehiclesQuery must be created via NewGetFreeVehiclesQuery constructor",
)

// GetFreeVehiclesQuery retrieves the availability view: active vehicles that
// currently have no driver bound.
//
// Example:
//
//	query := NewGetFreeVehiclesQuery()
//	handler := NewGetFreeVehiclesQueryHandler(db, cache)
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve free vehicles: %w", err)
//	}
type GetFreeVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFreeVehiclesQuery creates a query to retrieve free vehicles.
// This is a parameterless query; the view covers the whole fleet.
func NewGetFreeVehiclesQuery() GetFreeVehiclesQuery {
	return GetFreeVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFreeVehiclesQueryIsNotConstructed if validation fails.
func (q GetFreeVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetFreeVehiclesQueryIsNotConstructed)
}

// GetFreeVehiclesQueryResponse represents one available vehicle in the read model.
type GetFreeVehiclesQueryResponse struct {
	ID       kernel.UUID
	Plate    string
	Capacity int
}
