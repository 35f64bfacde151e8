package queries

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFreeVehiclesQueryHandler serves the availability view.
// Reads through the single-key cache: a hit returns the cached slice, a miss
// queries the database and stores the result. Assignment commands invalidate
// the key, so the view lags a binding change by at most one cache fill.
//
// Example:
//
//	handler := NewGetFreeVehiclesQueryHandler(db, cache)
//	query := NewGetFreeVehiclesQuery()
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get free vehicles: %v", err)
//	    return err
//	}
//	fmt.Printf("Found %d free vehicles\n", len(vehicles))
type GetFreeVehiclesQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewGetFreeVehiclesQueryHandler creates a handler for availability queries.
// Requires a GORM database connection and the shared availability cache.
func NewGetFreeVehiclesQueryHandler(db *gorm.DB, cache ports.Cache) GetFreeVehiclesQueryHandler {
	return GetFreeVehiclesQueryHandler{db: db, cache: cache}
}

// Handle executes the query to retrieve free vehicles.
// Returns a slice of vehicle read models sorted by plate.
func (h GetFreeVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetFreeVehiclesQuery,
) ([]GetFreeVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if cached, ok := h.cache.Get(ports.FreeVehiclesCacheKey); ok {
		if vehicles, ok := cached.([]GetFreeVehiclesQueryResponse); ok {
			return vehicles, nil
		}
	}

	vehicles := make([]GetFreeVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT 
			id, 
			plate, 
			capacity 
		FROM vehicles
		WHERE active = true AND driver_id IS NULL
		ORDER BY plate
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var vehicle GetFreeVehiclesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&vehicle.Plate,
			&vehicle.Capacity,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		vehicle.ID = vehicleID

		vehicles = append(vehicles, vehicle)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	h.cache.Set(ports.FreeVehiclesCacheKey, vehicles)

	return vehicles, nil
}
