package queries

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListMaintenanceQueryHandler retrieves maintenance history from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListMaintenanceQueryHandler struct {
	db *gorm.DB
}

// NewListMaintenanceQueryHandler creates a handler for maintenance listing queries.
// Requires a GORM database connection for query execution.
func NewListMaintenanceQueryHandler(db *gorm.DB) ListMaintenanceQueryHandler {
	return ListMaintenanceQueryHandler{db: db}
}

// Handle executes the maintenance listing query.
// Returns one page of records ordered by scheduled time descending, together
// with the total number of matches.
func (h ListMaintenanceQueryHandler) Handle(
	ctx context.Context,
	query ListMaintenanceQuery,
) (ListMaintenanceQueryPage, error) {
	if err := query.Validate(); err != nil {
		return ListMaintenanceQueryPage{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 2)

	if query.VehicleID() != nil {
		where += " AND vehicle_id = ?"
		args = append(args, query.VehicleID().String())
	}

	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	var total int64
	countRow := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM maintenance_records WHERE "+where, args...,
	).Row()
	if err := countRow.Scan(&total); err != nil {
		return ListMaintenanceQueryPage{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	listArgs := append(args, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT 
			id, 
			vehicle_id, 
			scheduled_at, 
			performed_at, 
			type, 
			notes, 
			status 
		FROM maintenance_records
		WHERE `+where+`
		ORDER BY scheduled_at DESC
		LIMIT ? OFFSET ?
	`, listArgs...).Rows()
	if err != nil {
		return ListMaintenanceQueryPage{}, err
	}
	defer rows.Close()

	items := make([]ListMaintenanceQueryResponse, 0, query.PageSize())

	for rows.Next() {
		var item ListMaintenanceQueryResponse
		var id, vehicleID uuid.UUID
		var scheduledAt time.Time
		var performedAt *time.Time

		err = rows.Scan(
			&id,
			&vehicleID,
			&scheduledAt,
			&performedAt,
			&item.Type,
			&item.Notes,
			&item.Status,
		)
		if err != nil {
			return ListMaintenanceQueryPage{}, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListMaintenanceQueryPage{}, idErr
		}
		item.ID = recordID

		recordVehicleID, idErr := kernel.UUIDFromBytes(vehicleID[:])
		if idErr != nil {
			return ListMaintenanceQueryPage{}, idErr
		}
		item.VehicleID = recordVehicleID

		item.ScheduledAt = scheduledAt.UTC().Format(time.RFC3339)
		if performedAt != nil {
			formatted := performedAt.UTC().Format(time.RFC3339)
			item.PerformedAt = &formatted
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return ListMaintenanceQueryPage{}, err
	}

	return ListMaintenanceQueryPage{Items: items, Total: total}, nil
}
