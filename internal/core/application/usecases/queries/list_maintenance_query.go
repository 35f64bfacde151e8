package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

const (
	// MinPageSize and MaxPageSize bound the page size of maintenance listings.
	MinPageSize = 1
	MaxPageSize = 100

	// DefaultPageSize is used when the caller does not request a size.
	DefaultPageSize = 20
)

var ErrListMaintenanceQueryIsNotConstructed = errors.New(
	"ListMaintenanceQuery must be created via NewListMaintenanceQuery constructor",
)

// ListMaintenanceQuery retrieves maintenance records filtered by vehicle
// and/or status, newest scheduled first, with LIMIT/OFFSET pagination.
// Both filters are optional; a nil filter matches everything.
//
// Example:
//
//	status := maintenance.StatusPending
//	query, err := NewListMaintenanceQuery(&vehicleID, &status, 1, 20)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type ListMaintenanceQuery struct { //nolint:recvcheck //using for validation
	vehicleID *kernel.UUID
	status    *maintenance.Status
	page      int
	pageSize  int

	guard guard.ConstructorGuard
}

// NewListMaintenanceQuery creates a maintenance listing query.
// Page numbering starts at 1. A pageSize of 0 selects DefaultPageSize;
// anything outside [MinPageSize, MaxPageSize] is rejected.
func NewListMaintenanceQuery(
	vehicleID *kernel.UUID,
	status *maintenance.Status,
	page, pageSize int,
) (ListMaintenanceQuery, error) {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	query := ListMaintenanceQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}

	if page < 1 {
		return ListMaintenanceQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, int(^uint(0)>>1))
	}

	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return ListMaintenanceQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, MinPageSize, MaxPageSize)
	}

	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return ListMaintenanceQuery{}, err
		}
		id := *vehicleID
		query.vehicleID = &id
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListMaintenanceQuery{}, err
		}
		s := *status
		query.status = &s
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListMaintenanceQueryIsNotConstructed if validation fails.
func (q ListMaintenanceQuery) Validate() error {
	return q.guard.Validate(ErrListMaintenanceQueryIsNotConstructed)
}

// VehicleID returns the vehicle filter, or nil when unfiltered.
func (q ListMaintenanceQuery) VehicleID() *kernel.UUID {
	return q.vehicleID
}

// Status returns the status filter, or nil when unfiltered.
func (q ListMaintenanceQuery) Status() *maintenance.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListMaintenanceQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListMaintenanceQuery) PageSize() int {
	return q.pageSize
}

// ListMaintenanceQueryResponse represents one maintenance record in the read model.
type ListMaintenanceQueryResponse struct {
	ID          kernel.UUID
	VehicleID   kernel.UUID
	ScheduledAt string
	PerformedAt *string
	Type        string
	Notes       string
	Status      string
}

// ListMaintenanceQueryPage is one page of maintenance records plus the total
// match count across all pages.
type ListMaintenanceQueryPage struct {
	Items []ListMaintenanceQueryResponse
	Total int64
}
