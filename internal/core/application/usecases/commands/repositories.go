// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fleet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest UoW that covers the repositories it
// touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// MaintenanceRepoFactory provides access to the maintenance repository within a transaction.
	MaintenanceRepoFactory interface {
		MaintenanceRepository() ports.MaintenanceRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignmentUoW manages transactions spanning drivers and vehicles.
	// Used by the assignment commands; the capacity check runs on the
	// transaction-bound vehicle repository it exposes.
	AssignmentUoW interface {
		TxManager
		DriverRepoFactory
		VehicleRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// MaintenanceUoW manages transactions spanning vehicles and maintenance
	// records. The scheduling conflict check and the record write share one
	// transaction.
	MaintenanceUoW interface {
		TxManager
		VehicleRepoFactory
		MaintenanceRepoFactory
	}

	// MaintenanceUoWFactory creates new maintenance unit of work instances.
	MaintenanceUoWFactory interface {
		Create() MaintenanceUoW
	}

	// AllocationUoW manages transactions spanning vehicles and orders.
	// Used by order allocation.
	AllocationUoW interface {
		TxManager
		VehicleRepoFactory
		OrderRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}
)
