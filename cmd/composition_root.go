package cmd

import (
	"time"

	"fleet/internal/adapters/out/cache"
	"fleet/internal/adapters/out/postgres"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      ports.Cache
	limiter    services.CapacityLimiter
	clock      clock.Clock
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	ttl := cache.DefaultTTL
	if parsed, err := time.ParseDuration(configs.FreeVehiclesCacheTTL); err == nil && parsed > 0 {
		ttl = parsed
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache.NewLRUCache(ttl),
		limiter:    services.NewCapacityLimiter(configs.MaxVehiclesPerDriver),
		clock:      clock.System(),
	}
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVehicleCommandHandler(f, c.limiter, c.cache)
}

func (c *CompositionRoot) CreateUnassignVehicleCommandHandler() commands.UnassignVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignVehicleCommandHandler(f, c.cache)
}

func (c *CompositionRoot) CreateScheduleMaintenanceCommandHandler() commands.ScheduleMaintenanceCommandHandler {
	var f commands.MaintenanceUoWFactory = FuncMaintenanceUoWFactory(func() commands.MaintenanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleMaintenanceCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateTransitionMaintenanceCommandHandler() commands.TransitionMaintenanceCommandHandler {
	var f commands.MaintenanceUoWFactory = FuncMaintenanceUoWFactory(func() commands.MaintenanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionMaintenanceCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAllocateOrderCommandHandler() commands.AllocateOrderCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetFreeVehiclesQueryHandler() queries.GetFreeVehiclesQueryHandler {
	return queries.NewGetFreeVehiclesQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateListMaintenanceQueryHandler() queries.ListMaintenanceQueryHandler {
	return queries.NewListMaintenanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) Clock() clock.Clock {
	return c.clock
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncMaintenanceUoWFactory func() commands.MaintenanceUoW

func (f FuncMaintenanceUoWFactory) Create() commands.MaintenanceUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}
