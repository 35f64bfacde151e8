// Package http exposes the application use cases over an Echo HTTP API.
// Handlers translate request payloads into commands and queries and map
// domain errors to HTTP statuses; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/domain/services"
	"fleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server implements the HTTP handlers for the fleet API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDriverHandler          commands.CreateDriverCommandHandler
	createVehicleHandler         commands.CreateVehicleCommandHandler
	createOrderHandler           commands.CreateOrderCommandHandler
	assignVehicleHandler         commands.AssignVehicleCommandHandler
	unassignVehicleHandler       commands.UnassignVehicleCommandHandler
	scheduleMaintenanceHandler   commands.ScheduleMaintenanceCommandHandler
	transitionMaintenanceHandler commands.TransitionMaintenanceCommandHandler

	// Query handlers
	getFreeVehiclesHandler queries.GetFreeVehiclesQueryHandler
	listMaintenanceHandler queries.ListMaintenanceQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDriverHandler commands.CreateDriverCommandHandler,
	createVehicleHandler commands.CreateVehicleCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignVehicleHandler commands.AssignVehicleCommandHandler,
	unassignVehicleHandler commands.UnassignVehicleCommandHandler,
	scheduleMaintenanceHandler commands.ScheduleMaintenanceCommandHandler,
	transitionMaintenanceHandler commands.TransitionMaintenanceCommandHandler,
	getFreeVehiclesHandler queries.GetFreeVehiclesQueryHandler,
	listMaintenanceHandler queries.ListMaintenanceQueryHandler,
) *Server {
	return &Server{
		createDriverHandler:          createDriverHandler,
		createVehicleHandler:         createVehicleHandler,
		createOrderHandler:           createOrderHandler,
		assignVehicleHandler:         assignVehicleHandler,
		unassignVehicleHandler:       unassignVehicleHandler,
		scheduleMaintenanceHandler:   scheduleMaintenanceHandler,
		transitionMaintenanceHandler: transitionMaintenanceHandler,
		getFreeVehiclesHandler:       getFreeVehiclesHandler,
		listMaintenanceHandler:       listMaintenanceHandler,
	}
}

// RegisterRoutes mounts all API routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/drivers", s.CreateDriver)
	api.POST("/vehicles", s.CreateVehicle)
	api.POST("/orders", s.CreateOrder)

	api.GET("/vehicles/free", s.GetFreeVehicles)
	api.POST("/vehicles/:vehicleId/assign", s.AssignVehicle)
	api.POST("/vehicles/:vehicleId/unassign", s.UnassignVehicle)

	api.POST("/maintenance", s.ScheduleMaintenance)
	api.POST("/maintenance/:maintenanceId/transition", s.TransitionMaintenance)
	api.GET("/maintenance", s.ListMaintenance)
}

// NewDriver is the request body for driver creation.
type NewDriver struct {
	Name        string `json:"name"`
	LicenseCode string `json:"licenseCode"`
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(body.Name, body.LicenseCode)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if handleErr := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.DriverID().String()})
}

// NewVehicle is the request body for vehicle creation.
type NewVehicle struct {
	Plate    string `json:"plate"`
	Capacity int    `json:"capacity"`
}

// CreateVehicle handles POST /api/v1/vehicles - registers a new vehicle.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateVehicleCommand(body.Plate, body.Capacity)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	if handleErr := s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.VehicleID().String()})
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	Weight int `json:"weight"`
}

// CreateOrder handles POST /api/v1/orders - registers a new transport order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(body.Weight)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.OrderID().String()})
}

// AssignVehicleRequest is the request body for binding a vehicle to a driver.
type AssignVehicleRequest struct {
	DriverID string `json:"driverId"`
}

// AssignVehicle handles POST /api/v1/vehicles/:vehicleId/assign.
func (s *Server) AssignVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	var body AssignVehicleRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	cmd, err := commands.NewAssignVehicleCommand(driverID, vehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignVehicleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignVehicle handles POST /api/v1/vehicles/:vehicleId/unassign.
// Unassigning a vehicle that has no driver succeeds without changes.
func (s *Server) UnassignVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	cmd, err := commands.NewUnassignVehicleCommand(vehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID: "+err.Error())
	}

	if handleErr := s.unassignVehicleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ScheduleMaintenanceRequest is the request body for maintenance scheduling.
type ScheduleMaintenanceRequest struct {
	VehicleID   string `json:"vehicleId"`
	ScheduledAt string `json:"scheduledAt"`
	Type        string `json:"type"`
	Notes       string `json:"notes"`
}

// ScheduleMaintenance handles POST /api/v1/maintenance.
func (s *Server) ScheduleMaintenance(ctx echo.Context) error {
	var body ScheduleMaintenanceRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(body.VehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle ID")
	}

	scheduledAt, err := time.Parse(time.RFC3339, body.ScheduledAt)
	if err != nil {
		return badRequest(ctx, "Invalid scheduledAt, expected RFC3339")
	}

	mType, err := maintenance.TypeFromString(body.Type)
	if err != nil {
		return badRequest(ctx, "Invalid maintenance type: "+err.Error())
	}

	cmd, err := commands.NewScheduleMaintenanceCommand(vehicleID, scheduledAt, mType, body.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid maintenance data: "+err.Error())
	}

	if handleErr := s.scheduleMaintenanceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.RecordID().String()})
}

// TransitionMaintenanceRequest is the request body for a lifecycle transition.
type TransitionMaintenanceRequest struct {
	Status string `json:"status"`
}

// TransitionMaintenance handles POST /api/v1/maintenance/:maintenanceId/transition.
func (s *Server) TransitionMaintenance(ctx echo.Context) error {
	recordID, err := kernel.UUIDFromString(ctx.Param("maintenanceId"))
	if err != nil {
		return badRequest(ctx, "Invalid maintenance record ID")
	}

	var body TransitionMaintenanceRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := maintenance.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewTransitionMaintenanceCommand(recordID, target)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.transitionMaintenanceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FreeVehicle is the read model returned by the free-vehicles endpoint.
type FreeVehicle struct {
	ID       string `json:"id"`
	Plate    string `json:"plate"`
	Capacity int    `json:"capacity"`
}

// GetFreeVehicles handles GET /api/v1/vehicles/free - active vehicles without a driver.
func (s *Server) GetFreeVehicles(ctx echo.Context) error {
	query := queries.NewGetFreeVehiclesQuery()

	vehicles, err := s.getFreeVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve free vehicles",
		})
	}

	response := make([]FreeVehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = FreeVehicle{
			ID:       v.ID.String(),
			Plate:    v.Plate,
			Capacity: v.Capacity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MaintenanceRecord is the read model returned by the maintenance listing.
type MaintenanceRecord struct {
	ID          string  `json:"id"`
	VehicleID   string  `json:"vehicleId"`
	ScheduledAt string  `json:"scheduledAt"`
	PerformedAt *string `json:"performedAt,omitempty"`
	Type        string  `json:"type"`
	Notes       string  `json:"notes"`
	Status      string  `json:"status"`
}

// MaintenancePage is one page of maintenance records.
type MaintenancePage struct {
	Items []MaintenanceRecord `json:"items"`
	Total int64               `json:"total"`
}

// ListMaintenance handles GET /api/v1/maintenance with optional vehicle_id,
// status, page and page_size query parameters.
func (s *Server) ListMaintenance(ctx echo.Context) error {
	var vehicleID *kernel.UUID
	if raw := ctx.QueryParam("vehicle_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid vehicle_id")
		}
		vehicleID = &id
	}

	var status *maintenance.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		st, err := maintenance.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+err.Error())
		}
		status = &st
	}

	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid page")
		}
		page = parsed
	}

	pageSize := 0
	if raw := ctx.QueryParam("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid page_size")
		}
		pageSize = parsed
	}

	query, err := queries.NewListMaintenanceQuery(vehicleID, status, page, pageSize)
	if err != nil {
		return badRequest(ctx, "Invalid listing parameters: "+err.Error())
	}

	result, err := s.listMaintenanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve maintenance records",
		})
	}

	response := MaintenancePage{
		Items: make([]MaintenanceRecord, len(result.Items)),
		Total: result.Total,
	}
	for i, item := range result.Items {
		response.Items[i] = MaintenanceRecord{
			ID:          item.ID.String(),
			VehicleID:   item.VehicleID.String(),
			ScheduledAt: item.ScheduledAt,
			PerformedAt: item.PerformedAt,
			Type:        item.Type,
			Notes:       item.Notes,
			Status:      item.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps a command failure to an HTTP status. Missing entities map
// to 404, state conflicts to 409, rule violations to 400; anything else is a
// 500.
func domainError(ctx echo.Context, err error) error {
	var code int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, vehicle.ErrDriverAlreadyAssigned),
		errors.Is(err, services.ErrCapacityLimitExceeded),
		errors.Is(err, maintenance.ErrSchedulingConflict),
		errors.Is(err, maintenance.ErrStatusIsTerminal),
		errors.Is(err, maintenance.ErrInvalidStatusTransition):
		code = http.StatusConflict
	case errors.Is(err, driver.ErrDriverIsNotActive),
		errors.Is(err, vehicle.ErrVehicleIsNotActive),
		errors.Is(err, maintenance.ErrScheduledAtInPast),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
