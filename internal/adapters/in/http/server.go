// Package http provides the inbound HTTP adapter.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Error is the common error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	DateOrdered           time.Time `json:"date_ordered"`
	PromisedDeliveryDate  time.Time `json:"promised_delivery_date"`
	DaysToDeliver         int       `json:"days_to_deliver"`
	DistanceToDestination float64   `json:"distance_to_destination"`
	PackageCount          int       `json:"package_count"`
}

// NewCarrier is the request body for carrier creation.
type NewCarrier struct {
	Name string `json:"name"`
}

// NewServiceOption is the request body for extending a carrier's catalog.
type NewServiceOption struct {
	ServiceType    string  `json:"service_type"`
	CostPerPackage int     `json:"cost_per_package"`
	DaysInTransit  int     `json:"days_in_transit"`
	MilesPerDay    float64 `json:"miles_per_day"`
}

// Created reports the identifier of a newly created resource.
type Created struct {
	ID uuid.UUID `json:"id"`
}

// PendingOrder is one element of the pending orders listing.
type PendingOrder struct {
	ID                    uuid.UUID `json:"id"`
	DaysToDeliver         int       `json:"days_to_deliver"`
	DistanceToDestination float64   `json:"distance_to_destination"`
	PackageCount          int       `json:"package_count"`
}

// ShippingAssignment is one element of the assignment outcome listing.
// Shipping fields are omitted for unassigned orders instead of carrying
// placeholder values.
type ShippingAssignment struct {
	ID             uuid.UUID `json:"id"`
	Status         string    `json:"status"`
	Carrier        *string   `json:"carrier,omitempty"`
	ServiceType    *string   `json:"service_type,omitempty"`
	CostPerPackage *int      `json:"cost_per_package,omitempty"`
}

// Server implements the HTTP handlers for the shipping API.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	createCarrierHandler    commands.CreateCarrierCommandHandler
	addServiceOptionHandler commands.AddServiceOptionCommandHandler
	assignShippingHandler   commands.AssignShippingCommandHandler

	// Query handlers
	getPendingOrdersHandler       queries.GetPendingOrdersQueryHandler
	getShippingAssignmentsHandler queries.GetShippingAssignmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createCarrierHandler commands.CreateCarrierCommandHandler,
	addServiceOptionHandler commands.AddServiceOptionCommandHandler,
	assignShippingHandler commands.AssignShippingCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getShippingAssignmentsHandler queries.GetShippingAssignmentsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		createCarrierHandler:          createCarrierHandler,
		addServiceOptionHandler:       addServiceOptionHandler,
		assignShippingHandler:         assignShippingHandler,
		getPendingOrdersHandler:       getPendingOrdersHandler,
		getShippingAssignmentsHandler: getShippingAssignmentsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.POST("/carriers", s.CreateCarrier)
	api.POST("/carriers/:id/services", s.AddServiceOption)
	api.POST("/assignments/run", s.RunAssignment)
	api.GET("/assignments", s.GetShippingAssignments)
}

// CreateOrder handles POST /api/v1/orders - registers a new shipping order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	distance, err := kernel.NewMiles(newOrder.DistanceToDestination)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		newOrder.DateOrdered,
		newOrder.PromisedDeliveryDate,
		newOrder.DaysToDeliver,
		distance,
		newOrder.PackageCount,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.Bytes()})
}

// CreateCarrier handles POST /api/v1/carriers - registers a new carrier.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var newCarrier NewCarrier
	if err := ctx.Bind(&newCarrier); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	carrierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierCommand(carrierID, newCarrier.Name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid carrier data: " + err.Error(),
		})
	}

	if handleErr := s.createCarrierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create carrier",
		})
	}

	return ctx.JSON(http.StatusCreated, Created{ID: carrierID.Bytes()})
}

// AddServiceOption handles POST /api/v1/carriers/:id/services - extends a carrier's catalog.
func (s *Server) AddServiceOption(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid carrier id",
		})
	}

	var newService NewServiceOption
	if err = ctx.Bind(&newService); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	milesPerDay, err := kernel.NewMiles(newService.MilesPerDay)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid service data: " + err.Error(),
		})
	}

	cmd, err := commands.NewAddServiceOptionCommand(
		carrierID,
		newService.ServiceType,
		newService.CostPerPackage,
		newService.DaysInTransit,
		milesPerDay,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid service data: " + err.Error(),
		})
	}

	if handleErr := s.addServiceOptionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, carrier.ErrDuplicateServiceType) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Service type already registered",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to add service option",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// RunAssignment handles POST /api/v1/assignments/run - triggers one batch run.
func (s *Server) RunAssignment(ctx echo.Context) error {
	cmd := commands.NewAssignShippingCommand()

	err := s.assignShippingHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrNoPendingOrders), errors.Is(err, commands.ErrNoCarriersFound):
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(err, carrier.ErrCarrierNotRanked):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Carrier priority configuration incomplete: " + err.Error(),
		})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Assignment run failed",
		})
	}

	return ctx.NoContent(http.StatusOK)
}

// GetPendingOrders handles GET /api/v1/orders/pending - lists undecided orders.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve pending orders",
		})
	}

	response := make([]PendingOrder, len(orders))
	for i, o := range orders {
		response[i] = PendingOrder{
			ID:                    o.ID.Bytes(),
			DaysToDeliver:         o.DaysToDeliver,
			DistanceToDestination: o.DistanceToDestination.Value(),
			PackageCount:          o.PackageCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShippingAssignments handles GET /api/v1/assignments - lists batch outcomes.
func (s *Server) GetShippingAssignments(ctx echo.Context) error {
	query := queries.NewGetShippingAssignmentsQuery()

	assignments, err := s.getShippingAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve assignments",
		})
	}

	response := make([]ShippingAssignment, len(assignments))
	for i, a := range assignments {
		response[i] = ShippingAssignment{
			ID:             a.ID.Bytes(),
			Status:         a.Status,
			Carrier:        a.Carrier,
			ServiceType:    a.ServiceType,
			CostPerPackage: a.CostPerPackage,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
