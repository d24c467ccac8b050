// Package http exposes the ordering, dispatch, and sync workflows as a JSON
// API on Echo. Request validation stops at shape and identifier parsing; all
// business rules live in the command and query handlers.
//
// Caller identity arrives in the X-User-ID header, which stands in for the
// principal resolved by the upstream auth middleware. Customer endpoints read
// it as the customer ID, driver endpoints as the driver ID.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/application/usecases/commands"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/application/usecases/queries"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/delivery"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/order"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the authenticated principal's ID.
const userIDHeader = "X-User-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	syncOrdersHandler        commands.SyncOrdersCommandHandler
	enqueueOrderHandler      commands.EnqueueOrderCommandHandler

	upsertCartItemHandler commands.UpsertCartItemCommandHandler
	removeCartItemHandler commands.RemoveCartItemCommandHandler
	clearCartHandler      commands.ClearCartCommandHandler

	assignDriverHandler         commands.AssignDriverCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	updateLocationHandler       commands.UpdateDriverLocationCommandHandler
	updateAvailabilityHandler   commands.UpdateDriverAvailabilityCommandHandler

	getOrderHandler            queries.GetOrderQueryHandler
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler

	logger *slog.Logger
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	syncOrdersHandler commands.SyncOrdersCommandHandler,
	enqueueOrderHandler commands.EnqueueOrderCommandHandler,
	upsertCartItemHandler commands.UpsertCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	updateLocationHandler commands.UpdateDriverLocationCommandHandler,
	updateAvailabilityHandler commands.UpdateDriverAvailabilityCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		cancelOrderHandler:          cancelOrderHandler,
		syncOrdersHandler:           syncOrdersHandler,
		enqueueOrderHandler:         enqueueOrderHandler,
		upsertCartItemHandler:       upsertCartItemHandler,
		removeCartItemHandler:       removeCartItemHandler,
		clearCartHandler:            clearCartHandler,
		assignDriverHandler:         assignDriverHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		updateLocationHandler:       updateLocationHandler,
		updateAvailabilityHandler:   updateAvailabilityHandler,
		getOrderHandler:             getOrderHandler,
		getAvailableDriversHandler:  getAvailableDriversHandler,
		logger:                      logger,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrder)
	e.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	e.POST("/orders/:id/cancel", s.CancelOrder)
	e.POST("/orders/sync", s.SyncOrders)
	e.POST("/orders/queue", s.EnqueueOrder)

	e.POST("/cart/items", s.UpsertCartItem)
	e.DELETE("/cart/items/:menuItemId", s.RemoveCartItem)
	e.DELETE("/cart", s.ClearCart)

	e.POST("/deliveries/assign/:orderId", s.AssignDriver)
	e.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)
	e.POST("/deliveries/location", s.UpdateDriverLocation)
	e.PATCH("/deliveries/drivers/availability", s.UpdateDriverAvailability)
	e.GET("/deliveries/drivers/available", s.GetAvailableDrivers)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /orders. Without explicit items the order is
// built from the customer's cart, which is cleared in the same transaction.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, ok := s.principal(ctx)
	if !ok {
		return nil
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return s.badRequest(ctx, "Invalid restaurant ID")
	}

	items, err := orderItemInputs(request.Items)
	if err != nil {
		return s.badRequest(ctx, "Invalid menu item ID")
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID, restaurantID, request.DeliveryAddress, request.Notes, items,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created.Order))
}

// GetOrder handles GET /orders/:id. Foreign orders read as not found; the
// response never reveals whether the ID exists for another customer.
func (s *Server) GetOrder(ctx echo.Context) error {
	customerID, ok := s.principal(ctx)
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID, customerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(model))
}

// UpdateOrderStatus handles PATCH /orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order ID")
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// CancelOrder handles POST /orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	customerID, ok := s.principal(ctx)
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order ID")
	}

	var request CancelOrderRequest
	_ = ctx.Bind(&request) // reason is optional and unused by the workflow

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": order.Cancelled.String()})
}

// SyncOrders handles POST /orders/sync. The batch is replayed in client
// chronological order; one entry's failure never aborts the batch, so the
// response is 200 with per-entry outcomes.
func (s *Server) SyncOrders(ctx echo.Context) error {
	customerID, ok := s.principal(ctx)
	if !ok {
		return nil
	}

	var request SyncOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	inputs := make([]commands.SyncOrderInput, 0, len(request.Orders))
	for _, entry := range request.Orders {
		restaurantID, idErr := kernel.UUIDFromString(entry.RestaurantID)
		if idErr != nil {
			return s.badRequest(ctx, "Invalid restaurant ID for client "+entry.ClientID)
		}

		items, itemsErr := orderItemInputs(entry.Items)
		if itemsErr != nil {
			return s.badRequest(ctx, "Invalid menu item ID for client "+entry.ClientID)
		}

		inputs = append(inputs, commands.SyncOrderInput{
			ClientID:        entry.ClientID,
			ClientCreatedAt: entry.CreatedAt,
			RestaurantID:    restaurantID,
			DeliveryAddress: entry.DeliveryAddress,
			Notes:           entry.Notes,
			Items:           items,
		})
	}

	cmd, err := commands.NewSyncOrdersCommand(customerID, inputs)
	if err != nil {
		return s.respondError(ctx, err)
	}

	results, err := s.syncOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, syncResponseFromResults(results))
}

// EnqueueOrder handles POST /orders/queue, deferring a submission to the
// background processor.
func (s *Server) EnqueueOrder(ctx echo.Context) error {
	customerID, ok := s.principal(ctx)
	if !ok {
		return nil
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return s.badRequest(ctx, "Invalid restaurant ID")
	}

	items, err := orderItemInputs(request.Items)
	if err != nil {
		return s.badRequest(ctx, "Invalid menu item ID")
	}

	cmd, err := commands.NewEnqueueOrderCommand(
		customerID, restaurantID, request.DeliveryAddress, request.Notes, items,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.enqueueOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// UpsertCartItem handles POST /cart/items.
func (s *Server) UpsertCartItem(ctx echo.Context) error {
	customerID, ok := s.principal(ctx)
	if !ok {
		return nil
	}

	var request UpsertCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
	if err != nil {
		return s.badRequest(ctx, "Invalid menu item ID")
	}

	cmd, err := commands.NewUpsertCartItemCommand(customerID, menuItemID, request.Quantity, request.Notes)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.upsertCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RemoveCartItem handles DELETE /cart/items/:menuItemId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	customerID, ok := s.principal(ctx)
	if !ok {
		return nil
	}

	menuItemID, err := kernel.UUIDFromString(ctx.Param("menuItemId"))
	if err != nil {
		return s.badRequest(ctx, "Invalid menu item ID")
	}

	cmd, err := commands.NewRemoveCartItemCommand(customerID, menuItemID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ClearCart handles DELETE /cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	customerID, ok := s.principal(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewClearCartCommand(customerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignDriver handles POST /deliveries/assign/:orderId.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order ID")
	}

	var request AssignDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return s.badRequest(ctx, "Invalid driver ID")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID, request.EstimatedTime)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, deliveryResponseFromAggregate(created))
}

// UpdateDeliveryStatus handles PATCH /deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid delivery ID")
	}

	var request UpdateDeliveryStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	status, err := delivery.StatusFromString(request.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": status.String()})
}

// UpdateDriverLocation handles POST /deliveries/location, authenticated as
// the driver.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	driverID, ok := s.principal(ctx)
	if !ok {
		return nil
	}

	var request UpdateLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, request.Latitude, request.Longitude)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateDriverAvailability handles PATCH /deliveries/drivers/availability,
// authenticated as the driver.
func (s *Server) UpdateDriverAvailability(ctx echo.Context) error {
	driverID, ok := s.principal(ctx)
	if !ok {
		return nil
	}

	var request UpdateAvailabilityRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDriverAvailabilityCommand(driverID, request.IsAvailable)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.updateAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"isAvailable": request.IsAvailable})
}

// GetAvailableDrivers handles GET /deliveries/drivers/available. With
// originLat and originLon query parameters the result is sorted nearest
// first; drivers without a known position sort last.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	origin, err := originFromParams(ctx.QueryParam("originLat"), ctx.QueryParam("originLon"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query := queries.NewGetAvailableDriversQuery(origin)

	drivers, err := s.getAvailableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]AvailableDriverResponse, 0, len(drivers))
	for _, d := range drivers {
		item := AvailableDriverResponse{
			ID:             d.ID.String(),
			Name:           d.Name,
			DeliveredCount: d.DeliveredCount,
		}
		if d.Location != nil {
			item.Location = &LocationResponse{
				Latitude:  d.Location.Latitude(),
				Longitude: d.Location.Longitude(),
			}
		}
		response = append(response, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// principal extracts the authenticated user ID from the request headers.
// When the header is missing or malformed the 401 response has already been
// written and the second return is false.
func (s *Server) principal(ctx echo.Context) (kernel.UUID, bool) {
	raw := ctx.Request().Header.Get(userIDHeader)
	if raw == "" {
		_ = ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing " + userIDHeader + " header",
		})
		return kernel.UUID{}, false
	}

	userID, err := kernel.UUIDFromString(raw)
	if err != nil {
		_ = ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid " + userIDHeader + " header",
		})
		return kernel.UUID{}, false
	}

	return userID, true
}

// badRequest responds with a 400 and the given message.
func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps workflow errors onto HTTP status codes. Operational
// errors are surfaced verbatim; anything unexpected is logged with context
// and returned as a generic internal error.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrCartIsEmpty):
		status = http.StatusBadRequest
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Path()),
			slog.Any("error", err),
		)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// orderItemInputs parses requested order lines into command inputs.
func orderItemInputs(requests []OrderItemRequest) ([]commands.OrderItemInput, error) {
	inputs := make([]commands.OrderItemInput, 0, len(requests))
	for _, request := range requests {
		menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, commands.OrderItemInput{
			MenuItemID: menuItemID,
			Quantity:   request.Quantity,
			Notes:      request.Notes,
		})
	}
	return inputs, nil
}

// originFromParams parses the optional proximity origin. Both parameters
// must be present together.
func originFromParams(rawLat, rawLon string) (*kernel.GeoPoint, error) {
	if rawLat == "" && rawLon == "" {
		return nil, nil
	}
	if rawLat == "" || rawLon == "" {
		return nil, errs.NewValueIsRequiredError("originLat and originLon")
	}

	latitude, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("originLat", err)
	}
	longitude, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("originLon", err)
	}

	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
