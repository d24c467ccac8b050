package http

import (
	"time"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/application/usecases/commands"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/application/usecases/queries"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/delivery"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/order"
)

// ErrorResponse is the JSON error envelope for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

// CreateOrderRequest is the body of POST /orders. An absent items array means
// the order is built from the customer's cart.
type CreateOrderRequest struct {
	RestaurantID    string             `json:"restaurantId"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Notes           string             `json:"notes,omitempty"`
	Items           []OrderItemRequest `json:"items,omitempty"`
}

// UpdateOrderStatusRequest is the body of PATCH /orders/{id}/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CancelOrderRequest is the body of POST /orders/{id}/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// SyncOrderRequest is one client-buffered order inside a sync batch.
type SyncOrderRequest struct {
	ClientID        string             `json:"clientId"`
	RestaurantID    string             `json:"restaurantId"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Notes           string             `json:"notes,omitempty"`
	Items           []OrderItemRequest `json:"items"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// SyncOrdersRequest is the body of POST /orders/sync.
type SyncOrdersRequest struct {
	Orders []SyncOrderRequest `json:"orders"`
}

// SyncOrderResultResponse is the per-entry outcome of a sync batch.
type SyncOrderResultResponse struct {
	ClientID    string `json:"clientId"`
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId,omitempty"`
	OrderNumber string `json:"orderNumber,omitempty"`
	Error       string `json:"error,omitempty"`
}

// SyncOrdersResponse summarizes a processed sync batch.
type SyncOrdersResponse struct {
	Total      int                       `json:"total"`
	Successful int                       `json:"successful"`
	Failed     int                       `json:"failed"`
	Results    []SyncOrderResultResponse `json:"results"`
}

// AssignDriverRequest is the body of POST /deliveries/assign/{orderId}.
type AssignDriverRequest struct {
	DriverID      string `json:"driverId"`
	EstimatedTime *int   `json:"estimatedTime,omitempty"`
}

// UpdateDeliveryStatusRequest is the body of PATCH /deliveries/{id}/status.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// UpdateLocationRequest is the body of POST /deliveries/location.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateAvailabilityRequest is the body of PATCH /deliveries/drivers/availability.
type UpdateAvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

// UpsertCartItemRequest is the body of POST /cart/items.
type UpsertCartItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

// OrderItemResponse is one order line in an order response.
type OrderItemResponse struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
	TotalPrice string `json:"totalPrice"`
}

// OrderResponse is the order graph returned by order endpoints. Money fields
// are serialized as decimal strings to keep exact values on the wire.
type OrderResponse struct {
	ID              string              `json:"id"`
	Number          string              `json:"number"`
	Status          string              `json:"status"`
	DeliveryAddress string              `json:"deliveryAddress"`
	Notes           string              `json:"notes,omitempty"`
	Subtotal        string              `json:"subtotal"`
	Tax             string              `json:"tax"`
	DeliveryFee     string              `json:"deliveryFee"`
	Total           string              `json:"total"`
	CreatedAt       time.Time           `json:"createdAt"`
	Items           []OrderItemResponse `json:"items"`
}

// DeliveryResponse is the delivery returned by dispatch endpoints.
type DeliveryResponse struct {
	ID               string     `json:"id"`
	OrderID          string     `json:"orderId"`
	DriverID         string     `json:"driverId"`
	Status           string     `json:"status"`
	PickupTime       *time.Time `json:"pickupTime,omitempty"`
	DeliveryTime     *time.Time `json:"deliveryTime,omitempty"`
	EstimatedMinutes *int       `json:"estimatedMinutes,omitempty"`
}

// LocationResponse is a geographic position in driver responses.
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AvailableDriverResponse is one driver in GET /deliveries/drivers/available.
type AvailableDriverResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Location       *LocationResponse `json:"location,omitempty"`
	DeliveredCount int               `json:"deliveredCount"`
}

// orderResponseFromAggregate renders a domain order as an API response.
func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			MenuItemID: item.MenuItemID().String(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice().String(),
			Quantity:   item.Quantity(),
			Notes:      item.Notes(),
			TotalPrice: item.TotalPrice().String(),
		})
	}

	totals := aggregate.Totals()

	return OrderResponse{
		ID:              aggregate.ID().String(),
		Number:          aggregate.Number(),
		Status:          aggregate.Status().String(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Notes:           aggregate.Notes(),
		Subtotal:        totals.Subtotal.String(),
		Tax:             totals.Tax.String(),
		DeliveryFee:     totals.DeliveryFee.String(),
		Total:           totals.Total.String(),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           items,
	}
}

// orderResponseFromReadModel renders the raw-SQL read model as an API response.
func orderResponseFromReadModel(model queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice.String(),
			Quantity:   item.Quantity,
			Notes:      item.Notes,
			TotalPrice: item.TotalPrice.String(),
		})
	}

	return OrderResponse{
		ID:              model.ID.String(),
		Number:          model.Number,
		Status:          model.Status,
		DeliveryAddress: model.DeliveryAddress,
		Notes:           model.Notes,
		Subtotal:        model.Subtotal.String(),
		Tax:             model.Tax.String(),
		DeliveryFee:     model.DeliveryFee.String(),
		Total:           model.Total.String(),
		CreatedAt:       model.CreatedAt,
		Items:           items,
	}
}

// deliveryResponseFromAggregate renders a domain delivery as an API response.
func deliveryResponseFromAggregate(aggregate *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:               aggregate.ID().String(),
		OrderID:          aggregate.OrderID().String(),
		DriverID:         aggregate.DriverID().String(),
		Status:           aggregate.Status().String(),
		PickupTime:       aggregate.PickupTime(),
		DeliveryTime:     aggregate.DeliveryTime(),
		EstimatedMinutes: aggregate.EstimatedMinutes(),
	}
}

// syncResponseFromResults summarizes per-entry sync outcomes.
func syncResponseFromResults(results []commands.SyncOrderResult) SyncOrdersResponse {
	response := SyncOrdersResponse{
		Total:   len(results),
		Results: make([]SyncOrderResultResponse, 0, len(results)),
	}

	for _, result := range results {
		if result.Success {
			response.Successful++
		} else {
			response.Failed++
		}
		response.Results = append(response.Results, SyncOrderResultResponse{
			ClientID:    result.ClientID,
			Success:     result.Success,
			OrderID:     result.OrderID,
			OrderNumber: result.OrderNumber,
			Error:       result.Error,
		})
	}

	return response
}
