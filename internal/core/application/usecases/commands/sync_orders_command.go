package commands

import (
	"errors"
	"time"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/guard"
)

var (
	ErrSyncOrdersCommandIsNotConstructed = errors.New(
		"SyncOrdersCommand must be created via NewSyncOrdersCommand constructor",
	)
	ErrClientIDIsRequired        = errs.NewValueIsRequiredError("clientId")
	ErrClientTimestampIsRequired = errs.NewValueIsRequiredError("clientCreatedAt")
	ErrSyncBatchIsEmpty          = errs.NewValueIsRequiredErrorWithCause(
		"orders",
		errors.New("sync batch is empty"),
	)
	ErrSyncItemsAreRequired = errs.NewValueIsRequiredErrorWithCause(
		"items",
		errors.New("an offline order must carry an explicit item list"),
	)
)

// SyncOrderInput is one client-buffered order creation request. ClientID is
// the client-generated idempotency token; ClientCreatedAt is when the client
// authored the order while offline.
type SyncOrderInput struct {
	ClientID        string
	ClientCreatedAt time.Time
	RestaurantID    kernel.UUID
	DeliveryAddress string
	Notes           string
	Items           []OrderItemInput
}

// SyncOrdersCommand represents a batch of orders authored offline by one
// customer, to be replayed in chronological order.
type SyncOrdersCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	inputs     []SyncOrderInput

	guard guard.ConstructorGuard
}

// NewSyncOrdersCommand creates a command to replay a batch of offline orders.
// Each input must carry a client id, a client timestamp, and a non-empty
// explicit item list; the cart is never consulted during sync.
func NewSyncOrdersCommand(customerID kernel.UUID, inputs []SyncOrderInput) (SyncOrdersCommand, error) {
	syncCommand := SyncOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		syncCommand.setCustomerID(customerID),
		syncCommand.setInputs(inputs),
	); err != nil {
		return SyncOrdersCommand{}, err
	}

	return syncCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncOrdersCommandIsNotConstructed)
}

// CustomerID returns the customer replaying the batch.
func (c SyncOrdersCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Inputs returns the batch in submission order.
func (c SyncOrdersCommand) Inputs() []SyncOrderInput {
	return c.inputs
}

func (c *SyncOrdersCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SyncOrdersCommand) setInputs(inputs []SyncOrderInput) error {
	if len(inputs) == 0 {
		return ErrSyncBatchIsEmpty
	}

	for _, input := range inputs {
		if input.ClientID == "" {
			return ErrClientIDIsRequired
		}
		if input.ClientCreatedAt.IsZero() {
			return ErrClientTimestampIsRequired
		}
	}

	c.inputs = inputs
	return nil
}
