package order_test

import (
	"testing"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/order"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Pending:   "PENDING",
		order.Confirmed: "CONFIRMED",
		order.Preparing: "PREPARING",
		order.OnTheWay:  "ON_THE_WAY",
		order.Delivered: "DELIVERED",
		order.Cancelled: "CANCELLED",
		order.Unknown:   "UNKNOWN",
	}
	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses valid values", func(t *testing.T) {
		status, err := order.StatusFromString("ON_THE_WAY")
		require.NoError(t, err)
		assert.Equal(t, order.OnTheWay, status)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects lowercase values", func(t *testing.T) {
		_, err := order.StatusFromString("pending")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		path := []order.Status{order.Confirmed, order.Preparing, order.OnTheWay, order.Delivered}

		current := order.Pending
		for _, next := range path {
			moved, err := current.TransitionTo(next)
			require.NoError(t, err)
			current = moved
		}
		assert.Equal(t, order.Delivered, current)
	})

	t.Run("cancellation from every non-terminal status", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.Confirmed, order.Preparing, order.OnTheWay} {
			moved, err := from.TransitionTo(order.Cancelled)
			require.NoError(t, err, "from %s", from)
			assert.Equal(t, order.Cancelled, moved)
		}
	})

	t.Run("skipping a state is rejected and names both states", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Preparing)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cannot transition from PENDING to PREPARING")
	})

	t.Run("same-state no-op is rejected", func(t *testing.T) {
		_, err := order.Confirmed.TransitionTo(order.Confirmed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("terminal states cannot be left", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			for _, next := range []order.Status{order.Pending, order.Confirmed, order.OnTheWay, order.Cancelled} {
				if terminal == next {
					continue
				}
				_, err := terminal.TransitionTo(next)
				require.Error(t, err, "from %s to %s", terminal, next)
			}
		}
	})

	t.Run("delivery requires passing through ON_THE_WAY", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.Confirmed, order.Preparing} {
			_, err := from.TransitionTo(order.Delivered)
			require.Error(t, err, "from %s", from)
		}
	})

	t.Run("invalid target status is rejected", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, s := range []order.Status{order.Pending, order.Confirmed, order.Preparing, order.OnTheWay} {
		assert.False(t, s.IsTerminal(), "%s", s)
	}
}

func TestStatus_CanCancelByCustomer(t *testing.T) {
	assert.True(t, order.Pending.CanCancelByCustomer())
	assert.True(t, order.Confirmed.CanCancelByCustomer())

	for _, s := range []order.Status{order.Preparing, order.OnTheWay, order.Delivered, order.Cancelled} {
		assert.False(t, s.CanCancelByCustomer(), "%s", s)
	}
}
