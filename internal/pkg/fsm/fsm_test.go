package fsm_test

import (
	"testing"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/fsm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stage int

const (
	draft stage = iota
	active
	done
)

func (s stage) String() string {
	switch s {
	case draft:
		return "DRAFT"
	case active:
		return "ACTIVE"
	case done:
		return "DONE"
	}
	return "UNKNOWN"
}

func newTestMachine() fsm.Machine[stage] {
	return fsm.New(map[stage][]stage{
		draft:  {active},
		active: {done},
	})
}

func TestMachine_CanTransition(t *testing.T) {
	m := newTestMachine()

	assert.True(t, m.CanTransition(draft, active))
	assert.True(t, m.CanTransition(active, done))

	assert.False(t, m.CanTransition(draft, done), "skipping states is not allowed")
	assert.False(t, m.CanTransition(active, draft), "edges are one-directional")
	assert.False(t, m.CanTransition(draft, draft), "same-state no-ops are rejected")
	assert.False(t, m.CanTransition(done, active), "terminal states have no outgoing edges")
}

func TestMachine_Transition(t *testing.T) {
	m := newTestMachine()

	t.Run("valid edge", func(t *testing.T) {
		require.NoError(t, m.Transition(draft, active))
	})

	t.Run("invalid edge names both states", func(t *testing.T) {
		err := m.Transition(draft, done)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cannot transition from DRAFT to DONE")
	})
}

func TestMachine_IsTerminal(t *testing.T) {
	m := newTestMachine()

	assert.False(t, m.IsTerminal(draft))
	assert.False(t, m.IsTerminal(active))
	assert.True(t, m.IsTerminal(done))
}
