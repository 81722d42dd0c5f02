package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStrategy(t *testing.T) {
	l := newTestLedger(t)

	id := createTestStrategy(t, l, defaultStrategyParams())
	assert.NotZero(t, id)

	active, err := l.GetActiveStrategies(0, 50)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Stable Yield", active[0].Name)
	assert.Equal(t, int64(450), active[0].ApyBp)

	t.Run("only operator may create", func(t *testing.T) {
		_, err := l.CreateStrategy(aliceAddr, t0, defaultStrategyParams())
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("risk tier bounds", func(t *testing.T) {
		for _, tier := range []int{0, 6, -1} {
			p := defaultStrategyParams()
			p.RiskTier = tier
			_, err := l.CreateStrategy(operatorAddr, t0, p)
			assert.ErrorIs(t, err, ErrInvariantViolation)
		}
	})

	t.Run("max below min rejected", func(t *testing.T) {
		p := defaultStrategyParams()
		p.MaxInvestment = dec("50")
		_, err := l.CreateStrategy(operatorAddr, t0, p)
		assert.ErrorIs(t, err, ErrInvariantViolation)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		p := defaultStrategyParams()
		p.Name = ""
		_, err := l.CreateStrategy(operatorAddr, t0, p)
		assert.ErrorIs(t, err, ErrInvariantViolation)
	})
}

func TestUpdateStrategy(t *testing.T) {
	l := newTestLedger(t)
	id := createTestStrategy(t, l, defaultStrategyParams())

	p := defaultStrategyParams()
	p.ApyBp = 600
	require.NoError(t, l.UpdateStrategy(operatorAddr, t0, id, p))

	active, err := l.GetActiveStrategies(0, 50)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, int64(600), active[0].ApyBp)

	t.Run("only operator may update", func(t *testing.T) {
		err := l.UpdateStrategy(aliceAddr, t0, id, p)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		err := l.UpdateStrategy(operatorAddr, t0, 9999, p)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeactivateStrategyIsTerminal(t *testing.T) {
	l := newTestLedger(t)
	id := createTestStrategy(t, l, defaultStrategyParams())

	t.Run("only operator may deactivate", func(t *testing.T) {
		err := l.DeactivateStrategy(aliceAddr, t0, id)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	require.NoError(t, l.DeactivateStrategy(operatorAddr, t0, id))

	active, err := l.GetActiveStrategies(0, 50)
	require.NoError(t, err)
	assert.Empty(t, active)

	t.Run("deactivating twice fails", func(t *testing.T) {
		err := l.DeactivateStrategy(operatorAddr, t0, id)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("inactive strategy cannot be updated", func(t *testing.T) {
		err := l.UpdateStrategy(operatorAddr, t0, id, defaultStrategyParams())
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}
