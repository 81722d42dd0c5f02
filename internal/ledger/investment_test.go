package ledger

import (
	"testing"
	"time"

	"portfolioledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestInvestment(t *testing.T, l *Ledger, id uint) models.Investment {
	t.Helper()
	var inv models.Investment
	require.NoError(t, l.db.First(&inv, id).Error)
	return inv
}

func custodyTransfers(t *testing.T, l *Ledger, counterparty string) []models.CustodyTransfer {
	t.Helper()
	var transfers []models.CustodyTransfer
	require.NoError(t, l.db.Where("counterparty_address = ?", counterparty).
		Order("id").Find(&transfers).Error)
	return transfers
}

func TestCreateInvestment(t *testing.T) {
	l := newTestLedger(t)
	sid := createTestStrategy(t, l, defaultStrategyParams())

	id, err := l.CreateInvestment(aliceAddr, t0, sid, dec("150"))
	require.NoError(t, err)

	inv := loadTestInvestment(t, l, id)
	assert.Equal(t, aliceAddr, inv.InvestorAddress)
	assert.True(t, inv.Principal.Equal(dec("150")))
	assert.True(t, inv.InitialValue.Equal(dec("150")))
	assert.True(t, inv.CurrentValue.Equal(dec("150")))
	assert.True(t, inv.Active)
	assert.NotEmpty(t, inv.OrderRef)
	assert.Nil(t, inv.EndedAt)

	// The full amount was taken into custody.
	transfers := custodyTransfers(t, l, aliceAddr)
	require.Len(t, transfers, 1)
	assert.Equal(t, models.CustodyDirectionIn, transfers[0].Direction)
	assert.True(t, transfers[0].Amount.Equal(dec("150")))

	t.Run("below strategy minimum", func(t *testing.T) {
		_, err := l.CreateInvestment(aliceAddr, t0, sid, dec("99.99"))
		assert.ErrorIs(t, err, ErrBoundsViolation)
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := l.CreateInvestment(aliceAddr, t0, sid, decimal.Zero)
		assert.ErrorIs(t, err, ErrBoundsViolation)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := l.CreateInvestment(aliceAddr, t0, 9999, dec("150"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("inactive strategy", func(t *testing.T) {
		retired := createTestStrategy(t, l, defaultStrategyParams())
		require.NoError(t, l.DeactivateStrategy(operatorAddr, t0, retired))
		_, err := l.CreateInvestment(aliceAddr, t0, retired, dec("150"))
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("bounded maximum enforced", func(t *testing.T) {
		p := defaultStrategyParams()
		p.MaxInvestment = dec("500")
		bounded := createTestStrategy(t, l, p)

		_, err := l.CreateInvestment(aliceAddr, t0, bounded, dec("500.01"))
		assert.ErrorIs(t, err, ErrBoundsViolation)

		_, err = l.CreateInvestment(aliceAddr, t0, bounded, dec("500"))
		assert.NoError(t, err)
	})
}

func TestCreateInvestmentDisabled(t *testing.T) {
	l := newTestLedger(t)
	sid := createTestStrategy(t, l, defaultStrategyParams())

	require.NoError(t, l.SetInvestmentsEnabled(operatorAddr, t0, false))

	_, err := l.CreateInvestment(aliceAddr, t0, sid, dec("150"))
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, l.SetInvestmentsEnabled(operatorAddr, t0, true))
	_, err = l.CreateInvestment(aliceAddr, t0, sid, dec("150"))
	assert.NoError(t, err)
}

func TestCreateInvestmentFeeRouting(t *testing.T) {
	l := newTestLedger(t)
	sid := createTestStrategy(t, l, defaultStrategyParams())
	require.NoError(t, l.SetPlatformFee(operatorAddr, t0, 100))

	id, err := l.CreateInvestment(aliceAddr, t0, sid, dec("1000"))
	require.NoError(t, err)

	// 1% of 1000, floored.
	inv := loadTestInvestment(t, l, id)
	assert.True(t, inv.Principal.Equal(dec("990")))
	assert.True(t, inv.CurrentValue.Equal(dec("990")))

	collected := custodyTransfers(t, l, collectorAddr)
	require.Len(t, collected, 1)
	assert.Equal(t, models.CustodyDirectionOut, collected[0].Direction)
	assert.Equal(t, TransferReasonFee, collected[0].Reason)
	assert.True(t, collected[0].Amount.Equal(dec("10")))

	t.Run("fractional fee floors", func(t *testing.T) {
		id, err := l.CreateInvestment(bobAddr, t0, sid, dec("150"))
		require.NoError(t, err)
		// floor(150 * 100 / 10000) = 1
		inv := loadTestInvestment(t, l, id)
		assert.True(t, inv.Principal.Equal(dec("149")))
	})

	t.Run("fee above cap rejected", func(t *testing.T) {
		err := l.SetPlatformFee(operatorAddr, t0, MaxPlatformFeeBp+1)
		assert.ErrorIs(t, err, ErrInvariantViolation)
	})

	t.Run("only operator may set fee", func(t *testing.T) {
		err := l.SetPlatformFee(aliceAddr, t0, 50)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestUpdateInvestmentValue(t *testing.T) {
	l := newTestLedger(t)
	sid := createTestStrategy(t, l, defaultStrategyParams())
	id, err := l.CreateInvestment(aliceAddr, t0, sid, dec("150"))
	require.NoError(t, err)

	require.NoError(t, l.UpdateInvestmentValue(operatorAddr, t0, id, dec("180")))
	inv := loadTestInvestment(t, l, id)
	assert.True(t, inv.CurrentValue.Equal(dec("180")))
	// The initial value never moves.
	assert.True(t, inv.InitialValue.Equal(dec("150")))

	t.Run("drawdown below principal allowed", func(t *testing.T) {
		require.NoError(t, l.UpdateInvestmentValue(operatorAddr, t0, id, dec("120")))
		require.NoError(t, l.UpdateInvestmentValue(operatorAddr, t0, id, dec("180")))
	})

	t.Run("negative value rejected", func(t *testing.T) {
		err := l.UpdateInvestmentValue(operatorAddr, t0, id, dec("-1"))
		assert.ErrorIs(t, err, ErrInvariantViolation)
	})

	t.Run("investor may not revalue", func(t *testing.T) {
		err := l.UpdateInvestmentValue(aliceAddr, t0, id, dec("999"))
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestClaimYield(t *testing.T) {
	l := newTestLedger(t)
	sid := createTestStrategy(t, l, defaultStrategyParams())
	id, err := l.CreateInvestment(aliceAddr, t0, sid, dec("150"))
	require.NoError(t, err)
	require.NoError(t, l.UpdateInvestmentValue(operatorAddr, t0, id, dec("180")))

	t.Run("claim exceeding yield fails", func(t *testing.T) {
		err := l.ClaimYield(aliceAddr, t0, id, dec("30.01"))
		assert.ErrorIs(t, err, ErrBoundsViolation)
	})

	require.NoError(t, l.ClaimYield(aliceAddr, t0, id, dec("20")))
	inv := loadTestInvestment(t, l, id)
	assert.True(t, inv.CurrentValue.Equal(dec("160")))

	t.Run("remaining yield shrinks with each claim", func(t *testing.T) {
		err := l.ClaimYield(aliceAddr, t0, id, dec("11"))
		assert.ErrorIs(t, err, ErrBoundsViolation)

		require.NoError(t, l.ClaimYield(aliceAddr, t0, id, dec("10")))
		inv := loadTestInvestment(t, l, id)
		assert.True(t, inv.CurrentValue.Equal(dec("150")))

		err = l.ClaimYield(aliceAddr, t0, id, dec("0.01"))
		assert.ErrorIs(t, err, ErrBoundsViolation)
	})

	t.Run("underwater position has no yield", func(t *testing.T) {
		require.NoError(t, l.UpdateInvestmentValue(operatorAddr, t0, id, dec("140")))
		err := l.ClaimYield(aliceAddr, t0, id, dec("1"))
		assert.ErrorIs(t, err, ErrBoundsViolation)
	})

	t.Run("only investor may claim", func(t *testing.T) {
		require.NoError(t, l.UpdateInvestmentValue(operatorAddr, t0, id, dec("200")))
		err := l.ClaimYield(bobAddr, t0, id, dec("1"))
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("claims recorded with custody release", func(t *testing.T) {
		claims, err := l.GetUserYieldClaims(aliceAddr)
		require.NoError(t, err)
		require.Len(t, claims, 2)
		assert.True(t, claims[0].Amount.Equal(dec("20")))
		assert.True(t, claims[1].Amount.Equal(dec("10")))

		var released int64
		require.NoError(t, l.db.Model(&models.CustodyTransfer{}).
			Where("counterparty_address = ? AND reason = ?", aliceAddr, TransferReasonYieldClaim).
			Count(&released).Error)
		assert.EqualValues(t, 2, released)
	})
}

func TestCloseInvestmentLockPeriod(t *testing.T) {
	l := newTestLedger(t)
	sid := createTestStrategy(t, l, defaultStrategyParams())
	id, err := l.CreateInvestment(aliceAddr, t0, sid, dec("150"))
	require.NoError(t, err)
	require.NoError(t, l.UpdateInvestmentValue(operatorAddr, t0, id, dec("180")))

	unlockAt := t0.Add(30 * 24 * time.Hour)

	t.Run("owner close before unlock fails", func(t *testing.T) {
		err := l.CloseInvestment(aliceAddr, unlockAt.Add(-time.Second), id, decimal.Zero)
		assert.ErrorIs(t, err, ErrBoundsViolation)
	})

	t.Run("stranger may not close", func(t *testing.T) {
		err := l.CloseInvestment(bobAddr, unlockAt, id, decimal.Zero)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	// Exactly at the unlock instant the position is closable, and the owner
	// settles at the recorded value regardless of the supplied figure.
	require.NoError(t, l.CloseInvestment(aliceAddr, unlockAt, id, dec("999999")))

	inv := loadTestInvestment(t, l, id)
	assert.False(t, inv.Active)
	require.NotNil(t, inv.EndedAt)
	assert.True(t, inv.EndedAt.Equal(unlockAt))
	assert.True(t, inv.CurrentValue.Equal(dec("180")))

	transfers := custodyTransfers(t, l, aliceAddr)
	last := transfers[len(transfers)-1]
	assert.Equal(t, models.CustodyDirectionOut, last.Direction)
	assert.Equal(t, TransferReasonClose, last.Reason)
	assert.True(t, last.Amount.Equal(dec("180")))

	t.Run("closing twice fails", func(t *testing.T) {
		err := l.CloseInvestment(aliceAddr, unlockAt, id, decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("claims on closed positions fail", func(t *testing.T) {
		err := l.ClaimYield(aliceAddr, unlockAt, id, dec("1"))
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("revaluing closed positions fails", func(t *testing.T) {
		err := l.UpdateInvestmentValue(operatorAddr, unlockAt, id, dec("200"))
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestCloseInvestmentByOperator(t *testing.T) {
	l := newTestLedger(t)
	sid := createTestStrategy(t, l, defaultStrategyParams())
	id, err := l.CreateInvestment(aliceAddr, t0, sid, dec("150"))
	require.NoError(t, err)

	// The operator may force-close mid-lock at an explicit final value.
	midLock := t0.Add(10 * 24 * time.Hour)
	require.NoError(t, l.CloseInvestment(operatorAddr, midLock, id, dec("155")))

	inv := loadTestInvestment(t, l, id)
	assert.False(t, inv.Active)
	assert.True(t, inv.CurrentValue.Equal(dec("155")))

	transfers := custodyTransfers(t, l, aliceAddr)
	last := transfers[len(transfers)-1]
	assert.Equal(t, TransferReasonClose, last.Reason)
	assert.True(t, last.Amount.Equal(dec("155")))

	t.Run("zero settlement releases nothing", func(t *testing.T) {
		id, err := l.CreateInvestment(bobAddr, t0, sid, dec("150"))
		require.NoError(t, err)
		require.NoError(t, l.CloseInvestment(operatorAddr, midLock, id, decimal.Zero))

		transfers := custodyTransfers(t, l, bobAddr)
		require.Len(t, transfers, 1)
		assert.Equal(t, models.CustodyDirectionIn, transfers[0].Direction)
	})
}
