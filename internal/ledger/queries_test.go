package ledger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPortfolioTransactionsPagination(t *testing.T) {
	l := newTestLedger(t)
	id := createTestPortfolio(t, l, aliceAddr, "Growth")

	for i := 0; i < 7; i++ {
		require.NoError(t, l.RecordTransaction(aliceAddr, t0, id, testTxInput(fmt.Sprintf("ASSET-%d", i))))
	}

	t.Run("pages tile the trail in order", func(t *testing.T) {
		var seen []string
		for start := 0; start < 7; start += 3 {
			page, err := l.GetPortfolioTransactions(id, start, 3)
			require.NoError(t, err)
			for _, r := range page {
				seen = append(seen, r.AssetID)
			}
		}
		require.Len(t, seen, 7)
		for i, assetID := range seen {
			assert.Equal(t, fmt.Sprintf("ASSET-%d", i), assetID)
		}
	})

	t.Run("same page twice is identical", func(t *testing.T) {
		a, err := l.GetPortfolioTransactions(id, 2, 3)
		require.NoError(t, err)
		b, err := l.GetPortfolioTransactions(id, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("start past the end yields empty page", func(t *testing.T) {
		page, err := l.GetPortfolioTransactions(id, 7, 3)
		require.NoError(t, err)
		assert.Empty(t, page)

		page, err = l.GetPortfolioTransactions(id, 100, 3)
		require.NoError(t, err)
		assert.Empty(t, page)
	})

	t.Run("degenerate bounds yield empty page", func(t *testing.T) {
		page, err := l.GetPortfolioTransactions(id, -1, 3)
		require.NoError(t, err)
		assert.Empty(t, page)

		page, err = l.GetPortfolioTransactions(id, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, page)
	})
}

func TestGetActiveStrategiesPagination(t *testing.T) {
	l := newTestLedger(t)

	var retired uint
	for i := 0; i < 5; i++ {
		p := defaultStrategyParams()
		p.Name = fmt.Sprintf("Strategy %d", i)
		id := createTestStrategy(t, l, p)
		if i == 2 {
			retired = id
		}
	}
	require.NoError(t, l.DeactivateStrategy(operatorAddr, t0, retired))

	// Pagination runs over the active set only.
	first, err := l.GetActiveStrategies(0, 3)
	require.NoError(t, err)
	require.Len(t, first, 3)
	rest, err := l.GetActiveStrategies(3, 3)
	require.NoError(t, err)
	require.Len(t, rest, 1)

	names := []string{first[0].Name, first[1].Name, first[2].Name, rest[0].Name}
	assert.Equal(t, []string{"Strategy 0", "Strategy 1", "Strategy 3", "Strategy 4"}, names)
}

func TestGetActiveInvestmentsForUser(t *testing.T) {
	l := newTestLedger(t)
	sid := createTestStrategy(t, l, defaultStrategyParams())

	first, err := l.CreateInvestment(aliceAddr, t0, sid, dec("150"))
	require.NoError(t, err)
	_, err = l.CreateInvestment(aliceAddr, t0, sid, dec("200"))
	require.NoError(t, err)
	_, err = l.CreateInvestment(bobAddr, t0, sid, dec("300"))
	require.NoError(t, err)

	require.NoError(t, l.CloseInvestment(operatorAddr, t0, first, dec("150")))

	open, err := l.GetActiveInvestmentsForUser(aliceAddr)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.True(t, open[0].Principal.Equal(dec("200")))

	none, err := l.GetActiveInvestmentsForUser(carolAddr)
	require.NoError(t, err)
	assert.Empty(t, none)
}
