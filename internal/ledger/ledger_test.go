package ledger

import (
	"testing"
	"time"

	"portfolioledger/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	operatorAddr  = "op-0001"
	collectorAddr = "collector-0001"
	aliceAddr     = "alice-0001"
	bobAddr       = "bob-0002"
	carolAddr     = "carol-0003"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the memory database alive and private to
	// this test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.AutoMigrateModels(db))

	l := New(db)
	require.NoError(t, l.EnsurePlatformConfig(operatorAddr))
	require.NoError(t, l.SetFeeCollector(operatorAddr, t0, collectorAddr))
	return l
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func createTestPortfolio(t *testing.T, l *Ledger, owner, name string) uint {
	t.Helper()
	id, err := l.CreatePortfolio(owner, t0, name, "test portfolio")
	require.NoError(t, err)
	return id
}

func createTestStrategy(t *testing.T, l *Ledger, params StrategyParams) uint {
	t.Helper()
	id, err := l.CreateStrategy(operatorAddr, t0, params)
	require.NoError(t, err)
	return id
}

func defaultStrategyParams() StrategyParams {
	return StrategyParams{
		Name:           "Stable Yield",
		Description:    "conservative lending",
		Protocol:       "protocol-a",
		AssetID:        "USDC",
		ApyBp:          450,
		RiskTier:       2,
		LockPeriodSecs: int64((30 * 24 * time.Hour).Seconds()),
		MinInvestment:  dec("100"),
		MaxInvestment:  decimal.Zero,
	}
}
