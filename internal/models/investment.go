package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a position opened by an investor against a strategy.
// Principal is the post-fee amount taken into custody; it seeds both
// InitialValue and CurrentValue. CurrentValue is overwritten by operator
// revaluations and reduced by yield claims, and must never go negative.
type Investment struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	OrderRef        string          `gorm:"size:36;not null;uniqueIndex" json:"order_ref"`
	InvestorAddress string          `gorm:"size:100;not null;index" json:"investor_address"`
	StrategyID      uint            `gorm:"not null;index" json:"strategy_id"`
	Principal       decimal.Decimal `gorm:"type:decimal(30,10);not null" json:"principal"`
	InitialValue    decimal.Decimal `gorm:"type:decimal(30,10);not null" json:"initial_value"`
	CurrentValue    decimal.Decimal `gorm:"type:decimal(30,10);not null" json:"current_value"`
	StartedAt       time.Time       `gorm:"not null" json:"started_at"`
	EndedAt         *time.Time      `json:"ended_at,omitempty"`
	Active          bool            `gorm:"default:true" json:"active"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Investment) TableName() string {
	return "investment"
}

// AvailableYield is the portion of CurrentValue claimable without closing the
// position: current value minus initial value, never negative.
func (i *Investment) AvailableYield() decimal.Decimal {
	yield := i.CurrentValue.Sub(i.InitialValue)
	if yield.IsNegative() {
		return decimal.Zero
	}
	return yield
}

// YieldClaim is one append-only record of a partial yield withdrawal from an
// open investment. Claims reduce CurrentValue but never touch InitialValue.
type YieldClaim struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	InvestmentID    uint            `gorm:"not null;index" json:"investment_id"`
	InvestorAddress string          `gorm:"size:100;not null;index" json:"investor_address"`
	Amount          decimal.Decimal `gorm:"type:decimal(30,10);not null" json:"amount"`
	ClaimedAt       time.Time       `gorm:"not null" json:"claimed_at"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (YieldClaim) TableName() string {
	return "yield_claim"
}
