package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Strategy is an operator-curated yield strategy. Deactivation is terminal:
// an inactive strategy accepts no new investments but keeps serving as the
// stable definition for positions already open against it.
type Strategy struct {
	ID             uint            `gorm:"primarykey" json:"id"`
	Name           string          `gorm:"size:64;not null" json:"name"`
	Description    string          `gorm:"size:256" json:"description"`
	Protocol       string          `gorm:"size:100;not null" json:"protocol"`
	AssetID        string          `gorm:"size:64;not null" json:"asset_id"`
	ApyBp          int64           `gorm:"not null" json:"apy_bp"`
	RiskTier       int             `gorm:"not null" json:"risk_tier"` // 1 (lowest) to 5 (highest)
	LockPeriodSecs int64           `gorm:"not null;default:0" json:"lock_period_secs"`
	MinInvestment  decimal.Decimal `gorm:"type:decimal(30,10);not null;default:0" json:"min_investment"`
	MaxInvestment  decimal.Decimal `gorm:"type:decimal(30,10);not null;default:0" json:"max_investment"` // zero means unbounded
	Active         bool            `gorm:"default:true" json:"active"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Strategy) TableName() string {
	return "strategy"
}

// LockPeriod returns the strategy lock period as a duration.
func (s *Strategy) LockPeriod() time.Duration {
	return time.Duration(s.LockPeriodSecs) * time.Second
}
