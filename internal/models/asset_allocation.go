package models

import (
	"time"
)

// AssetAllocation tracks the target and current weight of one asset inside a
// portfolio, both in basis points (10000 bp = 100%). Row existence is the
// authoritative "exists" flag; removing an asset only clears Active so that a
// zero-weight asset and an absent asset stay distinguishable.
type AssetAllocation struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	PortfolioID     uint      `gorm:"not null;uniqueIndex:idx_portfolio_asset" json:"portfolio_id"`
	AssetID         string    `gorm:"size:64;not null;uniqueIndex:idx_portfolio_asset" json:"asset_id"`
	TargetWeightBp  int64     `gorm:"not null;default:0" json:"target_weight_bp"`
	CurrentWeightBp int64     `gorm:"not null;default:0" json:"current_weight_bp"`
	Active          bool      `gorm:"default:true" json:"active"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (AssetAllocation) TableName() string {
	return "asset_allocation"
}
