package models

import (
	"time"
)

// Portfolio represents a user-owned portfolio. Portfolios are never deleted,
// only deactivated and reactivated by their owner.
type Portfolio struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	OwnerAddress     string     `gorm:"size:100;not null;index" json:"owner_address"`
	Name             string     `gorm:"size:64;not null" json:"name"`
	Description      string     `gorm:"size:256" json:"description"`
	Active           bool       `gorm:"default:true" json:"active"`
	LastRebalancedAt *time.Time `json:"last_rebalanced_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Portfolio) TableName() string {
	return "portfolio"
}

// PortfolioManager is one entry of a portfolio's manager set. Membership is
// unique per (portfolio, address); iteration order is not meaningful.
type PortfolioManager struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	PortfolioID    uint      `gorm:"not null;uniqueIndex:idx_portfolio_manager" json:"portfolio_id"`
	ManagerAddress string    `gorm:"size:100;not null;uniqueIndex:idx_portfolio_manager" json:"manager_address"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (PortfolioManager) TableName() string {
	return "portfolio_manager"
}
