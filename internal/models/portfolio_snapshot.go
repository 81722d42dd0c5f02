package models

import (
	"time"
)

// PortfolioSnapshot is a worker-written per-portfolio stat row, recorded on a
// schedule for dashboards and trend queries.
type PortfolioSnapshot struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	PortfolioID      uint      `gorm:"not null;index" json:"portfolio_id"`
	ActiveAssets     int64     `gorm:"not null;default:0" json:"active_assets"`
	TotalTargetBp    int64     `gorm:"not null;default:0" json:"total_target_bp"`
	TotalCurrentBp   int64     `gorm:"not null;default:0" json:"total_current_bp"`
	TransactionCount int64     `gorm:"not null;default:0" json:"transaction_count"`
	ManagerCount     int64     `gorm:"not null;default:0" json:"manager_count"`
	SnapshotAt       time.Time `gorm:"not null;index" json:"snapshot_at"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (PortfolioSnapshot) TableName() string {
	return "portfolio_snapshot"
}
