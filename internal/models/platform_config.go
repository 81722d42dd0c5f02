package models

import (
	"time"
)

// PlatformConfig is the single-row platform settings record owned by the
// operator: fee rate and collector for investment inflows plus the global
// investments switch. Fee changes apply only to subsequently created
// investments.
type PlatformConfig struct {
	ID                  uint      `gorm:"primarykey" json:"id"`
	OperatorAddress     string    `gorm:"size:100;not null" json:"operator_address"`
	FeeBp               int64     `gorm:"not null;default:0" json:"fee_bp"`
	FeeCollectorAddress string    `gorm:"size:100;not null" json:"fee_collector_address"`
	InvestmentsEnabled  bool      `gorm:"default:true" json:"investments_enabled"`
	CreatedAt           time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PlatformConfig) TableName() string {
	return "platform_config"
}
