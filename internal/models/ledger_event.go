package models

import (
	"encoding/json"
	"time"
)

// LedgerEvent is one entry of the append-only audit log. Every successful
// mutating ledger operation writes exactly one event in the same transaction
// as the mutation, so indexers can replay state transitions in order.
type LedgerEvent struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	EventID    string          `gorm:"size:36;not null;uniqueIndex" json:"event_id"`
	EntityType string          `gorm:"size:32;not null;index" json:"entity_type"`
	EntityID   uint            `gorm:"not null;index" json:"entity_id"`
	Action     string          `gorm:"size:48;not null" json:"action"`
	Actor      string          `gorm:"size:100;not null" json:"actor"`
	Payload    json.RawMessage `gorm:"type:jsonb" json:"payload"`
	OccurredAt time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt  time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (LedgerEvent) TableName() string {
	return "ledger_event"
}
