package ledger

import (
	"encoding/json"
	"time"

	"portfolioledger/internal/models"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EventQueue is the queue ledger events are fanned out to after commit.
const EventQueue = "ledger_events"

// Entity types used in ledger events.
const (
	EntityPortfolio  = "portfolio"
	EntityAllocation = "allocation"
	EntityStrategy   = "strategy"
	EntityInvestment = "investment"
	EntityPlatform   = "platform"
)

// EventPublisher fans committed events out to external indexers. Matched by
// *config.Publisher; publishing is best effort and never fails the operation.
type EventPublisher interface {
	Publish(queueName string, message interface{}) error
}

// eventRecorder collects the events written during one transaction so they
// can be published after the commit succeeds.
type eventRecorder struct {
	events []models.LedgerEvent
}

// emit appends one audit event inside the current transaction. The event row
// commits or rolls back together with the mutation it describes.
func emit(tx *gorm.DB, rec *eventRecorder, entityType string, entityID uint, action, actor string, payload map[string]interface{}, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	ev := models.LedgerEvent{
		EventID:    uuid.NewString(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Actor:      actor,
		Payload:    body,
		OccurredAt: now,
	}
	if err := tx.Create(&ev).Error; err != nil {
		return err
	}
	rec.events = append(rec.events, ev)
	return nil
}

func (l *Ledger) publishEvents(events []models.LedgerEvent) {
	if l.publisher == nil {
		return
	}
	for _, ev := range events {
		if err := l.publisher.Publish(EventQueue, ev); err != nil {
			logger.WithFields(logger.Fields{
				"event_id": ev.EventID,
				"action":   ev.Action,
			}).Warnf("Failed to publish ledger event: %v", err)
		}
	}
}
