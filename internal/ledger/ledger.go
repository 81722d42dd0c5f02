package ledger

import (
	"errors"

	"portfolioledger/internal/models"

	"gorm.io/gorm"
)

// Ledger is the accounting core. Every mutating operation takes the caller
// address and the current time explicitly, runs inside a single database
// transaction, appends an audit event, and either fully applies or fully
// rolls back. Serialization across callers is provided by the database.
type Ledger struct {
	db        *gorm.DB
	transfers TransferPort
	publisher EventPublisher
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithTransferPort overrides the custody boundary implementation.
func WithTransferPort(tp TransferPort) Option {
	return func(l *Ledger) { l.transfers = tp }
}

// WithEventPublisher enables post-commit event fan-out to a message queue.
func WithEventPublisher(p EventPublisher) Option {
	return func(l *Ledger) { l.publisher = p }
}

// New creates a Ledger on top of the given database handle.
func New(db *gorm.DB, opts ...Option) *Ledger {
	l := &Ledger{
		db:        db,
		transfers: &recordingTransfers{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// EnsurePlatformConfig seeds the single platform settings row if it does not
// exist yet. Called once at startup with the configured operator address.
func (l *Ledger) EnsurePlatformConfig(operator string) error {
	if operator == "" {
		return invariantf("operator address must not be empty")
	}
	var cfg models.PlatformConfig
	err := l.db.First(&cfg).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	cfg = models.PlatformConfig{
		OperatorAddress:     operator,
		FeeBp:               0,
		FeeCollectorAddress: operator,
		InvestmentsEnabled:  true,
	}
	return l.db.Create(&cfg).Error
}

// run wraps a mutating operation in a transaction and publishes the recorded
// audit events after a successful commit.
func (l *Ledger) run(fn func(tx *gorm.DB, rec *eventRecorder) error) error {
	rec := &eventRecorder{}
	if err := l.db.Transaction(func(tx *gorm.DB) error {
		return fn(tx, rec)
	}); err != nil {
		return err
	}
	l.publishEvents(rec.events)
	return nil
}

func platformConfig(tx *gorm.DB) (*models.PlatformConfig, error) {
	var cfg models.PlatformConfig
	if err := tx.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidStatef("platform config not initialized")
		}
		return nil, err
	}
	return &cfg, nil
}

func loadPortfolio(tx *gorm.DB, id uint) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := tx.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("portfolio %d not found", id)
		}
		return nil, err
	}
	return &p, nil
}

func loadStrategy(tx *gorm.DB, id uint) (*models.Strategy, error) {
	var s models.Strategy
	if err := tx.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("strategy %d not found", id)
		}
		return nil, err
	}
	return &s, nil
}

func loadInvestment(tx *gorm.DB, id uint) (*models.Investment, error) {
	var inv models.Investment
	if err := tx.First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("investment %d not found", id)
		}
		return nil, err
	}
	return &inv, nil
}
