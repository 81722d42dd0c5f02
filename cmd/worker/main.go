package main

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"portfolioledger/internal/ledger"
	"portfolioledger/pkg/config"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	logrus "github.com/sirupsen/logrus"
)

// ValuationQueue carries oracle-fed investment revaluations.
const ValuationQueue = "investment_valuations"

// ValuationMessage is one oracle valuation for an open investment.
type ValuationMessage struct {
	InvestmentID uint            `json:"investment_id"`
	Value        decimal.Decimal `json:"value"`
}

func main() {
	// Initialize logger
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	config.InitDB()

	// Initialize RabbitMQ
	config.InitRabbitMQ()
	defer config.RabbitMQ.Close()

	publisher, err := config.NewPublisher()
	if err != nil {
		logrus.Fatal("Failed to create event publisher: ", err)
	}
	defer publisher.Close()

	core := ledger.New(config.DB, ledger.WithEventPublisher(publisher))

	operator := os.Getenv("OPERATOR_ADDRESS")
	if err := core.EnsurePlatformConfig(operator); err != nil {
		logrus.Fatal("Failed to initialize platform config: ", err)
	}

	// Scheduled portfolio snapshots
	snapshotSpec := os.Getenv("SNAPSHOT_CRON")
	if snapshotSpec == "" {
		snapshotSpec = "@daily"
	}
	c := cron.New()
	if _, err := c.AddFunc(snapshotSpec, func() {
		if err := RecordPortfolioSnapshots(); err != nil {
			logrus.Errorf("Portfolio snapshot run failed: %v", err)
		}
	}); err != nil {
		logrus.Fatal("Failed to schedule snapshot job: ", err)
	}
	c.Start()
	defer c.Stop()

	// Consume oracle valuations and apply them as operator revaluations
	msgConsumer, err := config.NewConsumer(ValuationQueue)
	if err != nil {
		logrus.Fatal("Failed to create consumer: ", err)
	}
	defer msgConsumer.Close()

	logrus.Info("Valuation worker started, waiting for messages...")

	err = msgConsumer.Consume(func(msg []byte) error {
		var valuation ValuationMessage
		if err := json.Unmarshal(msg, &valuation); err != nil {
			logrus.Errorf("Failed to unmarshal valuation message: %v", err)
			return err
		}

		if err := core.UpdateInvestmentValue(operator, time.Now().UTC(), valuation.InvestmentID, valuation.Value); err != nil {
			// Ledger rejections are terminal (closed or unknown investment);
			// requeueing them would loop forever. Only transient errors requeue.
			var lerr *ledger.Error
			if errors.As(err, &lerr) {
				logrus.WithFields(logrus.Fields{
					"investment_id": valuation.InvestmentID,
					"value":         valuation.Value,
				}).Warnf("Dropping rejected valuation: %v", err)
				return nil
			}
			logrus.WithFields(logrus.Fields{
				"investment_id": valuation.InvestmentID,
				"value":         valuation.Value,
			}).Errorf("Failed to apply valuation: %v", err)
			return err
		}

		logrus.WithFields(logrus.Fields{
			"investment_id": valuation.InvestmentID,
			"value":         valuation.Value,
		}).Info("Investment revalued")
		return nil
	})

	if err != nil {
		log.Fatal("Failed to start consumer: ", err)
	}
}
