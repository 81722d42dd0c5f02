package main

import (
	"time"

	"portfolioledger/internal/models"
	dbconfig "portfolioledger/pkg/config"

	logger "github.com/sirupsen/logrus"
)

// RecordPortfolioSnapshots writes one stat row per active portfolio.
func RecordPortfolioSnapshots() error {
	logger.Info("> Starting portfolio snapshot run")

	var portfolios []models.Portfolio
	if err := dbconfig.DB.Where("active = ?", true).Find(&portfolios).Error; err != nil {
		logger.Errorf("> Failed to query portfolios: %v", err)
		return err
	}

	logger.Infof("> Found %d active portfolios", len(portfolios))

	now := time.Now().UTC()
	for _, portfolio := range portfolios {
		snapshot, err := buildSnapshot(portfolio.ID, now)
		if err != nil {
			logger.Errorf("> Failed to build snapshot for portfolio %d: %v", portfolio.ID, err)
			continue
		}

		if err := dbconfig.DB.Create(snapshot).Error; err != nil {
			logger.Errorf("> Failed to save snapshot for portfolio %d: %v", portfolio.ID, err)
			continue
		}
		logger.Infof("> Snapshot recorded for portfolio %d", portfolio.ID)
	}

	logger.Info("> Portfolio snapshot run complete")
	return nil
}

func buildSnapshot(portfolioID uint, now time.Time) (*models.PortfolioSnapshot, error) {
	type allocTotals struct {
		Count     int64
		TargetBp  int64
		CurrentBp int64
	}
	var totals allocTotals
	err := dbconfig.DB.Model(&models.AssetAllocation{}).
		Where("portfolio_id = ? AND active = ?", portfolioID, true).
		Select("COUNT(*) AS count, COALESCE(SUM(target_weight_bp), 0) AS target_bp, COALESCE(SUM(current_weight_bp), 0) AS current_bp").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	var txCount int64
	if err := dbconfig.DB.Model(&models.TransactionRecord{}).
		Where("portfolio_id = ?", portfolioID).Count(&txCount).Error; err != nil {
		return nil, err
	}

	var managerCount int64
	if err := dbconfig.DB.Model(&models.PortfolioManager{}).
		Where("portfolio_id = ?", portfolioID).Count(&managerCount).Error; err != nil {
		return nil, err
	}

	return &models.PortfolioSnapshot{
		PortfolioID:      portfolioID,
		ActiveAssets:     totals.Count,
		TotalTargetBp:    totals.TargetBp,
		TotalCurrentBp:   totals.CurrentBp,
		TransactionCount: txCount,
		ManagerCount:     managerCount,
		SnapshotAt:       now,
	}, nil
}
