package ledger

import (
	"errors"
	"time"

	"portfolioledger/internal/models"

	"gorm.io/gorm"
)

// TotalWeightBp is the allocation ceiling: 10000 basis points = 100%.
const TotalWeightBp int64 = 10000

// activeTargetSum returns the sum of target weights across the portfolio's
// active assets, optionally excluding one allocation row.
func activeTargetSum(tx *gorm.DB, portfolioID uint, excludeID uint) (int64, error) {
	var sum int64
	q := tx.Model(&models.AssetAllocation{}).
		Where("portfolio_id = ? AND active = ?", portfolioID, true)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	// COALESCE so an empty portfolio sums to zero instead of NULL.
	err := q.Select("COALESCE(SUM(target_weight_bp), 0)").Scan(&sum).Error
	return sum, err
}

func validWeight(bp int64) bool {
	return bp >= 0 && bp <= TotalWeightBp
}

// guardAllocationMutation loads the portfolio and verifies it is active and
// the caller may mutate it.
func guardAllocationMutation(tx *gorm.DB, portfolioID uint, caller string) (*models.Portfolio, error) {
	p, err := loadPortfolio(tx, portfolioID)
	if err != nil {
		return nil, err
	}
	ok, err := isOwnerOrManager(tx, p, caller)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, unauthorizedf("caller %s is neither owner nor manager of portfolio %d", caller, portfolioID)
	}
	if !p.Active {
		return nil, invalidStatef("portfolio %d is inactive", portfolioID)
	}
	return p, nil
}

// AddAsset adds an asset to the portfolio with a fixed target weight and a
// current weight of zero. The portfolio-wide sum of active target weights
// must stay within the 10000 bp ceiling. Re-adding a previously removed
// asset reactivates its allocation row with the new target.
func (l *Ledger) AddAsset(caller string, now time.Time, portfolioID uint, assetID string, targetBp int64) error {
	if assetID == "" {
		return invariantf("asset id must not be empty")
	}
	if !validWeight(targetBp) {
		return invariantf("target weight %d bp outside [0, %d]", targetBp, TotalWeightBp)
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		if _, err := guardAllocationMutation(tx, portfolioID, caller); err != nil {
			return err
		}

		var alloc models.AssetAllocation
		err := tx.Where("portfolio_id = ? AND asset_id = ?", portfolioID, assetID).
			First(&alloc).Error
		switch {
		case err == nil && alloc.Active:
			return invariantf("asset %s already exists in portfolio %d", assetID, portfolioID)
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		sum, err := activeTargetSum(tx, portfolioID, 0)
		if err != nil {
			return err
		}
		if sum+targetBp > TotalWeightBp {
			return invariantf("portfolio %d target weights would total %d bp, exceeding %d",
				portfolioID, sum+targetBp, TotalWeightBp)
		}

		if alloc.ID != 0 {
			// Inactive row from an earlier removal: reactivate with the new target.
			alloc.TargetWeightBp = targetBp
			alloc.CurrentWeightBp = 0
			alloc.Active = true
			if err := tx.Save(&alloc).Error; err != nil {
				return err
			}
		} else {
			alloc = models.AssetAllocation{
				PortfolioID:    portfolioID,
				AssetID:        assetID,
				TargetWeightBp: targetBp,
				Active:         true,
			}
			if err := tx.Create(&alloc).Error; err != nil {
				return err
			}
		}
		return emit(tx, rec, EntityAllocation, alloc.ID, "asset_added", caller, map[string]interface{}{
			"portfolio_id": portfolioID,
			"asset_id":     assetID,
			"target_bp":    targetBp,
		}, now)
	})
}

// RemoveAsset deactivates an asset's allocation, preserving its history.
func (l *Ledger) RemoveAsset(caller string, now time.Time, portfolioID uint, assetID string) error {
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		if _, err := guardAllocationMutation(tx, portfolioID, caller); err != nil {
			return err
		}

		var alloc models.AssetAllocation
		if err := tx.Where("portfolio_id = ? AND asset_id = ?", portfolioID, assetID).
			First(&alloc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("asset %s not found in portfolio %d", assetID, portfolioID)
			}
			return err
		}
		if !alloc.Active {
			return invalidStatef("asset %s in portfolio %d is already inactive", assetID, portfolioID)
		}

		alloc.Active = false
		if err := tx.Save(&alloc).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityAllocation, alloc.ID, "asset_removed", caller, map[string]interface{}{
			"portfolio_id": portfolioID,
			"asset_id":     assetID,
		}, now)
	})
}

// UpdateAllocation changes the target weight of an active asset. The
// portfolio-wide sum of active target weights is revalidated against the
// 10000 bp ceiling.
func (l *Ledger) UpdateAllocation(caller string, now time.Time, portfolioID uint, assetID string, newTargetBp int64) error {
	if !validWeight(newTargetBp) {
		return invariantf("target weight %d bp outside [0, %d]", newTargetBp, TotalWeightBp)
	}
	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		if _, err := guardAllocationMutation(tx, portfolioID, caller); err != nil {
			return err
		}

		var alloc models.AssetAllocation
		if err := tx.Where("portfolio_id = ? AND asset_id = ?", portfolioID, assetID).
			First(&alloc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("asset %s not found in portfolio %d", assetID, portfolioID)
			}
			return err
		}
		if !alloc.Active {
			return invalidStatef("asset %s in portfolio %d is inactive", assetID, portfolioID)
		}

		sum, err := activeTargetSum(tx, portfolioID, alloc.ID)
		if err != nil {
			return err
		}
		if sum+newTargetBp > TotalWeightBp {
			return invariantf("portfolio %d target weights would total %d bp, exceeding %d",
				portfolioID, sum+newTargetBp, TotalWeightBp)
		}

		alloc.TargetWeightBp = newTargetBp
		if err := tx.Save(&alloc).Error; err != nil {
			return err
		}
		return emit(tx, rec, EntityAllocation, alloc.ID, "allocation_updated", caller, map[string]interface{}{
			"portfolio_id": portfolioID,
			"asset_id":     assetID,
			"target_bp":    newTargetBp,
		}, now)
	})
}

// UpdateCurrentAllocations overwrites the current weights of a batch of
// assets. The batch is all-or-nothing: a length mismatch, an unknown or
// inactive asset, or a batch sum above 10000 bp aborts the whole call with
// every allocation untouched.
func (l *Ledger) UpdateCurrentAllocations(caller string, now time.Time, portfolioID uint, assetIDs []string, currentBps []int64) error {
	if len(assetIDs) != len(currentBps) {
		return invariantf("asset ids and weights length mismatch: %d vs %d", len(assetIDs), len(currentBps))
	}
	if len(assetIDs) == 0 {
		return invariantf("batch must not be empty")
	}

	var batchSum int64
	for i, bp := range currentBps {
		if !validWeight(bp) {
			return invariantf("current weight %d bp for asset %s outside [0, %d]", bp, assetIDs[i], TotalWeightBp)
		}
		batchSum += bp
	}
	if batchSum > TotalWeightBp {
		return invariantf("batch current weights total %d bp, exceeding %d", batchSum, TotalWeightBp)
	}

	return l.run(func(tx *gorm.DB, rec *eventRecorder) error {
		if _, err := guardAllocationMutation(tx, portfolioID, caller); err != nil {
			return err
		}

		for i, assetID := range assetIDs {
			var alloc models.AssetAllocation
			if err := tx.Where("portfolio_id = ? AND asset_id = ?", portfolioID, assetID).
				First(&alloc).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFoundf("asset %s not found in portfolio %d", assetID, portfolioID)
				}
				return err
			}
			if !alloc.Active {
				return invalidStatef("asset %s in portfolio %d is inactive", assetID, portfolioID)
			}
			alloc.CurrentWeightBp = currentBps[i]
			if err := tx.Save(&alloc).Error; err != nil {
				return err
			}
		}
		return emit(tx, rec, EntityAllocation, portfolioID, "current_allocations_updated", caller, map[string]interface{}{
			"portfolio_id": portfolioID,
			"asset_ids":    assetIDs,
			"current_bps":  currentBps,
		}, now)
	})
}
