package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AddAssetRequest represents the request body for adding an asset
type AddAssetRequest struct {
	AssetID  string `json:"asset_id" binding:"required"`
	TargetBp int64  `json:"target_bp"`
}

// UpdateAllocationRequest represents the request body for updating a target weight
type UpdateAllocationRequest struct {
	TargetBp int64 `json:"target_bp"`
}

// CurrentAllocationsRequest represents the batch current-weight update body
type CurrentAllocationsRequest struct {
	AssetIDs   []string `json:"asset_ids" binding:"required"`
	CurrentBps []int64  `json:"current_bps" binding:"required"`
}

// AddAsset adds an asset allocation to a portfolio
func AddAsset(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request AddAssetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.AddAsset(caller, time.Now().UTC(), id, request.AssetID, request.TargetBp); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Asset added successfully"})
}

// RemoveAsset deactivates an asset allocation
func RemoveAsset(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := Ledger.RemoveAsset(caller, time.Now().UTC(), id, c.Param("asset_id")); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asset removed successfully"})
}

// UpdateAllocation changes an asset's target weight
func UpdateAllocation(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request UpdateAllocationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.UpdateAllocation(caller, time.Now().UTC(), id, c.Param("asset_id"), request.TargetBp); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Allocation updated successfully"})
}

// UpdateCurrentAllocations overwrites the current weights of a batch of assets
func UpdateCurrentAllocations(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request CurrentAllocationsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.UpdateCurrentAllocations(caller, time.Now().UTC(), id, request.AssetIDs, request.CurrentBps); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Current allocations updated successfully"})
}

// ListPortfolioAssets returns a portfolio's active allocations
func ListPortfolioAssets(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assets, err := Ledger.GetPortfolioAssets(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assets)
}
