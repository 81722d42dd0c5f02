package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PlatformFeeRequest represents the request body for updating the fee rate
type PlatformFeeRequest struct {
	FeeBp int64 `json:"fee_bp"`
}

// FeeCollectorRequest represents the request body for updating the fee collector
type FeeCollectorRequest struct {
	Address string `json:"address" binding:"required"`
}

// InvestmentsEnabledRequest represents the global investments switch
type InvestmentsEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetPlatformFee updates the fee rate on investment inflows (operator only)
func SetPlatformFee(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var request PlatformFeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.SetPlatformFee(caller, time.Now().UTC(), request.FeeBp); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Platform fee updated successfully"})
}

// SetFeeCollector updates the fee routing identity (operator only)
func SetFeeCollector(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var request FeeCollectorRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.SetFeeCollector(caller, time.Now().UTC(), request.Address); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fee collector updated successfully"})
}

// SetInvestmentsEnabled toggles the global investments switch (operator only)
func SetInvestmentsEnabled(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var request InvestmentsEnabledRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.SetInvestmentsEnabled(caller, time.Now().UTC(), *request.Enabled); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Investments switch updated successfully"})
}
