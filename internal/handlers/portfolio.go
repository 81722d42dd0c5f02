package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PortfolioRequest represents the request body for creating/updating a portfolio
type PortfolioRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ManagerRequest represents the request body for adding a manager
type ManagerRequest struct {
	ManagerAddress string `json:"manager_address" binding:"required"`
}

// CreatePortfolio creates a new portfolio owned by the caller
func CreatePortfolio(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var request PortfolioRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := Ledger.CreatePortfolio(caller, time.Now().UTC(), request.Name, request.Description)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdatePortfolio updates a portfolio's name and description
func UpdatePortfolio(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request PortfolioRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.UpdatePortfolio(caller, time.Now().UTC(), id, request.Name, request.Description); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio updated successfully"})
}

// AddManager adds an address to a portfolio's manager set
func AddManager(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request ManagerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Ledger.AddManager(caller, time.Now().UTC(), id, request.ManagerAddress); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Manager added successfully"})
}

// RemoveManager removes an address from a portfolio's manager set
func RemoveManager(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := Ledger.RemoveManager(caller, time.Now().UTC(), id, c.Param("address")); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Manager removed successfully"})
}

// DeactivatePortfolio deactivates an active portfolio
func DeactivatePortfolio(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := Ledger.DeactivatePortfolio(caller, time.Now().UTC(), id); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio deactivated successfully"})
}

// ReactivatePortfolio reactivates an inactive portfolio
func ReactivatePortfolio(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := Ledger.ReactivatePortfolio(caller, time.Now().UTC(), id); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio reactivated successfully"})
}

// ListUserPortfolios returns every portfolio owned by an address
func ListUserPortfolios(c *gin.Context) {
	portfolios, err := Ledger.GetUserPortfolios(c.Param("address"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, portfolios)
}

// ListPortfolioManagers returns a portfolio's manager addresses
func ListPortfolioManagers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	managers, err := Ledger.GetPortfolioManagers(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, managers)
}
