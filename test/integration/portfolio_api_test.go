package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idResponse struct {
	ID uint `json:"id"`
}

type errorResponse struct {
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

type assetResponse struct {
	AssetID         string `json:"asset_id"`
	TargetWeightBp  int64  `json:"target_weight_bp"`
	CurrentWeightBp int64  `json:"current_weight_bp"`
}

func TestPortfolioAPI(t *testing.T) {
	owner := fmt.Sprintf("it-owner-%d", testNonce())
	manager := fmt.Sprintf("it-manager-%d", testNonce())
	var portfolioID uint

	t.Run("Create Portfolio", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, BaseURL+"/portfolios", owner, map[string]string{
			"name":        "Integration Growth",
			"description": "created by the API test",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var created idResponse
		decodeBody(t, resp, &created)
		require.NotZero(t, created.ID)
		portfolioID = created.ID
	})

	t.Run("Create Portfolio Without Caller", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, BaseURL+"/portfolios", "", map[string]string{
			"name": "No Caller",
		})
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Add Manager", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/portfolios/%d/managers", BaseURL, portfolioID),
			owner, map[string]string{"manager_address": manager})
		resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Add Asset", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/portfolios/%d/assets", BaseURL, portfolioID),
			owner, map[string]interface{}{"asset_id": "AAPL", "target_bp": 5000})
		resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Add Asset Over Ceiling", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/portfolios/%d/assets", BaseURL, portfolioID),
			owner, map[string]interface{}{"asset_id": "MSFT", "target_bp": 6000})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var rejection errorResponse
		decodeBody(t, resp, &rejection)
		assert.Equal(t, "INVARIANT_VIOLATION", rejection.ErrorCode)
	})

	t.Run("Manager Updates Current Allocations", func(t *testing.T) {
		resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/portfolios/%d/assets/current", BaseURL, portfolioID),
			manager, map[string]interface{}{
				"asset_ids":   []string{"AAPL"},
				"current_bps": []int64{4800},
			})
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/portfolios/%d/assets", BaseURL, portfolioID), "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var assets []assetResponse
		decodeBody(t, resp, &assets)
		require.Len(t, assets, 1)
		assert.Equal(t, int64(5000), assets[0].TargetWeightBp)
		assert.Equal(t, int64(4800), assets[0].CurrentWeightBp)
	})

	t.Run("Stranger Cannot Mutate", func(t *testing.T) {
		resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/portfolios/%d", BaseURL, portfolioID),
			"it-stranger", map[string]string{"name": "Hijacked"})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var rejection errorResponse
		decodeBody(t, resp, &rejection)
		assert.Equal(t, "UNAUTHORIZED", rejection.ErrorCode)
	})

	t.Run("Record Transaction And Page Trail", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/portfolios/%d/transactions", BaseURL, portfolioID),
				owner, map[string]interface{}{
					"asset_id": "AAPL",
					"amount":   "10",
					"price":    "187.5",
					"is_buy":   true,
					"tx_type":  "manual",
				})
			resp.Body.Close()
			assert.Equal(t, http.StatusCreated, resp.StatusCode)
		}

		resp := doJSON(t, http.MethodGet,
			fmt.Sprintf("%s/portfolios/%d/transactions?start=0&count=2", BaseURL, portfolioID), "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var page []map[string]interface{}
		decodeBody(t, resp, &page)
		assert.Len(t, page, 2)
	})

	t.Run("Deactivate Portfolio", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/portfolios/%d/deactivate", BaseURL, portfolioID), owner, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// Mutations on a frozen portfolio are rejected.
		resp = doJSON(t, http.MethodPost, fmt.Sprintf("%s/portfolios/%d/assets", BaseURL, portfolioID),
			owner, map[string]interface{}{"asset_id": "GOOG", "target_bp": 100})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var rejection errorResponse
		decodeBody(t, resp, &rejection)
		assert.Equal(t, "INVALID_STATE", rejection.ErrorCode)
	})

	t.Run("Get Unknown Portfolio Trail Owner", func(t *testing.T) {
		resp := doJSON(t, http.MethodPut, BaseURL+"/portfolios/999999", owner,
			map[string]string{"name": "Nope"})
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
