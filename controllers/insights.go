// controllers/insights.go
package controllers

import (
	"net/http"

	"attendpro-backend/ledger"
	"attendpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// InsightsController serves the business analytics view
type InsightsController struct {
	ledger *ledger.Ledger
}

func NewInsightsController(l *ledger.Ledger) *InsightsController {
	return &InsightsController{ledger: l}
}

// Get recomputes the analytics over the requested range on every call; the
// view is a pure function of the record snapshot and the filter.
func (ic *InsightsController) Get(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	start, end, err := parseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	records, err := ic.ledger.FilterAttendance(scope, start, end, c.Query("search"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analytics": ledger.Aggregate(records),
		"records":   records,
	})
}
